package seeding

import (
	"context"

	domainerrors "github.com/fitcore/users-service/internal/domain/errors"
	"github.com/fitcore/users-service/internal/domain/ports"
)

// Seeder popula o banco com dados de demonstração na subida da aplicação.
// Registros já existentes (conflito de email/CPF) são ignorados com um aviso.
type Seeder struct {
	students  ports.ManageStudentUseCase
	employees ports.ManageEmployeeUseCase
	logger    ports.Logger
}

func NewSeeder(students ports.ManageStudentUseCase, employees ports.ManageEmployeeUseCase, logger ports.Logger) *Seeder {
	return &Seeder{
		students:  students,
		employees: employees,
		logger:    logger,
	}
}

// Run cadastra os alunos e funcionários de demonstração
func (s *Seeder) Run(ctx context.Context) error {
	s.logger.Info("seeding demo data")

	var created, skipped int
	for _, input := range seedStudents() {
		if _, err := s.students.RegisterStudent(ctx, input); err != nil {
			if domainerrors.IsConflict(err) {
				skipped++
				continue
			}
			s.logger.Warn("failed to seed student", "email", input.Email, "error", err)
			continue
		}
		created++
	}
	s.logger.Info("students seeded", "created", created, "skipped", skipped)

	created, skipped = 0, 0
	for _, input := range seedEmployees() {
		if _, err := s.employees.RegisterEmployee(ctx, input); err != nil {
			if domainerrors.IsConflict(err) {
				skipped++
				continue
			}
			s.logger.Warn("failed to seed employee", "email", input.Email, "error", err)
			continue
		}
		created++
	}
	s.logger.Info("employees seeded", "created", created, "skipped", skipped)

	return nil
}
