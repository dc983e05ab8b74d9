package services

import (
	"context"

	"github.com/fitcore/users-service/internal/domain/entities"
	"github.com/fitcore/users-service/internal/domain/errors"
	"github.com/fitcore/users-service/internal/domain/ports"
	"github.com/fitcore/users-service/internal/domain/repositories"
	"github.com/fitcore/users-service/internal/domain/valueobjects"
)

// StudentService contém a lógica de negócio para alunos.
// Implementa ports.ManageStudentUseCase e ports.FindStudentUseCase.
type StudentService struct {
	studentRepo repositories.StudentRepository
	publisher   ports.StudentEventPublisher
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewStudentService cria um novo StudentService
func NewStudentService(
	studentRepo repositories.StudentRepository,
	publisher ports.StudentEventPublisher,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		publisher:   publisher,
		uow:         uow,
		logger:      logger,
	}
}

// RegisterStudent matricula um novo aluno.
// A pré-checagem de unicidade é best-effort: a violação de índice único
// traduzida pelo repositório é a palavra final sobre conflitos.
func (s *StudentService) RegisterStudent(ctx context.Context, input ports.RegisterStudentInput) (*entities.Student, error) {
	s.logger.Info("registering student", "email", input.Email)

	plan, err := entities.PlanFromString(input.PlanType)
	if err != nil {
		return nil, err
	}

	student, err := entities.NewStudent(
		input.Name, input.Email, input.Cpf, input.BirthDate,
		input.Phone, plan, input.Weight, input.Height,
	)
	if err != nil {
		return nil, err
	}

	var saved *entities.Student
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.studentRepo.FindByEmail(txCtx, input.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.NewEmailAlreadyRegistered(input.Email)
		}

		existing, err = s.studentRepo.FindByCpf(txCtx, input.Cpf)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.NewCpfAlreadyRegistered(input.Cpf)
		}

		saved, err = s.studentRepo.Save(txCtx, student)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publisher.StudentCreated(ctx, saved)
	return saved, nil
}

// FindByID busca um aluno por ID, falhando com NotFound na ausência
func (s *StudentService) FindByID(ctx context.Context, id valueobjects.UserID) (*entities.Student, error) {
	student, err := s.studentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, errors.NewStudentNotFound(id.String())
	}
	return student, nil
}

// FindByEmail busca um aluno por e-mail; nil quando ausente
func (s *StudentService) FindByEmail(ctx context.Context, email string) (*entities.Student, error) {
	return s.studentRepo.FindByEmail(ctx, email)
}

// FindByCpf busca um aluno por CPF; nil quando ausente
func (s *StudentService) FindByCpf(ctx context.Context, cpf string) (*entities.Student, error) {
	return s.studentRepo.FindByCpf(ctx, cpf)
}

// FindByPlan lista alunos de um plano
func (s *StudentService) FindByPlan(ctx context.Context, planType string) ([]*entities.Student, error) {
	plan, err := entities.PlanFromString(planType)
	if err != nil {
		return nil, err
	}
	return s.studentRepo.FindByPlan(ctx, plan)
}

// FindAllActive lista apenas alunos ativos
func (s *StudentService) FindAllActive(ctx context.Context) ([]*entities.Student, error) {
	return s.studentRepo.FindAllActive(ctx)
}

// FindAll lista todos os alunos
func (s *StudentService) FindAll(ctx context.Context) ([]*entities.Student, error) {
	return s.studentRepo.FindAll(ctx)
}

// UpdateStudent atualiza dados cadastrais. A unicidade do e-mail é
// re-checada apenas quando ele muda. Não publica evento.
func (s *StudentService) UpdateStudent(ctx context.Context, id valueobjects.UserID, input ports.UpdateStudentInput) (*entities.Student, error) {
	student, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	plan, err := entities.PlanFromString(input.PlanType)
	if err != nil {
		return nil, err
	}

	updated, err := student.Update(input.Name, input.Email, input.Phone, plan, input.Weight, input.Height)
	if err != nil {
		return nil, err
	}
	if input.UpdateProfileURL {
		updated = updated.WithProfileURL(input.ProfileURL)
	}

	var saved *entities.Student
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if input.Email != student.Email {
			existing, err := s.studentRepo.FindByEmail(txCtx, input.Email)
			if err != nil {
				return err
			}
			if existing != nil {
				return errors.NewEmailAlreadyRegistered(input.Email)
			}
		}

		var err error
		saved, err = s.studentRepo.Save(txCtx, updated)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// ChangePlan altera apenas o plano do aluno e publica o evento dedicado
func (s *StudentService) ChangePlan(ctx context.Context, id valueobjects.UserID, planType string) (*entities.Student, error) {
	student, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	plan, err := entities.PlanFromString(planType)
	if err != nil {
		return nil, err
	}

	saved, err := s.studentRepo.Save(ctx, student.ChangePlan(plan))
	if err != nil {
		return nil, err
	}

	s.publisher.StudentPlanChanged(ctx, saved)
	return saved, nil
}

// UpdatePhysicalData altera peso/altura com os limites próprios do fluxo.
// Não publica evento.
func (s *StudentService) UpdatePhysicalData(ctx context.Context, id valueobjects.UserID, weight *float64, height *int) (*entities.Student, error) {
	student, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := student.UpdatePhysicalData(weight, height)
	if err != nil {
		return nil, err
	}

	return s.studentRepo.Save(ctx, updated)
}

// ActivateStudent ativa o aluno. Quando já ativo, nada é persistido
// nem publicado.
func (s *StudentService) ActivateStudent(ctx context.Context, id valueobjects.UserID) (*entities.Student, error) {
	student, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	activated := student.Activate()
	if activated == student {
		return student, nil
	}

	saved, err := s.studentRepo.Save(ctx, activated)
	if err != nil {
		return nil, err
	}

	s.publisher.StudentStatusChanged(ctx, saved)
	return saved, nil
}

// DeactivateStudent desativa o aluno. Quando já inativo, nada é
// persistido nem publicado.
func (s *StudentService) DeactivateStudent(ctx context.Context, id valueobjects.UserID) (*entities.Student, error) {
	student, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	deactivated := student.Deactivate()
	if deactivated == student {
		return student, nil
	}

	saved, err := s.studentRepo.Save(ctx, deactivated)
	if err != nil {
		return nil, err
	}

	s.publisher.StudentStatusChanged(ctx, saved)
	return saved, nil
}

// DeleteStudent remove o aluno, publicando o evento apenas com o id
func (s *StudentService) DeleteStudent(ctx context.Context, id valueobjects.UserID) (bool, error) {
	if _, err := s.FindByID(ctx, id); err != nil {
		return false, err
	}

	deleted, err := s.studentRepo.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted {
		s.publisher.StudentDeleted(ctx, id)
	}
	return deleted, nil
}
