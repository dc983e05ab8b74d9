package services

import (
	"context"
	"time"

	"github.com/fitcore/users-service/internal/domain/entities"
	"github.com/fitcore/users-service/internal/domain/errors"
	"github.com/fitcore/users-service/internal/domain/ports"
	"github.com/fitcore/users-service/internal/domain/repositories"
	"github.com/fitcore/users-service/internal/domain/valueobjects"
)

// EmployeeService contém a lógica de negócio para funcionários.
// Implementa ports.ManageEmployeeUseCase e ports.FindEmployeeUseCase.
type EmployeeService struct {
	employeeRepo repositories.EmployeeRepository
	publisher    ports.EmployeeEventPublisher
	uow          ports.UnitOfWork
	logger       ports.Logger
}

// NewEmployeeService cria um novo EmployeeService
func NewEmployeeService(
	employeeRepo repositories.EmployeeRepository,
	publisher ports.EmployeeEventPublisher,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		publisher:    publisher,
		uow:          uow,
		logger:       logger,
	}
}

// RegisterEmployee contrata um novo funcionário.
// Mesma disciplina de unicidade de RegisterStudent: a pré-checagem é
// best-effort e a violação de índice único é a palavra final.
func (s *EmployeeService) RegisterEmployee(ctx context.Context, input ports.RegisterEmployeeInput) (*entities.Employee, error) {
	s.logger.Info("registering employee", "email", input.Email)

	role, err := entities.RoleFromString(input.RoleType)
	if err != nil {
		return nil, err
	}

	employee, err := entities.NewEmployee(
		input.Name, input.Email, input.Cpf, input.BirthDate,
		input.Phone, role, input.HireDate,
	)
	if err != nil {
		return nil, err
	}

	var saved *entities.Employee
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.employeeRepo.FindByEmail(txCtx, input.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.NewEmailAlreadyRegistered(input.Email)
		}

		existing, err = s.employeeRepo.FindByCpf(txCtx, input.Cpf)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.NewCpfAlreadyRegistered(input.Cpf)
		}

		saved, err = s.employeeRepo.Save(txCtx, employee)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publisher.EmployeeCreated(ctx, saved)
	return saved, nil
}

// FindByID busca um funcionário por ID, falhando com NotFound na ausência
func (s *EmployeeService) FindByID(ctx context.Context, id valueobjects.UserID) (*entities.Employee, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, errors.NewEmployeeNotFound(id.String())
	}
	return employee, nil
}

// FindByEmail busca um funcionário por e-mail; nil quando ausente
func (s *EmployeeService) FindByEmail(ctx context.Context, email string) (*entities.Employee, error) {
	return s.employeeRepo.FindByEmail(ctx, email)
}

// FindByCpf busca um funcionário por CPF; nil quando ausente
func (s *EmployeeService) FindByCpf(ctx context.Context, cpf string) (*entities.Employee, error) {
	return s.employeeRepo.FindByCpf(ctx, cpf)
}

// FindByRole lista funcionários de um cargo
func (s *EmployeeService) FindByRole(ctx context.Context, roleType string) ([]*entities.Employee, error) {
	role, err := entities.RoleFromString(roleType)
	if err != nil {
		return nil, err
	}
	return s.employeeRepo.FindByRole(ctx, role)
}

// FindAllActive lista apenas funcionários ativos
func (s *EmployeeService) FindAllActive(ctx context.Context) ([]*entities.Employee, error) {
	return s.employeeRepo.FindAllActive(ctx)
}

// FindAll lista todos os funcionários
func (s *EmployeeService) FindAll(ctx context.Context) ([]*entities.Employee, error) {
	return s.employeeRepo.FindAll(ctx)
}

// UpdateEmployee atualiza dados cadastrais, re-checando unicidade do
// e-mail apenas quando ele muda. Publica o evento de atualização.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id valueobjects.UserID, input ports.UpdateEmployeeInput) (*entities.Employee, error) {
	employee, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	role, err := entities.RoleFromString(input.RoleType)
	if err != nil {
		return nil, err
	}

	updated, err := employee.Update(input.Name, input.Email, input.Phone, role)
	if err != nil {
		return nil, err
	}
	if input.UpdateProfileURL {
		updated = updated.WithProfileURL(input.ProfileURL)
	}

	var saved *entities.Employee
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if input.Email != employee.Email {
			existing, err := s.employeeRepo.FindByEmail(txCtx, input.Email)
			if err != nil {
				return err
			}
			if existing != nil {
				return errors.NewEmailAlreadyRegistered(input.Email)
			}
		}

		var err error
		saved, err = s.employeeRepo.Save(txCtx, updated)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publisher.EmployeeUpdated(ctx, saved)
	return saved, nil
}

// ChangeRole altera apenas o cargo e publica o evento dedicado
func (s *EmployeeService) ChangeRole(ctx context.Context, id valueobjects.UserID, roleType string) (*entities.Employee, error) {
	employee, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	role, err := entities.RoleFromString(roleType)
	if err != nil {
		return nil, err
	}

	saved, err := s.employeeRepo.Save(ctx, employee.ChangeRole(role))
	if err != nil {
		return nil, err
	}

	s.publisher.EmployeeRoleChanged(ctx, saved)
	return saved, nil
}

// TerminateEmployee desliga o funcionário. Quando já inativo, nada é
// persistido nem publicado.
func (s *EmployeeService) TerminateEmployee(ctx context.Context, id valueobjects.UserID, terminationDate time.Time) (*entities.Employee, error) {
	employee, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	terminated, err := employee.Terminate(terminationDate)
	if err != nil {
		return nil, err
	}
	if terminated == employee {
		return employee, nil
	}

	saved, err := s.employeeRepo.Save(ctx, terminated)
	if err != nil {
		return nil, err
	}

	s.publisher.EmployeeTerminated(ctx, saved)
	return saved, nil
}

// ReactivateEmployee reativa o funcionário. Quando já ativo, nada é
// persistido nem publicado.
func (s *EmployeeService) ReactivateEmployee(ctx context.Context, id valueobjects.UserID) (*entities.Employee, error) {
	employee, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reactivated := employee.Reactivate()
	if reactivated == employee {
		return employee, nil
	}

	saved, err := s.employeeRepo.Save(ctx, reactivated)
	if err != nil {
		return nil, err
	}

	s.publisher.EmployeeStatusChanged(ctx, saved)
	return saved, nil
}

// DeleteEmployee remove o funcionário, publicando o evento apenas com o id
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id valueobjects.UserID) (bool, error) {
	if _, err := s.FindByID(ctx, id); err != nil {
		return false, err
	}

	deleted, err := s.employeeRepo.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted {
		s.publisher.EmployeeDeleted(ctx, id)
	}
	return deleted, nil
}
