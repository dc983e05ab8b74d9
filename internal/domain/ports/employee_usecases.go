package ports

import (
	"context"
	"time"

	"github.com/fitcore/users-service/internal/domain/entities"
	"github.com/fitcore/users-service/internal/domain/valueobjects"
)

// RegisterEmployeeInput contém os dados para contratar um funcionário.
// HireDate zerada assume a data atual.
type RegisterEmployeeInput struct {
	Name      string
	Email     string
	Cpf       string
	BirthDate time.Time
	Phone     string
	RoleType  string
	HireDate  time.Time
}

// UpdateEmployeeInput contém os dados para atualizar um funcionário.
// ProfileURL só é aplicado quando UpdateProfileURL é true (nil limpa a foto).
type UpdateEmployeeInput struct {
	Name             string
	Email            string
	Phone            string
	RoleType         string
	ProfileURL       *string
	UpdateProfileURL bool
}

// ManageEmployeeUseCase expõe as operações de escrita sobre funcionários
type ManageEmployeeUseCase interface {
	RegisterEmployee(ctx context.Context, input RegisterEmployeeInput) (*entities.Employee, error)
	UpdateEmployee(ctx context.Context, id valueobjects.UserID, input UpdateEmployeeInput) (*entities.Employee, error)
	ChangeRole(ctx context.Context, id valueobjects.UserID, roleType string) (*entities.Employee, error)
	TerminateEmployee(ctx context.Context, id valueobjects.UserID, terminationDate time.Time) (*entities.Employee, error)
	ReactivateEmployee(ctx context.Context, id valueobjects.UserID) (*entities.Employee, error)
	DeleteEmployee(ctx context.Context, id valueobjects.UserID) (bool, error)
}

// FindEmployeeUseCase expõe as consultas sobre funcionários.
// FindByID falha com NotFound; FindByEmail/FindByCpf retornam nil na ausência.
type FindEmployeeUseCase interface {
	FindByID(ctx context.Context, id valueobjects.UserID) (*entities.Employee, error)
	FindByEmail(ctx context.Context, email string) (*entities.Employee, error)
	FindByCpf(ctx context.Context, cpf string) (*entities.Employee, error)
	FindByRole(ctx context.Context, roleType string) ([]*entities.Employee, error)
	FindAllActive(ctx context.Context) ([]*entities.Employee, error)
	FindAll(ctx context.Context) ([]*entities.Employee, error)
}
