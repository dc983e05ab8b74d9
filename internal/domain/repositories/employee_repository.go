package repositories

import (
	"context"

	"github.com/fitcore/users-service/internal/domain/entities"
	"github.com/fitcore/users-service/internal/domain/valueobjects"
)

// EmployeeRepository define a interface para persistência de funcionários.
// Mesmo contrato de ausência e de tradução de conflitos de StudentRepository.
type EmployeeRepository interface {
	Save(ctx context.Context, employee *entities.Employee) (*entities.Employee, error)
	FindByID(ctx context.Context, id valueobjects.UserID) (*entities.Employee, error)
	FindByEmail(ctx context.Context, email string) (*entities.Employee, error)
	FindByCpf(ctx context.Context, cpf string) (*entities.Employee, error)
	FindByRole(ctx context.Context, role entities.Role) ([]*entities.Employee, error)
	FindAllActive(ctx context.Context) ([]*entities.Employee, error)
	FindAll(ctx context.Context) ([]*entities.Employee, error)
	DeleteByID(ctx context.Context, id valueobjects.UserID) (bool, error)
}
