package ports

import (
	"context"
	"time"

	"github.com/fitcore/users-service/internal/domain/entities"
	"github.com/fitcore/users-service/internal/domain/valueobjects"
)

// RegisterStudentInput contém os dados para matricular um aluno
type RegisterStudentInput struct {
	Name      string
	Email     string
	Cpf       string
	BirthDate time.Time
	Phone     string
	PlanType  string
	Weight    *float64
	Height    *int
}

// UpdateStudentInput contém os dados para atualizar um aluno.
// ProfileURL só é aplicado quando UpdateProfileURL é true (nil limpa a foto).
type UpdateStudentInput struct {
	Name             string
	Email            string
	Phone            string
	PlanType         string
	Weight           *float64
	Height           *int
	ProfileURL       *string
	UpdateProfileURL bool
}

// ManageStudentUseCase expõe as operações de escrita sobre alunos
type ManageStudentUseCase interface {
	RegisterStudent(ctx context.Context, input RegisterStudentInput) (*entities.Student, error)
	UpdateStudent(ctx context.Context, id valueobjects.UserID, input UpdateStudentInput) (*entities.Student, error)
	UpdatePhysicalData(ctx context.Context, id valueobjects.UserID, weight *float64, height *int) (*entities.Student, error)
	ChangePlan(ctx context.Context, id valueobjects.UserID, planType string) (*entities.Student, error)
	ActivateStudent(ctx context.Context, id valueobjects.UserID) (*entities.Student, error)
	DeactivateStudent(ctx context.Context, id valueobjects.UserID) (*entities.Student, error)
	DeleteStudent(ctx context.Context, id valueobjects.UserID) (bool, error)
}

// FindStudentUseCase expõe as consultas sobre alunos.
// FindByID falha com NotFound; FindByEmail/FindByCpf retornam nil na ausência.
type FindStudentUseCase interface {
	FindByID(ctx context.Context, id valueobjects.UserID) (*entities.Student, error)
	FindByEmail(ctx context.Context, email string) (*entities.Student, error)
	FindByCpf(ctx context.Context, cpf string) (*entities.Student, error)
	FindByPlan(ctx context.Context, planType string) ([]*entities.Student, error)
	FindAllActive(ctx context.Context) ([]*entities.Student, error)
	FindAll(ctx context.Context) ([]*entities.Student, error)
}
