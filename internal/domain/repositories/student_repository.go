package repositories

import (
	"context"

	"github.com/fitcore/users-service/internal/domain/entities"
	"github.com/fitcore/users-service/internal/domain/valueobjects"
)

// StudentRepository define a interface para persistência de alunos.
// Buscas individuais retornam (nil, nil) na ausência; Save traduz violação
// de índice único (e-mail/CPF) para o erro de conflito correspondente.
type StudentRepository interface {
	Save(ctx context.Context, student *entities.Student) (*entities.Student, error)
	FindByID(ctx context.Context, id valueobjects.UserID) (*entities.Student, error)
	FindByEmail(ctx context.Context, email string) (*entities.Student, error)
	FindByCpf(ctx context.Context, cpf string) (*entities.Student, error)
	FindByPlan(ctx context.Context, plan entities.Plan) ([]*entities.Student, error)
	FindAllActive(ctx context.Context) ([]*entities.Student, error)
	FindAll(ctx context.Context) ([]*entities.Student, error)
	DeleteByID(ctx context.Context, id valueobjects.UserID) (bool, error)
}
