package ports

import (
	"context"

	"github.com/fitcore/users-service/internal/domain/entities"
	"github.com/fitcore/users-service/internal/domain/valueobjects"
)

// StudentEventPublisher publica notificações de ciclo de vida de alunos.
// Entrega é best-effort: implementações registram falhas em log e nunca
// as propagam ao chamador.
type StudentEventPublisher interface {
	StudentCreated(ctx context.Context, student *entities.Student)
	StudentPlanChanged(ctx context.Context, student *entities.Student)
	StudentStatusChanged(ctx context.Context, student *entities.Student)
	StudentDeleted(ctx context.Context, id valueobjects.UserID)
}

// EmployeeEventPublisher publica notificações de ciclo de vida de funcionários
type EmployeeEventPublisher interface {
	EmployeeCreated(ctx context.Context, employee *entities.Employee)
	EmployeeUpdated(ctx context.Context, employee *entities.Employee)
	EmployeeRoleChanged(ctx context.Context, employee *entities.Employee)
	EmployeeStatusChanged(ctx context.Context, employee *entities.Employee)
	EmployeeTerminated(ctx context.Context, employee *entities.Employee)
	EmployeeDeleted(ctx context.Context, id valueobjects.UserID)
}
