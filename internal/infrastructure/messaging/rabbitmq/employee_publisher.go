package rabbitmq

import (
	"context"

	"github.com/fitcore/users-service/internal/domain/entities"
	"github.com/fitcore/users-service/internal/domain/ports"
	"github.com/fitcore/users-service/internal/domain/valueobjects"
)

// EmployeeEventProducer implementa ports.EmployeeEventPublisher sobre AMQP
type EmployeeEventProducer struct {
	publisher *Publisher
}

// NewEmployeeEventProducer cria o producer de eventos de funcionário
func NewEmployeeEventProducer(publisher *Publisher) ports.EmployeeEventPublisher {
	return &EmployeeEventProducer{publisher: publisher}
}

func (p *EmployeeEventProducer) EmployeeCreated(ctx context.Context, employee *entities.Employee) {
	p.publisher.publish(ctx, EmployeeExchange, EmployeeCreatedKey, newEmployeePayload(employee))
}

func (p *EmployeeEventProducer) EmployeeUpdated(ctx context.Context, employee *entities.Employee) {
	p.publisher.publish(ctx, EmployeeExchange, EmployeeUpdatedKey, newEmployeePayload(employee))
}

func (p *EmployeeEventProducer) EmployeeRoleChanged(ctx context.Context, employee *entities.Employee) {
	p.publisher.publish(ctx, EmployeeExchange, EmployeeRoleChangedKey, newEmployeePayload(employee))
}

func (p *EmployeeEventProducer) EmployeeStatusChanged(ctx context.Context, employee *entities.Employee) {
	p.publisher.publish(ctx, EmployeeExchange, EmployeeStatusChangedKey, newEmployeePayload(employee))
}

func (p *EmployeeEventProducer) EmployeeTerminated(ctx context.Context, employee *entities.Employee) {
	p.publisher.publish(ctx, EmployeeExchange, EmployeeTerminatedKey, newEmployeePayload(employee))
}

// EmployeeDeleted publica apenas o identificador do funcionário removido
func (p *EmployeeEventProducer) EmployeeDeleted(ctx context.Context, id valueobjects.UserID) {
	p.publisher.publish(ctx, EmployeeExchange, EmployeeDeletedKey, map[string]string{
		"employeeId": id.String(),
	})
}
