package rabbitmq

import (
	"context"

	"github.com/fitcore/users-service/internal/domain/entities"
	"github.com/fitcore/users-service/internal/domain/ports"
	"github.com/fitcore/users-service/internal/domain/valueobjects"
)

// StudentEventProducer implementa ports.StudentEventPublisher sobre AMQP
type StudentEventProducer struct {
	publisher *Publisher
}

// NewStudentEventProducer cria o producer de eventos de aluno
func NewStudentEventProducer(publisher *Publisher) ports.StudentEventPublisher {
	return &StudentEventProducer{publisher: publisher}
}

func (p *StudentEventProducer) StudentCreated(ctx context.Context, student *entities.Student) {
	p.publisher.publish(ctx, StudentExchange, StudentCreatedKey, newStudentPayload(student))
}

func (p *StudentEventProducer) StudentPlanChanged(ctx context.Context, student *entities.Student) {
	p.publisher.publish(ctx, StudentExchange, StudentPlanChangedKey, newStudentPayload(student))
}

func (p *StudentEventProducer) StudentStatusChanged(ctx context.Context, student *entities.Student) {
	p.publisher.publish(ctx, StudentExchange, StudentStatusChangedKey, newStudentPayload(student))
}

// StudentDeleted publica apenas o identificador do aluno removido
func (p *StudentEventProducer) StudentDeleted(ctx context.Context, id valueobjects.UserID) {
	p.publisher.publish(ctx, StudentExchange, StudentDeletedKey, map[string]string{
		"studentId": id.String(),
	})
}
