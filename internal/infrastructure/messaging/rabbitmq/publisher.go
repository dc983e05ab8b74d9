package rabbitmq

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/fitcore/users-service/internal/domain/ports"
)

// Exchanges e routing keys dos eventos de usuários
const (
	StudentExchange  = "fitcore.users.student"
	EmployeeExchange = "fitcore.users.employee"

	StudentCreatedKey       = "student.created"
	StudentPlanChangedKey   = "student.plan-changed"
	StudentStatusChangedKey = "student.status-changed"
	StudentDeletedKey       = "student.deleted"

	EmployeeCreatedKey       = "employee.created"
	EmployeeUpdatedKey       = "employee.updated"
	EmployeeRoleChangedKey   = "employee.role-changed"
	EmployeeStatusChangedKey = "employee.status-changed"
	EmployeeTerminatedKey    = "employee.terminated"
	EmployeeDeletedKey       = "employee.deleted"
)

const publishTimeout = 5 * time.Second

// Publisher mantém a conexão AMQP e publica eventos JSON em exchanges
// topic. Entrega é best-effort: falhas são registradas em log e a conexão
// é refeita na próxima publicação.
type Publisher struct {
	url    string
	logger ports.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewPublisher cria o publisher e tenta a conexão inicial. Uma falha de
// conexão não é fatal: a reconexão é tentada a cada publicação.
func NewPublisher(url string, logger ports.Logger) *Publisher {
	p := &Publisher{url: url, logger: logger}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.connect(); err != nil {
		logger.Warn("rabbitmq initial connection failed, will retry on publish", "error", err)
	}
	return p
}

// connect abre conexão e canal e declara a topologia. Caller segura o mutex.
func (p *Publisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return err
	}

	for _, exchange := range []string{StudentExchange, EmployeeExchange} {
		if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return err
		}
	}

	p.conn = conn
	p.ch = ch
	p.logger.Info("rabbitmq connected successfully")
	return nil
}

func (p *Publisher) channel() (*amqp.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil && !p.conn.IsClosed() {
		return p.ch, nil
	}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p.ch, nil
}

// publish serializa o payload e publica; falhas são apenas logadas
func (p *Publisher) publish(ctx context.Context, exchange, routingKey string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("failed to marshal event payload", "exchange", exchange, "key", routingKey, "error", err)
		return
	}

	ch, err := p.channel()
	if err != nil {
		p.logger.Error("failed to publish event", "exchange", exchange, "key", routingKey, "error", err)
		return
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = ch.PublishWithContext(pubCtx, exchange, routingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Timestamp:   time.Now(),
		Body:        body,
	})
	if err != nil {
		p.logger.Error("failed to publish event", "exchange", exchange, "key", routingKey, "error", err)
		p.dropChannel()
		return
	}

	p.logger.Info("event published", "exchange", exchange, "key", routingKey)
}

// dropChannel descarta a conexão para forçar reconexão na próxima publicação
func (p *Publisher) dropChannel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.conn = nil
	p.ch = nil
}

// Close encerra a conexão AMQP
func (p *Publisher) Close() {
	p.dropChannel()
}
