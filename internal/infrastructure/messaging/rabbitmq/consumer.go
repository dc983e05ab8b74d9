package rabbitmq

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/fitcore/users-service/internal/domain/entities"
	"github.com/fitcore/users-service/internal/domain/ports"
)

// Topologia da fila de cadastro de usuários vinda do sistema de matrículas
const (
	RegistrationExchange = "fitcore.users.registration"
	RegistrationQueue    = "fitcore.users.registration-queue"
	UserRegisteredKey    = "user.registered"
)

const consumeRetryDelay = 5 * time.Second

// UserRegisteredEvent é o evento de cadastro emitido pelo sistema externo.
// Cpf, birthDate e phone podem vir ausentes.
type UserRegisteredEvent struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	Cpf       *string `json:"cpf"`
	BirthDate *string `json:"birthDate"`
	Phone     *string `json:"phone"`
}

// Consumer consome eventos de cadastro e registra alunos ou funcionários
// conforme o papel recebido. Falhas de processamento são registradas em log
// e a mensagem é confirmada mesmo assim, como entrega best-effort.
type Consumer struct {
	url       string
	students  ports.ManageStudentUseCase
	employees ports.ManageEmployeeUseCase
	logger    ports.Logger
}

// NewConsumer cria o consumer da fila de cadastro
func NewConsumer(
	url string,
	students ports.ManageStudentUseCase,
	employees ports.ManageEmployeeUseCase,
	logger ports.Logger,
) *Consumer {
	return &Consumer{
		url:       url,
		students:  students,
		employees: employees,
		logger:    logger,
	}
}

// Start inicia o consumo em background até o contexto ser cancelado.
// Quedas de conexão são retentadas com intervalo fixo.
func (c *Consumer) Start(ctx context.Context) {
	go func() {
		for {
			if err := c.consume(ctx); err != nil {
				c.logger.Warn("registration consumer disconnected, retrying", "error", err)
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(consumeRetryDelay):
			}
		}
	}()
}

// consume abre conexão, declara a topologia e processa entregas até a
// conexão cair ou o contexto ser cancelado
func (c *Consumer) consume(ctx context.Context) error {
	conn, err := amqp.Dial(c.url)
	if err != nil {
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(RegistrationExchange, "topic", true, false, false, false, nil); err != nil {
		return err
	}
	if _, err := ch.QueueDeclare(RegistrationQueue, true, false, false, false, nil); err != nil {
		return err
	}
	if err := ch.QueueBind(RegistrationQueue, UserRegisteredKey, RegistrationExchange, false, nil); err != nil {
		return err
	}

	deliveries, err := ch.Consume(RegistrationQueue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	c.logger.Info("registration consumer started", "queue", RegistrationQueue)

	for {
		select {
		case <-ctx.Done():
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				return amqp.ErrClosed
			}
			c.handleDelivery(ctx, delivery)
		}
	}
}

func (c *Consumer) handleDelivery(ctx context.Context, delivery amqp.Delivery) {
	var event UserRegisteredEvent
	if err := json.Unmarshal(delivery.Body, &event); err != nil {
		c.logger.Error("failed to decode registration event", "error", err)
		_ = delivery.Nack(false, false)
		return
	}

	c.process(ctx, event)
	_ = delivery.Ack(false)
}

// process registra o usuário conforme o papel do evento. Papéis externos de
// funcionário são mapeados para os cargos internos; papéis desconhecidos são
// descartados com aviso.
func (c *Consumer) process(ctx context.Context, event UserRegisteredEvent) {
	switch strings.ToUpper(event.Role) {
	case "STUDENT":
		c.logger.Info("processing student registration", "email", event.Email)
		_, err := c.students.RegisterStudent(ctx, ports.RegisterStudentInput{
			Name:      event.Name,
			Email:     event.Email,
			Cpf:       formatCpf(event.Cpf),
			BirthDate: parseBirthDate(event.BirthDate, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)),
			Phone:     formatPhone(event.Phone),
			PlanType:  entities.PlanBasic.String(),
		})
		if err != nil {
			c.logger.Error("failed to register student from event", "email", event.Email, "error", err)
		}
	case "ADMIN", "SECRETARY", "TEACHER", "MANAGER":
		role := mapExternalRole(event.Role)
		c.logger.Info("processing employee registration", "email", event.Email, "role", role.String())
		_, err := c.employees.RegisterEmployee(ctx, ports.RegisterEmployeeInput{
			Name:      event.Name,
			Email:     event.Email,
			Cpf:       formatCpf(event.Cpf),
			BirthDate: parseBirthDate(event.BirthDate, time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)),
			Phone:     formatPhone(event.Phone),
			RoleType:  role.String(),
			HireDate:  time.Now(),
		})
		if err != nil {
			c.logger.Error("failed to register employee from event", "email", event.Email, "error", err)
		}
	default:
		c.logger.Warn("unknown role in registration event", "role", event.Role, "email", event.Email)
	}
}

var cpfDigitsPattern = regexp.MustCompile(`^(\d{3})(\d{3})(\d{3})(\d{2})$`)

// formatCpf normaliza um CPF só com dígitos para o formato pontuado.
// CPF ausente vira o placeholder zerado.
func formatCpf(cpf *string) string {
	if cpf == nil {
		return "000.000.000-00"
	}
	return cpfDigitsPattern.ReplaceAllString(*cpf, "$1.$2.$3-$4")
}

// formatPhone aplica o placeholder quando o telefone está ausente
func formatPhone(phone *string) string {
	if phone == nil {
		return "(00) 00000-0000"
	}
	return *phone
}

func parseBirthDate(value *string, fallback time.Time) time.Time {
	if value == nil {
		return fallback
	}
	birthDate, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return fallback
	}
	return birthDate
}

// mapExternalRole traduz papéis do sistema de matrículas para os cargos
// internos. Papéis de funcionário não mapeados assumem recepcionista.
func mapExternalRole(role string) entities.Role {
	switch strings.ToUpper(role) {
	case "ADMIN":
		return entities.RoleAdmin
	case "MANAGER":
		return entities.RoleManager
	case "TEACHER":
		return entities.RoleInstructor
	case "SECRETARY":
		return entities.RoleReceptionist
	default:
		return entities.RoleReceptionist
	}
}
