package messaging

import (
	"context"

	"github.com/fitcore/users-service/internal/domain/entities"
	"github.com/fitcore/users-service/internal/domain/ports"
	"github.com/fitcore/users-service/internal/domain/valueobjects"
)

// NoopStudentPublisher descarta eventos de alunos. Usado quando o broker
// não está configurado.
type NoopStudentPublisher struct{}

func (NoopStudentPublisher) StudentCreated(context.Context, *entities.Student)       {}
func (NoopStudentPublisher) StudentPlanChanged(context.Context, *entities.Student)   {}
func (NoopStudentPublisher) StudentStatusChanged(context.Context, *entities.Student) {}
func (NoopStudentPublisher) StudentDeleted(context.Context, valueobjects.UserID)     {}

// NoopEmployeePublisher descarta eventos de funcionários
type NoopEmployeePublisher struct{}

func (NoopEmployeePublisher) EmployeeCreated(context.Context, *entities.Employee)       {}
func (NoopEmployeePublisher) EmployeeUpdated(context.Context, *entities.Employee)       {}
func (NoopEmployeePublisher) EmployeeRoleChanged(context.Context, *entities.Employee)   {}
func (NoopEmployeePublisher) EmployeeStatusChanged(context.Context, *entities.Employee) {}
func (NoopEmployeePublisher) EmployeeTerminated(context.Context, *entities.Employee)    {}
func (NoopEmployeePublisher) EmployeeDeleted(context.Context, valueobjects.UserID)      {}

var (
	_ ports.StudentEventPublisher  = NoopStudentPublisher{}
	_ ports.EmployeeEventPublisher = NoopEmployeePublisher{}
)
