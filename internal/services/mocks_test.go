package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fitcore/users-service/internal/domain/entities"
	"github.com/fitcore/users-service/internal/domain/ports"
	"github.com/fitcore/users-service/internal/domain/valueobjects"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...any)        {}
func (nopLogger) Error(string, ...any)       {}
func (nopLogger) Debug(string, ...any)       {}
func (nopLogger) Warn(string, ...any)        {}
func (l nopLogger) With(...any) ports.Logger { return l }

// fakeUnitOfWork executa a função transacional diretamente, sem banco
type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (fakeUnitOfWork) Commit(context.Context) error                       { return nil }
func (fakeUnitOfWork) Rollback(context.Context) error                     { return nil }
func (fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type mockStudentRepository struct {
	mock.Mock
}

func (m *mockStudentRepository) Save(ctx context.Context, student *entities.Student) (*entities.Student, error) {
	args := m.Called(ctx, student)
	switch v := args.Get(0).(type) {
	case func(context.Context, *entities.Student) *entities.Student:
		return v(ctx, student), args.Error(1)
	case *entities.Student:
		return v, args.Error(1)
	default:
		return nil, args.Error(1)
	}
}

func (m *mockStudentRepository) FindByID(ctx context.Context, id valueobjects.UserID) (*entities.Student, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*entities.Student), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStudentRepository) FindByEmail(ctx context.Context, email string) (*entities.Student, error) {
	args := m.Called(ctx, email)
	if s := args.Get(0); s != nil {
		return s.(*entities.Student), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStudentRepository) FindByCpf(ctx context.Context, cpf string) (*entities.Student, error) {
	args := m.Called(ctx, cpf)
	if s := args.Get(0); s != nil {
		return s.(*entities.Student), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStudentRepository) FindByPlan(ctx context.Context, plan entities.Plan) ([]*entities.Student, error) {
	args := m.Called(ctx, plan)
	if s := args.Get(0); s != nil {
		return s.([]*entities.Student), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStudentRepository) FindAllActive(ctx context.Context) ([]*entities.Student, error) {
	args := m.Called(ctx)
	if s := args.Get(0); s != nil {
		return s.([]*entities.Student), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStudentRepository) FindAll(ctx context.Context) ([]*entities.Student, error) {
	args := m.Called(ctx)
	if s := args.Get(0); s != nil {
		return s.([]*entities.Student), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStudentRepository) DeleteByID(ctx context.Context, id valueobjects.UserID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockEmployeeRepository struct {
	mock.Mock
}

func (m *mockEmployeeRepository) Save(ctx context.Context, employee *entities.Employee) (*entities.Employee, error) {
	args := m.Called(ctx, employee)
	switch v := args.Get(0).(type) {
	case func(context.Context, *entities.Employee) *entities.Employee:
		return v(ctx, employee), args.Error(1)
	case *entities.Employee:
		return v, args.Error(1)
	default:
		return nil, args.Error(1)
	}
}

func (m *mockEmployeeRepository) FindByID(ctx context.Context, id valueobjects.UserID) (*entities.Employee, error) {
	args := m.Called(ctx, id)
	if e := args.Get(0); e != nil {
		return e.(*entities.Employee), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEmployeeRepository) FindByEmail(ctx context.Context, email string) (*entities.Employee, error) {
	args := m.Called(ctx, email)
	if e := args.Get(0); e != nil {
		return e.(*entities.Employee), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEmployeeRepository) FindByCpf(ctx context.Context, cpf string) (*entities.Employee, error) {
	args := m.Called(ctx, cpf)
	if e := args.Get(0); e != nil {
		return e.(*entities.Employee), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEmployeeRepository) FindByRole(ctx context.Context, role entities.Role) ([]*entities.Employee, error) {
	args := m.Called(ctx, role)
	if e := args.Get(0); e != nil {
		return e.([]*entities.Employee), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEmployeeRepository) FindAllActive(ctx context.Context) ([]*entities.Employee, error) {
	args := m.Called(ctx)
	if e := args.Get(0); e != nil {
		return e.([]*entities.Employee), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEmployeeRepository) FindAll(ctx context.Context) ([]*entities.Employee, error) {
	args := m.Called(ctx)
	if e := args.Get(0); e != nil {
		return e.([]*entities.Employee), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEmployeeRepository) DeleteByID(ctx context.Context, id valueobjects.UserID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockStudentPublisher struct {
	mock.Mock
}

func (m *mockStudentPublisher) StudentCreated(ctx context.Context, student *entities.Student) {
	m.Called(ctx, student)
}

func (m *mockStudentPublisher) StudentPlanChanged(ctx context.Context, student *entities.Student) {
	m.Called(ctx, student)
}

func (m *mockStudentPublisher) StudentStatusChanged(ctx context.Context, student *entities.Student) {
	m.Called(ctx, student)
}

func (m *mockStudentPublisher) StudentDeleted(ctx context.Context, id valueobjects.UserID) {
	m.Called(ctx, id)
}

type mockEmployeePublisher struct {
	mock.Mock
}

func (m *mockEmployeePublisher) EmployeeCreated(ctx context.Context, employee *entities.Employee) {
	m.Called(ctx, employee)
}

func (m *mockEmployeePublisher) EmployeeUpdated(ctx context.Context, employee *entities.Employee) {
	m.Called(ctx, employee)
}

func (m *mockEmployeePublisher) EmployeeRoleChanged(ctx context.Context, employee *entities.Employee) {
	m.Called(ctx, employee)
}

func (m *mockEmployeePublisher) EmployeeStatusChanged(ctx context.Context, employee *entities.Employee) {
	m.Called(ctx, employee)
}

func (m *mockEmployeePublisher) EmployeeTerminated(ctx context.Context, employee *entities.Employee) {
	m.Called(ctx, employee)
}

func (m *mockEmployeePublisher) EmployeeDeleted(ctx context.Context, id valueobjects.UserID) {
	m.Called(ctx, id)
}
