package http_test

import (
	"context"
	"io"
	"strings"
	"time"

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

// fakeStudentUseCases implementa os dois ports de alunos com funções plugáveis
type fakeStudentUseCases struct {
	registerFn     func(ctx context.Context, input ports.RegisterStudentInput) (*entities.Student, error)
	updateFn       func(ctx context.Context, id valueobjects.UserID, input ports.UpdateStudentInput) (*entities.Student, error)
	changePlanFn   func(ctx context.Context, id valueobjects.UserID, planType string) (*entities.Student, error)
	findByIDFn     func(ctx context.Context, id valueobjects.UserID) (*entities.Student, error)
	findAllFn      func(ctx context.Context) ([]*entities.Student, error)
	deleteFn       func(ctx context.Context, id valueobjects.UserID) (bool, error)
	physicalDataFn func(ctx context.Context, id valueobjects.UserID, weight *float64, height *int) (*entities.Student, error)
}

func (f *fakeStudentUseCases) RegisterStudent(ctx context.Context, input ports.RegisterStudentInput) (*entities.Student, error) {
	return f.registerFn(ctx, input)
}

func (f *fakeStudentUseCases) UpdateStudent(ctx context.Context, id valueobjects.UserID, input ports.UpdateStudentInput) (*entities.Student, error) {
	return f.updateFn(ctx, id, input)
}

func (f *fakeStudentUseCases) UpdatePhysicalData(ctx context.Context, id valueobjects.UserID, weight *float64, height *int) (*entities.Student, error) {
	return f.physicalDataFn(ctx, id, weight, height)
}

func (f *fakeStudentUseCases) ChangePlan(ctx context.Context, id valueobjects.UserID, planType string) (*entities.Student, error) {
	return f.changePlanFn(ctx, id, planType)
}

func (f *fakeStudentUseCases) ActivateStudent(ctx context.Context, id valueobjects.UserID) (*entities.Student, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeStudentUseCases) DeactivateStudent(ctx context.Context, id valueobjects.UserID) (*entities.Student, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeStudentUseCases) DeleteStudent(ctx context.Context, id valueobjects.UserID) (bool, error) {
	return f.deleteFn(ctx, id)
}

func (f *fakeStudentUseCases) FindByID(ctx context.Context, id valueobjects.UserID) (*entities.Student, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeStudentUseCases) FindByEmail(context.Context, string) (*entities.Student, error) {
	return nil, nil
}

func (f *fakeStudentUseCases) FindByCpf(context.Context, string) (*entities.Student, error) {
	return nil, nil
}

func (f *fakeStudentUseCases) FindByPlan(context.Context, string) ([]*entities.Student, error) {
	return nil, nil
}

func (f *fakeStudentUseCases) FindAllActive(ctx context.Context) ([]*entities.Student, error) {
	return f.findAllFn(ctx)
}

func (f *fakeStudentUseCases) FindAll(ctx context.Context) ([]*entities.Student, error) {
	return f.findAllFn(ctx)
}

// fakeStorage guarda uploads em memória
type fakeStorage struct {
	uploads map[string]string
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploads: make(map[string]string)}
}

func (s *fakeStorage) UploadProfile(_ context.Context, userID string, file io.Reader, _ int64, _, filename string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	key := "users/" + userID + "/" + filename
	s.uploads[key] = string(data)
	return key, nil
}

func (s *fakeStorage) ProfileURL(objectKey string) string {
	return "http://storage.local/profiles/" + objectKey
}

func (s *fakeStorage) ObjectKey(profileURL string) (string, bool) {
	return strings.CutPrefix(profileURL, "http://storage.local/profiles/")
}

func (s *fakeStorage) DeleteProfile(_ context.Context, objectKey string) error {
	s.deleted = append(s.deleted, objectKey)
	delete(s.uploads, objectKey)
	return nil
}

func newStudent() *entities.Student {
	weight := 62.5
	height := 165
	student, err := entities.NewStudent(
		"Maria Santos",
		"maria.santos@fitcore.com",
		"123.456.789-01",
		time.Date(1995, 3, 12, 0, 0, 0, 0, time.UTC),
		"(11) 98765-4321",
		entities.PlanPremium,
		&weight,
		&height,
	)
	if err != nil {
		panic(err)
	}
	return student
}

// fakeEmployeeUseCases implementa os dois ports de funcionários com funções plugáveis
type fakeEmployeeUseCases struct {
	registerFn   func(ctx context.Context, input ports.RegisterEmployeeInput) (*entities.Employee, error)
	updateFn     func(ctx context.Context, id valueobjects.UserID, input ports.UpdateEmployeeInput) (*entities.Employee, error)
	changeRoleFn func(ctx context.Context, id valueobjects.UserID, roleType string) (*entities.Employee, error)
	terminateFn  func(ctx context.Context, id valueobjects.UserID, terminationDate time.Time) (*entities.Employee, error)
	reactivateFn func(ctx context.Context, id valueobjects.UserID) (*entities.Employee, error)
	findByIDFn   func(ctx context.Context, id valueobjects.UserID) (*entities.Employee, error)
	findAllFn    func(ctx context.Context) ([]*entities.Employee, error)
	deleteFn     func(ctx context.Context, id valueobjects.UserID) (bool, error)
}

func (f *fakeEmployeeUseCases) RegisterEmployee(ctx context.Context, input ports.RegisterEmployeeInput) (*entities.Employee, error) {
	return f.registerFn(ctx, input)
}

func (f *fakeEmployeeUseCases) UpdateEmployee(ctx context.Context, id valueobjects.UserID, input ports.UpdateEmployeeInput) (*entities.Employee, error) {
	return f.updateFn(ctx, id, input)
}

func (f *fakeEmployeeUseCases) ChangeRole(ctx context.Context, id valueobjects.UserID, roleType string) (*entities.Employee, error) {
	return f.changeRoleFn(ctx, id, roleType)
}

func (f *fakeEmployeeUseCases) TerminateEmployee(ctx context.Context, id valueobjects.UserID, terminationDate time.Time) (*entities.Employee, error) {
	return f.terminateFn(ctx, id, terminationDate)
}

func (f *fakeEmployeeUseCases) ReactivateEmployee(ctx context.Context, id valueobjects.UserID) (*entities.Employee, error) {
	return f.reactivateFn(ctx, id)
}

func (f *fakeEmployeeUseCases) DeleteEmployee(ctx context.Context, id valueobjects.UserID) (bool, error) {
	return f.deleteFn(ctx, id)
}

func (f *fakeEmployeeUseCases) FindByID(ctx context.Context, id valueobjects.UserID) (*entities.Employee, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeEmployeeUseCases) FindByEmail(context.Context, string) (*entities.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeUseCases) FindByCpf(context.Context, string) (*entities.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeUseCases) FindByRole(context.Context, string) ([]*entities.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeUseCases) FindAllActive(ctx context.Context) ([]*entities.Employee, error) {
	return f.findAllFn(ctx)
}

func (f *fakeEmployeeUseCases) FindAll(ctx context.Context) ([]*entities.Employee, error) {
	return f.findAllFn(ctx)
}

func newEmployee() *entities.Employee {
	employee, err := entities.NewEmployee(
		"Ricardo Gomes",
		"ricardo.gomes@fitcore.com",
		"987.654.321-00",
		time.Date(1988, 7, 22, 0, 0, 0, 0, time.UTC),
		"(11) 91234-5678",
		entities.RoleInstructor,
		time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		panic(err)
	}
	return employee
}
