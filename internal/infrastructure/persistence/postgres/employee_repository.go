package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fitcore/users-service/internal/domain/entities"
	"github.com/fitcore/users-service/internal/domain/repositories"
	"github.com/fitcore/users-service/internal/domain/valueobjects"
)

// EmployeeRepository implementa repositories.EmployeeRepository sobre GORM
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository cria um novo EmployeeRepository
func NewEmployeeRepository(db *gorm.DB) repositories.EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Save insere ou atualiza o funcionário (upsert pela chave primária).
// Violações de unicidade de e-mail/CPF viram erros de conflito do domínio.
func (r *EmployeeRepository) Save(ctx context.Context, employee *entities.Employee) (*entities.Employee, error) {
	model := employeeToModel(employee)

	db := dbFromContext(ctx, r.db)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(model).Error
	if err != nil {
		return nil, translateUniqueViolation(err, employee.Email, employee.Cpf)
	}

	return employeeToEntity(model)
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id valueobjects.UserID) (*entities.Employee, error) {
	return r.findOne(ctx, "id = ?", id.String())
}

func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*entities.Employee, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *EmployeeRepository) FindByCpf(ctx context.Context, cpf string) (*entities.Employee, error) {
	return r.findOne(ctx, "cpf = ?", cpf)
}

func (r *EmployeeRepository) FindByRole(ctx context.Context, role entities.Role) ([]*entities.Employee, error) {
	return r.findMany(ctx, "role = ?", role.String())
}

func (r *EmployeeRepository) FindAllActive(ctx context.Context) ([]*entities.Employee, error) {
	return r.findMany(ctx, "active = ?", true)
}

func (r *EmployeeRepository) FindAll(ctx context.Context) ([]*entities.Employee, error) {
	return r.findMany(ctx, "")
}

// DeleteByID remove o funcionário; retorna false quando nada foi removido
func (r *EmployeeRepository) DeleteByID(ctx context.Context, id valueobjects.UserID) (bool, error) {
	db := dbFromContext(ctx, r.db)
	result := db.Where("id = ?", id.String()).Delete(&EmployeeModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *EmployeeRepository) findOne(ctx context.Context, query string, args ...any) (*entities.Employee, error) {
	var model EmployeeModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return employeeToEntity(&model)
}

func (r *EmployeeRepository) findMany(ctx context.Context, query string, args ...any) ([]*entities.Employee, error) {
	var models []*EmployeeModel

	db := dbFromContext(ctx, r.db).Model(&EmployeeModel{}).Order("registration_date")
	if query != "" {
		db = db.Where(query, args...)
	}
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	employees := make([]*entities.Employee, 0, len(models))
	for _, model := range models {
		employee, err := employeeToEntity(model)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, nil
}

// Conversores
func employeeToModel(employee *entities.Employee) *EmployeeModel {
	return &EmployeeModel{
		ID:               employee.ID.String(),
		Name:             employee.Name,
		Email:            employee.Email,
		Cpf:              employee.Cpf,
		BirthDate:        employee.BirthDate,
		Phone:            employee.Phone,
		Role:             employee.Role.String(),
		Active:           employee.Active,
		HireDate:         employee.HireDate,
		TerminationDate:  employee.TerminationDate,
		RegistrationDate: employee.RegistrationDate,
		LastUpdateDate:   employee.LastUpdateDate,
		ProfileURL:       employee.ProfileURL,
	}
}

func employeeToEntity(model *EmployeeModel) (*entities.Employee, error) {
	id, err := valueobjects.ParseUserID(model.ID)
	if err != nil {
		return nil, err
	}

	return &entities.Employee{
		ID:               id,
		Name:             model.Name,
		Email:            model.Email,
		Cpf:              model.Cpf,
		BirthDate:        model.BirthDate,
		Phone:            model.Phone,
		Role:             entities.Role(model.Role),
		Active:           model.Active,
		HireDate:         model.HireDate,
		TerminationDate:  model.TerminationDate,
		RegistrationDate: model.RegistrationDate,
		LastUpdateDate:   model.LastUpdateDate,
		ProfileURL:       model.ProfileURL,
	}, nil
}
