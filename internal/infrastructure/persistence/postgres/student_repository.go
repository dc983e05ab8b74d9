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

// StudentRepository implementa repositories.StudentRepository sobre GORM
type StudentRepository struct {
	db *gorm.DB
}

// NewStudentRepository cria um novo StudentRepository
func NewStudentRepository(db *gorm.DB) repositories.StudentRepository {
	return &StudentRepository{db: db}
}

// Save insere ou atualiza o aluno (upsert pela chave primária).
// Violações de unicidade de e-mail/CPF viram erros de conflito do domínio.
func (r *StudentRepository) Save(ctx context.Context, student *entities.Student) (*entities.Student, error) {
	model := studentToModel(student)

	db := dbFromContext(ctx, r.db)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(model).Error
	if err != nil {
		return nil, translateUniqueViolation(err, student.Email, student.Cpf)
	}

	return studentToEntity(model)
}

func (r *StudentRepository) FindByID(ctx context.Context, id valueobjects.UserID) (*entities.Student, error) {
	return r.findOne(ctx, "id = ?", id.String())
}

func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (*entities.Student, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *StudentRepository) FindByCpf(ctx context.Context, cpf string) (*entities.Student, error) {
	return r.findOne(ctx, "cpf = ?", cpf)
}

func (r *StudentRepository) FindByPlan(ctx context.Context, plan entities.Plan) ([]*entities.Student, error) {
	return r.findMany(ctx, "plan = ?", plan.String())
}

func (r *StudentRepository) FindAllActive(ctx context.Context) ([]*entities.Student, error) {
	return r.findMany(ctx, "active = ?", true)
}

func (r *StudentRepository) FindAll(ctx context.Context) ([]*entities.Student, error) {
	return r.findMany(ctx, "")
}

// DeleteByID remove o aluno; retorna false quando nada foi removido
func (r *StudentRepository) DeleteByID(ctx context.Context, id valueobjects.UserID) (bool, error) {
	db := dbFromContext(ctx, r.db)
	result := db.Where("id = ?", id.String()).Delete(&StudentModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *StudentRepository) findOne(ctx context.Context, query string, args ...any) (*entities.Student, error) {
	var model StudentModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return studentToEntity(&model)
}

func (r *StudentRepository) findMany(ctx context.Context, query string, args ...any) ([]*entities.Student, error) {
	var models []*StudentModel

	db := dbFromContext(ctx, r.db).Model(&StudentModel{}).Order("registration_date")
	if query != "" {
		db = db.Where(query, args...)
	}
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	students := make([]*entities.Student, 0, len(models))
	for _, model := range models {
		student, err := studentToEntity(model)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, nil
}

// Conversores
func studentToModel(student *entities.Student) *StudentModel {
	return &StudentModel{
		ID:               student.ID.String(),
		Name:             student.Name,
		Email:            student.Email,
		Cpf:              student.Cpf,
		BirthDate:        student.BirthDate,
		Phone:            student.Phone,
		Plan:             student.Plan.String(),
		Weight:           student.Weight,
		Height:           student.Height,
		Active:           student.Active,
		RegistrationDate: student.RegistrationDate,
		LastUpdateDate:   student.LastUpdateDate,
		ProfileURL:       student.ProfileURL,
	}
}

func studentToEntity(model *StudentModel) (*entities.Student, error) {
	id, err := valueobjects.ParseUserID(model.ID)
	if err != nil {
		return nil, err
	}

	return &entities.Student{
		ID:               id,
		Name:             model.Name,
		Email:            model.Email,
		Cpf:              model.Cpf,
		BirthDate:        model.BirthDate,
		Phone:            model.Phone,
		Plan:             entities.Plan(model.Plan),
		Weight:           model.Weight,
		Height:           model.Height,
		Active:           model.Active,
		RegistrationDate: model.RegistrationDate,
		LastUpdateDate:   model.LastUpdateDate,
		ProfileURL:       model.ProfileURL,
	}, nil
}
