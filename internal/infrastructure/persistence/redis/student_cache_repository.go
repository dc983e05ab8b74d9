package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitcore/users-service/internal/domain/entities"
	"github.com/fitcore/users-service/internal/domain/ports"
	"github.com/fitcore/users-service/internal/domain/repositories"
	"github.com/fitcore/users-service/internal/domain/valueobjects"
)

const studentKeyPrefix = "student"

func studentKey(id string) string {
	return fmt.Sprintf("%s:%s", studentKeyPrefix, id)
}

// StudentCacheRepository decora um StudentRepository com cache de leitura
// por ID. Escritas e remoções invalidam a entrada; falhas de cache nunca
// quebram a operação, apenas degradam para o repositório interno.
type StudentCacheRepository struct {
	inner  repositories.StudentRepository
	cache  *Cache
	logger ports.Logger
}

// NewStudentCacheRepository cria o decorator de cache
func NewStudentCacheRepository(inner repositories.StudentRepository, cache *Cache, logger ports.Logger) repositories.StudentRepository {
	return &StudentCacheRepository{inner: inner, cache: cache, logger: logger}
}

func (r *StudentCacheRepository) Save(ctx context.Context, student *entities.Student) (*entities.Student, error) {
	saved, err := r.inner.Save(ctx, student)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, saved.ID.String())
	return saved, nil
}

func (r *StudentCacheRepository) FindByID(ctx context.Context, id valueobjects.UserID) (*entities.Student, error) {
	var cached entities.Student
	err := r.cache.Get(ctx, studentKey(id.String()), &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		r.logger.Warn("student cache read failed", "id", id.String(), "error", err)
	}

	student, err := r.inner.FindByID(ctx, id)
	if err != nil || student == nil {
		return student, err
	}

	if err := r.cache.Set(ctx, studentKey(id.String()), student); err != nil {
		r.logger.Warn("student cache write failed", "id", id.String(), "error", err)
	}
	return student, nil
}

func (r *StudentCacheRepository) FindByEmail(ctx context.Context, email string) (*entities.Student, error) {
	return r.inner.FindByEmail(ctx, email)
}

func (r *StudentCacheRepository) FindByCpf(ctx context.Context, cpf string) (*entities.Student, error) {
	return r.inner.FindByCpf(ctx, cpf)
}

func (r *StudentCacheRepository) FindByPlan(ctx context.Context, plan entities.Plan) ([]*entities.Student, error) {
	return r.inner.FindByPlan(ctx, plan)
}

func (r *StudentCacheRepository) FindAllActive(ctx context.Context) ([]*entities.Student, error) {
	return r.inner.FindAllActive(ctx)
}

func (r *StudentCacheRepository) FindAll(ctx context.Context) ([]*entities.Student, error) {
	return r.inner.FindAll(ctx)
}

func (r *StudentCacheRepository) DeleteByID(ctx context.Context, id valueobjects.UserID) (bool, error) {
	deleted, err := r.inner.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		r.invalidate(ctx, id.String())
	}
	return deleted, nil
}

func (r *StudentCacheRepository) invalidate(ctx context.Context, id string) {
	if err := r.cache.Delete(ctx, studentKey(id)); err != nil {
		r.logger.Warn("student cache invalidation failed", "id", id, "error", err)
	}
}
