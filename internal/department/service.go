package department

import (
	"context"
	"errors"
	"time"

	"github.com/Ritik8097/EmployeeTask/internal/apperr"
	"github.com/Ritik8097/EmployeeTask/internal/auth"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	List(ctx context.Context, actor auth.Identity) ([]Department, error)
	Create(ctx context.Context, actor auth.Identity, name, description string) (Department, error)
	Update(ctx context.Context, actor auth.Identity, id uuid.UUID, name, description string) (Department, error)
	Delete(ctx context.Context, actor auth.Identity, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, actor auth.Identity) ([]Department, error) {
	if !auth.Can(actor, auth.ActionDepartmentRead, auth.Resource{}) {
		return nil, apperr.Forbidden("not allowed to list departments")
	}
	departments, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return departments, nil
}

func (s *service) Create(ctx context.Context, actor auth.Identity, name, description string) (Department, error) {
	if !auth.Can(actor, auth.ActionDepartmentManage, auth.Resource{}) {
		return Department{}, apperr.Forbidden("only administrators may manage departments")
	}

	name = auth.SanitizeString(name)
	if name == "" {
		return Department{}, apperr.Validation("department name is required")
	}

	d := Department{
		ID:          uuid.New(),
		Name:        name,
		Description: auth.SanitizeString(description),
		Created_at:  time.Now(),
	}
	if err := s.repo.Create(ctx, d); err != nil {
		if apperr.KindOf(err) == apperr.KindDuplicate {
			return Department{}, err
		}
		return Department{}, apperr.Internal(err)
	}
	return d, nil
}

func (s *service) Update(ctx context.Context, actor auth.Identity, id uuid.UUID, name, description string) (Department, error) {
	if !auth.Can(actor, auth.ActionDepartmentManage, auth.Resource{}) {
		return Department{}, apperr.Forbidden("only administrators may manage departments")
	}

	name = auth.SanitizeString(name)
	if name == "" {
		return Department{}, apperr.Validation("department name is required")
	}

	d := Department{ID: id, Name: name, Description: auth.SanitizeString(description)}
	if err := s.repo.Update(ctx, d); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Department{}, apperr.NotFound("department not found")
		}
		if apperr.KindOf(err) == apperr.KindDuplicate {
			return Department{}, err
		}
		return Department{}, apperr.Internal(err)
	}
	return s.get(ctx, id)
}

func (s *service) Delete(ctx context.Context, actor auth.Identity, id uuid.UUID) error {
	if !auth.Can(actor, auth.ActionDepartmentManage, auth.Resource{}) {
		return apperr.Forbidden("only administrators may manage departments")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("department not found")
		}
		return apperr.Internal(err)
	}
	return nil
}

func (s *service) get(ctx context.Context, id uuid.UUID) (Department, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Department{}, apperr.NotFound("department not found")
		}
		return Department{}, apperr.Internal(err)
	}
	return d, nil
}

// Seed inserts a starter department set on an empty table so registration
// has something to validate against.
func Seed(ctx context.Context, repo Repository, names []string) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, name := range names {
		d := Department{
			ID:         uuid.New(),
			Name:       name,
			Created_at: time.Now(),
		}
		if err := repo.Create(ctx, d); err != nil {
			return err
		}
	}
	return nil
}
