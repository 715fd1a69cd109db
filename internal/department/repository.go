package department

import (
	"context"
	"errors"

	"github.com/Ritik8097/EmployeeTask/internal/apperr"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, d Department) error
	List(ctx context.Context) ([]Department, error)
	GetByID(ctx context.Context, id uuid.UUID) (Department, error)
	Update(ctx context.Context, d Department) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, name string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, d Department) error {
	err := r.db.WithContext(ctx).Create(&d).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Duplicate("department name already exists")
	}
	return err
}

func (r *repository) List(ctx context.Context) ([]Department, error) {
	var departments []Department
	err := r.db.WithContext(ctx).Order("name asc").Find(&departments).Error
	if err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (Department, error) {
	var d Department
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if err != nil {
		return Department{}, err
	}
	return d, nil
}

func (r *repository) Update(ctx context.Context, d Department) error {
	updates := map[string]interface{}{
		"name":        d.Name,
		"description": d.Description,
	}
	tx := r.db.WithContext(ctx).Model(&Department{}).Where("id = ?", d.ID).Updates(updates)
	if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
		return apperr.Duplicate("department name already exists")
	}
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	tx := r.db.WithContext(ctx).Delete(&Department{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Exists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Department{}).Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Department{}).Count(&count).Error
	return count, err
}
