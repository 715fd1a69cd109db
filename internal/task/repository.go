package task

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepository interface {
	CreateTask(ctx context.Context, t Task) error
	GetTask(ctx context.Context, id uuid.UUID) (Task, error)
	GetByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Task, error)
	GetAllWithOwners(ctx context.Context) ([]TaskWithOwner, error)
	UpdateTask(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

type taskRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) CreateTask(ctx context.Context, t Task) error {
	return r.db.WithContext(ctx).Create(&t).Error
}

func (r *taskRepository) GetTask(ctx context.Context, id uuid.UUID) (Task, error) {
	var task Task
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error
	return task, err
}

func (r *taskRepository) GetByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Task, error) {
	var tasks []Task
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetAllWithOwners joins tasks with the owning employee's name and
// department, newest first. Admin listing and export only.
func (r *taskRepository) GetAllWithOwners(ctx context.Context) ([]TaskWithOwner, error) {
	var rows []TaskWithOwner
	err := r.db.WithContext(ctx).
		Table("tasks").
		Select("tasks.*, users.name AS owner_name, users.department AS owner_department").
		Joins("JOIN users ON users.id = tasks.employee_id").
		Order("tasks.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *taskRepository) UpdateTask(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	tx := r.db.WithContext(ctx).Model(&Task{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *taskRepository) DeleteTask(ctx context.Context, id uuid.UUID) error {
	tx := r.db.WithContext(ctx).Delete(&Task{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
