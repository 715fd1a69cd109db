package task

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Ritik8097/EmployeeTask/internal/apperr"
	"github.com/Ritik8097/EmployeeTask/internal/auth"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateInput struct {
	Title       string
	Description string
	Status      Status
	Priority    Priority
	DueDate     *time.Time
	// EmployeeID overrides the owner; honored only for admin actors.
	EmployeeID uuid.UUID
}

type UpdateInput struct {
	Title       *string
	Description *string
	Status      *Status
	Priority    *Priority
	DueDate     *time.Time
	// DueDateSet marks an explicit due date change; DueDate nil with
	// DueDateSet true clears the date.
	DueDateSet bool
}

type TaskService interface {
	Create(ctx context.Context, actor auth.Identity, in CreateInput) (Task, error)
	ListAll(ctx context.Context, actor auth.Identity, f Filter) ([]TaskWithOwner, error)
	ListByEmployee(ctx context.Context, actor auth.Identity, employeeID uuid.UUID) ([]Task, error)
	Update(ctx context.Context, actor auth.Identity, id uuid.UUID, in UpdateInput) (Task, error)
	Delete(ctx context.Context, actor auth.Identity, id uuid.UUID) error
}

type taskService struct {
	repo     TaskRepository
	producer EventProducer
	now      func() time.Time
}

func NewTaskService(repo TaskRepository, producer EventProducer) TaskService {
	return &taskService{
		repo:     repo,
		producer: producer,
		now:      time.Now,
	}
}

func (s *taskService) Create(ctx context.Context, actor auth.Identity, in CreateInput) (Task, error) {
	employeeID := in.EmployeeID
	if employeeID == uuid.Nil || !actor.IsAdmin() {
		employeeID = actor.UserID
	}
	if !auth.Can(actor, auth.ActionTaskCreate, auth.Resource{OwnerID: employeeID}) {
		return Task{}, apperr.Forbidden("not allowed to create tasks for another employee")
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Task{}, apperr.Validation("title is required")
	}
	if len(title) > MaxTitleLen {
		return Task{}, apperr.Validation("title must be at most 100 characters")
	}
	if len(in.Description) > MaxDescriptionLen {
		return Task{}, apperr.Validation("description must be at most 500 characters")
	}

	status := in.Status
	if status == "" {
		status = StatusToDo
	}
	if !ValidStatus(status) {
		return Task{}, apperr.Validation("invalid status")
	}

	priority := in.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if !ValidPriority(priority) {
		return Task{}, apperr.Validation("invalid priority")
	}

	t := Task{
		ID:          uuid.New(),
		Title:       title,
		Description: in.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     in.DueDate,
		EmployeeID:  employeeID,
		CreatedAt:   s.now(),
	}
	if err := s.repo.CreateTask(ctx, t); err != nil {
		return Task{}, apperr.Internal(err)
	}

	s.publish(TaskEvent{
		TaskID:     t.ID.String(),
		EmployeeID: t.EmployeeID.String(),
		Action:     EventCreated,
		Status:     string(t.Status),
		Timestamp:  s.now(),
	})

	return t, nil
}

func (s *taskService) ListAll(ctx context.Context, actor auth.Identity, f Filter) ([]TaskWithOwner, error) {
	if !auth.Can(actor, auth.ActionTaskListAll, auth.Resource{}) {
		return nil, apperr.Forbidden("only administrators may list all tasks")
	}
	tasks, err := s.repo.GetAllWithOwners(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return ApplyFilter(tasks, f, s.now()), nil
}

func (s *taskService) ListByEmployee(ctx context.Context, actor auth.Identity, employeeID uuid.UUID) ([]Task, error) {
	if !auth.Can(actor, auth.ActionTaskList, auth.Resource{OwnerID: employeeID}) {
		return nil, apperr.Forbidden("not allowed to list another employee's tasks")
	}
	tasks, err := s.repo.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return tasks, nil
}

func (s *taskService) Update(ctx context.Context, actor auth.Identity, id uuid.UUID, in UpdateInput) (Task, error) {
	existing, err := s.repo.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Task{}, apperr.NotFound("task not found")
		}
		return Task{}, apperr.Internal(err)
	}

	if !auth.Can(actor, auth.ActionTaskUpdate, auth.Resource{OwnerID: existing.EmployeeID}) {
		return Task{}, apperr.Forbidden("not allowed to modify this task")
	}

	updates := make(map[string]interface{})

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return Task{}, apperr.Validation("title is required")
		}
		if len(title) > MaxTitleLen {
			return Task{}, apperr.Validation("title must be at most 100 characters")
		}
		updates["title"] = title
	}

	if in.Description != nil {
		if len(*in.Description) > MaxDescriptionLen {
			return Task{}, apperr.Validation("description must be at most 500 characters")
		}
		updates["description"] = *in.Description
	}

	if in.Status != nil {
		if !ValidStatus(*in.Status) {
			return Task{}, apperr.Validation("invalid status")
		}
		updates["status"] = *in.Status
	}

	if in.Priority != nil {
		if !ValidPriority(*in.Priority) {
			return Task{}, apperr.Validation("invalid priority")
		}
		updates["priority"] = *in.Priority
	}

	if in.DueDateSet {
		updates["due_date"] = in.DueDate
	}

	// Last writer wins; no version check.
	if err := s.repo.UpdateTask(ctx, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Task{}, apperr.NotFound("task not found")
		}
		return Task{}, apperr.Internal(err)
	}

	updated, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return Task{}, apperr.Internal(err)
	}

	if in.Status != nil && *in.Status != existing.Status {
		s.publish(TaskEvent{
			TaskID:     updated.ID.String(),
			EmployeeID: updated.EmployeeID.String(),
			Action:     EventStatusChanged,
			Status:     string(updated.Status),
			Timestamp:  s.now(),
		})
	}

	return updated, nil
}

func (s *taskService) Delete(ctx context.Context, actor auth.Identity, id uuid.UUID) error {
	existing, err := s.repo.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("task not found")
		}
		return apperr.Internal(err)
	}

	if !auth.Can(actor, auth.ActionTaskDelete, auth.Resource{OwnerID: existing.EmployeeID}) {
		return apperr.Forbidden("not allowed to delete this task")
	}

	if err := s.repo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("task not found")
		}
		return apperr.Internal(err)
	}

	s.publish(TaskEvent{
		TaskID:     existing.ID.String(),
		EmployeeID: existing.EmployeeID.String(),
		Action:     EventDeleted,
		Status:     string(existing.Status),
		Timestamp:  s.now(),
	})

	return nil
}

// publish sends the event without blocking the response; failures are logged
// only.
func (s *taskService) publish(event TaskEvent) {
	if s.producer == nil {
		return
	}
	go func() {
		if err := s.producer.SendTaskEvent(context.Background(), event); err != nil {
			log.Printf("task event publish failed: %v", err)
		}
	}()
}
