package routers

import (
	"context"
	"net/http"
	"time"

	"github.com/Ritik8097/EmployeeTask/internal/auth"
	"github.com/Ritik8097/EmployeeTask/internal/dto"
	"github.com/Ritik8097/EmployeeTask/internal/task"
	"github.com/google/uuid"
)

type TaskRoutes struct {
	service  task.TaskService
	verifier *auth.Verifier
}

func NewTaskRoutes(service task.TaskService, verifier *auth.Verifier) *TaskRoutes {
	return &TaskRoutes{
		service:  service,
		verifier: verifier,
	}
}

func (t *TaskRoutes) RegisterHandlers(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /tasks", t.handleListAll)
	mux.HandleFunc("POST /tasks", t.handleCreate)
	mux.HandleFunc("GET /tasks/employee/{id}", t.handleListByEmployee)
	mux.HandleFunc("PUT /tasks/{id}", t.handleUpdate)
	mux.HandleFunc("DELETE /tasks/{id}", t.handleDelete)
}

func (t *TaskRoutes) handleCreate(w http.ResponseWriter, r *http.Request) {
	identity, err := t.verifier.VerifyRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req dto.CreateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		respondValidation(w, err.Error())
		return
	}

	in := task.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      task.Status(req.Status),
		Priority:    task.Priority(req.Priority),
	}

	if req.DueDate != "" {
		due, err := parseDate(req.DueDate)
		if err != nil {
			respondValidation(w, "invalid dueDate")
			return
		}
		in.DueDate = &due
	}

	if req.EmployeeID != "" {
		employeeID, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			respondValidation(w, "invalid employeeId")
			return
		}
		in.EmployeeID = employeeID
	}

	created, err := t.service.Create(r.Context(), identity, in)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, taskResponse(created))
}

func (t *TaskRoutes) handleListAll(w http.ResponseWriter, r *http.Request) {
	identity, err := t.verifier.VerifyRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		respondError(w, err)
		return
	}

	tasks, err := t.service.ListAll(r.Context(), identity, filter)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]dto.TaskResponse, 0, len(tasks))
	for _, row := range tasks {
		resp = append(resp, taskWithOwnerResponse(row))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (t *TaskRoutes) handleListByEmployee(w http.ResponseWriter, r *http.Request) {
	identity, err := t.verifier.VerifyRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}

	employeeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondValidation(w, "invalid employee id")
		return
	}

	tasks, err := t.service.ListByEmployee(r.Context(), identity, employeeID)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]dto.TaskResponse, 0, len(tasks))
	for _, item := range tasks {
		resp = append(resp, taskResponse(item))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (t *TaskRoutes) handleUpdate(w http.ResponseWriter, r *http.Request) {
	identity, err := t.verifier.VerifyRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondValidation(w, "invalid task id")
		return
	}

	var req dto.UpdateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		respondValidation(w, err.Error())
		return
	}

	in := task.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := task.Status(*req.Status)
		in.Status = &status
	}
	if req.Priority != nil {
		priority := task.Priority(*req.Priority)
		in.Priority = &priority
	}
	if req.DueDate != nil {
		in.DueDateSet = true
		if *req.DueDate != "" {
			due, err := parseDate(*req.DueDate)
			if err != nil {
				respondValidation(w, "invalid dueDate")
				return
			}
			in.DueDate = &due
		}
	}

	updated, err := t.service.Update(r.Context(), identity, id, in)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, taskResponse(updated))
}

func (t *TaskRoutes) handleDelete(w http.ResponseWriter, r *http.Request) {
	identity, err := t.verifier.VerifyRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondValidation(w, "invalid task id")
		return
	}

	if err := t.service.Delete(r.Context(), identity, id); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func filterFromQuery(r *http.Request) (task.Filter, error) {
	q := r.URL.Query()

	quick, err := task.ParseQuickFilter(q.Get("filter"))
	if err != nil {
		return task.Filter{}, err
	}

	filter := task.Filter{
		Department: q.Get("department"),
		Quick:      quick,
		Search:     q.Get("search"),
	}

	if raw := q.Get("startDate"); raw != "" {
		start, err := parseDate(raw)
		if err != nil {
			return task.Filter{}, errInvalidDate("startDate")
		}
		filter.StartDate = &start
	}
	if raw := q.Get("endDate"); raw != "" {
		end, err := parseDate(raw)
		if err != nil {
			return task.Filter{}, errInvalidDate("endDate")
		}
		filter.EndDate = &end
	}

	return filter, nil
}

func taskResponse(t task.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueDate:     formatDueDate(t.DueDate),
		EmployeeID:  t.EmployeeID.String(),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}

func taskWithOwnerResponse(t task.TaskWithOwner) dto.TaskResponse {
	resp := taskResponse(t.Task)
	resp.Owner = &dto.TaskOwner{
		Name:       t.OwnerName,
		Department: t.OwnerDepartment,
	}
	return resp
}

func formatDueDate(due *time.Time) string {
	if due == nil {
		return ""
	}
	return due.Format("2006-01-02")
}
