package routers

import (
	"context"
	"net/http"

	"github.com/Ritik8097/EmployeeTask/internal/auth"
	"github.com/Ritik8097/EmployeeTask/internal/department"
	"github.com/Ritik8097/EmployeeTask/internal/dto"
	"github.com/google/uuid"
)

type DepartmentRoutes struct {
	service  department.Service
	verifier *auth.Verifier
}

func NewDepartmentRoutes(service department.Service, verifier *auth.Verifier) *DepartmentRoutes {
	return &DepartmentRoutes{
		service:  service,
		verifier: verifier,
	}
}

func (d *DepartmentRoutes) RegisterHandlers(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /departments", d.handleList)
	mux.HandleFunc("POST /departments", d.handleCreate)
	mux.HandleFunc("PUT /departments/{id}", d.handleUpdate)
	mux.HandleFunc("DELETE /departments/{id}", d.handleDelete)
}

func (d *DepartmentRoutes) handleList(w http.ResponseWriter, r *http.Request) {
	// The registration form needs the department list before any token
	// exists, so an unverifiable request falls back to an anonymous actor.
	identity, _ := d.verifier.VerifyRequest(r)

	departments, err := d.service.List(r.Context(), identity)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]dto.DepartmentResponse, 0, len(departments))
	for _, item := range departments {
		resp = append(resp, departmentResponse(item))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (d *DepartmentRoutes) handleCreate(w http.ResponseWriter, r *http.Request) {
	identity, err := d.verifier.VerifyRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req dto.DepartmentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondValidation(w, err.Error())
		return
	}

	created, err := d.service.Create(r.Context(), identity, req.Name, req.Description)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, departmentResponse(created))
}

func (d *DepartmentRoutes) handleUpdate(w http.ResponseWriter, r *http.Request) {
	identity, err := d.verifier.VerifyRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondValidation(w, "invalid department id")
		return
	}

	var req dto.DepartmentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondValidation(w, err.Error())
		return
	}

	updated, err := d.service.Update(r.Context(), identity, id, req.Name, req.Description)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, departmentResponse(updated))
}

func (d *DepartmentRoutes) handleDelete(w http.ResponseWriter, r *http.Request) {
	identity, err := d.verifier.VerifyRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondValidation(w, "invalid department id")
		return
	}

	if err := d.service.Delete(r.Context(), identity, id); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func departmentResponse(d department.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:          d.ID.String(),
		Name:        d.Name,
		Description: d.Description,
	}
}
