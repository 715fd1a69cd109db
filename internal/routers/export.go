package routers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Ritik8097/EmployeeTask/internal/apperr"
	"github.com/Ritik8097/EmployeeTask/internal/auth"
	"github.com/Ritik8097/EmployeeTask/internal/export"
	"github.com/Ritik8097/EmployeeTask/internal/task"
)

type ExportRoutes struct {
	service  task.TaskService
	verifier *auth.Verifier
}

func NewExportRoutes(service task.TaskService, verifier *auth.Verifier) *ExportRoutes {
	return &ExportRoutes{
		service:  service,
		verifier: verifier,
	}
}

func (e *ExportRoutes) RegisterHandlers(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /tasks/export", e.handleExport)
}

func (e *ExportRoutes) handleExport(w http.ResponseWriter, r *http.Request) {
	identity, err := e.verifier.VerifyRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if !auth.Can(identity, auth.ActionTaskExport, auth.Resource{}) {
		respondError(w, apperr.Forbidden("only administrators may export tasks"))
		return
	}

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		respondError(w, err)
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		respondError(w, err)
		return
	}

	tasks, err := e.service.ListAll(r.Context(), identity, filter)
	if err != nil {
		respondError(w, err)
		return
	}

	artifact, err := export.Render(tasks, format, filter.Department, filter.StartDate)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Data)))
	_, _ = w.Write(artifact.Data)
}
