package routers

import (
	"context"
	"errors"
	"net/http"
)

type Dependencies struct {
	Auth        *AuthRoutes
	Tasks       *TaskRoutes
	Departments *DepartmentRoutes
	Export      *ExportRoutes
	Middleware  []func(http.Handler) http.Handler
}

type Router struct {
	mux     *http.ServeMux
	handler http.Handler
}

func New(deps Dependencies) (*Router, error) {
	if deps.Auth == nil || deps.Tasks == nil || deps.Departments == nil || deps.Export == nil {
		return nil, errors.New("all route groups must be provided")
	}

	mux := http.NewServeMux()
	ctx := context.Background()

	deps.Auth.RegisterHandlers(ctx, mux)
	deps.Tasks.RegisterHandlers(ctx, mux)
	deps.Departments.RegisterHandlers(ctx, mux)
	deps.Export.RegisterHandlers(ctx, mux)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	var handler http.Handler = mux
	for i := len(deps.Middleware) - 1; i >= 0; i-- {
		handler = deps.Middleware[i](handler)
	}

	return &Router{
		mux:     mux,
		handler: handler,
	}, nil
}

func (r *Router) Handler() http.Handler {
	if r == nil {
		return nil
	}
	return r.handler
}
