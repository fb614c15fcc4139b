// Package api implements the HTTP server.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mtsk/calheat/config"
	"github.com/mtsk/calheat/model"
	"github.com/mtsk/calheat/store"
)

// Server routes API and graph requests to the store and renderer.
type Server struct {
	router *http.ServeMux
	store  store.Store
	config *config.Config
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// writeJSONError writes the error envelope with the given status.
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp := ErrorResponse{Error: message, Code: statusCode}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("encoding error response")
	}
}

// writeJSON writes a success payload with the given status.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("encoding response")
	}
}

// NewServer creates a server with its routes configured.
func NewServer(store store.Store, config *config.Config) *Server {
	s := &Server{
		router: http.NewServeMux(),
		store:  store,
		config: config,
	}
	s.routes()
	return s
}

// routes wires up all endpoints.
func (s *Server) routes() {
	// health check needs no authentication
	s.router.HandleFunc("GET /healthz", s.handleHealthCheck)

	secured := http.NewServeMux()

	// Project endpoints
	secured.HandleFunc("GET /api/v0/p", s.handleListProjects)
	secured.HandleFunc("POST /api/v0/p", s.handleCreateProject)
	secured.HandleFunc("GET /api/v0/p/{project}", s.handleGetProject)
	secured.HandleFunc("PUT /api/v0/p/{project}", s.handleUpdateProject)
	secured.HandleFunc("DELETE /api/v0/p/{project}", s.handleDeleteProject)

	// Record endpoints
	secured.HandleFunc("POST /api/v0/r", s.handleCreateRecord)
	secured.HandleFunc("GET /api/v0/r/{record_id}", s.handleGetRecord)
	secured.HandleFunc("DELETE /api/v0/r/{record_id}", s.handleDeleteRecord)

	s.router.Handle("/api/", s.authMiddleware(secured))

	// Graph endpoints - support both with and without the .svg extension
	s.router.HandleFunc("GET /p/{project}/graph.svg", s.handleGetGraph)
	s.router.HandleFunc("GET /p/{project}/graph", s.handleGetGraph)
	s.router.HandleFunc("GET /p/{project}", s.handleGetPage)
}

// ServeHTTP makes Server an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleHealthCheck reports liveness.
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CreateRecordParams represents parameters for creating a record.
type CreateRecordParams struct {
	Project   string
	Timestamp *model.Timestamp
	Value     *model.Value
	Tags      []string
}

// NewCreateRecordParams creates parameters for record creation from an HTTP request.
func NewCreateRecordParams(r *http.Request) (*CreateRecordParams, error) {
	var body struct {
		Project   string   `json:"project"`
		Timestamp string   `json:"timestamp"`
		Value     *int     `json:"value"`
		Tags      []string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	if body.Project == "" {
		return nil, fmt.Errorf("project is required")
	}

	timestamp, err := model.NewTimestamp(body.Timestamp)
	if err != nil {
		return nil, err
	}
	value, err := model.NewValue(body.Value)
	if err != nil {
		return nil, err
	}

	return &CreateRecordParams{
		Project:   body.Project,
		Timestamp: timestamp,
		Value:     value,
		Tags:      body.Tags,
	}, nil
}

// handleCreateRecord creates a record under an existing project.
func (s *Server) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	params, err := NewCreateRecordParams(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := s.store.GetProject(r.Context(), params.Project); err != nil {
		log.Error().Err(err).Str("project", params.Project).Msg("getting project")
		writeJSONError(w, "Project not found", http.StatusNotFound)
		return
	}

	record, err := model.NewRecord(params.Timestamp.Time(), params.Project, params.Value.Int(), params.Tags)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.store.CreateRecord(r.Context(), record); err != nil {
		log.Error().Err(err).Msg("creating record")
		writeJSONError(w, "Failed to create record", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

// handleGetRecord fetches one record by ID.
func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("record_id"))
	if err != nil {
		writeJSONError(w, "invalid record_id", http.StatusBadRequest)
		return
	}

	record, err := s.store.GetRecord(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrRecordNotFound) {
			writeJSONError(w, fmt.Sprintf("Record with ID %s not found", id), http.StatusNotFound)
		} else {
			log.Error().Err(err).Msg("retrieving record")
			writeJSONError(w, "Failed to retrieve record", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// handleDeleteRecord removes one record by ID. Deletion is idempotent.
func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("record_id"))
	if err != nil {
		writeJSONError(w, "invalid record_id", http.StatusBadRequest)
		return
	}

	if err := s.store.DeleteRecord(r.Context(), id); err != nil && !errors.Is(err, model.ErrRecordNotFound) {
		log.Error().Err(err).Msg("deleting record")
		writeJSONError(w, "Failed to delete record", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleCreateProject creates a project.
func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONError(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}

	project, err := model.NewProject(body.Name, body.Description)
	if err != nil {
		writeJSONError(w, fmt.Sprintf("Invalid project data: %v", err), http.StatusBadRequest)
		return
	}

	if err := s.store.CreateProject(r.Context(), project); err != nil {
		log.Error().Err(err).Msg("creating project")
		writeJSONError(w, "Failed to create project", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

// handleGetProject fetches a project by name.
func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("project")

	project, err := s.store.GetProject(r.Context(), name)
	if err != nil {
		if errors.Is(err, model.ErrProjectNotFound) {
			writeJSONError(w, fmt.Sprintf("Project %s not found", name), http.StatusNotFound)
		} else {
			log.Error().Err(err).Msg("retrieving project")
			writeJSONError(w, "Failed to retrieve project", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, project)
}

// handleUpdateProject partially updates a project's description.
func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("project")

	project, err := s.store.GetProject(r.Context(), name)
	if err != nil {
		if errors.Is(err, model.ErrProjectNotFound) {
			writeJSONError(w, fmt.Sprintf("Project %s not found", name), http.StatusNotFound)
		} else {
			log.Error().Err(err).Msg("retrieving project")
			writeJSONError(w, "Failed to retrieve project", http.StatusInternalServerError)
		}
		return
	}

	var body struct {
		Description *string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONError(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}
	if body.Description != nil {
		project.Description = *body.Description
	}
	project.UpdatedAt = time.Now()

	if err := s.store.UpdateProject(r.Context(), project); err != nil {
		log.Error().Err(err).Msg("updating project")
		writeJSONError(w, "Failed to update project", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, project)
}

// handleDeleteProject removes a project with its records. Idempotent.
func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("project")

	if err := s.store.DeleteProject(r.Context(), name); err != nil && !errors.Is(err, model.ErrProjectNotFound) {
		log.Error().Err(err).Msg("deleting project")
		writeJSONError(w, "Failed to delete project", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListProjects returns all projects.
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.ListProjects(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("listing projects")
		writeJSONError(w, "Failed to list projects", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": projects})
}

// Run starts the server on the given address.
func (s *Server) Run(addr string) error {
	log.Info().Str("addr", addr).Msg("server starting")
	return http.ListenAndServe(addr, s)
}
