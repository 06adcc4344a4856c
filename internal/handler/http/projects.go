package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-project-keeper/internal/logger"
	"github.com/MKhiriev/go-project-keeper/internal/utils"
	"github.com/MKhiriev/go-project-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var publicOnly bool
	if raw := r.URL.Query().Get("public"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			log.Debug().Str("public", raw).Msg("invalid public query parameter")
			utils.WriteError(w, "invalid public parameter", http.StatusBadRequest)
			return
		}
		publicOnly = v
	}

	projects, err := h.services.ProjectService.ListProjects(r.Context(), publicOnly)
	if err != nil {
		h.writeServiceError(w, r, err, "Handler.listProjects")
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}

	_, _ = utils.WriteJSON(w, models.ProjectsResponse{Projects: projects, Length: len(projects)}, http.StatusOK)
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.services.ProjectService.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, err, "Handler.getProject")
		return
	}

	_, _ = utils.WriteJSON(w, project, http.StatusOK)
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	var payload models.Project
	if !decodeBody(w, r, &payload) {
		return
	}

	created, err := h.services.ProjectService.CreateProject(r.Context(), payload)
	h.recordWrite("create", err)
	if err != nil {
		h.writeServiceError(w, r, err, "Handler.createProject")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	var update models.ProjectUpdate
	if !decodeBody(w, r, &update) {
		return
	}

	updated, err := h.services.ProjectService.UpdateProject(r.Context(), chi.URLParam(r, "id"), update)
	h.recordWrite("update", err)
	if err != nil {
		h.writeServiceError(w, r, err, "Handler.updateProject")
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	err := h.services.ProjectService.DeleteProject(r.Context(), chi.URLParam(r, "id"))
	h.recordWrite("delete", err)
	if err != nil {
		h.writeServiceError(w, r, err, "Handler.deleteProject")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeBody reads a bounded JSON body into dst. On failure it writes the
// response itself and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.WriteError(w, "payload too large", http.StatusRequestEntityTooLarge)
			return false
		}
		utils.WriteError(w, "error reading request body", http.StatusBadRequest)
		return false
	}

	if err = json.Unmarshal(body, dst); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON body")
		utils.WriteError(w, "invalid JSON body", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Msg("request failed")
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Debug().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	utils.WriteError(w, err.Error(), status)
}

func (h *Handler) recordWrite(op string, err error) {
	if h.metrics != nil {
		h.metrics.RecordProjectWrite(op, err)
	}
}
