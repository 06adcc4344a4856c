package http

import (
	"net/http"

	"github.com/MKhiriev/go-project-keeper/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	_, _ = utils.WriteJSON(w, version, http.StatusOK)
}
