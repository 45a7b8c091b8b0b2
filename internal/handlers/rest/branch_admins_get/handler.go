package branch_admins_get

import (
	"encoding/json"
	"net/http"

	"restaurant-admin/internal/dto"
	"restaurant-admin/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	admins, err := h.service.ListBranchAdmins(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list branch admins")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := make([]dto.BranchAdmin, 0, len(admins))
	for i := range admins {
		response = append(response, dto.BranchAdminFromEntity(&admins[i]))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
