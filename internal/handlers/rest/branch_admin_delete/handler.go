package branch_admin_delete

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"restaurant-admin/internal/service/branch_admin"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.DeleteBranchAdmin(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, branch_admin.ErrInvalidID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, branch_admin.ErrBranchAdminNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("delete branch admin")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.log.With(
		logger.NewField("user_id", id),
	).Info("branch admin deleted")

	w.WriteHeader(http.StatusNoContent)
}
