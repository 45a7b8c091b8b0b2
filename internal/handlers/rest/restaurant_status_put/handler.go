package restaurant_status_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"restaurant-admin/internal/dto"
	"restaurant-admin/internal/entities"
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

	var req dto.RestaurantStatusRequest
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	restaurant, err := h.service.SetRestaurantStatus(r.Context(), id, entities.RestaurantStatusType(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, branch_admin.ErrInvalidID),
			errors.Is(err, branch_admin.ErrInvalidRestaurantStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, branch_admin.ErrRestaurantNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("set restaurant status")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.RestaurantFromEntity(restaurant))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
