package branch_admin_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var req dto.BranchAdminCreateRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	admin, err := h.service.CreateBranchAdmin(r.Context(), entities.BranchAdminCreate{
		Name:              req.Name,
		Email:             req.Email,
		Password:          req.Password,
		RestaurantName:    req.RestaurantName,
		RestaurantAddress: req.RestaurantAddress,
		RestaurantPhone:   req.RestaurantPhone,
	})
	if err != nil {
		switch {
		case errors.Is(err, branch_admin.ErrMissingRequiredFields),
			errors.Is(err, branch_admin.ErrInvalidName),
			errors.Is(err, branch_admin.ErrInvalidEmail),
			errors.Is(err, branch_admin.ErrInvalidPassword),
			errors.Is(err, branch_admin.ErrInvalidRestaurantName):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, branch_admin.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create branch admin")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.log.With(
		logger.NewField("user_id", admin.User.ID),
		logger.NewField("restaurant_id", admin.Restaurant.ID),
	).Info("branch admin created")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.BranchAdminFromEntity(admin))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
