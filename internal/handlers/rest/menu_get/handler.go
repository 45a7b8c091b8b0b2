package menu_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"restaurant-admin/internal/dto"
	"restaurant-admin/internal/entities"
	"restaurant-admin/internal/pkg/principal"
	"restaurant-admin/internal/service/menu"
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
	p, ok := principal.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	q := r.URL.Query()
	filter := entities.ProductFilter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
	}
	if v := q.Get("available"); v != "" {
		onlyAvailable, err := strconv.ParseBool(v)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filter.OnlyAvailable = onlyAvailable
	}

	products, err := h.service.ListProducts(r.Context(), p.RestaurantID, filter)
	if err != nil {
		if errors.Is(err, menu.ErrInvalidFilter) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		h.log.With(
			logger.NewField("error", err),
		).Error("list products")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.MenuResponse{
		Products: dto.ProductsFromEntity(products),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
