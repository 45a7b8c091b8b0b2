package orders_get

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"restaurant-admin/internal/dto"
	"restaurant-admin/internal/entities"
	"restaurant-admin/internal/pkg/principal"
	"restaurant-admin/internal/service/order"
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

	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orders, err := h.service.ListOrders(r.Context(), p.RestaurantID, filter)
	if err != nil {
		if errors.Is(err, order.ErrInvalidFilter) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		h.log.With(
			logger.NewField("error", err),
		).Error("list orders")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.OrdersResponse{
		Orders: dto.OrderSummariesFromEntity(orders),
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

// parseFilter status, type, from, to (RFC3339), limit, offset
func parseFilter(q url.Values) (entities.OrderFilter, error) {
	var filter entities.OrderFilter

	if v := q.Get("status"); v != "" {
		status := entities.OrderStatusType(v)
		filter.Status = &status
	}
	if v := q.Get("type"); v != "" {
		orderType := entities.OrderType(v)
		filter.Type = &orderType
	}

	for _, tp := range []struct {
		key string
		dst **time.Time
	}{
		{key: "from", dst: &filter.From},
		{key: "to", dst: &filter.To},
	} {
		v := q.Get(tp.key)
		if v == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, fmt.Errorf("parse %s: %w", tp.key, err)
		}
		*tp.dst = &t
	}

	var err error
	if filter.Limit, err = parseUint(q.Get("limit")); err != nil {
		return filter, fmt.Errorf("parse limit: %w", err)
	}
	if filter.Offset, err = parseUint(q.Get("offset")); err != nil {
		return filter, fmt.Errorf("parse offset: %w", err)
	}

	return filter, nil
}

func parseUint(v string) (uint64, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.ParseUint(v, 10, 64)
}
