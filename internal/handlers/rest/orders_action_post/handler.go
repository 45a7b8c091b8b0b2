package orders_action_post

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"restaurant-admin/internal/dto"
	"restaurant-admin/internal/entities"
	"restaurant-admin/internal/pkg/principal"
	"restaurant-admin/internal/service/order"
	"restaurant-admin/pkg/logger"
)

const (
	actionUpdateStatus    = "update_status"
	actionGetOrderDetails = "get_order_details"

	msgInvalidAction  = "Invalid action"
	msgInvalidRequest = "Invalid request"
	msgInvalidOrderID = "Invalid order ID"
	msgInvalidStatus  = "Invalid status"
	msgOrderNotFound  = "Order not found"
	msgDatabaseError  = "Database error, please try again"

	maxBodyBytes = 64 << 10
)

// Handler единая точка действий над заказами. Ответ всегда 200,
// результат в поле success.
type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "orders_action_post"),
	)

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

	req, err := decodeRequest(w, r)
	if err != nil {
		h.write(w, dto.ActionResponse{Message: msgInvalidRequest})
		return
	}

	switch req.Action {
	case actionUpdateStatus:
		h.write(w, h.updateStatus(r, p, req))
	case actionGetOrderDetails:
		h.write(w, h.getOrderDetails(r, p, req))
	default:
		h.write(w, dto.ActionResponse{Message: msgInvalidAction})
	}
}

func (h *Handler) updateStatus(r *http.Request, p entities.Principal, req dto.ActionRequest) dto.ActionResponse {
	orderID, err := parseOrderID(req.OrderID)
	if err != nil {
		return dto.ActionResponse{Message: msgInvalidOrderID}
	}

	change, msg, err := h.service.UpdateStatus(
		r.Context(),
		p.RestaurantID,
		orderID,
		entities.OrderStatusType(strings.TrimSpace(req.Status)),
	)
	if err != nil {
		return h.failure(err, orderID)
	}

	h.log.With(
		logger.NewField("order_id", change.OrderID),
		logger.NewField("restaurant_id", change.RestaurantID),
		logger.NewField("status", change.Status),
		logger.NewField("user_id", p.UserID),
	).Info("order status updated")

	return dto.ActionResponse{Success: true, Message: msg}
}

func (h *Handler) getOrderDetails(r *http.Request, p entities.Principal, req dto.ActionRequest) dto.ActionResponse {
	orderID, err := parseOrderID(req.OrderID)
	if err != nil {
		return dto.ActionResponse{Message: msgInvalidOrderID}
	}

	details, err := h.service.GetOrderDetails(r.Context(), p.RestaurantID, orderID)
	if err != nil {
		return h.failure(err, orderID)
	}

	return dto.ActionResponse{Success: true, Order: dto.OrderDetailsFromEntity(details)}
}

// failure текст ошибки драйвера остается в логе
func (h *Handler) failure(err error, orderID int64) dto.ActionResponse {
	switch {
	case errors.Is(err, order.ErrInvalidStatus):
		return dto.ActionResponse{Message: msgInvalidStatus}
	case errors.Is(err, order.ErrInvalidOrderID):
		return dto.ActionResponse{Message: msgInvalidOrderID}
	case errors.Is(err, order.ErrOrderNotFound):
		return dto.ActionResponse{Message: msgOrderNotFound}
	default:
		h.log.With(
			logger.NewField("order_id", orderID),
			logger.NewField("error", err),
		).Error("order action failed")
		return dto.ActionResponse{Message: msgDatabaseError}
	}
}

func (h *Handler) write(w http.ResponseWriter, response dto.ActionResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (dto.ActionRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req dto.ActionRequest
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		err := json.NewDecoder(r.Body).Decode(&req)
		return req, err
	}

	if err := r.ParseForm(); err != nil {
		return req, err
	}
	req.Action = r.PostFormValue("action")
	req.OrderID = json.Number(strings.TrimSpace(r.PostFormValue("order_id")))
	req.Status = r.PostFormValue("status")
	return req, nil
}

func parseOrderID(raw json.Number) (int64, error) {
	id, err := strconv.ParseInt(raw.String(), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, order.ErrInvalidOrderID
	}
	return id, nil
}
