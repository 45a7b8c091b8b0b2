package ping_get

import (
	"encoding/json"
	"net/http"

	"restaurant-admin/internal/dto"
	"restaurant-admin/pkg/logger"
)

const (
	databaseOK          = "ok"
	databaseUnavailable = "unavailable"
)

type Handler struct {
	log handlerLogger
	db  Pinger
}

func New(log handlerLogger, db Pinger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
		db:  db,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	message := "pong"
	res := dto.PingResponse{
		Message:  &message,
		Database: databaseOK,
	}
	status := http.StatusOK

	err := h.db.Ping(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Warn("database ping failed")
		res.Database = databaseUnavailable
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err = json.NewEncoder(w).Encode(res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
