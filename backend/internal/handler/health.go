package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/leerobin22/forum-api/shared/api"
	"github.com/leerobin22/forum-api/shared/logger"
	"github.com/leerobin22/forum-api/shared/utils"
)

const readyTimeout = 2 * time.Second

// Health answers as long as the process serves requests.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, api.Success(nil))
}

// Ready answers 503 while the database cannot be reached.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		logger.Component("health").Warn("database unavailable", "error", err)
		utils.WriteJSON(w, http.StatusServiceUnavailable, api.FailResponse{Status: api.StatusFail, Message: "database unavailable"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Success(nil))
}
