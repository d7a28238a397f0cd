package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"reserbot/pkg/client"
	httputil "reserbot/pkg/http"
	"reserbot/pkg/logger"
)

type HealthHandler struct {
	mongo *client.MongoClient
	log   *logger.Logger
}

func NewHealthHandler(mongo *client.MongoClient, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		mongo: mongo,
		log:   log,
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}

// Health reports process liveness only.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	_ = httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready additionally requires a reachable record store.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if h.mongo == nil || h.mongo.Client == nil {
		h.log.Warn("Readiness check failed", "error", "record store client is not configured")
		_ = httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"reason": "record store unreachable",
		})
		return
	}

	if err := h.mongo.Client.Ping(r.Context(), nil); err != nil {
		h.log.Warn("Readiness check failed", "error", err)
		_ = httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"reason": "record store unreachable",
		})
		return
	}

	_ = httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
