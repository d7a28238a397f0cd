package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"reserbot/internal/reservas/service"
	"reserbot/pkg/config"
	apperrors "reserbot/pkg/errors"
	httputil "reserbot/pkg/http"
	"reserbot/pkg/model"
)

const (
	MsgReservationCreated = "reservation created successfully"
	MsgReservationDeleted = "reservation deleted successfully"
	MsgStoreConnected     = "store connection successful"
	MsgStoreFailed        = "store connection failed"
)

type ReservationHandler struct {
	service service.ReservationService
	cfg     *config.Config
}

func NewReservationHandler(service service.ReservationService, cfg *config.Config) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		cfg:     cfg,
	}
}

func (h *ReservationHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/", h.Index)
	router.GET("/api/reservas", h.List)
	router.POST("/api/reservas", h.Create)
	router.DELETE("/api/reservas/:id", h.Delete)
	router.GET("/api/test", h.Probe)
}

// Index serves the static landing page.
func (h *ReservationHandler) Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	http.ServeFile(w, r, "public/index.html")
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	reservations, err := h.service.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteList(w, reservations); err != nil {
		h.cfg.Log.Error("Failed to write list response", "error", err)
	}
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var res model.Reservation
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		h.cfg.Log.Warn("Failed to decode reservation payload", "error", err)
		h.writeError(w, apperrors.InvalidInput("invalid request body"))
		return
	}

	if err := h.service.Create(r.Context(), &res); err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteCreated(w, MsgReservationCreated, &res); err != nil {
		h.cfg.Log.Error("Failed to write create response", "error", err)
	}
}

func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	id := params.ByName("id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteMessage(w, MsgReservationDeleted); err != nil {
		h.cfg.Log.Error("Failed to write delete response", "error", err)
	}
}

// Probe checks store connectivity by counting reservations. A store-reported
// failure keeps its message so the caller can diagnose misconfiguration.
func (h *ReservationHandler) Probe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	count, err := h.service.Count(r.Context())
	if err != nil {
		appErr := apperrors.AsAppError(err)
		if appErr.Code == apperrors.CodeStoreRejected {
			err = apperrors.New(apperrors.CodeStoreRejected, MsgStoreFailed, appErr.StatusCode()).
				WithDetails(map[string]any{"message": appErr.Message})
		}
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, httputil.ProbeResponse{
		Success:       true,
		Message:       MsgStoreConnected,
		TotalReservas: count,
	}); err != nil {
		h.cfg.Log.Error("Failed to write probe response", "error", err)
	}
}

func (h *ReservationHandler) writeError(w http.ResponseWriter, err error) {
	if werr := httputil.WriteError(w, err); werr != nil {
		h.cfg.Log.Error("Failed to write error response", "error", werr)
	}
}
