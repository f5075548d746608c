package delivery_estimate_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"delivery-estimator/internal/entities"
	"delivery-estimator/internal/generated/dto"
	"delivery-estimator/internal/handlers/rest/converters"
	"delivery-estimator/internal/service/delivery"
	"delivery-estimator/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "delivery_estimate_get"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	provider := strings.TrimSpace(query.Get("provider"))
	if provider == "" {
		h.writeError(w, http.StatusBadRequest, "provider is required")
		return
	}

	tat, err := strconv.Atoi(query.Get("tat"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "tat must be an integer")
		return
	}

	var now *time.Time
	if raw := query.Get("now"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "now must be an RFC3339 timestamp")
			return
		}
		now = &parsed
	}

	estimate, err := h.service.Estimate(r.Context(), entities.Provider(provider), tat, now)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrMissingProvider),
			errors.Is(err, delivery.ErrInvalidTurnaround):
			h.writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("estimate delivery")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryEstimateResponse{
		Provider: estimate.Request.Provider.String(),
		Tat:      estimate.Request.TurnaroundDays,
		Now:      estimate.Request.Now,
		Estimate: converters.Estimate(estimate.Result),
		Headline: estimate.Headline,
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

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(dto.ErrorResponse{Error: message})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
