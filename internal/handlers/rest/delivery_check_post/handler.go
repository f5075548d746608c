package delivery_check_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"delivery-estimator/internal/entities"
	"delivery-estimator/internal/generated/dto"
	"delivery-estimator/internal/handlers/rest/converters"
	"delivery-estimator/internal/service/delivery"
	"delivery-estimator/pkg/logger"
)

const (
	messageInvalidPincode = "Please enter a valid 6-digit pincode"
	messageNotServiceable = "Delivery not available at this location"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "delivery_check_post"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request dto.PostDeliveryCheckJSONRequestBody
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var productID string
	if request.ProductId != nil {
		productID = *request.ProductId
	}

	check, err := h.service.CheckDelivery(r.Context(), productID, request.Pincode)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidPincode):
			h.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: messageInvalidPincode})
		case errors.Is(err, delivery.ErrPincodeNotServiceable):
			h.writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: messageNotServiceable})
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("pincode", request.Pincode),
			).Error("check delivery")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, toResponse(check))
}

func toResponse(check *entities.DeliveryCheck) dto.DeliveryCheckResponse {
	response := dto.DeliveryCheckResponse{
		Pincode:    check.Pincode,
		Available:  check.Available,
		OutOfStock: check.OutOfStock,
		Message:    check.Message,
		CheckedAt:  check.CheckedAt,
	}

	if check.ProductID != "" {
		response.ProductId = &check.ProductID
	}
	if check.Estimate != nil {
		provider := check.Provider.String()
		tat := check.TurnaroundDays
		estimate := converters.Estimate(*check.Estimate)

		response.Provider = &provider
		response.Tat = &tat
		response.Estimate = &estimate
	}

	return response
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
