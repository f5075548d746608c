package estimator

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"delivery-estimator/internal/entities"
	"delivery-estimator/internal/service/delivery"
	"delivery-estimator/pkg/logger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const deliveryDateLayout = "2006-01-02"

type Handler struct {
	log     handlerLogger
	service Service
}

var _ DeliveryEstimatorServer = (*Handler)(nil)

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "grpc_estimate"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// Estimate expects {"provider": string, "tat": number, "now": RFC3339 string?}.
func (h *Handler) Estimate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()

	provider := strings.TrimSpace(fields["provider"].GetStringValue())
	if provider == "" {
		return nil, status.Error(codes.InvalidArgument, "provider is required")
	}

	tatValue, ok := fields["tat"]
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "tat is required")
	}
	tat, err := turnaroundOf(tatValue)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	var now *time.Time
	if raw := fields["now"].GetStringValue(); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "now must be an RFC3339 timestamp")
		}
		now = &parsed
	}

	estimate, err := h.service.Estimate(ctx, entities.Provider(provider), tat, now)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrMissingProvider),
			errors.Is(err, delivery.ErrInvalidTurnaround):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		case errors.Is(err, context.DeadlineExceeded):
			return nil, status.Error(codes.DeadlineExceeded, err.Error())
		case errors.Is(err, context.Canceled):
			return nil, status.Error(codes.Canceled, err.Error())
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("estimate delivery")
			return nil, status.Error(codes.Internal, "estimate failed")
		}
	}

	response, err := structpb.NewStruct(toResponse(estimate))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode struct response")
		return nil, status.Error(codes.Internal, "encode response")
	}
	return response, nil
}

var errTurnaroundNotInteger = errors.New("tat must be an integer")

// turnaroundOf accepts only finite whole numbers that fit in an int.
func turnaroundOf(value *structpb.Value) (int, error) {
	number, ok := value.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, errTurnaroundNotInteger
	}

	tat := number.NumberValue
	if math.IsNaN(tat) || math.IsInf(tat, 0) || tat != math.Trunc(tat) {
		return 0, errTurnaroundNotInteger
	}
	if tat < math.MinInt32 || tat > math.MaxInt32 {
		return 0, errTurnaroundNotInteger
	}
	return int(tat), nil
}

func toResponse(estimate *entities.DeliveryEstimate) map[string]any {
	result := estimate.Result
	out := map[string]any{
		"provider":          estimate.Request.Provider.String(),
		"tat":               estimate.Request.TurnaroundDays,
		"now":               estimate.Request.Now.Format(time.RFC3339),
		"available":         result.Available,
		"same_day_eligible": result.SameDayEligible,
		"uses_tat_delivery": result.UsesTatDelivery,
		"headline":          estimate.Headline,
	}

	if result.Remaining != nil {
		out["remaining"] = map[string]any{
			"hours":   result.Remaining.Hours,
			"minutes": result.Remaining.Minutes,
		}
	}
	if result.Message != "" {
		out["message"] = result.Message
	}
	if result.Available {
		out["day_label"] = result.DayLabel
		out["formatted_date"] = result.FormattedDate
		out["delivery_date"] = result.DeliveryDate.Format(deliveryDateLayout)
	}

	return out
}
