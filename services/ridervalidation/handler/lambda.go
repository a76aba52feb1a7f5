package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/piresc/riderstate/internal/pkg/converter"
	"github.com/piresc/riderstate/internal/pkg/logger"
	"github.com/piresc/riderstate/internal/pkg/models"
	"github.com/piresc/riderstate/services/ridervalidation"
	"github.com/sirupsen/logrus"
)

// LambdaHandler is the entry point of the rider state validation function
type LambdaHandler struct {
	riderValidationUC ridervalidation.RiderValidationUseCase
	logger            *logger.AppLogger
}

// NewLambdaHandler creates a new Lambda handler
func NewLambdaHandler(riderValidationUC ridervalidation.RiderValidationUseCase, appLogger *logger.AppLogger) *LambdaHandler {
	return &LambdaHandler{
		riderValidationUC: riderValidationUC,
		logger:            appLogger,
	}
}

// Handle logs the incoming event, coerces the rider coordinates and validates them.
// Errors are returned as is so the runtime reports their type to the caller.
func (h *LambdaHandler) Handle(ctx context.Context, payload json.RawMessage) (*models.ValidationResult, error) {
	ctx = logger.EnsureInvocation(ctx)
	entry := h.logger.WithInvocation(ctx)

	h.logger.LogEvent(entry, payload, "Received rider state event")

	var event models.RiderStateEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		entry.WithError(err).Error("Failed to decode rider state event")
		return nil, fmt.Errorf("failed to decode rider state event: %w", err)
	}

	req, err := toLocationRequest(event)
	if err != nil {
		entry.WithError(err).Error("Failed to read rider location")
		return nil, err
	}

	result, err := h.riderValidationUC.ValidateLocation(ctx, req)
	if err != nil {
		if errors.Is(err, ridervalidation.ErrInvalidLocation) {
			entry.WithFields(logrus.Fields{
				"rider_id": req.RiderID,
				"lat":      req.Lat,
				"long":     req.Long,
			}).WithError(err).Warn("Rider location is invalid")
		} else {
			entry.WithError(err).Error("Failed to validate rider location")
		}
		return nil, err
	}

	return result, nil
}

func toLocationRequest(event models.RiderStateEvent) (models.RiderLocationRequest, error) {
	if event.Rider == nil {
		return models.RiderLocationRequest{}, ridervalidation.ErrMissingRider
	}
	rider := event.Rider
	if rider.RiderID == nil {
		return models.RiderLocationRequest{}, ridervalidation.ErrMissingRiderID
	}

	lat, err := converter.ToFloat(rider.Lat)
	if err != nil {
		return models.RiderLocationRequest{}, &ridervalidation.CoercionError{Field: "lat", Value: rider.Lat, Err: err}
	}
	long, err := converter.ToFloat(rider.Long)
	if err != nil {
		return models.RiderLocationRequest{}, &ridervalidation.CoercionError{Field: "long", Value: rider.Long, Err: err}
	}

	return models.RiderLocationRequest{
		RiderID: *rider.RiderID,
		Lat:     lat,
		Long:    long,
	}, nil
}
