package ridervalidation

import (
	"context"

	"github.com/piresc/riderstate/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/riderstate/services/ridervalidation RiderValidationUseCase

// RiderValidationUseCase validates a rider's starting point before a state transition
type RiderValidationUseCase interface {
	ValidateLocation(ctx context.Context, req models.RiderLocationRequest) (*models.ValidationResult, error)
}
