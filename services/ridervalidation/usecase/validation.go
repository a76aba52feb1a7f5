package usecase

import (
	"context"
	"net/http"

	"github.com/piresc/riderstate/internal/pkg/logger"
	"github.com/piresc/riderstate/internal/pkg/models"
	"github.com/piresc/riderstate/internal/utils"
	"github.com/piresc/riderstate/services/ridervalidation"
	"github.com/sirupsen/logrus"
)

// RiderValidationUC implements the ridervalidation.RiderValidationUseCase interface
type RiderValidationUC struct {
	logger           *logger.AppLogger
	geohashPrecision uint
}

// NewRiderValidationUC creates a new rider validation use case
func NewRiderValidationUC(appLogger *logger.AppLogger, cfg *models.Config) ridervalidation.RiderValidationUseCase {
	return &RiderValidationUC{
		logger:           appLogger,
		geohashPrecision: cfg.Validation.GeohashPrecision,
	}
}

// ValidateLocation accepts any location whose latitude and longitude are both
// non-negative. There is no upper bound.
func (uc *RiderValidationUC) ValidateLocation(ctx context.Context, req models.RiderLocationRequest) (*models.ValidationResult, error) {
	// NaN fails both comparisons
	if !(req.Lat >= 0 && req.Long >= 0) {
		return nil, &ridervalidation.InvalidLocationError{
			RiderID: req.RiderID,
			Lat:     req.Lat,
			Long:    req.Long,
		}
	}

	entry := uc.logger.WithInvocation(ctx).WithFields(logrus.Fields{
		"rider_id": req.RiderID,
		"lat":      req.Lat,
		"long":     req.Long,
	})

	point := utils.GeoPoint{Latitude: req.Lat, Longitude: req.Long}
	if point.WithinWorldBounds() {
		entry.WithField("geohash", utils.EncodeLocation(point, uc.geohashPrecision)).
			Info("Rider location is valid")
	} else {
		entry.WithField("out_of_world_bounds", true).
			Warn("Rider location accepted outside latitude/longitude bounds")
	}

	return &models.ValidationResult{
		StatusCode: http.StatusOK,
		Valid:      true,
	}, nil
}
