package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/piresc/riderstate/internal/pkg/config"
	"github.com/piresc/riderstate/internal/pkg/logger"
	"github.com/piresc/riderstate/services/ridervalidation/handler"
	"github.com/piresc/riderstate/services/ridervalidation/usecase"
	"github.com/sirupsen/logrus"
)

func main() {
	configs := config.InitConfig(".env")

	appLogger := logger.InitAppLoggerFromConfig(configs)
	appLogger.WithFields(logrus.Fields{
		"environment":       configs.App.Environment,
		"geohash_precision": configs.Validation.GeohashPrecision,
	}).Info("Starting rider state validation function")

	// Initialize usecase
	riderValidationUC := usecase.NewRiderValidationUC(appLogger, configs)

	// Initialize Lambda handler
	lambdaHandler := handler.NewLambdaHandler(riderValidationUC, appLogger)

	lambda.Start(lambdaHandler.Handle)
}
