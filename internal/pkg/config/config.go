package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/piresc/riderstate/internal/pkg/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	DefaultAppName          = "rider-state-validation"
	DefaultGeohashPrecision = 7
	maxGeohashPrecision     = 12
)

// envBindings maps config keys to the environment variables they are read from
var envBindings = map[string]string{
	"app.name":                     "APP_NAME",
	"app.environment":              "APP_ENV",
	"app.version":                  "APP_VERSION",
	"logger.level":                 "LOG_LEVEL",
	"logger.format":                "LOG_FORMAT",
	"validation.geohash_precision": "GEOHASH_PRECISION",
}

// InitConfig builds the configuration from the environment. When APP_ENV is
// "local" the variables in configPath are loaded first; variables already set
// in the environment win.
func InitConfig(configPath string) *models.Config {
	v := newViper()

	if v.GetString("app.environment") == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logrus.WithError(err).WithField("path", configPath).Warn("error loading config from file")
		}
	}

	return loadConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("app.name", DefaultAppName)
	v.SetDefault("app.environment", "production")
	v.SetDefault("app.version", "")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("validation.geohash_precision", DefaultGeohashPrecision)

	for key, env := range envBindings {
		// BindEnv only fails without a key
		_ = v.BindEnv(key, env)
	}

	return v
}

func loadConfig(v *viper.Viper) *models.Config {
	precision, err := cast.ToUintE(v.Get("validation.geohash_precision"))
	if err != nil || precision == 0 || precision > maxGeohashPrecision {
		logrus.WithField("geohash_precision", v.GetString("validation.geohash_precision")).
			Warnf("invalid geohash precision, using default: %d", DefaultGeohashPrecision)
		v.Set("validation.geohash_precision", DefaultGeohashPrecision)
	}

	configs := &models.Config{}
	if err := v.Unmarshal(configs); err != nil {
		logrus.WithError(err).Warn("error decoding config, using defaults")
		configs = &models.Config{
			App:        models.AppConfig{Name: DefaultAppName, Environment: "production"},
			Logger:     models.LoggerConfig{Level: "info", Format: "json"},
			Validation: models.ValidationConfig{GeohashPrecision: DefaultGeohashPrecision},
		}
	}

	return configs
}
