package models

// Config represents application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Logger     LoggerConfig     `mapstructure:"logger"`
	Validation ValidationConfig `mapstructure:"validation"`
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Version     string `mapstructure:"version"`
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
}

// ValidationConfig contains rider location validation settings
type ValidationConfig struct {
	GeohashPrecision uint `mapstructure:"geohash_precision"`
}
