package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding file settings,
// e.g. CRYPTO_FACADE_PORT or CRYPTO_FACADE_LOGGER_LOG_LEVEL.
const EnvPrefix = "CRYPTO_FACADE"

// RestConfig holds the settings of the REST server
type RestConfig struct {
	Port            string         `mapstructure:"port" validate:"required,numeric"`
	ShutdownTimeout int            `mapstructure:"shutdown_timeout" validate:"min=1,max=300"`
	MaxBodyBytes    int64          `mapstructure:"max_body_bytes" validate:"min=1024"`
	AllowOrigins    []string       `mapstructure:"allow_origins" validate:"required,min=1"`
	Logger          LoggerSettings `mapstructure:"logger"`
}

// Validate checks the REST settings and the nested logger settings
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	return c.Logger.Validate()
}

func setRestDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("shutdown_timeout", 15)
	v.SetDefault("max_body_bytes", 1<<20)
	v.SetDefault("allow_origins", []string{"*"})
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)
}

// InitializeRestConfig reads the YAML file at path, applies environment overrides and validates
// the result. An empty path means defaults plus environment only.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	setRestDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadDotEnv loads environment variables from the given .env files. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}
