package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Store holds the document store configuration.
	Store StoreConfig `mapstructure:",squash"`

	// Legacy holds the legacy archive configuration.
	Legacy LegacyConfig `mapstructure:",squash"`

	// Consignments holds the identifier allocator configuration.
	Consignments ConsignmentConfig `mapstructure:",squash"`

	// Tracking holds the timeline reconstruction configuration.
	Tracking TrackingConfig `mapstructure:",squash"`
}

// StoreConfig holds the Redis document store connection details.
type StoreConfig struct {
	// RedisURL is in the format redis://[:password@]host[:port][/database].
	RedisURL string `mapstructure:"REDIS_URL" required:"true"`
}

// LegacyConfig points at the archive of consignments migrated from older systems.
type LegacyConfig struct {
	// DBPath is the SQLite file holding the legacy consignment tables.
	DBPath string `mapstructure:"LEGACY_DB_PATH" default:"legacy.db"`
	// Collections is a comma separated list of legacy collection names.
	Collections string `mapstructure:"LEGACY_COLLECTIONS" default:"legacy_corporate,legacy_bookings,legacy_medicine"`
}

// ConsignmentConfig configures consignment number allocation.
type ConsignmentConfig struct {
	// Base is the lowest floor ever used for allocation.
	Base int64 `mapstructure:"CONSIGNMENT_BASE" default:"1000000"`
	// CounterKey names the sequence record.
	CounterKey string `mapstructure:"CONSIGNMENT_COUNTER_KEY" default:"global"`
}

// TrackingConfig configures the tracking projection.
type TrackingConfig struct {
	// DedupeWindowSeconds is the window inside which same-status events collapse.
	DedupeWindowSeconds int `mapstructure:"DEDUPE_WINDOW_SECONDS" default:"120"`
	// AliasTablePath optionally overrides the embedded status alias tables.
	AliasTablePath string `mapstructure:"ALIAS_TABLE_PATH"`
}

// LegacyCollectionNames splits the configured legacy collections, dropping blanks.
func (c LegacyConfig) LegacyCollectionNames() []string {
	var names []string
	for _, name := range strings.Split(c.Collections, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if config.Tracking.DedupeWindowSeconds < 0 {
		return nil, fmt.Errorf("invalid configuration: DEDUPE_WINDOW_SECONDS must not be negative")
	}

	return &config, nil
}

// processTags binds every tagged field to its env key and registers defaults in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("failed to bind %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
