package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	DBSource         string        `mapstructure:"DB_SOURCE"`
	ServerAddress    string        `mapstructure:"SERVER_ADDRESS"`
	GoogleMapsAPIKey string        `mapstructure:"GOOGLE_MAPS_API_KEY"`
	GeocodeEndpoint  string        `mapstructure:"GEOCODE_ENDPOINT"`
	GeocodeTimeout   time.Duration `mapstructure:"GEOCODE_TIMEOUT"`
	AdminToolsURL    string        `mapstructure:"ADMIN_TOOLS_URL"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
}

// LoadConfig reads configuration from app.env in path, overridden by environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("GEOCODE_ENDPOINT", "https://maps.googleapis.com/maps/api/geocode/json")
	v.SetDefault("GEOCODE_TIMEOUT", "5s")
	v.SetDefault("ADMIN_TOOLS_URL", "/wp-admin/tools.php")
	v.SetDefault("LOG_LEVEL", "info")

	// Keys only present in the environment are not picked up by Unmarshal unless bound.
	for _, key := range []string{"DB_SOURCE", "GOOGLE_MAPS_API_KEY"} {
		if err = v.BindEnv(key); err != nil {
			return
		}
	}
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = v.Unmarshal(&config)
	return
}
