package configs

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

type Conf struct {
	DBDriver       string        `mapstructure:"DB_DRIVER"`
	DBHost         string        `mapstructure:"DB_HOST"`
	DBPort         string        `mapstructure:"DB_PORT"`
	DBUser         string        `mapstructure:"DB_USER"`
	DBPassword     string        `mapstructure:"DB_PASSWORD"`
	DBName         string        `mapstructure:"DB_NAME"`
	RedisHost      string        `mapstructure:"REDIS_HOST"`
	RedisPort      string        `mapstructure:"REDIS_PORT"`
	CacheTTL       time.Duration `mapstructure:"CACHE_TTL"`
	WebServerPort  string        `mapstructure:"WEB_SERVER_PORT"`
	OTELCollector  string        `mapstructure:"OTEL_COLLECTOR"`
	ServiceName    string        `mapstructure:"SERVICE_NAME"`
	Environment    string        `mapstructure:"ENVIRONMENT"`
	LogProd        bool          `mapstructure:"LOG_PROD"`
	RateLimitRPS   int           `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int           `mapstructure:"RATE_LIMIT_BURST"`
}

var defaults = map[string]any{
	"DB_DRIVER":        "postgres",
	"DB_HOST":          "localhost",
	"DB_PORT":          "5432",
	"DB_USER":          "",
	"DB_PASSWORD":      "",
	"DB_NAME":          "checkout",
	"REDIS_HOST":       "",
	"REDIS_PORT":       "6379",
	"CACHE_TTL":        "5m",
	"WEB_SERVER_PORT":  "8080",
	"OTEL_COLLECTOR":   "",
	"SERVICE_NAME":     "gocheckout",
	"ENVIRONMENT":      "development",
	"LOG_PROD":         false,
	"RATE_LIMIT_RPS":   50,
	"RATE_LIMIT_BURST": 100,
}

// LoadConfig reads path/.env and lets environment variables override it. A
// missing .env file is not an error; every key has a default.
func LoadConfig(path string) (*Conf, error) {
	var cfg *Conf

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
