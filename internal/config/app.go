package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	DefaultConfigFile     = "config.yaml"
	DefaultUpdateInterval = time.Hour
)

type HTTPServer struct {
	Port                     string `mapstructure:"port"`
	ReadHeaderTimeoutSeconds int    `mapstructure:"read_header_timeout_seconds"`
	ShutdownTimeoutSeconds   int    `mapstructure:"shutdown_timeout_seconds"`
}

func (s HTTPServer) ReadHeaderTimeout() time.Duration {
	return secondsOr(s.ReadHeaderTimeoutSeconds, 5*time.Second)
}

func (s HTTPServer) ShutdownTimeout() time.Duration {
	return secondsOr(s.ShutdownTimeoutSeconds, 10*time.Second)
}

func secondsOr(seconds int, fallback time.Duration) time.Duration {
	if seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type Feed struct {
	URL string `mapstructure:"url"`
}

type Sensors struct {
	CurrencyPairs []string `mapstructure:"currency_pairs"`
	// UpdateIntervalHours is the refresh period in hours, fractions allowed.
	UpdateIntervalHours     float64 `mapstructure:"update_interval"`
	Precision               int     `mapstructure:"precision"`
	UnavailableOnFetchError bool    `mapstructure:"unavailable_on_fetch_error"`
}

// UpdateInterval falls back to one hour when the configured value is not positive.
func (s Sensors) UpdateInterval() time.Duration {
	if s.UpdateIntervalHours <= 0 {
		logrus.Warnf("Invalid update interval %v, using default: %s", s.UpdateIntervalHours, DefaultUpdateInterval)
		return DefaultUpdateInterval
	}
	return time.Duration(s.UpdateIntervalHours * float64(time.Hour))
}

type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Cache struct {
	MaxItems int64 `mapstructure:"max_items"`
}

type Redis struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type Archive struct {
	Enabled bool `mapstructure:"enabled"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Feed       Feed       `mapstructure:"feed"`
	Sensors    Sensors    `mapstructure:"sensors"`
	Logging    Logging    `mapstructure:"logging"`
	Cache      Cache      `mapstructure:"cache"`
	Redis      Redis      `mapstructure:"redis"`
	Archive    Archive    `mapstructure:"archive"`
	DbServer   DbServer   `mapstructure:"db_server"`
}

func Init() (*AppConfig, error) {
	return Load(DefaultConfigFile)
}

// Load reads the yaml file at path, then applies .env and environment overrides.
// Both files are optional.
func Load(path string) (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		logrus.Debugf("Config file %s not found, using defaults", path)
	}

	v.SetDefault("http_server.port", "8080")
	v.SetDefault("http_server.read_header_timeout_seconds", 5)
	v.SetDefault("http_server.shutdown_timeout_seconds", 10)
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("feed.url", "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-daily.xml")
	v.SetDefault("sensors.currency_pairs", []string{"EUR/USD"})
	v.SetDefault("sensors.update_interval", 1)
	v.SetDefault("sensors.precision", 4)
	v.SetDefault("sensors.unavailable_on_fetch_error", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("cache.max_items", 1024)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("archive.enabled", false)
	v.SetDefault("db_server.max_conns", 10)

	// service env vars
	_ = v.BindEnv("http_server.port", "ECBRATES_HTTP_PORT")
	_ = v.BindEnv("http_client.timeout_seconds", "ECBRATES_HTTP_CLIENT_TIMEOUT_SECONDS")
	_ = v.BindEnv("feed.url", "ECBRATES_FEED_URL")
	_ = v.BindEnv("sensors.currency_pairs", "ECBRATES_CURRENCY_PAIRS")
	_ = v.BindEnv("sensors.update_interval", "ECBRATES_UPDATE_INTERVAL")
	_ = v.BindEnv("sensors.precision", "ECBRATES_PRECISION")
	_ = v.BindEnv("sensors.unavailable_on_fetch_error", "ECBRATES_UNAVAILABLE_ON_FETCH_ERROR")
	_ = v.BindEnv("logging.level", "ECBRATES_LOG_LEVEL")
	_ = v.BindEnv("logging.format", "ECBRATES_LOG_FORMAT")
	_ = v.BindEnv("cache.max_items", "ECBRATES_CACHE_MAX_ITEMS")

	// redis env vars
	_ = v.BindEnv("redis.enabled", "ECBRATES_REDIS_ENABLED")
	_ = v.BindEnv("redis.addr", "ECBRATES_REDIS_ADDR")
	_ = v.BindEnv("redis.password", "ECBRATES_REDIS_PASSWORD")
	_ = v.BindEnv("redis.db", "ECBRATES_REDIS_DB")

	// db server env vars
	_ = v.BindEnv("archive.enabled", "ECBRATES_ARCHIVE_ENABLED")
	_ = v.BindEnv("db_server.host", "DB_HOST")
	_ = v.BindEnv("db_server.port", "DB_PORT")
	_ = v.BindEnv("db_server.user", "DB_USER")
	_ = v.BindEnv("db_server.pass", "DB_PASS")
	_ = v.BindEnv("db_server.name", "DB_NAME")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// a malformed interval must not abort startup
	interval, castErr := cast.ToFloat64E(v.Get("sensors.update_interval"))
	if castErr != nil {
		logrus.Warnf("Invalid update interval %v, using default: %s", v.Get("sensors.update_interval"), DefaultUpdateInterval)
		interval = DefaultUpdateInterval.Hours()
	}
	v.Set("sensors.update_interval", interval)

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
