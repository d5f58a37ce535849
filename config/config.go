package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Storage backends accepted in STORAGE_BACKEND.
const (
	BackendMemory = "memory"
	BackendSQL    = "sql"
	BackendRedis  = "redis"
	BackendBadger = "badger"
)

// Config holds the application's configuration values.
type Config struct {
	AppName   string `json:"appname"`
	AppEnv    string `json:"appenv"`
	AppPort   uint16 `json:"appport"`
	GinMode   string `json:"ginmode"`
	BaseURL   string `json:"baseurl"`
	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`

	StorageBackend string `json:"storage_backend"`
	DBHost         string `json:"dbhost"`
	DBPort         uint16 `json:"dbport"`
	DBName         string `json:"dbname"`
	DBUser         string `json:"dbuser"`
	DBPass         string `json:"-"`
	RedisAddr      string `json:"redis_addr"`
	RedisPass      string `json:"-"`
	RedisDB        int    `json:"redis_db"`
	RedisKeyPrefix string `json:"redis_key_prefix"`
	BadgerPath     string `json:"badger_path"`
	SeedDemoData   bool   `json:"seed_demo_data"`

	SimulatorEnabled  bool          `json:"simulator_enabled"`
	SimulatorInterval time.Duration `json:"simulator_interval"`
	SimulatorPolicy   string        `json:"simulator_policy"`

	GeneratorProvider string        `json:"generator_provider"`
	GeneratorAPIKey   string        `json:"-"`
	GeneratorModel    string        `json:"generator_model"`
	GeneratorTimeout  time.Duration `json:"generator_timeout"`

	WebhookURL  string `json:"webhook_url"`
	NATSURL     string `json:"nats_url"`
	NATSSubject string `json:"nats_subject"`

	GeoIPDBPath      string `json:"geoip_db_path"`
	GeoIPDownloadURL string `json:"geoip_download_url"`

	GenerateRateLimit  int           `json:"generate_rate_limit"`
	GenerateRateWindow time.Duration `json:"generate_rate_window"`
}

var config *Config
var once sync.Once

// LoadConfig loads the environment variables from a .env file, and returns a singleton Config instance.
func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil && os.Getenv("APPENV") != "test" {
			log.Info().Msg("no .env file found, using process environment")
		}
		config = FromEnv()
	})
	return config
}

// FromEnv builds a Config from the current environment with defaults applied.
func FromEnv() *Config {
	appPort, _ := strconv.ParseUint(os.Getenv("APPPORT"), 10, 16)
	dbPort, _ := strconv.ParseUint(os.Getenv("DBPORT"), 10, 16)
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	rateLimit, _ := strconv.Atoi(os.Getenv("GENERATE_RATE_LIMIT"))

	cfg := &Config{
		AppName:   os.Getenv("APPNAME"),
		AppEnv:    os.Getenv("APPENV"),
		AppPort:   uint16(appPort),
		GinMode:   os.Getenv("GINMODE"),
		BaseURL:   os.Getenv("BASEURL"),
		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: os.Getenv("LOG_FORMAT"),

		StorageBackend: strings.ToLower(os.Getenv("STORAGE_BACKEND")),
		DBHost:         os.Getenv("DBHOST"),
		DBPort:         uint16(dbPort),
		DBName:         os.Getenv("DBNAME"),
		DBUser:         os.Getenv("DBUSER"),
		DBPass:         os.Getenv("DBPASS"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPass:      os.Getenv("REDIS_PASS"),
		RedisDB:        redisDB,
		RedisKeyPrefix: os.Getenv("REDIS_KEY_PREFIX"),
		BadgerPath:     os.Getenv("BADGER_PATH"),
		SeedDemoData:   envBool("SEED_DEMO_DATA", false),

		SimulatorEnabled:  envBool("SIMULATOR_ENABLED", false),
		SimulatorInterval: envDuration("SIMULATOR_INTERVAL"),
		SimulatorPolicy:   os.Getenv("SIMULATOR_POLICY"),

		GeneratorProvider: strings.ToLower(os.Getenv("GENERATOR_PROVIDER")),
		GeneratorAPIKey:   os.Getenv("GENERATOR_API_KEY"),
		GeneratorModel:    os.Getenv("GENERATOR_MODEL"),
		GeneratorTimeout:  envDuration("GENERATOR_TIMEOUT"),

		WebhookURL:  os.Getenv("WEBHOOK_URL"),
		NATSURL:     os.Getenv("NATS_URL"),
		NATSSubject: os.Getenv("NATS_SUBJECT"),

		GeoIPDBPath:      os.Getenv("GEOIP_DB_PATH"),
		GeoIPDownloadURL: os.Getenv("GEOIP_DOWNLOAD_URL"),

		GenerateRateLimit:  rateLimit,
		GenerateRateWindow: envDuration("GENERATE_RATE_WINDOW"),
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.AppName == "" {
		c.AppName = "tripwire"
	}
	if c.AppPort == 0 {
		c.AppPort = 8080
	}
	if c.GinMode == "" {
		c.GinMode = "release"
	}
	if c.BaseURL == "" {
		c.BaseURL = fmt.Sprintf("http://localhost:%d", c.AppPort)
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "json"
	}
	if c.StorageBackend == "" {
		c.StorageBackend = BackendMemory
	}
	if c.DBPort == 0 {
		c.DBPort = 3306
	}
	if c.RedisKeyPrefix == "" {
		c.RedisKeyPrefix = "tripwire:"
	}
	if c.SimulatorInterval <= 0 {
		c.SimulatorInterval = 15 * time.Second
	}
	if c.SimulatorPolicy == "" {
		c.SimulatorPolicy = "active_only"
	}
	if c.GeneratorProvider == "" {
		c.GeneratorProvider = "mock"
	}
	if c.GeneratorTimeout <= 0 {
		c.GeneratorTimeout = 30 * time.Second
	}
	if c.NATSSubject == "" {
		c.NATSSubject = "tripwire.alerts"
	}
	if c.GenerateRateLimit <= 0 {
		c.GenerateRateLimit = 10
	}
	if c.GenerateRateWindow <= 0 {
		c.GenerateRateWindow = time.Minute
	}
}

func envBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

// envDuration accepts Go durations ("15s") or plain seconds ("15").
func envDuration(key string) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return 0
}

// ConnectMySQL establishes a connection to a MySQL database using the configuration values.
// In the test environment it opens an in-memory sqlite database instead.
func ConnectMySQL() (*gorm.DB, error) {
	cfg := LoadConfig()
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	if cfg.AppEnv == "test" {
		dsn := fmt.Sprintf("file:tripwire_%d?mode=memory&cache=shared", time.Now().UnixNano())
		return gorm.Open(sqlite.Open(dsn), gormCfg)
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	db, err := gorm.Open(mysql.Open(dsn), gormCfg)
	if err != nil {
		return nil, err
	}
	return db, nil
}
