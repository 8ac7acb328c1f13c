package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverDynamoDB = "dynamodb"
)

type Config struct {
	HTTP  HTTP
	Store Store
	Log   Log
}

type HTTP struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type Store struct {
	Driver string
	// AutoCreate crea tablas/índices al arrancar.
	AutoCreate bool

	DSN string

	DynamoEndpoint       string
	DynamoRegion         string
	DynamoBirdsTable     string
	DynamoSightingsTable string
}

type Log struct {
	Level  string
	Format string
	App    string
}

// Load lee la configuración del entorno. Un .env, si existe, lo carga cmd/api antes.
func Load() (Config, error) {
	dsn := getEnv("DB_DSN", "")

	defaultDriver := DriverMemory
	if dsn != "" {
		defaultDriver = DriverPostgres
	}

	cfg := Config{
		HTTP: HTTP{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDuration("HTTP_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:    getDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Store: Store{
			Driver:               strings.ToLower(getEnv("STORE_DRIVER", defaultDriver)),
			AutoCreate:           getBool("STORE_AUTOCREATE", false),
			DSN:                  dsn,
			DynamoEndpoint:       getEnv("DYNAMODB_ENDPOINT", ""),
			DynamoRegion:         getEnv("DYNAMODB_REGION", "us-east-1"),
			DynamoBirdsTable:     getEnv("DYNAMODB_BIRDS_TABLE", "birds"),
			DynamoSightingsTable: getEnv("DYNAMODB_SIGHTINGS_TABLE", "sightings"),
		},
		Log: Log{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
			App:    getEnv("APP_NAME", "bird-sightings"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	return validation.Errors{
		"http":  c.HTTP.Validate(),
		"store": c.Store.Validate(),
		"log":   c.Log.Validate(),
	}.Filter()
}

func (h HTTP) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Port, validation.Required, is.Port),
		validation.Field(&h.ReadTimeout, validation.Min(time.Duration(0))),
		validation.Field(&h.WriteTimeout, validation.Min(time.Duration(0))),
		validation.Field(&h.ShutdownTimeout, validation.Min(time.Duration(0))),
	)
}

func (s Store) Validate() error {
	isDynamo := s.Driver == DriverDynamoDB
	return validation.ValidateStruct(&s,
		validation.Field(&s.Driver, validation.Required, validation.In(DriverMemory, DriverPostgres, DriverDynamoDB)),
		validation.Field(&s.DSN, validation.When(s.Driver == DriverPostgres, validation.Required.Error("DB_DSN is required for the postgres driver"))),
		validation.Field(&s.DynamoEndpoint, validation.When(s.DynamoEndpoint != "", is.URL)),
		validation.Field(&s.DynamoRegion, validation.When(isDynamo, validation.Required)),
		validation.Field(&s.DynamoBirdsTable, validation.When(isDynamo, validation.Required)),
		validation.Field(&s.DynamoSightingsTable, validation.When(isDynamo, validation.Required)),
	)
}

func (l Log) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.In("debug", "info", "warn", "warning", "error")),
		validation.Field(&l.Format, validation.In("text", "json")),
	)
}

// Addr devuelve la dirección de escucha (":8080").
func (h HTTP) Addr() string {
	return ":" + h.Port
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return def
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return def
	}
	return v
}
