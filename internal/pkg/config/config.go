package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (timezone, policies, queue sizes)
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	CORS         CORSConfig
	Log          LogConfig
	Engine       EngineConfig
	Persistence  PersistenceConfig
	Notification NotificationConfig
	Catalog      CatalogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"reservations"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type EngineConfig struct {
	RoomPolicy      string        `envconfig:"ROOM_POLICY" default:"smallest_fit"`
	ParkingPolicy   string        `envconfig:"PARKING_POLICY" default:"first_fit"`
	LockWaitTimeout time.Duration `envconfig:"LOCK_WAIT_TIMEOUT" default:"0s"` // 0 waits for the current holder
	DayTimeZone     string        `envconfig:"DAY_TIMEZONE" default:"UTC"`
}

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverBadger   = "badger"

	NotifyLog    = "log"
	NotifyOutbox = "outbox"
)

type PersistenceConfig struct {
	Driver      string `envconfig:"PERSISTENCE_DRIVER" default:"memory"`
	BadgerDir   string `envconfig:"BADGER_DIR" default:"./data/badger"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type NotificationConfig struct {
	Driver    string `envconfig:"NOTIFY_DRIVER" default:"log"`
	QueueSize int    `envconfig:"NOTIFY_QUEUE_SIZE" default:"1024"`
	Workers   int    `envconfig:"NOTIFY_WORKERS" default:"2"`
}

// CatalogConfig seeds the resource inventory at startup.
//
//	CATALOG_ROOMS="R1:4,R2:8"                                   room id : capacity
//	CATALOG_LOTS="A:3"                                          lot code : levels
//	CATALOG_SPOTS_PER_LEVEL="motorcycle:2,compact:6,large:2"    kind : count
type CatalogConfig struct {
	Rooms         []string `envconfig:"CATALOG_ROOMS" default:""`
	Lots          []string `envconfig:"CATALOG_LOTS" default:""`
	SpotsPerLevel []string `envconfig:"CATALOG_SPOTS_PER_LEVEL" default:"motorcycle:2,compact:6,large:2"`
}

// Pair is one "name:count" entry of a catalog list, kept in declaration order.
type Pair struct {
	Name  string
	Count int
}

func ParsePairs(entries []string) ([]Pair, error) {
	pairs := make([]Pair, 0, len(entries))
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		name, count, ok := strings.Cut(e, ":")
		if !ok {
			return nil, fmt.Errorf("invalid catalog entry %q: expected name:count", e)
		}
		n, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid catalog entry %q: count must be a non-negative integer", e)
		}
		pairs = append(pairs, Pair{Name: strings.TrimSpace(name), Count: n})
	}
	return pairs, nil
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c EngineConfig) DayLocation() (*time.Location, error) {
	return time.LoadLocation(c.DayTimeZone)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Engine: EngineConfig{
			RoomPolicy:    "smallest_fit",
			ParkingPolicy: "first_fit",
			DayTimeZone:   "UTC",
		},
		Persistence: PersistenceConfig{
			Driver: DriverMemory,
		},
		Notification: NotificationConfig{
			Driver:    NotifyLog,
			QueueSize: 64,
			Workers:   1,
		},
		Catalog: CatalogConfig{
			Rooms:         []string{"R1:4"},
			Lots:          []string{"A:1"},
			SpotsPerLevel: []string{"motorcycle:1", "compact:2", "large:1"},
		},
	}
}
