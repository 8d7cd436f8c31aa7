package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Database   Database
	Prometheus Prometheus
	Redis      Redis
}

type HTTPServer struct {
	Address      string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	BodyLimit    int
}

type Database struct {
	Driver          string
	Username        string
	Password        string
	Host            string
	Port            string
	DbName          string
	SSLMode         string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

type Prometheus struct {
	Enabled bool
	Address string
	Port    int
}

type Redis struct {
	Enabled  bool
	Address  string
	Port     int
	Password string
	DB       int
	PoolSize int
	TTL      time.Duration
}

// URL renders the connection string for the given scheme. pgx accepts
// "postgres", the migrate driver expects "pgx5".
func (d Database) URL(scheme string) string {
	u := url.URL{
		Scheme:   scheme,
		User:     url.UserPassword(d.Username, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.DbName,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}

func (s HTTPServer) ListenAddr() string {
	return net.JoinHostPort(s.Address, strconv.Itoa(s.Port))
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Printf("Error loading config: %s", err)
		os.Exit(1)
	}
	return cfg
}

func Load() (*Config, error) {
	// .env is optional and never overrides variables already set.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("http_server.port", "PORT", "HTTP_SERVER_PORT"); err != nil {
		return nil, fmt.Errorf("bind PORT: %w", err)
	}

	v.SetDefault("env", "dev")

	v.SetDefault("http_server.address", "0.0.0.0")
	v.SetDefault("http_server.port", 3000)
	v.SetDefault("http_server.read_timeout", 10*time.Second)
	v.SetDefault("http_server.write_timeout", 10*time.Second)
	v.SetDefault("http_server.idle_timeout", 30*time.Second)
	v.SetDefault("http_server.body_limit", 1024*1024)

	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "admin")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.db_name", "timeline")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.max_conn_lifetime", 30*time.Minute)
	v.SetDefault("database.max_conn_idle_time", 5*time.Minute)

	v.SetDefault("prometheus.enabled", true)
	v.SetDefault("prometheus.address", "0.0.0.0")
	v.SetDefault("prometheus.port", 9103)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.address", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.ttl", 5*time.Second)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		Env: v.GetString("env"),
		HTTPServer: HTTPServer{
			Address:      v.GetString("http_server.address"),
			Port:         v.GetInt("http_server.port"),
			ReadTimeout:  v.GetDuration("http_server.read_timeout"),
			WriteTimeout: v.GetDuration("http_server.write_timeout"),
			IdleTimeout:  v.GetDuration("http_server.idle_timeout"),
			BodyLimit:    v.GetInt("http_server.body_limit"),
		},
		Database: Database{
			Driver:          v.GetString("database.driver"),
			Username:        v.GetString("database.username"),
			Password:        v.GetString("database.password"),
			Host:            v.GetString("database.host"),
			Port:            v.GetString("database.port"),
			DbName:          v.GetString("database.db_name"),
			SSLMode:         v.GetString("database.ssl_mode"),
			MaxConns:        v.GetInt32("database.max_conns"),
			MinConns:        v.GetInt32("database.min_conns"),
			MaxConnLifetime: v.GetDuration("database.max_conn_lifetime"),
			MaxConnIdleTime: v.GetDuration("database.max_conn_idle_time"),
		},
		Prometheus: Prometheus{
			Enabled: v.GetBool("prometheus.enabled"),
			Address: v.GetString("prometheus.address"),
			Port:    v.GetInt("prometheus.port"),
		},
		Redis: Redis{
			Enabled:  v.GetBool("redis.enabled"),
			Address:  v.GetString("redis.address"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			PoolSize: v.GetInt("redis.pool_size"),
			TTL:      v.GetDuration("redis.ttl"),
		},
	}

	switch cfg.Database.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}

	return cfg, nil
}
