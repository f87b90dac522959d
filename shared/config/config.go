package config

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	HttpPort     int           `yaml:"http_port" validate:"required"`
	Pg           Pg            `yaml:"pg" validate:"required"`
	JwtTTL       time.Duration `yaml:"jwt_ttl" validate:"required"` // in seconds
	LogLevel     string        `yaml:"log_level"`
	LogJSON      bool          `yaml:"log_json"`
	SanitizeHTML bool          `yaml:"sanitize_html"`
	CorsOrigins  []string      `yaml:"cors_origins"`
	HTTPS        bool          `yaml:"https"` // served behind tls, enables hsts
	// requests per second allowed for one user on write endpoints
	WriteRps float64 `yaml:"write_rps" validate:"required"`
	// requests per second allowed for the whole api
	GlobalRps float64 `yaml:"global_rps" validate:"required"`
}

type Pg struct {
	Host   string `yaml:"host" validate:"required"`
	Port   int    `yaml:"port" validate:"required"`
	User   string `yaml:"user" validate:"required"`
	Dbname string `yaml:"dbname" validate:"required"`
}

type Private struct {
	PgPassword string `yaml:"pg_password" validate:"required"`
	JwtKey     string `yaml:"jwt_key" validate:"required"`
}

// implementing jwt config

func (s *Config) JwtKey() string {
	return s.Private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return s.Public.JwtTTL * time.Second
}

// PgDSN builds a lib/pq connection string.
func (s *Config) PgDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		s.Public.Pg.Host, s.Public.Pg.Port, s.Public.Pg.User, s.Private.PgPassword, s.Public.Pg.Dbname)
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

// applyEnv lets secrets and the port come from the environment (or .env)
// instead of files.
func applyEnv(cfg *Config) {
	if v := os.Getenv("FORUM_PG_PASSWORD"); v != "" {
		cfg.Private.PgPassword = v
	}
	if v := os.Getenv("FORUM_JWT_KEY"); v != "" {
		cfg.Private.JwtKey = v
	}
	if v := os.Getenv("FORUM_HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Public.HttpPort = port
		}
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{Public: public, Private: private}
	applyEnv(cfg)

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		panic("invalid config: " + err.Error())
	}
	return cfg
}
