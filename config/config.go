package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Duration aceita strings no formato de time.ParseDuration ("15s", "720h") no TOML.
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type Config struct {
	App         AppConfig         `toml:"app"`
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	JWT         JWTConfig         `toml:"jwt"`
	GoogleOAuth GoogleOAuthConfig `toml:"google_oauth"`
	Log         LogConfig         `toml:"log"`
	RateLimit   RateLimitConfig   `toml:"rate_limit"`
	Events      EventsConfig      `toml:"events"`
}

type AppConfig struct {
	Name        string `toml:"name"`
	Environment string `toml:"environment"`
}

type ServerConfig struct {
	Port            string   `toml:"port"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
	AllowedOrigins  []string `toml:"allowed_origins"`
}

// DatabaseConfig aceita DSN completo ou os campos separados.
// Driver "sqlite" usa DSN como caminho do arquivo (ou ":memory:").
type DatabaseConfig struct {
	Driver          string   `toml:"driver"`
	DSN             string   `toml:"dsn"`
	Host            string   `toml:"host"`
	Port            int      `toml:"port"`
	User            string   `toml:"user"`
	Password        string   `toml:"password"`
	DBName          string   `toml:"dbname"`
	SSLMode         string   `toml:"sslmode"`
	MaxOpenConns    int      `toml:"max_open_conns"`
	MaxIdleConns    int      `toml:"max_idle_conns"`
	ConnMaxLifetime Duration `toml:"conn_max_lifetime"`
}

type JWTConfig struct {
	Secret     string   `toml:"secret"`
	Expiration Duration `toml:"expiration"`
	Issuer     string   `toml:"issuer"`
}

type GoogleOAuthConfig struct {
	Enabled      bool   `toml:"enabled"`
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RedirectURL  string `toml:"redirect_url"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// RateLimitConfig em requisições por minuto.
type RateLimitConfig struct {
	Public  int `toml:"public"`
	Private int `toml:"private"`
}

type EventsConfig struct {
	AMQPURL  string `toml:"amqp_url"`
	Exchange string `toml:"exchange"`
}

func NewDefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "caixa",
			Environment: "development",
		},
		Server: ServerConfig{
			Port:            "8080",
			ReadTimeout:     Duration(15 * time.Second),
			WriteTimeout:    Duration(15 * time.Second),
			ShutdownTimeout: Duration(10 * time.Second),
			AllowedOrigins:  []string{"*"},
		},
		Database: DatabaseConfig{
			Driver:          "postgres",
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "caixa",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: Duration(5 * time.Minute),
		},
		JWT: JWTConfig{
			Expiration: Duration(30 * 24 * time.Hour),
			Issuer:     "caixa",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		RateLimit: RateLimitConfig{
			Public:  100,
			Private: 300,
		},
		Events: EventsConfig{
			Exchange: "caixa.records",
		},
	}
}

// Load monta a configuração: valores padrão, arquivo TOML opcional
// (CONFIG_FILE) e por fim variáveis de ambiente.
func Load() (*Config, error) {
	var paths []string
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		paths = append(paths, path)
	}
	return LoadFrom(paths...)
}

func LoadFrom(paths ...string) (*Config, error) {
	cfg := NewDefaultConfig()

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler arquivo de configuração %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("falha ao interpretar arquivo de configuração %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if cfg.Database.DSN == "" && cfg.Database.Driver == "postgres" {
		cfg.Database.DSN = cfg.Database.PostgresDSN()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	cfg.App.Name = getEnv("APP_NAME", cfg.App.Name)
	cfg.App.Environment = getEnv("APP_ENV", cfg.App.Environment)

	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)
	cfg.Server.ReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout)
	cfg.Server.WriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout)
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.Server.AllowedOrigins = splitList(origins)
	}

	cfg.Database.Driver = getEnv("DB_DRIVER", cfg.Database.Driver)
	cfg.Database.DSN = getEnv("DATABASE_URL", cfg.Database.DSN)
	cfg.Database.Host = getEnv("DB_HOST", cfg.Database.Host)
	cfg.Database.Port = getEnvInt("DB_PORT", cfg.Database.Port)
	cfg.Database.User = getEnv("DB_USER", cfg.Database.User)
	cfg.Database.Password = getEnv("DB_PASSWORD", cfg.Database.Password)
	cfg.Database.DBName = getEnv("DB_NAME", cfg.Database.DBName)
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", cfg.Database.SSLMode)
	cfg.Database.MaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", cfg.Database.MaxOpenConns)
	cfg.Database.MaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", cfg.Database.MaxIdleConns)
	cfg.Database.ConnMaxLifetime = getEnvDuration("DB_CONN_MAX_LIFETIME", cfg.Database.ConnMaxLifetime)

	cfg.JWT.Secret = getEnv("JWT_SECRET", cfg.JWT.Secret)
	cfg.JWT.Expiration = getEnvDuration("JWT_EXPIRATION", cfg.JWT.Expiration)
	cfg.JWT.Issuer = getEnv("JWT_ISSUER", cfg.JWT.Issuer)

	cfg.GoogleOAuth.Enabled = getEnvBool("GOOGLE_OAUTH_ENABLED", cfg.GoogleOAuth.Enabled)
	cfg.GoogleOAuth.ClientID = getEnv("GOOGLE_OAUTH_CLIENT_ID", cfg.GoogleOAuth.ClientID)
	cfg.GoogleOAuth.ClientSecret = getEnv("GOOGLE_OAUTH_CLIENT_SECRET", cfg.GoogleOAuth.ClientSecret)
	cfg.GoogleOAuth.RedirectURL = getEnv("GOOGLE_OAUTH_REDIRECT_URL", cfg.GoogleOAuth.RedirectURL)

	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("LOG_FORMAT", cfg.Log.Format)

	cfg.RateLimit.Public = getEnvInt("RATE_LIMIT_PUBLIC", cfg.RateLimit.Public)
	cfg.RateLimit.Private = getEnvInt("RATE_LIMIT_PRIVATE", cfg.RateLimit.Private)

	cfg.Events.AMQPURL = getEnv("EVENTS_AMQP_URL", cfg.Events.AMQPURL)
	cfg.Events.Exchange = getEnv("EVENTS_EXCHANGE", cfg.Events.Exchange)
}

func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Server.Port); err != nil {
		problems = append(problems, fmt.Sprintf("porta inválida '%s'", c.Server.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("porta %d fora do intervalo 1-65535", port))
	}

	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		problems = append(problems, fmt.Sprintf("driver de banco desconhecido '%s'", c.Database.Driver))
	}

	if c.Database.Driver == "sqlite" && c.Database.DSN == "" {
		problems = append(problems, "DATABASE_URL é obrigatório para o driver sqlite")
	}

	if c.IsProduction() && len(c.JWT.Secret) < 32 {
		problems = append(problems, "JWT_SECRET deve ter no mínimo 32 caracteres em produção")
	}

	if c.JWT.Expiration <= 0 {
		problems = append(problems, "JWT_EXPIRATION deve ser positivo")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuração inválida: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (d DatabaseConfig) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback Duration) Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return Duration(parsed)
		}
	}
	return fallback
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
