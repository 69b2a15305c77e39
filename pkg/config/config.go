package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Almacenes soportados para catálogo, órdenes y usuarios.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Modos de guardado de movimientos.
const (
	SaverSimulated = "simulated"
	SaverPostgres  = "postgres"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	DB       DBConfig
	JWT      JWTConfig
	HTTP     HTTPConfig
	Redis    RedisConfig
	Movement MovementConfig
	Demo     DemoUserConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	Store    string // memory | postgres
	LogLevel string
}

// IsDev indica si se ejecuta en desarrollo.
func (c AppConfig) IsDev() bool { return c.Env == "development" }

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	AutoMigrate bool // corre las migraciones de goose al arrancar
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret             string
	Expiration         int // minutos
	RememberExpiration int // minutos, cuando el usuario marca "Recordarme"
	Issuer             string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	SwaggerFile string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RedisConfig caché del catálogo. Addr vacío desactiva la caché.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// MovementConfig parámetros del formulario de movimientos.
type MovementConfig struct {
	Saver        string        // simulated | postgres
	SaveLatency  time.Duration // latencia del guardado simulado
	DefaultPlant string
	DraftIdle    time.Duration // borradores sin uso por más de esto se descartan
}

// DemoUserConfig usuario sembrado en el almacén en memoria.
type DemoUserConfig struct {
	Email    string
	Password string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, JWT_SECRET, REDIS_ADDR, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "gategroup-ops"),
			Store:    getString(v, "APP_STORE", StoreMemory),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "gategroup_ops"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			AutoMigrate: getBool(v, "DB_AUTO_MIGRATE", false),
		},
		JWT: JWTConfig{
			Secret:             getString(v, "JWT_SECRET", ""),
			Expiration:         getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			RememberExpiration: getInt(v, "JWT_REMEMBER_MINUTES", 60*24*7),
			Issuer:             getString(v, "JWT_ISSUER", "gategroup-ops"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 3000),
			SwaggerFile: getString(v, "HTTP_SWAGGER_FILE", "./docs/swagger.json"),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
			TTL:      time.Duration(getInt(v, "CATALOG_CACHE_TTL_SECONDS", 300)) * time.Second,
		},
		Movement: MovementConfig{
			Saver:        getString(v, "MOVEMENT_SAVER", SaverSimulated),
			SaveLatency:  time.Duration(getInt(v, "MOVEMENT_SAVE_LATENCY_MS", 650)) * time.Millisecond,
			DefaultPlant: getString(v, "MOVEMENT_DEFAULT_PLANT", "PL-01"),
			DraftIdle:    time.Duration(getInt(v, "DRAFT_IDLE_MINUTES", 30)) * time.Minute,
		},
		Demo: DemoUserConfig{
			Email:    getString(v, "DEMO_USER_EMAIL", "operador@gategroup.com"),
			Password: getString(v, "DEMO_USER_PASSWORD", ""),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET es obligatorio")
	}
	switch c.App.Store {
	case StoreMemory, StorePostgres:
	default:
		return fmt.Errorf("APP_STORE inválido: %q", c.App.Store)
	}
	switch c.Movement.Saver {
	case SaverSimulated:
	case SaverPostgres:
		if c.App.Store != StorePostgres {
			return fmt.Errorf("MOVEMENT_SAVER=postgres requiere APP_STORE=postgres")
		}
	default:
		return fmt.Errorf("MOVEMENT_SAVER inválido: %q", c.Movement.Saver)
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(v.GetString(key))
		if err != nil {
			return def
		}
		return n
	default:
		return v.GetInt(key)
	}
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
