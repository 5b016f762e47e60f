package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix namespaces every environment variable read by Load.
	EnvPrefix = "ponto"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "PONTO_DB_DSN"
	EnvDBHost = "PONTO_DB_HOST"
	EnvDBUser = "PONTO_DB_USER"
	EnvDBName = "PONTO_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

// Config is the immutable process-wide configuration, loaded once at startup
// and handed to each component at construction time.
type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	Cipher        CipherConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	GCP           GCPConfig
	Storage       StorageConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if err := cfg.Cipher.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string   `envconfig:"PONTO_APP_ENV" required:"true"`
	Port         string   `envconfig:"PONTO_APP_PORT" default:"3000"`
	LogLevel     string   `envconfig:"PONTO_LOG_LEVEL" default:"info"`
	LogWarnStack bool     `envconfig:"PONTO_LOG_WARN_STACK" default:"false"`
	CORSOrigins  []string `envconfig:"PONTO_CORS_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"PONTO_DB_DSN"`
	Driver string `envconfig:"PONTO_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"PONTO_DB_HOST"`
	LegacyPort     int    `envconfig:"PONTO_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"PONTO_DB_USER"`
	LegacyPassword string `envconfig:"PONTO_DB_PASSWORD"`
	LegacyName     string `envconfig:"PONTO_DB_NAME"`
	LegacySSLMode  string `envconfig:"PONTO_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"PONTO_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"PONTO_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"PONTO_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"PONTO_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"PONTO_REDIS_URL"`
	Address      string        `envconfig:"PONTO_REDIS_ADDR"`
	Password     string        `envconfig:"PONTO_REDIS_PASSWORD"`
	DB           int           `envconfig:"PONTO_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PONTO_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PONTO_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PONTO_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PONTO_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PONTO_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"PONTO_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"PONTO_JWT_ISSUER" default:"ponto-digital"`
	ExpirationMinutes int    `envconfig:"PONTO_JWT_EXPIRATION_MINUTES" default:"480"`
}

// Expiration returns the access token lifetime.
func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"PONTO_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"PONTO_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"PONTO_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"PONTO_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"PONTO_ARGON_KEY_LEN" default:"32"`
}

// CipherConfig keys the symmetric cipher protecting CPF and phone columns.
// The key is loaded once at startup and never rotated at runtime.
type CipherConfig struct {
	Key string `envconfig:"PONTO_CIPHER_KEY" required:"true"`
}

func (c CipherConfig) validate() error {
	if len(c.Key) != 32 {
		return fmt.Errorf("cipher key must be exactly 32 bytes, got %d", len(c.Key))
	}
	return nil
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"PONTO_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"PONTO_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"PONTO_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"PONTO_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"PONTO_AUTO_MIGRATE" default:"false"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"PONTO_GCP_PROJECT_ID"`
	CredentialsJSON        string `envconfig:"PONTO_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"PONTO_GOOGLE_APPLICATION_CREDENTIALS"`
}

type StorageConfig struct {
	BucketName   string `envconfig:"PONTO_STORAGE_BUCKET" required:"true"`
	PhotoPrefix  string `envconfig:"PONTO_STORAGE_PHOTO_PREFIX" default:"fotos_ponto"`
	UploadPrefix string `envconfig:"PONTO_STORAGE_UPLOAD_PREFIX" default:"uploads"`
	BackupPrefix string `envconfig:"PONTO_STORAGE_BACKUP_PREFIX" default:"backups"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
