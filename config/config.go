package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultProjectName        = "ZERO WASTE"
	defaultTokenAlgorithm     = "HS256"
	defaultAccessTTL          = 8 * 24 * time.Hour
	defaultVerifyTTL          = 8 * 24 * time.Hour
	defaultResetTTL           = 10 * time.Minute
	defaultPaystackBaseURL    = "https://api.paystack.co"
	defaultWorkerPushPath     = "/push"
)

// Storage drivers
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Storage selects the persistence backend
	Storage StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// App holds values rendered into user-facing links and emails
	App AppConfig `json:"app" yaml:"app"`

	Token *TokenConfig `json:"token" yaml:"token"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Mail configuration for verification and password recovery emails
	Mail *MailConfig `json:"mail" yaml:"mail"`

	// Paystack configuration for payment verification
	Paystack *PaystackConfig `json:"paystack" yaml:"paystack"`

	// QRCode configuration for pickup QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Redis backs the login rate limiter
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// Worker configures the booking event worker process
	Worker WorkerConfig `json:"worker" yaml:"worker"`
}

// WorkerConfig defines the notification worker's HTTP endpoint
type WorkerConfig struct {
	// Port overrides http.port for the worker process
	Port int `json:"port" yaml:"port"`
	// PushPath is where Pub/Sub push subscriptions deliver messages
	PushPath string `json:"pushPath" yaml:"pushPath"`
}

// StorageConfig defines the persistence backend
type StorageConfig struct {
	// Driver is "postgres" (default) or "memory"
	Driver string `json:"driver" yaml:"driver"`
	// Migrate applies embedded schema migrations on startup
	Migrate bool `json:"migrate" yaml:"migrate"`
	// SlowQueryThreshold marks queries logged at warn level; zero keeps 200ms
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// AppConfig defines user-facing application settings
type AppConfig struct {
	ProjectName string `json:"projectName" yaml:"projectName"`
	FrontendURL string `json:"frontendUrl" yaml:"frontendUrl"`
}

// TokenConfig defines signing settings and per-purpose lifetimes
type TokenConfig struct {
	Secret    string        `json:"secret" yaml:"secret"`
	Algorithm string        `json:"algorithm" yaml:"algorithm"`
	AccessTTL time.Duration `json:"accessTTL" yaml:"accessTTL"`
	VerifyTTL time.Duration `json:"verifyTTL" yaml:"verifyTTL"`
	ResetTTL  time.Duration `json:"resetTTL" yaml:"resetTTL"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
	// AllowInactiveReset lets unverified accounts reset their password
	AllowInactiveReset bool `json:"allowInactiveReset" yaml:"allowInactiveReset"`
	// RequireVerifiedLogin rejects logins from accounts that have not verified their email
	RequireVerifiedLogin bool `json:"requireVerifiedLogin" yaml:"requireVerifiedLogin"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MailConfig defines outgoing email configuration
type MailConfig struct {
	// Provider is "smtp", "brevo" or "log" (default)
	Provider  string `json:"provider" yaml:"provider"`
	FromEmail string `json:"fromEmail" yaml:"fromEmail"`
	FromName  string `json:"fromName" yaml:"fromName"`

	SMTP struct {
		Host     string `json:"host" yaml:"host"`
		Port     int    `json:"port" yaml:"port"`
		Username string `json:"username" yaml:"username"`
		Password string `json:"password" yaml:"password"`
		// Timeout bounds dialing and each SMTP command
		Timeout time.Duration `json:"timeout" yaml:"timeout"`
	} `json:"smtp" yaml:"smtp"`

	Brevo struct {
		APIKey  string        `json:"apiKey" yaml:"apiKey"`
		BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
		Timeout time.Duration `json:"timeout" yaml:"timeout"`
	} `json:"brevo" yaml:"brevo"`
}

// PaystackConfig defines the payment gateway client configuration
type PaystackConfig struct {
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	SecretKey string        `json:"secretKey" yaml:"secretKey"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google" or "rabbitmq"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// RabbitMQ settings (for rabbitmq provider and the worker consumer)
	RabbitMQ struct {
		URL   string `json:"url" yaml:"url"`
		Queue string `json:"queue" yaml:"queue"`
	} `json:"rabbitmq" yaml:"rabbitmq"`
}

// RedisConfig defines the Redis connection
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// RateLimitConfig defines the token bucket applied to credential endpoints
type RateLimitConfig struct {
	Enabled        bool          `json:"enabled" yaml:"enabled"`
	Prefix         string        `json:"prefix" yaml:"prefix"`
	Capacity       int           `json:"capacity" yaml:"capacity"`
	RefillTokens   int           `json:"refillTokens" yaml:"refillTokens"`
	RefillInterval time.Duration `json:"refillInterval" yaml:"refillInterval"`
	TTL            time.Duration `json:"ttl" yaml:"ttl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env file is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageDriverPostgres
	}
	if cfg.App.ProjectName == "" {
		cfg.App.ProjectName = defaultProjectName
	}

	if cfg.Token == nil {
		cfg.Token = &TokenConfig{}
	}
	if cfg.Token.Algorithm == "" {
		cfg.Token.Algorithm = defaultTokenAlgorithm
	}
	if cfg.Token.AccessTTL <= 0 {
		cfg.Token.AccessTTL = defaultAccessTTL
	}
	if cfg.Token.VerifyTTL <= 0 {
		cfg.Token.VerifyTTL = defaultVerifyTTL
	}
	if cfg.Token.ResetTTL <= 0 {
		cfg.Token.ResetTTL = defaultResetTTL
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Paystack != nil && cfg.Paystack.BaseURL == "" {
		cfg.Paystack.BaseURL = defaultPaystackBaseURL
	}

	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = cfg.HTTP.Port
	}
	if cfg.Worker.PushPath == "" {
		cfg.Worker.PushPath = defaultWorkerPushPath
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
