package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultHTTPHost           = "127.0.0.1"
	defaultMaxRequestBodySize = "100KB"
	defaultGatewayTimeout     = 15 * time.Second
	defaultStorageBlobURL     = "file://./data?create_dir=true"
	defaultPlaceholderImage   = "https://via.placeholder.com/150"
	defaultShippingFee        = 30000
	defaultExpressShippingFee = 50000
	defaultFreeShippingAbove  = 500000
	defaultOrderPageLimit     = 10
)

// Storage providers for the durable client-state store.
const (
	StorageProviderBlob     = "blob"
	StorageProviderRedis    = "redis"
	StorageProviderPostgres = "postgres"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		// Host defaults to loopback
		Host               string   `json:"host" yaml:"host"`
		Port               int      `json:"port" yaml:"port"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Gateway configuration for the remote store backend
	Gateway *GatewayConfig `json:"gateway" yaml:"gateway"`

	// Storage selects and configures the durable client-state store
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Checkout configuration for cart pricing fallbacks
	Checkout *CheckoutConfig `json:"checkout" yaml:"checkout"`

	// BankTransfer holds the account shown when the backend cannot provide one
	BankTransfer *BankTransferConfig `json:"bankTransfer" yaml:"bankTransfer"`

	// QRCode configuration for bank transfer QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event forwarding
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// GatewayConfig defines how the backend REST API is reached
type GatewayConfig struct {
	// Backend origin, e.g. http://localhost:5000
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Path prefix of every resource, e.g. /api/
	APIPrefix string `json:"apiPrefix" yaml:"apiPrefix"`

	// Per-request timeout of the HTTP client
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	Breaker BreakerConfig `json:"breaker" yaml:"breaker"`
}

// BreakerConfig tunes the gateway circuit breaker
type BreakerConfig struct {
	// Requests allowed through while half-open
	MaxRequests uint32 `json:"maxRequests" yaml:"maxRequests"`

	// Cyclic period of the closed state for clearing counts
	Interval time.Duration `json:"interval" yaml:"interval"`

	// Time spent open before moving to half-open
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Consecutive failures that trip the breaker
	ConsecutiveFailures uint32 `json:"consecutiveFailures" yaml:"consecutiveFailures"`
}

// StorageConfig selects the durable store backend
type StorageConfig struct {
	// Provider type: "blob", "redis" or "postgres"
	Provider string `json:"provider" yaml:"provider"`

	// Bucket URL for the blob provider (file://, mem://, gs://, s3://)
	BlobURL string `json:"blobUrl" yaml:"blobUrl"`

	// Prefix prepended to every stored key
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// RedisConfig defines the redis connection for the redis storage provider
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// CheckoutConfig defines local pricing fallbacks
type CheckoutConfig struct {
	// Shipping fee used when the backend cannot price an order
	FallbackShippingFee int64 `json:"fallbackShippingFee" yaml:"fallbackShippingFee"`

	// Express rate and free shipping threshold used when shipping/calculate fails
	FallbackExpressShippingFee    int64 `json:"fallbackExpressShippingFee" yaml:"fallbackExpressShippingFee"`
	FallbackFreeShippingThreshold int64 `json:"fallbackFreeShippingThreshold" yaml:"fallbackFreeShippingThreshold"`

	// Image used for products without one
	PlaceholderImage string `json:"placeholderImage" yaml:"placeholderImage"`

	// Default page size of the order history
	OrderPageLimit int `json:"orderPageLimit" yaml:"orderPageLimit"`
}

// BankTransferConfig is the fallback bank account for transfers
type BankTransferConfig struct {
	BankName        string `json:"bankName" yaml:"bankName"`
	AccountNumber   string `json:"accountNumber" yaml:"accountNumber"`
	AccountName     string `json:"accountName" yaml:"accountName"`
	TransferContent string `json:"transferContent" yaml:"transferContent"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event forwarding
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
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

// applyDefaults fills the optional sections so consumers never see nil.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.Host) == "" {
		cfg.HTTP.Host = defaultHTTPHost
	}
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Gateway == nil {
		cfg.Gateway = &GatewayConfig{}
	}
	if cfg.Gateway.Timeout <= 0 {
		cfg.Gateway.Timeout = defaultGatewayTimeout
	}
	if cfg.Gateway.APIPrefix == "" {
		cfg.Gateway.APIPrefix = "/api/"
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Provider == "" {
		cfg.Storage.Provider = StorageProviderBlob
	}
	if cfg.Storage.Provider == StorageProviderBlob && cfg.Storage.BlobURL == "" {
		cfg.Storage.BlobURL = defaultStorageBlobURL
	}

	if cfg.Checkout == nil {
		cfg.Checkout = &CheckoutConfig{}
	}
	if cfg.Checkout.FallbackShippingFee <= 0 {
		cfg.Checkout.FallbackShippingFee = defaultShippingFee
	}
	if cfg.Checkout.FallbackExpressShippingFee <= 0 {
		cfg.Checkout.FallbackExpressShippingFee = defaultExpressShippingFee
	}
	if cfg.Checkout.FallbackFreeShippingThreshold <= 0 {
		cfg.Checkout.FallbackFreeShippingThreshold = defaultFreeShippingAbove
	}
	if cfg.Checkout.PlaceholderImage == "" {
		cfg.Checkout.PlaceholderImage = defaultPlaceholderImage
	}
	if cfg.Checkout.OrderPageLimit <= 0 {
		cfg.Checkout.OrderPageLimit = defaultOrderPageLimit
	}

	if cfg.BankTransfer == nil {
		cfg.BankTransfer = &BankTransferConfig{
			BankName:        "Ngân hàng Vietcombank",
			AccountNumber:   "1234567890",
			AccountName:     "SMARTSHOP COMPANY",
			TransferContent: "Thanh toan don hang [ORDER_NUMBER]",
		}
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
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
