package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	// Cosmos DB
	CosmosEndpoint    string `mapstructure:"cosmosdb_uri"`
	CosmosKey         string `mapstructure:"cosmosdb_key"`
	CosmosDatabase    string `mapstructure:"cosmosdb_database"`
	CosmosContainer   string `mapstructure:"cosmosdb_container"`
	PartitionKeyField string `mapstructure:"cosmosdb_partition_key_field"`

	// Key Vault
	KeyVaultURI string `mapstructure:"keyvault_uri"`

	// Transport
	Transport   string `mapstructure:"mcp_transport"`
	HTTPAddress string `mapstructure:"mcp_http_address"`

	// Logging
	LogLevel           string `mapstructure:"log_level"`
	LogFormat          string `mapstructure:"log_format"`
	EnableAuditLogging bool   `mapstructure:"enable_audit_logging"`
}

// keys maps every config key to the environment variable that overrides it.
var keys = map[string]string{
	"cosmosdb_uri":                 "COSMOSDB_URI",
	"cosmosdb_key":                 "COSMOSDB_KEY",
	"cosmosdb_database":            "COSMOSDB_DATABASE",
	"cosmosdb_container":           "COSMOSDB_CONTAINER",
	"cosmosdb_partition_key_field": "COSMOSDB_PARTITION_KEY_FIELD",
	"keyvault_uri":                 "KEYVAULT_URI",
	"mcp_transport":                "MCP_TRANSPORT",
	"mcp_http_address":             "MCP_HTTP_ADDRESS",
	"log_level":                    "LOG_LEVEL",
	"log_format":                   "LOG_FORMAT",
	"enable_audit_logging":         "ENABLE_AUDIT_LOGGING",
}

// ConfigFileEnv points at an optional YAML or JSON config file.
const ConfigFileEnv = "COSMOSDB_MCP_CONFIG"

// Load reads configuration from defaults, a .env file in the working
// directory, an optional config file and the environment, in that order of
// increasing precedence.
func Load() (*Config, error) {
	return LoadWithEnvFile(DefaultEnvFile)
}

// LoadWithEnvFile is Load with an explicit dotenv path. A missing file is not an error.
func LoadWithEnvFile(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	for key, env := range keys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if err := v.BindEnv("config_file", ConfigFileEnv); err != nil {
		return nil, fmt.Errorf("bind %s: %w", ConfigFileEnv, err)
	}
	if path := v.GetString("config_file"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.Transport = strings.ToLower(strings.TrimSpace(cfg.Transport))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("cosmosdb_database", DefaultCosmosDatabase)
	v.SetDefault("cosmosdb_container", DefaultCosmosContainer)
	v.SetDefault("cosmosdb_partition_key_field", DefaultPartitionKeyField)
	v.SetDefault("mcp_transport", DefaultTransport)
	v.SetDefault("mcp_http_address", DefaultHTTPAddress)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_format", DefaultLogFormat)
	v.SetDefault("enable_audit_logging", DefaultEnableAuditLogging)
}

// Validate reports every missing or malformed setting in one error.
func (c *Config) Validate() error {
	var missing []string
	if c.CosmosEndpoint == "" {
		missing = append(missing, "COSMOSDB_URI")
	}
	if c.KeyVaultURI == "" {
		missing = append(missing, "KEYVAULT_URI")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("unsupported transport %q (want %s or %s)", c.Transport, TransportStdio, TransportHTTP)
	}

	switch c.LogFormat {
	case LogFormatAuto, LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("unsupported log format %q", c.LogFormat)
	}
	return nil
}

// UsesKeyAuth reports whether Cosmos DB is reached with an account key
// rather than the ambient Azure credential.
func (c *Config) UsesKeyAuth() bool {
	return c.CosmosKey != ""
}
