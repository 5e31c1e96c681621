package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. TOFUNAMES_REGISTRAR_CENTRALNIC_PASSWORD
const EnvPrefix = "TOFUNAMES"

// RestConfig is the configuration of the tofunames-rest-api binary
type RestConfig struct {
	Port      string            `mapstructure:"port"`
	Logger    LoggerSettings    `mapstructure:"logger"`
	Database  DatabaseSettings  `mapstructure:"database"`
	Registrar RegistrarSettings `mapstructure:"registrar"`
	Auth      AuthSettings      `mapstructure:"auth"`
	Checkout  CheckoutSettings  `mapstructure:"checkout"`
}

// Validate checks the top level fields and every nested settings block
func (c *RestConfig) Validate() error {
	if err := validator.New().Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("validation failed for RestConfig port: %w", err)
	}
	return validateAll(&c.Logger, &c.Database, &c.Registrar, &c.Auth, &c.Checkout)
}

// CLIConfig is the configuration of the tofunames-cli binary
type CLIConfig struct {
	Logger    LoggerSettings    `mapstructure:"logger"`
	Database  DatabaseSettings  `mapstructure:"database"`
	Registrar RegistrarSettings `mapstructure:"registrar"`
}

// Validate checks every nested settings block
func (c *CLIConfig) Validate() error {
	return validateAll(&c.Logger, &c.Database, &c.Registrar)
}

type validatable interface {
	Validate() error
}

func validateAll(settings ...validatable) error {
	for _, s := range settings {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// InitializeRestConfig loads, overrides and validates the REST API configuration
func InitializeRestConfig(path string) (*RestConfig, error) {
	cfg := &RestConfig{}
	if err := load(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// InitializeCLIConfig loads, overrides and validates the CLI configuration
func InitializeCLIConfig(path string) (*CLIConfig, error) {
	cfg := &CLIConfig{}
	if err := load(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv exports variables from the given .env files (default ".env").
// Missing files are ignored; variables already set in the environment win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

func load(path string, out validatable) error {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}

	if err := out.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// setDefaults registers every key so that AutomaticEnv can override keys absent from the file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8000")

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "tofunames.sqlite3")
	v.SetDefault("database.name", "")

	v.SetDefault("registrar.provider", CentralNicRegistrar)
	v.SetDefault("registrar.timeout", "30s")
	v.SetDefault("registrar.centralnic.base_url", DefaultCentralNicURL)
	v.SetDefault("registrar.centralnic.username", "")
	v.SetDefault("registrar.centralnic.password", "")
	v.SetDefault("registrar.netim.endpoint", "")
	v.SetDefault("registrar.netim.user_id", "")
	v.SetDefault("registrar.netim.secret", "")
	v.SetDefault("registrar.netim.language", "EN")

	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.token_ttl", "24h")

	v.SetDefault("checkout.price_cents", 1500)
	v.SetDefault("checkout.currency", "EUR")
}
