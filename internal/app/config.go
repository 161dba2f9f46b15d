package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"phonebook/internal/store"
)

// EnvPrefix prefixes every environment override, e.g. PHONEBOOK_DB_PATH.
const EnvPrefix = "PHONEBOOK"

// Config holds runtime wiring options for building the app.
type Config struct {
	DB      DBConfig `mapstructure:"db"`
	Verbose bool     `mapstructure:"verbose"`
}

// DBConfig locates and describes the backing file.
type DBConfig struct {
	Path     string `mapstructure:"path"`     // e.g. database.txt
	Encoding string `mapstructure:"encoding"` // IANA charset name
	EOL      string `mapstructure:"eol"`      // may contain escapes such as \r\n
}

// NewViper returns a viper instance with defaults and environment lookup set up.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("db.path", store.DefaultPath)
	v.SetDefault("db.encoding", store.DefaultEncoding)
	v.SetDefault("db.eol", `\n`) // escaped form of store.DefaultEOL
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads the optional YAML file and resolves cfg from v.
// Precedence: flags bound to v, then environment, then file, then defaults.
func LoadConfig(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	eol, err := unescape(cfg.DB.EOL)
	if err != nil {
		return Config{}, fmt.Errorf("db.eol: %w", err)
	}
	cfg.DB.EOL = eol
	return cfg, nil
}

// unescape interprets Go escape sequences so "\r\n" can be given on the
// command line. Strings without a backslash are returned unchanged.
func unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	return strconv.Unquote(`"` + s + `"`)
}
