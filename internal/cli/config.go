package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"

	"github.com/bjaus/jsontable"
)

// EnvPrefix prefixes environment overrides, e.g. JSONTABLE_FORMAT or
// JSONTABLE_RENDER_DELIMITER.
const EnvPrefix = "JSONTABLE"

// Config holds the resolved CLI settings. Precedence: flags > environment >
// config file > defaults.
type Config struct {
	Format      string
	InputFormat string // json, yaml, auto
	Output      string // file path, "" or "-" for stdout
	LogLevel    string
	LogFormat   string // console, json
	Render      RenderConfig

	// ConfigFile is the config file that was read, if any.
	ConfigFile string
}

// RenderConfig selects the fully parameterized render path. It is active
// when Delimiter is set.
type RenderConfig struct {
	Delimiter       string
	Quote           string
	HeaderSeparator string
	Pad             bool
}

// ApplyDefaults sets default configuration values on v.
func ApplyDefaults(v *viper.Viper) {
	v.SetDefault("format", string(jsontable.CSV))
	v.SetDefault("input-format", "auto")
	v.SetDefault("output", "")
	v.SetDefault("log-level", "warn")
	v.SetDefault("log-format", "console")

	v.SetDefault("render.delimiter", "")
	v.SetDefault("render.quote", "")
	v.SetDefault("render.header-separator", "")
	v.SetDefault("render.pad", false)
}

// Load reads configuration into v and resolves it. An explicit configFile
// must exist; otherwise jsontable.yaml is looked up in $HOME/.jsontable and
// the working directory and may be absent.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	ApplyDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".jsontable"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("jsontable")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return &Config{
		Format:      v.GetString("format"),
		InputFormat: v.GetString("input-format"),
		Output:      v.GetString("output"),
		LogLevel:    v.GetString("log-level"),
		LogFormat:   v.GetString("log-format"),
		Render: RenderConfig{
			Delimiter:       v.GetString("render.delimiter"),
			Quote:           v.GetString("render.quote"),
			HeaderSeparator: v.GetString("render.header-separator"),
			Pad:             v.GetBool("render.pad"),
		},
		ConfigFile: v.ConfigFileUsed(),
	}, nil
}

// Custom reports whether the render section overrides the format preset.
func (c *Config) Custom() bool { return c.Render.Delimiter != "" }

// Params resolves the rendering parameters: the custom render section when
// set, else the preset of the configured format.
func (c *Config) Params() (jsontable.Params, error) {
	if !c.Custom() {
		f, err := jsontable.ParseFormat(c.Format)
		if err != nil {
			return jsontable.Params{}, err
		}
		return f.Params()
	}

	r := c.Render
	p := jsontable.Params{
		Delimiter: unescape(r.Delimiter),
		Pad:       r.Pad,
	}
	if r.HeaderSeparator != "" {
		sep, size := utf8.DecodeRuneInString(r.HeaderSeparator)
		if size != len(r.HeaderSeparator) {
			return jsontable.Params{}, fmt.Errorf("header separator %q must be a single character", r.HeaderSeparator)
		}
		p.HeaderSeparator = sep
	}
	if r.Quote != "" {
		p.Left = r.Quote
		p.Right = r.Quote
		p.Escape = p.Delimiter + r.Quote + "\n\r"
		p.Replacements = []jsontable.Replacement{{Old: r.Quote, New: r.Quote + r.Quote}}
	}
	return p, nil
}

// unescape lets shells pass control delimiters such as "\t" literally.
func unescape(s string) string {
	return strings.NewReplacer(`\t`, "\t", `\n`, "\n").Replace(s)
}
