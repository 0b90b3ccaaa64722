package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sells-group/welfare-index/internal/dataset"
	"github.com/sells-group/welfare-index/internal/locale"
)

// Config holds the full application configuration.
type Config struct {
	Data  DataConfig  `yaml:"data" mapstructure:"data"`
	Index IndexConfig `yaml:"index" mapstructure:"index"`
	Chart ChartConfig `yaml:"chart" mapstructure:"chart"`
	Log   LogConfig   `yaml:"log" mapstructure:"log"`
}

// DataConfig selects where the four input series come from.
type DataConfig struct {
	Source string `yaml:"source" mapstructure:"source"` // builtin, yaml, csv, xlsx
	Path   string `yaml:"path" mapstructure:"path"`
	Sheet  string `yaml:"sheet" mapstructure:"sheet"` // xlsx only
}

// IndexConfig configures the derivation stage.
type IndexConfig struct {
	ReferenceYear int `yaml:"reference_year" mapstructure:"reference_year"`
}

// ChartConfig configures the rendered image.
type ChartConfig struct {
	Output       string  `yaml:"output" mapstructure:"output"`
	WidthInches  float64 `yaml:"width_in" mapstructure:"width_in"`
	HeightInches float64 `yaml:"height_in" mapstructure:"height_in"`
	Display      bool    `yaml:"display" mapstructure:"display"`
	Language     string  `yaml:"language" mapstructure:"language"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from an optional file and the environment. An empty
// path searches the working directory for welfare-index.yaml.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Config file
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("welfare-index")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// Environment
	v.SetEnvPrefix("WELFARE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data.source", dataset.KindBuiltin)
	v.SetDefault("data.path", "")
	v.SetDefault("data.sheet", "")
	v.SetDefault("index.reference_year", 2015)
	v.SetDefault("chart.output", "sozialleistungen_vs_bip_final.png")
	v.SetDefault("chart.width_in", 12.0)
	v.SetDefault("chart.height_in", 8.0)
	v.SetDefault("chart.display", true)
	v.SetDefault("chart.language", "de")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")

	// Read config file (optional unless named explicitly)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks settings that would otherwise fail deep inside a stage.
func (c *Config) Validate() error {
	var errs []string

	switch c.Data.Source {
	case dataset.KindBuiltin:
	case dataset.KindYAML, dataset.KindCSV, dataset.KindXLSX:
		if c.Data.Path == "" {
			errs = append(errs, "data.path is required for source "+c.Data.Source)
		}
	default:
		errs = append(errs, "data.source must be one of builtin, yaml, csv, xlsx")
	}

	if c.Chart.Output == "" {
		errs = append(errs, "chart.output is required")
	}
	if c.Chart.WidthInches <= 0 || c.Chart.HeightInches <= 0 {
		errs = append(errs, "chart.width_in and chart.height_in must be > 0")
	}
	if _, err := locale.Parse(c.Chart.Language); err != nil {
		errs = append(errs, "chart.language must be one of "+strings.Join(locale.Supported, ", "))
	}

	if len(errs) > 0 {
		return eris.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
