package config

import (
	"os"

	"github.com/ghodss/yaml"
	"github.com/limaJavier/satgen/pkg/generator"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const (
	ConfigFlag    = "config"
	VariablesFlag = "variables"
	ClausesFlag   = "clauses"
	OutputFlag    = "output"
	LogLevelFlag  = "log-level"
)

type Config struct {
	Variables int    `mapstructure:"variables"`
	Clauses   int    `mapstructure:"clauses"`
	Output    string `mapstructure:"output"` // Empty means standard output
	LogLevel  string `mapstructure:"logLevel"`
}

func Default() Config {
	return Config{
		Variables: generator.DefaultVariables,
		Clauses:   generator.DefaultClauses,
		LogLevel:  logrus.InfoLevel.String(),
	}
}

// Load reads a YAML or JSON file on top of the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "cannot read config file %v", path)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, errors.Wrapf(err, "cannot parse config file %v", path)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &config,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Config{}, errors.Wrap(err, "cannot build config decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config file %v", path)
	}

	return config, nil
}

func AddFlags(flags *pflag.FlagSet) {
	defaults := Default()
	flags.String(ConfigFlag, "", "Path to a YAML or JSON file holding any of: variables, clauses, output, logLevel")
	flags.IntP(VariablesFlag, "n", defaults.Variables, "Number of variables")
	flags.IntP(ClausesFlag, "m", defaults.Clauses, "Number of clauses")
	flags.StringP(OutputFlag, "o", defaults.Output, "Path to the file where the instance will be written; if empty, it'll be written into the Standard Output")
	flags.String(LogLevelFlag, defaults.LogLevel, "Log level (panic, fatal, error, warn, info, debug, trace)")
}

// FromFlags loads the file named by --config and overrides it with every flag
// set explicitly on the command line
func FromFlags(flags *pflag.FlagSet) (Config, error) {
	path, err := flags.GetString(ConfigFlag)
	if err != nil {
		return Config{}, err
	}
	config, err := Load(path)
	if err != nil {
		return Config{}, err
	}

	if flags.Changed(VariablesFlag) {
		if config.Variables, err = flags.GetInt(VariablesFlag); err != nil {
			return Config{}, err
		}
	}
	if flags.Changed(ClausesFlag) {
		if config.Clauses, err = flags.GetInt(ClausesFlag); err != nil {
			return Config{}, err
		}
	}
	if flags.Changed(OutputFlag) {
		if config.Output, err = flags.GetString(OutputFlag); err != nil {
			return Config{}, err
		}
	}
	if flags.Changed(LogLevelFlag) {
		if config.LogLevel, err = flags.GetString(LogLevelFlag); err != nil {
			return Config{}, err
		}
	}

	return config, config.Validate()
}

func (config Config) Validate() error {
	if config.Variables < 1 {
		return errors.Errorf("variables must be at least 1: %v", config.Variables)
	} else if config.Clauses < 0 {
		return errors.Errorf("clauses must not be negative: %v", config.Clauses)
	} else if _, err := logrus.ParseLevel(config.LogLevel); err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	return nil
}

// Level assumes a validated config and falls back to info otherwise
func (config Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
