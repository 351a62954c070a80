// Package config loads the optional tflgtfs config file. Everything
// in it can also be set with command line flags, which take
// precedence over the file.
package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	API  APIConfig  `yaml:"api"`
	Feed FeedConfig `yaml:"feed"`
}

type APIConfig struct {
	BaseURL   string `yaml:"baseURL" validate:"omitempty,url"`
	AppID     string `yaml:"appID"`
	AppKey    string `yaml:"appKey"`
	CachePath string `yaml:"cachePath"`
	Workers   int    `yaml:"workers" validate:"gte=0"`
}

type FeedConfig struct {
	Output      string `yaml:"output"`
	Format      string `yaml:"format" validate:"omitempty,oneof=csv sqlite postgres"`
	PostgresDSN string `yaml:"postgresDSN"`
}

// Load reads a yaml config file. A missing file is not an error: the
// zero Config is returned and flags supply everything.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "parsing config")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return cfg, errors.Wrap(err, "validating config")
	}

	return cfg, nil
}
