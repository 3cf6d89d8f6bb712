package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config describes the catalog served by the api and the datastreams that make up
// the items of each collection
type Config struct {
	BaseURL       string        `yaml:"baseUrl" validate:"required,url"`
	Title         string        `yaml:"title" validate:"required"`
	Description   string        `yaml:"description"`
	Profile       string        `yaml:"profile" validate:"oneof=basic extended"`
	FailurePolicy string        `yaml:"failurePolicy" validate:"oneof=abort skip"`
	Concurrency   int           `yaml:"concurrency" validate:"gte=1"`
	FetchTimeout  time.Duration `yaml:"fetchTimeout" validate:"gt=0"`
	Collections   []Collection  `yaml:"collections" validate:"dive"`
}

type Collection struct {
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description"`
	Datastreams []string `yaml:"datastreams" validate:"dive,required"`
}

func defaults() Config {
	return Config{
		Title:         "SensorBucket WFS",
		Description:   "Simple WFS to expose SensorBucket data",
		Profile:       "basic",
		FailurePolicy: "abort",
		Concurrency:   4,
		FetchTimeout:  10 * time.Second,
	}
}

func Load(input io.Reader) (*Config, error) {
	buf, err := io.ReadAll(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	cfg := defaults()

	err = yaml.Unmarshal(buf, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err.Error())
	}

	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	err = validator.New().Struct(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err.Error())
	}

	return &cfg, nil
}
