// Package config holds the runtime settings of the VoyageX front end.
//
// Defaults are compiled into the binary from defaults.yaml so the browser
// build needs no filesystem; a deployment can overlay its own YAML document
// with Parse.
package config

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Config struct {
	AppName         string   `yaml:"app_name" validate:"required"`
	StoragePrefix   string   `yaml:"storage_prefix"`
	Log             Log      `yaml:"log"`
	DefaultLocation Location `yaml:"default_location"`
	Weather         Weather  `yaml:"weather"`
	Places          Places   `yaml:"places"`
	Map             Map      `yaml:"map"`
	Notify          Notify   `yaml:"notify"`
	Latency         Latency  `yaml:"latency"`
}

type Log struct {
	Mode string `yaml:"mode" validate:"omitempty,oneof=development dev production prod"`
}

// Location is the fallback coordinate used whenever geolocation is
// unavailable.
type Location struct {
	Lat  float64 `yaml:"lat" validate:"gte=-90,lte=90"`
	Lng  float64 `yaml:"lng" validate:"gte=-180,lte=180"`
	Name string  `yaml:"name" validate:"required"`
}

type Weather struct {
	BaseURL  string        `yaml:"base_url" validate:"required,url"`
	Fallback string        `yaml:"fallback" validate:"required"`
	Timeout  time.Duration `yaml:"timeout" validate:"required"`
}

type Places struct {
	Enabled bool          `yaml:"enabled"`
	BaseURL string        `yaml:"base_url" validate:"required,url"`
	Query   string        `yaml:"query" validate:"required"`
	Limit   int           `yaml:"limit" validate:"gt=0"`
	Timeout time.Duration `yaml:"timeout" validate:"required"`
}

type Map struct {
	TileURL      string   `yaml:"tile_url" validate:"required"`
	Subdomains   []string `yaml:"subdomains"`
	Attribution  string   `yaml:"attribution"`
	Zoom         int      `yaml:"zoom" validate:"gte=1,lte=18"`
	RelocateZoom int      `yaml:"relocate_zoom" validate:"gte=1,lte=18"`
	MarkerSpread float64  `yaml:"marker_spread" validate:"gte=0"`
}

type Notify struct {
	ToastDuration time.Duration `yaml:"toast_duration" validate:"required"`
}

// Latency is the artificial delay applied to flows that have no backend yet.
type Latency struct {
	Auth      time.Duration `yaml:"auth"`
	Route     time.Duration `yaml:"route"`
	Itinerary time.Duration `yaml:"itinerary"`
	Booking   time.Duration `yaml:"booking"`
	SOS       time.Duration `yaml:"sos"`
}

var validate = validator.New()

// Default returns the embedded defaults. It panics if they do not decode,
// which can only happen when defaults.yaml itself is broken.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Parse overlays data on top of the defaults. Keys missing from data keep
// their default value.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
