package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/scusemua/alert-view/m/v2/src/domain"
	"github.com/scusemua/alert-view/m/v2/src/theme"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyAddress = errors.New("http address cannot be the empty string")
)

type Configuration struct {
	Address     string              `yaml:"address" json:"address" default:":8000" description:"Address that the HTTP server will listen on."`
	Title       string              `yaml:"title" json:"title" default:"Alerts" description:"Title of the page."`
	DefaultSize string              `yaml:"default-size" json:"defaultSize" default:"large" description:"Font size of the example alerts."`
	Theme       map[string]string   `yaml:"theme" json:"theme" description:"Overrides of the theme colour fallbacks, keyed by CSS custom property."`
	Alerts      []domain.Attributes `yaml:"alerts" json:"alerts" description:"Extra alerts shown on the gallery page."`
}

func GetConfiguration() *Configuration {
	return &Configuration{
		Address:     ":8000",
		Title:       "Alerts",
		DefaultSize: domain.DefaultSize,
		Theme:       map[string]string{},
	}
}

// Load reads the YAML configuration file at the given path on top of the defaults.
func Load(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file \"%s\": %w", path, err)
	}

	conf := GetConfiguration()
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file \"%s\": %w", path, err)
	}

	conf.applyDefaults()

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *Configuration) applyDefaults() {
	if c.DefaultSize == "" {
		c.DefaultSize = domain.DefaultSize
	}

	for i := range c.Alerts {
		if c.Alerts[i].Level == "" {
			c.Alerts[i].Level = domain.DefaultLevel
		}
		if c.Alerts[i].Size == "" {
			c.Alerts[i].Size = c.DefaultSize
		}
	}
}

func (c *Configuration) Validate() error {
	if c.Address == "" {
		return ErrEmptyAddress
	}

	if _, err := theme.NewProvider(c.Theme); err != nil {
		return err
	}

	for i, alert := range c.Alerts {
		if _, err := domain.ParseLevel(string(alert.Level)); err != nil {
			return fmt.Errorf("alert #%d: %w", i, err)
		}
	}

	return nil
}

// ThemeProvider returns the theme provider with the configured overrides.
func (c *Configuration) ThemeProvider() (*theme.Provider, error) {
	return theme.NewProvider(c.Theme)
}

func (c *Configuration) String() string {
	out, err := json.Marshal(c)
	if err != nil {
		panic(err)
	}

	return string(out)
}
