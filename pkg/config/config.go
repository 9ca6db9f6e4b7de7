package config

import (
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"

	"github.com/aniviza/dnac/pkg/envelope"
)

// Scheme is a named framing scheme as stored in the config file.
type Scheme struct {
	Name       string `yaml:"name"`
	Promoter   string `yaml:"promoter"`
	Terminator string `yaml:"terminator"`
	Marker     string `yaml:"marker"`
}

// Framing converts the config entry to the codec's scheme type.
func (s *Scheme) Framing() envelope.Scheme {
	return envelope.Scheme{
		Promoter:   s.Promoter,
		Terminator: s.Terminator,
		Marker:     s.Marker,
	}
}

type Config struct {
	CurrentScheme  string    `yaml:"current-scheme"`
	SchemeOverride string    `yaml:"-"`
	Schemes        []*Scheme `yaml:"schemes"`
	// configPath is the file path used for reading and writing this config.
	configPath string `yaml:"-"`
}

func (c *Config) HasScheme(name string) bool {
	for _, scheme := range c.Schemes {
		if scheme.Name == name {
			return true
		}
	}
	return false
}

func (c *Config) SetCurrentScheme(name string) error {
	oldScheme := c.CurrentScheme
	for _, scheme := range c.Schemes {
		if scheme.Name == name {
			c.CurrentScheme = name

			if err := c.Write(); err != nil {
				// Either the change lands on disk or nothing changes.
				c.CurrentScheme = oldScheme
				return err
			}
			return nil
		}
	}
	return fmt.Errorf("could not find scheme with name %v", name)
}

// ActiveScheme resolves the scheme to use: an override set via flag wins
// over the current-scheme pointer. Returns nil if neither matches.
func (c *Config) ActiveScheme() *Scheme {
	if c == nil {
		return nil
	}

	toSearch := c.SchemeOverride
	if c.SchemeOverride == "" {
		toSearch = c.CurrentScheme
	}

	if toSearch == "" {
		return nil
	}

	for _, scheme := range c.Schemes {
		if scheme.Name == toSearch {
			// Hand out a copy so callers cannot mutate the config in place.
			s := *scheme
			return &s
		}
	}
	return nil
}

func (c *Config) Write() error {
	configPath := c.configPath
	if configPath == "" {
		var err error
		configPath, err = getDefaultConfigPath()
		if err != nil {
			return err
		}
	}
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(configDir, "config.*.tmp")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}
	tmpPath := tmpFile.Name()

	encoder := yaml.NewEncoder(tmpFile)
	if err := encoder.Encode(&c); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode config: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp config file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp config file: %w", err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp config file: %w", err)
	}
	return nil
}

func ReadConfig(cfgPath string) (c Config, err error) {
	resolvedPath, err := resolveConfigPath(cfgPath)
	if err != nil {
		return Config{}, err
	}

	file, err := os.OpenFile(resolvedPath, os.O_RDONLY, 0644)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{configPath: resolvedPath}, nil
		}
		return Config{}, fmt.Errorf("open config file: %w", err)
	}
	defer file.Close()
	decoder := yaml.NewDecoder(file)
	err = decoder.Decode(&c)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	c.configPath = resolvedPath
	return c, nil
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func resolveConfigPath(cfgPath string) (string, error) {
	if cfgPath == "" {
		return getDefaultConfigPath()
	}
	if !fileExists(cfgPath) {
		return "", fmt.Errorf("config file %q does not exist", cfgPath)
	}
	return cfgPath, nil
}

func getDefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}

	return filepath.Join(home, ".dnac", "config"), nil
}
