package slotpass

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config carries the two slot values exactly as the operator wrote them.
// They stay strings until ParseSlotValue so that decimal and 0x-hex forms
// survive untouched.
type Config struct {
	Value string `env:"SLOTPASS_VALUE" yaml:"value"`
	Salt  string `env:"SLOTPASS_SALT"  yaml:"salt"`
}

// FromEnv loads slot values from the SLOTPASS_VALUE and SLOTPASS_SALT
// environment variables. Unset variables leave the fields empty.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadClaimFile reads the slot values from a YAML claim file. Unknown keys
// are rejected so a typo cannot silently drop a value.
func LoadClaimFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open claim file: %w", err)
	}
	defer f.Close()
	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode claim file %s: %w", path, err)
	}
	return cfg, nil
}
