package bootstrap

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the pipeline knobs, usually loaded from ramp.yaml.
type Config struct {
	Install struct {
		Command string   `yaml:"command"`
		Args    []string `yaml:"args,omitempty"`
	} `yaml:"install"`

	Static struct {
		Sources []string `yaml:"sources,omitempty"`
		Root    string   `yaml:"root"`
	} `yaml:"static"`

	Migrations struct {
		Dir string `yaml:"dir"`
	} `yaml:"migrations"`

	Admin struct {
		EmailVar    string `yaml:"emailVar,omitempty"`
		PasswordVar string `yaml:"passwordVar,omitempty"`
		NameVar     string `yaml:"nameVar,omitempty"`
	} `yaml:"admin"`
}

// DefaultConfig mirrors the hosted build: pip installed requirements,
// assets collected from static/ into staticfiles/, migrations/ applied.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Install.Command = "pip3"
	cfg.Install.Args = []string{"install", "-r", "requirements.txt"}
	cfg.Static.Sources = []string{"static"}
	cfg.Static.Root = "staticfiles"
	cfg.Migrations.Dir = "migrations"
	return cfg
}

// LoadConfig reads a Config from the given YAML file.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
