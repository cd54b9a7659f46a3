package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	ConfigDirName  = ".infragpt"
	ConfigFileName = "config.yaml"
)

// Model identifies one of the supported model families.
type Model string

const (
	ModelGPT4o  Model = "gpt4o"
	ModelClaude Model = "claude"

	// DefaultModel is used when neither the flag nor the config file picks one.
	DefaultModel = ModelGPT4o
)

// Provider identifies the hosted service behind a model.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// Concrete API model identifiers, overridable via the config file.
const (
	defaultOpenAIModel    = "gpt-4o"
	defaultAnthropicModel = "claude-3-sonnet-20240229"
)

// Env vars holding provider credentials.
const (
	EnvOpenAIKey    = "OPENAI_API_KEY"
	EnvAnthropicKey = "ANTHROPIC_API_KEY"
)

// UnsupportedModelError is returned when a model name is not one of the
// known families.
type UnsupportedModelError struct {
	Name string
}

func (e *UnsupportedModelError) Error() string {
	return fmt.Sprintf("unsupported model %q (supported: %s, %s)", e.Name, ModelGPT4o, ModelClaude)
}

// MissingCredentialError is returned when the env var required by the
// selected model is unset. EnvVar names the exact variable.
type MissingCredentialError struct {
	EnvVar   string
	Provider Provider
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s environment variable not set (required for the %s provider)", e.EnvVar, e.Provider)
}

// Config is the fully resolved configuration for one process invocation.
// Everything downstream takes it as an explicit value; nothing else reads
// the environment.
type Config struct {
	Model    Model
	Provider Provider
	APIKey   string
	// APIModel is the concrete model identifier sent to the provider.
	APIModel string
	Verbose  bool
}

// File is the optional on-disk configuration (~/.infragpt/config.yaml).
type File struct {
	Model  string `yaml:"model"`
	OpenAI struct {
		Model string `yaml:"model"`
	} `yaml:"openai"`
	Anthropic struct {
		Model string `yaml:"model"`
	} `yaml:"anthropic"`
}

// GetConfigDir returns the path to the config directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ConfigDirName), nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigFileName), nil
}

// LoadFile reads the optional config file. A missing file is not an error;
// it returns nil.
func LoadFile() (*File, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return loadFileFrom(configPath)
}

func loadFileFrom(path string) (*File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &f, nil
}

// ParseModel validates a model family name.
func ParseModel(name string) (Model, error) {
	switch Model(name) {
	case ModelGPT4o:
		return ModelGPT4o, nil
	case ModelClaude:
		return ModelClaude, nil
	default:
		return "", &UnsupportedModelError{Name: name}
	}
}

// Resolve produces the configuration for this invocation. modelFlag is the
// --model value ("" when unset); precedence is flag > config file > default.
// The provider variant is picked here, once, so the rest of the program
// never dispatches on the model name again.
func Resolve(modelFlag string, verbose bool) (*Config, error) {
	file, err := LoadFile()
	if err != nil {
		return nil, err
	}
	return resolve(modelFlag, verbose, file, os.Getenv)
}

// resolve is the env-injectable core of Resolve.
func resolve(modelFlag string, verbose bool, file *File, getenv func(string) string) (*Config, error) {
	name := string(DefaultModel)
	if file != nil && file.Model != "" {
		name = file.Model
	}
	if modelFlag != "" {
		name = modelFlag
	}

	model, err := ParseModel(name)
	if err != nil {
		return nil, err
	}

	cfg := &Config{Model: model, Verbose: verbose}

	switch model {
	case ModelGPT4o:
		cfg.Provider = ProviderOpenAI
		cfg.APIModel = defaultOpenAIModel
		if file != nil && file.OpenAI.Model != "" {
			cfg.APIModel = file.OpenAI.Model
		}
		cfg.APIKey = getenv(EnvOpenAIKey)
		if cfg.APIKey == "" {
			return nil, &MissingCredentialError{EnvVar: EnvOpenAIKey, Provider: ProviderOpenAI}
		}
	case ModelClaude:
		cfg.Provider = ProviderAnthropic
		cfg.APIModel = defaultAnthropicModel
		if file != nil && file.Anthropic.Model != "" {
			cfg.APIModel = file.Anthropic.Model
		}
		cfg.APIKey = getenv(EnvAnthropicKey)
		if cfg.APIKey == "" {
			return nil, &MissingCredentialError{EnvVar: EnvAnthropicKey, Provider: ProviderAnthropic}
		}
	}

	return cfg, nil
}
