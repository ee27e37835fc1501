package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string `mapstructure:"port"`
	MongoURI      string `mapstructure:"MONGODB_URI"`
	MongoDatabase string `mapstructure:"mongodb_database"`
	AIProvider    string `mapstructure:"ai_provider"`
	AIEndpoint    string `mapstructure:"ai_endpoint"`
	Model         string `mapstructure:"model"`
	OpenAIAPIKey  string `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKey  string `mapstructure:"GEMINI_API_KEY"`
	UploadDir     string `mapstructure:"upload_dir"`
	AllowOrigin   string `mapstructure:"allow_origin"`
}

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("GEMINI_API_KEY")
	v.BindEnv("MONGODB_URI")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	applyDefaults(&config)

	return &config, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	if cfg.MongoURI == "" {
		cfg.MongoURI = "mongodb://localhost:27017"
	}
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = "mydb"
	}
	if cfg.AIProvider == "" {
		cfg.AIProvider = ProviderOpenAI
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-3.5-turbo"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if cfg.AllowOrigin == "" {
		cfg.AllowOrigin = "http://127.0.0.1:8000"
	}
}

// MockMode reports whether no model credential is configured for the selected
// provider. The server then serves canned completions instead of calling out.
func (c *Config) MockMode() bool {
	switch c.AIProvider {
	case ProviderGemini:
		return c.GeminiAPIKey == ""
	default:
		return c.OpenAIAPIKey == ""
	}
}
