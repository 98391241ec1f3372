package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	JWT      JWT
	LLM      LLM
	Quiz     Quiz

	AppEnv      string
	LogLevel    string
	AdminAPIKey string
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type JWT struct {
	Secret    string
	ExpiresIn time.Duration
}

// LLM selects the generative model backing quiz feedback and phishing analysis.
// Provider is "gemini" or "openai".
type LLM struct {
	Provider      string
	GeminiApiKey  string
	GeminiModel   string
	OpenAIApiKey  string
	OpenAIBaseURL string
	OpenAIModel   string
}

type Quiz struct {
	Size int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "3000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", "3306")
	viper.SetDefault("DATABASE_USER", "root")
	viper.SetDefault("DATABASE_NAME", "cybersolutions")
	viper.SetDefault("JWT_EXPIRES_IN", "24h")
	viper.SetDefault("LLM_PROVIDER", "gemini")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("QUIZ_SIZE", 20)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.AppEnv = viper.GetString("APP_ENV")
	config.LogLevel = viper.GetString("LOG_LEVEL")

	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.JWT.Secret = viper.GetString("JWT_SECRET")
	config.JWT.ExpiresIn = viper.GetDuration("JWT_EXPIRES_IN")
	if config.JWT.ExpiresIn <= 0 {
		log.Warn().Str("JWT_EXPIRES_IN", viper.GetString("JWT_EXPIRES_IN")).Msg("Invalid token lifetime, falling back to 24h")
		config.JWT.ExpiresIn = 24 * time.Hour
	}
	if config.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET is not set. Tokens will be signed with an empty key.")
	}

	config.LLM.Provider = viper.GetString("LLM_PROVIDER")
	config.LLM.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.LLM.GeminiModel = viper.GetString("GEMINI_MODEL")
	config.LLM.OpenAIApiKey = viper.GetString("OPENAI_API_KEY")
	config.LLM.OpenAIBaseURL = viper.GetString("OPENAI_BASE_URL")
	config.LLM.OpenAIModel = viper.GetString("OPENAI_MODEL")

	config.Quiz.Size = viper.GetInt("QUIZ_SIZE")
	if config.Quiz.Size <= 0 {
		config.Quiz.Size = 20
	}

	config.AdminAPIKey = viper.GetString("ADMIN_API_KEY")

	log.Info().
		Str("port", config.Server.Port).
		Str("env", config.AppEnv).
		Str("db_host", config.Database.Host).
		Str("db_name", config.Database.Name).
		Str("llm_provider", config.LLM.Provider).
		Int("quiz_size", config.Quiz.Size).
		Msg("Config loaded")
	return &config, nil
}
