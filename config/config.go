package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	Store StoreConfig
	DB    DBConfig
	Redis RedisConfig
	JWT   JWTConfig
	Model ModelConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// StoreConfig selects the record-store backend. Driver is one of
// "file", "memory", "redis", "postgres".
type StoreConfig struct {
	Driver string
	Path   string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// ModelConfig points at the external medgemma inference endpoint.
type ModelConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	modelTimeout, err := time.ParseDuration(viper.GetString("MODEL_TIMEOUT"))
	if err != nil {
		modelTimeout = 25 * time.Second
	}

	storeDriver := viper.GetString("STORE_DRIVER")
	if storeDriver == "" {
		storeDriver = "file"
	}

	storePath := viper.GetString("STORE_PATH")
	if storePath == "" {
		storePath = "./data"
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Store: StoreConfig{
			Driver: storeDriver,
			Path:   storePath,
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Model: ModelConfig{
			URL:     viper.GetString("MODEL_API_URL"),
			APIKey:  viper.GetString("MODEL_API_KEY"),
			Timeout: modelTimeout,
		},
	}

	return config, nil
}
