package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const AppName = "kidsedu"

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Storage  StorageConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimitMB  int
}

type LoggerConfig struct {
	Level string
	Env   string
}

type DatabaseConfig struct {
	URL          string
	MaxOpenConns int
}

type RedisConfig struct {
	Address  string        `yaml:"address"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	ItemTTL  time.Duration `yaml:"item_ttl"`
}

// StorageConfig selects where uploaded vocabulary images go.
// Driver "http" talks to a Supabase-Storage compatible REST endpoint,
// driver "local" writes into LocalDir and serves files under /uploads.
type StorageConfig struct {
	Driver   string
	URL      string
	Key      string
	Bucket   string
	LocalDir string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8001)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 20)
	v.SetDefault("server.body_limit_mb", 10)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.item_ttl", 60)
	v.SetDefault("storage.driver", "http")
	v.SetDefault("storage.bucket", "vocabulary-images")
	v.SetDefault("storage.local_dir", "./uploads")
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments pass plain environment variables
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			BodyLimitMB:  v.GetInt("server.body_limit_mb"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		Database: DatabaseConfig{
			URL:          v.GetString("database.url"),
			MaxOpenConns: v.GetInt("database.max_open_conns"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			ItemTTL:  time.Duration(v.GetInt("redis.item_ttl")) * time.Second,
		},
		Storage: StorageConfig{
			Driver:   v.GetString("storage.driver"),
			URL:      strings.TrimRight(v.GetString("storage.url"), "/"),
			Key:      v.GetString("storage.key"),
			Bucket:   v.GetString("storage.bucket"),
			LocalDir: v.GetString("storage.local_dir"),
		},
	}

	// Short names used by hosting platforms
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SERVER_PORT") == "" {
		v.Set("server.port", port)
		config.Server.Port = v.GetInt("server.port")
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}

	return config
}

// VocabularyConfigured reports whether both the item database and the
// image storage are set up. Vocabulary endpoints refuse to run otherwise.
func (c *Config) VocabularyConfigured() bool {
	if c.Database.URL == "" {
		return false
	}
	switch c.Storage.Driver {
	case "local":
		return c.Storage.LocalDir != ""
	case "http":
		return c.Storage.URL != "" && c.Storage.Key != "" && c.Storage.Bucket != ""
	default:
		return false
	}
}
