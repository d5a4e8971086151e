package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Server.BodyLimitMB)
	assert.Equal(t, 60*time.Second, cfg.Redis.ItemTTL)
	assert.Equal(t, "http", cfg.Storage.Driver)
	assert.Equal(t, "vocabulary-images", cfg.Storage.Bucket)
	assert.False(t, cfg.VocabularyConfigured())
}

func TestFromViper_TrimsStorageURL(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("storage.url", "https://example.supabase.co/")

	cfg := fromViper(v)
	assert.Equal(t, "https://example.supabase.co", cfg.Storage.URL)
}

func TestConfig_VocabularyConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"no database", Config{Storage: StorageConfig{Driver: "local", LocalDir: "./uploads"}}, false},
		{"local storage", Config{Database: DatabaseConfig{URL: "postgres://x"}, Storage: StorageConfig{Driver: "local", LocalDir: "./uploads"}}, true},
		{"http storage missing key", Config{Database: DatabaseConfig{URL: "postgres://x"}, Storage: StorageConfig{Driver: "http", URL: "https://s", Bucket: "b"}}, false},
		{"http storage", Config{Database: DatabaseConfig{URL: "postgres://x"}, Storage: StorageConfig{Driver: "http", URL: "https://s", Key: "k", Bucket: "b"}}, true},
		{"unknown driver", Config{Database: DatabaseConfig{URL: "postgres://x"}, Storage: StorageConfig{Driver: "s3"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.VocabularyConfigured())
		})
	}
}
