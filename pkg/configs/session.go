package configs

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultSessionKey 保存原始输入时使用的键
const DefaultSessionKey = "cssExtractorInput"

// SessionConfig 会话输入存储配置
type SessionConfig struct {
	Enabled  bool   `mapstructure:"enabled" json:"enabled" yaml:"enabled" toml:"enabled"`
	Path     string `mapstructure:"path" json:"path" yaml:"path" toml:"path"`
	Debounce int    `mapstructure:"debounce" json:"debounce" yaml:"debounce" toml:"debounce"` // 防抖时间，毫秒
	Key      string `mapstructure:"key" json:"key" yaml:"key" toml:"key"`
}

func defaultSessionPath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "colorsift", "session.yaml")
	}
	return filepath.Join(".colorsift", "session.yaml")
}

func setSessionConfigDefaults(v *viper.Viper) {
	v.SetDefault("session.enabled", true)
	v.SetDefault("session.path", defaultSessionPath())
	v.SetDefault("session.debounce", 400)
	v.SetDefault("session.key", DefaultSessionKey)
}
