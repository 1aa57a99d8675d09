package configs

import "github.com/spf13/viper"

// ServerConfig MCP 服务配置
type ServerConfig struct {
	Name      string `mapstructure:"name" json:"name" yaml:"name" toml:"name"`
	CacheSize int    `mapstructure:"cache_size" json:"cache_size" yaml:"cache_size" toml:"cache_size"` // LRU 缓存条目数
}

func setServerConfigDefaults(v *viper.Viper) {
	v.SetDefault("server.name", "colorsift")
	v.SetDefault("server.cache_size", 128)
}
