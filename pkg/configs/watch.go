package configs

import "github.com/spf13/viper"

// WatchConfig 文件监听配置
type WatchConfig struct {
	Debounce       int      `mapstructure:"debounce" json:"debounce" yaml:"debounce" toml:"debounce"` // 防抖时间，毫秒
	Filter         []string `mapstructure:"filter" json:"filter" yaml:"filter" toml:"filter"`         // doublestar 模式
	IgnorePatterns []string `mapstructure:"ignore_patterns" json:"ignore_patterns" yaml:"ignore_patterns" toml:"ignore_patterns"`
	GitIgnore      bool     `mapstructure:"gitignore" json:"gitignore" yaml:"gitignore" toml:"gitignore"` // 监听目录时遵循 .gitignore
}

func setWatchConfigDefaults(v *viper.Viper) {
	v.SetDefault("watch.debounce", 300)
	v.SetDefault("watch.gitignore", true)
	v.SetDefault("watch.filter", []string{"**/*.css"})
	v.SetDefault("watch.ignore_patterns", []string{
		"**/*.min.css",
		"**/node_modules/**",
		"**/.git/**",
	})
}
