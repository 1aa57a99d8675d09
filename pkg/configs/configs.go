// Package configs 提供应用程序配置管理功能
package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/mod/semver"
)

// SupportedMajor 当前支持的配置文件主版本
const SupportedMajor = "v1"

// Config 应用配置结构
type Config struct {
	Version string        `mapstructure:"version" json:"version" yaml:"version" toml:"version"`
	Log     LogConfig     `mapstructure:"log" json:"log" yaml:"log" toml:"log"`
	App     AppConfig     `mapstructure:"app" json:"app" yaml:"app" toml:"app"`
	Extract ExtractConfig `mapstructure:"extract" json:"extract" yaml:"extract" toml:"extract"`
	Preview PreviewConfig `mapstructure:"preview" json:"preview" yaml:"preview" toml:"preview"`
	Session SessionConfig `mapstructure:"session" json:"session" yaml:"session" toml:"session"`
	Watch   WatchConfig   `mapstructure:"watch" json:"watch" yaml:"watch" toml:"watch"`
	Server  ServerConfig  `mapstructure:"server" json:"server" yaml:"server" toml:"server"`
}

// setDefaults 设置所有配置段的默认值
func setDefaults(v *viper.Viper) {
	v.SetDefault("version", "1.0")
	setLogConfigDefaults(v)
	setAppConfigDefaults(v)
	setExtractConfigDefaults(v)
	setPreviewConfigDefaults(v)
	setSessionConfigDefaults(v)
	setWatchConfigDefaults(v)
	setServerConfigDefaults(v)
}

// searchPaths 返回配置文件搜索路径
func searchPaths() []string {
	paths := []string{
		".",
		"./configs",
		"$HOME",
		"$HOME/.config",
		"$HOME/.config/colorsift",
	}

	// Windows 特殊路径
	if runtime.GOOS == "windows" {
		paths = append(paths, "$USERPROFILE", "$APPDATA/colorsift")
	} else {
		paths = append(paths, "/etc/colorsift")
	}
	return paths
}

// findConfigFile 尝试查找不同格式的配置文件，找不到时返回空字符串
func findConfigFile() string {
	configNames := []string{".colorsift", "colorsift"}
	extensions := []string{"yaml", "yml", "json", "toml"}

	for _, path := range searchPaths() {
		for _, name := range configNames {
			for _, ext := range extensions {
				configFile := filepath.Join(path, name+"."+ext)

				// 展开环境变量
				if strings.Contains(configFile, "$") {
					configFile = os.ExpandEnv(configFile)
				}

				if _, err := os.Stat(configFile); err == nil {
					return configFile
				}
			}
		}
	}
	return ""
}

// NewViper 创建带默认值和环境变量绑定的 viper 实例
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("COLORSIFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// LoadConfig 加载配置文件；configPath 为空时按搜索路径查找
func LoadConfig(configPath string) (*Config, *viper.Viper, error) {
	v := NewViper()

	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	cfg, err := Decode(v)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

// Decode 将 viper 中的数据解码为 Config 并校验
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// 确保日志目录存在
	if cfg.Log.Mode == "file" || cfg.Log.Mode == "both" {
		if err := os.MkdirAll(filepath.Dir(cfg.Log.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	return &cfg, nil
}

// Validate 检查配置的版本与取值范围
func (c *Config) Validate() error {
	ver := c.Version
	if !strings.HasPrefix(ver, "v") {
		ver = "v" + ver
	}
	if !semver.IsValid(ver) {
		return fmt.Errorf("invalid config version %q", c.Version)
	}
	if major := semver.Major(ver); major != SupportedMajor {
		return fmt.Errorf("unsupported config version %q (want %s.x)", c.Version, SupportedMajor)
	}

	if _, err := ParseOutputFormat(c.Extract.Format); err != nil {
		return fmt.Errorf("extract.format: %w", err)
	}
	if c.Session.Debounce < 0 || c.Watch.Debounce < 0 {
		return errors.New("debounce must not be negative")
	}
	if c.Server.CacheSize <= 0 {
		return errors.New("server.cache_size must be positive")
	}
	return nil
}
