package configs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile 返回指定格式的默认配置文件名
func DefaultConfigFile(format OutputFormat) (string, error) {
	switch format {
	case FormatYAML:
		return ".colorsift.yaml", nil
	case FormatJSON:
		return ".colorsift.json", nil
	case FormatTOML:
		return ".colorsift.toml", nil
	default:
		return "", fmt.Errorf("format %s is not supported for config files", format)
	}
}

// CreateDefaultConfig 以默认值写出一份配置文件，已存在时返回错误
func CreateDefaultConfig(path string, format OutputFormat) error {
	cfg, err := Decode(NewViper())
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(cfg)
	case FormatJSON:
		data, err = json.MarshalIndent(cfg, "", "  ")
	case FormatTOML:
		data, err = toml.Marshal(cfg)
	default:
		return fmt.Errorf("format %s is not supported for config files", format)
	}
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
