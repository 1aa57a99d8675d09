package configs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yeisme/colorsift/pkg/style"
	"gopkg.in/yaml.v3"
)

// OutputFormat 输出格式类型
type OutputFormat string

const (
	// FormatYAML represents the YAML output format.
	FormatYAML OutputFormat = "yaml"
	// FormatJSON represents the JSON output format.
	FormatJSON OutputFormat = "json"
	// FormatTOML represents the TOML output format.
	FormatTOML OutputFormat = "toml"
	// FormatText represents the plain text output format.
	FormatText OutputFormat = "text"
	// FormatMarkdown renders a markdown report through glamour.
	FormatMarkdown OutputFormat = "markdown"
	// FormatTable renders a lipgloss table.
	FormatTable OutputFormat = "table"
	// FormatTree renders matches grouped by selector.
	FormatTree OutputFormat = "tree"
)

// ValidFormats 返回所有有效的输出格式
func ValidFormats() []string {
	return []string{
		string(FormatText), string(FormatYAML), string(FormatJSON),
		string(FormatTOML), string(FormatMarkdown), string(FormatTable),
		string(FormatTree),
	}
}

// ParseOutputFormat 解析输出格式字符串
func ParseOutputFormat(format string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "text", "txt", "":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "table":
		return FormatTable, nil
	case "tree":
		return FormatTree, nil
	default:
		return "", fmt.Errorf("unsupported format '%s', supported formats: %s", format, strings.Join(ValidFormats(), ", "))
	}
}

// GetOutputFormatFromFlags 从命令行标志获取输出格式，fallback 为未指定时的格式
func GetOutputFormatFromFlags(cmd *cobra.Command, fallback OutputFormat) OutputFormat {
	// 首先检查 --format 标志
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		if format, err := ParseOutputFormat(f.Value.String()); err == nil {
			return format
		}
	}

	// 检查具体的格式标志
	for _, format := range []OutputFormat{FormatYAML, FormatJSON, FormatTOML, FormatText} {
		if set, _ := cmd.Flags().GetBool(string(format)); set {
			return format
		}
	}
	return fallback
}

// OutputData 根据指定格式输出数据；color 为 true 时带高亮
func OutputData(data any, format OutputFormat, out io.Writer, color bool) error {
	switch format {
	case FormatYAML:
		if color {
			return style.PrintYAML(out, data)
		}
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to marshal to YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to close YAML encoder: %w", err)
		}
		_, err := out.Write(buf.Bytes())
		return err

	case FormatJSON:
		if color {
			return style.PrintJSON(out, data)
		}
		jsonData, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %w", err)
		}
		_, err = fmt.Fprintln(out, string(jsonData))
		return err

	case FormatTOML:
		if color {
			return style.PrintTOML(out, data)
		}
		tomlData, err := toml.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal to TOML: %w", err)
		}
		_, err = out.Write(tomlData)
		return err

	case FormatText:
		_, err := fmt.Fprintf(out, "%+v\n", data)
		return err

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// GetConfigSection 从 viper 实例获取指定配置段
func GetConfigSection(v *viper.Viper, section string, showAll bool) (any, error) {
	lowerSection := strings.ToLower(section)

	if showAll {
		// 返回完整的配置结构体（包含默认值）
		var config Config
		if err := v.Unmarshal(&config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
		if lowerSection == "" {
			return config, nil
		}

		// 使用反射按 mapstructure 标签查找配置段
		val := reflect.ValueOf(config)
		typ := val.Type()
		for i := 0; i < val.NumField(); i++ {
			if strings.EqualFold(typ.Field(i).Tag.Get("mapstructure"), lowerSection) {
				return val.Field(i).Interface(), nil
			}
		}
		return nil, fmt.Errorf("unknown configuration section: %s", section)
	}

	if lowerSection == "" {
		return v.AllSettings(), nil
	}
	if v.IsSet(lowerSection) {
		return v.Get(lowerSection), nil
	}
	return nil, fmt.Errorf("unknown or unset configuration section %s", section)
}
