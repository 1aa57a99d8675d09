package configs

import "github.com/spf13/viper"

// ExtractConfig 提取命令的配置
type ExtractConfig struct {
	Format     string `mapstructure:"format" json:"format" yaml:"format" toml:"format"`                     // 输出格式: text, json, yaml, toml, markdown, table
	ShowStatus bool   `mapstructure:"show_status" json:"show_status" yaml:"show_status" toml:"show_status"` // 是否在 stderr 输出状态行与计数
}

// PreviewConfig 预览渲染配置
type PreviewConfig struct {
	Width   int    `mapstructure:"width" json:"width" yaml:"width" toml:"width"` // <=0 时自动探测终端宽度
	Theme   string `mapstructure:"theme" json:"theme" yaml:"theme" toml:"theme"` // glamour 主题，用于 markdown 报告
	NoColor bool   `mapstructure:"no_color" json:"no_color" yaml:"no_color" toml:"no_color"`
}

func setExtractConfigDefaults(v *viper.Viper) {
	v.SetDefault("extract.format", string(FormatText))
	v.SetDefault("extract.show_status", false)
}

func setPreviewConfigDefaults(v *viper.Viper) {
	v.SetDefault("preview.width", 0)
	v.SetDefault("preview.theme", "dark")
	v.SetDefault("preview.no_color", false)
}
