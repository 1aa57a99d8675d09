// Package context 定义命令执行期间共享的应用上下文
package context

import (
	"context"

	"github.com/spf13/viper"
	"github.com/yeisme/colorsift/pkg/configs"
	"github.com/yeisme/colorsift/pkg/utils/log"
)

// GlobalFlags 根命令上的全局标志
type GlobalFlags struct {
	ConfigPath    string
	Debug         bool
	Verbose       bool
	Quiet         bool
	VersionEnable bool
}

// AppContext 应用上下文
type AppContext struct {
	context.Context
	Config *configs.Config // 应用配置
	Viper  *viper.Viper    // 原始配置数据
	Logger log.Logger      // 日志记录器
}

// InitAppContext 加载配置并初始化日志，命令行标志优先于配置文件
func InitAppContext(ctx context.Context, flags GlobalFlags) (*AppContext, error) {
	config, v, err := configs.LoadConfig(flags.ConfigPath)
	if err != nil {
		return nil, err
	}

	if flags.Debug {
		config.App.Debug = true
	}
	if flags.Verbose {
		config.App.Verbose = true
	}
	if flags.Quiet {
		config.App.Quiet = true
	}

	logger := log.InitLogger(ctx, &config.Log, &config.App)

	return &AppContext{
		Context: ctx,
		Config:  config,
		Viper:   v,
		Logger:  logger,
	}, nil
}
