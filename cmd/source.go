package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/yeisme/colorsift/pkg/diagnose"
	"github.com/yeisme/colorsift/pkg/input"
	"github.com/yeisme/colorsift/pkg/session"
	"github.com/yeisme/colorsift/pkg/style"
)

// source 一次命令读取到的 CSS 文本及其来源
type source struct {
	Text   string
	Origin string
}

// loadSource 依次尝试：参数（文件或 "-"）、会话存储、内置示例
func loadSource(cmd *cobra.Command, args []string) (source, error) {
	if len(args) > 0 {
		text, err := input.Read(args[0], cmd.InOrStdin())
		if err != nil {
			return source{}, err
		}
		origin := args[0]
		if origin == input.StdinName {
			origin = "stdin"
		}
		return source{Text: text, Origin: origin}, nil
	}

	if store := openSession(); store != nil {
		if text, ok := store.Get(appCtx.Config.Session.Key); ok {
			return source{Text: text, Origin: "session"}, nil
		}
	}
	return source{Text: session.DefaultInput, Origin: "sample"}, nil
}

// openSession 打开会话存储；禁用或失败时返回 nil，存储只是尽力而为
func openSession() *session.Store {
	cfg := appCtx.Config.Session
	if !cfg.Enabled {
		return nil
	}
	store, err := session.Open(cfg.Path)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Path).Msg("session store unavailable")
		return nil
	}
	return store
}

// sessionWriter 返回会话的防抖写入器；会话不可用时返回 nil
func sessionWriter() *session.DebouncedWriter {
	store := openSession()
	if store == nil {
		return nil
	}
	cfg := appCtx.Config.Session
	return session.NewDebouncedWriter(store, cfg.Key, time.Duration(cfg.Debounce)*time.Millisecond)
}

// saveSource 立即把输入写入会话存储
func saveSource(src source) error {
	store := openSession()
	if store == nil {
		return fmt.Errorf("session store is disabled or unavailable")
	}
	return store.Set(appCtx.Config.Session.Key, src.Text)
}

// logDiagnostics 以警告形式提示未被检查的内容
func logDiagnostics(src source) diagnose.Report {
	rep := diagnose.Scan(src.Text)
	for _, w := range rep.Warnings() {
		log.Warn().Str("source", src.Origin).Msg(w)
	}
	return rep
}

// useColor 判断是否输出带样式的内容
func useColor(cmd *cobra.Command) bool {
	if appCtx.Config.Preview.NoColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if f := cmd.Flags().Lookup("no-color"); f != nil && f.Changed {
		return f.Value.String() != "true"
	}
	return style.IsTerminal(cmd.OutOrStdout())
}
