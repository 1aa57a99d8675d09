// Package hotload 监听 CSS 文件变化，并在防抖后触发回调
//
// 监听目标可以是单个文件，也可以是目录（递归）。
// 事件先按 doublestar 过滤/忽略规则筛选，再通过内容哈希确认是否真的发生变化
package hotload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/yeisme/colorsift/pkg/configs"
	"github.com/yeisme/colorsift/pkg/utils/gitignore"
	"github.com/yeisme/colorsift/pkg/utils/log"
)

// DefaultDebounce 未配置时的防抖时长
const DefaultDebounce = 300 * time.Millisecond

// Func 回调函数，参数为本轮防抖窗口内发生变化的文件（已排序）
type Func func(changed []string)

// Options 监听选项
type Options struct {
	Path           string
	Debounce       time.Duration
	Filter         []string
	IgnorePatterns []string
	GitIgnore      bool
}

// OptionsFromConfig 根据 watch 配置构建选项
func OptionsFromConfig(cfg configs.WatchConfig, path string) Options {
	return Options{
		Path:           path,
		Debounce:       time.Duration(cfg.Debounce) * time.Millisecond,
		Filter:         cfg.Filter,
		IgnorePatterns: cfg.IgnorePatterns,
		GitIgnore:      cfg.GitIgnore,
	}
}

// loadGitIgnore 读取根目录的 .gitignore 并转换为 doublestar 模式
func loadGitIgnore(root string) []string {
	gi, err := gitignore.LoadGitIgnoreFromDir(root)
	if err != nil {
		log.Warn().Err(err).Str("dir", root).Msg("failed to load .gitignore")
		return nil
	}
	globs := gi.Globs()
	if len(globs) > 0 {
		log.Debug().Strs("patterns", globs).Msg("loaded .gitignore patterns")
	}
	return globs
}

// Watch 阻塞监听，直到 ctx 结束或 watcher 关闭
func Watch(ctx context.Context, opts Options, hook Func) error {
	if opts.Path == "" {
		return fmt.Errorf("watch path is empty")
	}
	abs, err := filepath.Abs(opts.Path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", opts.Path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("stat %s: %w", opts.Path, err)
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() {
		if cerr := watcher.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("close watcher")
		}
	}()

	w := &watchContext{
		opts:     opts,
		watcher:  watcher,
		cache:    make(stateCache),
		debounce: newDebouncer(opts.Debounce),
	}

	if info.IsDir() {
		w.root = abs
		if opts.GitIgnore {
			w.opts.IgnorePatterns = append(slices.Clone(opts.IgnorePatterns), loadGitIgnore(abs)...)
		}
		if err := w.addTree(abs); err != nil {
			return err
		}
	} else {
		// 编辑器常以「写临时文件再重命名」的方式保存，因此监听父目录
		w.root = filepath.Dir(abs)
		w.single = abs
		if err := watcher.Add(w.root); err != nil {
			return fmt.Errorf("watch %s: %w", w.root, err)
		}
		w.track(abs)
	}

	log.Info().
		Str("path", abs).
		Bool("single", w.single != "").
		Dur("debounce", opts.Debounce).
		Int("files", len(w.cache)).
		Msg("watching for CSS changes")

	defer w.debounce.stop()
	fire := func(changed []string) {
		sort.Strings(changed)
		hook(changed)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if name, changed := w.handleEvent(event); changed {
				w.debounce.add(name, fire)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("watcher error")
		}
	}
}
