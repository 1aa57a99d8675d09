package hotload

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/yeisme/colorsift/pkg/input"
	"github.com/yeisme/colorsift/pkg/utils/log"
)

// fileState 文件的元数据与内容哈希
type fileState struct {
	modTime time.Time
	size    int64
	hash    string
}

type stateCache map[string]fileState

type watchContext struct {
	opts    Options
	watcher *fsnotify.Watcher
	root    string
	single  string

	// cache 只在事件循环协程中访问
	cache    stateCache
	debounce *debouncer
}

func hashFile(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return ""
	}
	return hex.EncodeToString(h.Sum(nil))
}

func statFile(path string) (fileState, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fileState{}, false
	}
	return fileState{modTime: info.ModTime(), size: info.Size(), hash: hashFile(path)}, true
}

// track 记录文件当前状态，不视为变化
func (w *watchContext) track(path string) {
	if st, ok := statFile(path); ok {
		w.cache[path] = st
	}
}

func (w *watchContext) rel(path string) string {
	r, err := filepath.Rel(w.root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(r)
}

// accepts 判断文件是否属于监听范围
func (w *watchContext) accepts(path string) bool {
	if w.single != "" {
		return path == w.single
	}
	return input.Accept(w.opts.Filter, w.opts.IgnorePatterns, w.rel(path))
}

// skipDir 目录命中忽略规则时不再向下监听
func (w *watchContext) skipDir(path string) bool {
	if path == w.root {
		return false
	}
	rel := w.rel(path)
	return input.MatchAny(w.opts.IgnorePatterns, rel) ||
		input.MatchAny(w.opts.IgnorePatterns, rel+"/_")
}

// addTree 递归注册目录并建立初始状态缓存
func (w *watchContext) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("skip unreadable path")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if w.skipDir(path) {
				return filepath.SkipDir
			}
			if err := w.watcher.Add(path); err != nil {
				log.Warn().Err(err).Str("dir", path).Msg("failed to watch directory")
			}
			return nil
		}
		if w.accepts(path) {
			w.track(path)
		}
		return nil
	})
}
