package hotload

import (
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/yeisme/colorsift/pkg/utils/log"
)

// handleEvent 判断事件是否代表真实的内容变化，并更新缓存
func (w *watchContext) handleEvent(event fsnotify.Event) (string, bool) {
	name := event.Name
	log.Debug().Str("op", event.Op.String()).Str("name", name).Msg("fs event")

	if event.Has(fsnotify.Create) && w.single == "" {
		if info, err := os.Stat(name); err == nil && info.IsDir() {
			if !w.skipDir(name) {
				if err := w.addTree(name); err != nil {
					log.Warn().Err(err).Str("dir", name).Msg("failed to watch new directory")
				}
			}
			return "", false
		}
	}

	if !w.accepts(name) {
		return "", false
	}

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return name, w.onRemove(name)
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		return name, w.onWrite(name)
	}
	return "", false
}

func (w *watchContext) onRemove(name string) bool {
	if _, err := os.Stat(name); err == nil {
		// 重命名覆盖：文件仍然存在，按写入处理
		return w.onWrite(name)
	}
	if _, tracked := w.cache[name]; tracked {
		delete(w.cache, name)
		return true
	}
	return false
}

func (w *watchContext) onWrite(name string) bool {
	old, tracked := w.cache[name]
	st, ok := statFile(name)
	if !ok {
		if tracked {
			delete(w.cache, name)
			return true
		}
		return false
	}
	w.cache[name] = st

	if !tracked {
		return true
	}
	// 截断为 0 字节通常是编辑器保存的中间状态，等待后续写入
	if st.size == 0 && old.size > 0 {
		return false
	}
	if st.hash != "" && old.hash != "" {
		return st.hash != old.hash
	}
	return st.size != old.size || !st.modTime.Equal(old.modTime)
}
