package session

import (
	"sync"
	"time"

	"github.com/yeisme/colorsift/pkg/utils/log"
)

// DefaultDebounce 与原编辑器保存输入的延迟一致
const DefaultDebounce = 400 * time.Millisecond

// DebouncedWriter 延迟写入：在最后一次 Update 之后静默 delay 才真正落盘
type DebouncedWriter struct {
	store *Store
	key   string
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	closed  bool
	pending *string
	onFlush func(error)

	// flushMu 保证取值与写入成对执行，旧值不会覆盖新值
	flushMu sync.Mutex
}

// NewDebouncedWriter 创建写入器；delay<=0 时使用 DefaultDebounce
func NewDebouncedWriter(store *Store, key string, delay time.Duration) *DebouncedWriter {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &DebouncedWriter{store: store, key: key, delay: delay}
}

// OnFlush 注册每次落盘后的回调，主要用于测试与日志
func (w *DebouncedWriter) OnFlush(fn func(error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onFlush = fn
}

// Update 记录最新的值并重新计时；Close 之后的 Update 直接写入
func (w *DebouncedWriter) Update(value string) {
	w.mu.Lock()
	w.pending = &value
	if w.closed {
		w.mu.Unlock()
		if err := w.flush(); err != nil {
			log.Warn().Err(err).Str("key", w.key).Msg("failed to save session input")
		}
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.gen++
	gen := w.gen
	w.timer = time.AfterFunc(w.delay, func() { w.fire(gen) })
	w.mu.Unlock()
}

// Close 停止定时器并立即写入尚未落盘的值
func (w *DebouncedWriter) Close() error {
	w.mu.Lock()
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()
	return w.flush()
}

func (w *DebouncedWriter) fire(gen uint64) {
	w.mu.Lock()
	if w.closed || gen != w.gen {
		w.mu.Unlock()
		return
	}
	w.timer = nil
	w.mu.Unlock()
	if err := w.flush(); err != nil {
		log.Warn().Err(err).Str("key", w.key).Msg("failed to save session input")
	}
}

func (w *DebouncedWriter) flush() error {
	w.flushMu.Lock()
	defer w.flushMu.Unlock()

	w.mu.Lock()
	value := w.pending
	w.pending = nil
	cb := w.onFlush
	w.mu.Unlock()

	if value == nil {
		return nil
	}
	err := w.store.Set(w.key, *value)
	if cb != nil {
		cb(err)
	}
	return err
}
