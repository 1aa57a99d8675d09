package hotload

import (
	"sync"
	"time"
)

// debouncer 收集变化的文件，在最后一次变化后静默 delay 再统一回调
//
// 每次 add 都换一个新定时器并递增 gen，旧定时器即使已经触发也会因 gen 不符而放弃
type debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	stopped bool
	pending map[string]struct{}
	running sync.WaitGroup
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay, pending: make(map[string]struct{})}
}

// add 记录变化并重新计时
func (d *debouncer) add(name string, fire func([]string)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	d.pending[name] = struct{}{}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() { d.run(gen, fire) })
}

func (d *debouncer) run(gen uint64, fire func([]string)) {
	d.mu.Lock()
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	changed := make([]string, 0, len(d.pending))
	for n := range d.pending {
		changed = append(changed, n)
	}
	d.pending = make(map[string]struct{})
	d.timer = nil
	d.running.Add(1)
	d.mu.Unlock()

	defer d.running.Done()
	if len(changed) > 0 {
		fire(changed)
	}
}

// stop 取消尚未触发的回调，并等待正在执行的回调结束
func (d *debouncer) stop() {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
	d.running.Wait()
}
