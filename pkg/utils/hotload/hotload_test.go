package hotload

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestDebouncer_Coalesces(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	got := make(chan []string, 4)
	fire := func(c []string) { got <- c }

	d.add("a.css", fire)
	d.add("b.css", fire)
	d.add("a.css", fire)

	select {
	case c := <-got:
		if len(c) != 2 {
			t.Fatalf("changed = %v, want 2 distinct files", c)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("debouncer never fired")
	}
	select {
	case c := <-got:
		t.Fatalf("unexpected second fire: %v", c)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestDebouncer_StaleTimerDoesNotFire(t *testing.T) {
	d := newDebouncer(time.Hour)
	got := make(chan []string, 1)
	fire := func(c []string) { got <- c }

	d.add("a.css", fire)
	// 模拟旧定时器已触发但排在 add 之后拿到锁
	d.add("b.css", fire)
	d.run(1, fire)

	select {
	case c := <-got:
		t.Fatalf("stale generation fired early: %v", c)
	default:
	}

	d.run(2, fire)
	select {
	case c := <-got:
		if len(c) != 2 {
			t.Fatalf("changed = %v, want both files", c)
		}
	default:
		t.Fatal("current generation did not fire")
	}
	d.stop()
}

func TestDebouncer_StopWaitsForCallback(t *testing.T) {
	d := newDebouncer(time.Millisecond)
	started := make(chan struct{})
	release := make(chan struct{})
	var finished bool
	fire := func([]string) {
		close(started)
		<-release
		finished = true
	}

	d.add("a.css", fire)
	<-started

	stopped := make(chan struct{})
	go func() {
		d.stop()
		close(stopped)
	}()
	select {
	case <-stopped:
		t.Fatal("stop returned while the callback was still running")
	case <-time.After(30 * time.Millisecond):
	}

	close(release)
	<-stopped
	if !finished {
		t.Fatal("callback did not finish before stop returned")
	}

	// stop 之后的变化被忽略
	d.add("b.css", func(c []string) { t.Errorf("fired after stop: %v", c) })
	time.Sleep(20 * time.Millisecond)
}

func TestWatchContext_Accepts(t *testing.T) {
	root := t.TempDir()
	w := &watchContext{
		root: root,
		opts: Options{
			Filter:         []string{"**/*.css"},
			IgnorePatterns: []string{"**/*.min.css", "**/node_modules/**"},
		},
	}
	cases := map[string]bool{
		filepath.Join(root, "a.css"):                      true,
		filepath.Join(root, "sub", "b.css"):               true,
		filepath.Join(root, "a.min.css"):                  false,
		filepath.Join(root, "node_modules", "x", "c.css"): false,
		filepath.Join(root, "readme.md"):                  false,
	}
	for p, want := range cases {
		if got := w.accepts(p); got != want {
			t.Errorf("accepts(%s) = %v, want %v", p, got, want)
		}
	}
	if !w.skipDir(filepath.Join(root, "node_modules")) {
		t.Error("node_modules should be skipped")
	}
	if w.skipDir(filepath.Join(root, "src")) {
		t.Error("src should not be skipped")
	}
}

func TestOnWrite_HashDetectsRealChange(t *testing.T) {
	root := t.TempDir()
	p := filepath.Join(root, "a.css")
	if err := os.WriteFile(p, []byte(".a{color:red}"), 0o644); err != nil {
		t.Fatal(err)
	}
	w := &watchContext{root: root, single: p, cache: make(stateCache)}
	w.track(p)

	if w.onWrite(p) {
		t.Error("unchanged content reported as change")
	}
	if err := os.WriteFile(p, []byte(".a{color:blue}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !w.onWrite(p) {
		t.Error("content change not detected")
	}
	if err := os.Remove(p); err != nil {
		t.Fatal(err)
	}
	if !w.onRemove(p) {
		t.Error("removal of tracked file not reported")
	}
}

func TestWatch_SingleFile(t *testing.T) {
	root := t.TempDir()
	p := filepath.Join(root, "theme.css")
	if err := os.WriteFile(p, []byte(".a{color:red}"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var once sync.Once
	got := make(chan []string, 1)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, Options{Path: p, Debounce: 20 * time.Millisecond}, func(c []string) {
			once.Do(func() { got <- c })
		})
	}()

	// 等待 watcher 注册完成后再写入
	deadline := time.After(3 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	n := 0
	for {
		select {
		case c := <-got:
			if len(c) != 1 || c[0] != p {
				t.Fatalf("changed = %v, want [%s]", c, p)
			}
			cancel()
			if err := <-done; err != nil {
				t.Fatalf("Watch returned %v", err)
			}
			return
		case <-tick.C:
			n++
			body := []byte(".a{color:#" + string(rune('a'+n%6)) + "00}")
			if err := os.WriteFile(p, body, 0o644); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatal("no change reported")
		}
	}
}

func TestWatch_MissingPath(t *testing.T) {
	err := Watch(context.Background(), Options{Path: filepath.Join(t.TempDir(), "nope")}, func([]string) {})
	if err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestLoadGitIgnore(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("build/\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	globs := loadGitIgnore(root)
	w := &watchContext{root: root, opts: Options{Filter: []string{"**/*.css"}, IgnorePatterns: globs}}
	if w.accepts(filepath.Join(root, "build", "out.css")) {
		t.Error("file under ignored build/ should not be accepted")
	}
	if !w.skipDir(filepath.Join(root, "build")) {
		t.Error("build/ should be skipped")
	}
}
