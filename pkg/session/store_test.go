package session

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.yaml")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, ok := s.Get("k"); ok {
		t.Fatal("new store should be empty")
	}

	css := ".a {\n  color: #fff;\n}\n"
	if err := s.Set("k", css); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, ok := reopened.Get("k")
	if !ok || got != css {
		t.Fatalf("Get = %q, %v", got, ok)
	}

	if err := reopened.Delete("k"); err != nil {
		t.Fatal(err)
	}
	if reopened.Len() != 0 {
		t.Fatalf("Len = %d after delete", reopened.Len())
	}
}

func TestStore_BlankIsAbsent(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "s.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set("k", "   \n"); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Get("k"); ok {
		t.Fatal("whitespace-only value should be treated as absent")
	}
}

func TestOpen_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	if err := os.WriteFile(path, []byte("a: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDebouncedWriter_CoalescesUpdates(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "s.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	w := NewDebouncedWriter(s, "k", 30*time.Millisecond)

	var flushes atomic.Int32
	done := make(chan struct{}, 1)
	w.OnFlush(func(err error) {
		if err != nil {
			t.Errorf("flush: %v", err)
		}
		flushes.Add(1)
		done <- struct{}{}
	})

	for _, v := range []string{"a", "ab", "abc"} {
		w.Update(v)
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced write never happened")
	}
	if got, _ := s.Get("k"); got != "abc" {
		t.Fatalf("stored %q, want last value", got)
	}
	if n := flushes.Load(); n != 1 {
		t.Fatalf("flushes = %d, want 1", n)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestDebouncedWriter_CloseFlushesPending(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "s.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	w := NewDebouncedWriter(s, "k", time.Hour)
	w.Update("pending")
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if got, ok := s.Get("k"); !ok || got != "pending" {
		t.Fatalf("Get = %q, %v", got, ok)
	}
}

func TestDebouncedWriter_StaleTimerIsIgnored(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "s.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	w := NewDebouncedWriter(s, "k", time.Hour)
	w.Update("a")
	w.Update("ab")

	// 第一代定时器迟到触发时不应提前落盘
	w.fire(1)
	if _, ok := s.Get("k"); ok {
		t.Fatal("stale timer flushed before the debounce delay")
	}

	w.fire(2)
	if got, _ := s.Get("k"); got != "ab" {
		t.Fatalf("stored %q, want latest value", got)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestDebouncedWriter_UpdateAfterClose(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "s.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	w := NewDebouncedWriter(s, "k", time.Hour)
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	w.Update("late")
	if got, ok := s.Get("k"); !ok || got != "late" {
		t.Fatalf("Get = %q, %v", got, ok)
	}
}
