package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func testConfig(dict string) *Config {
	return &Config{Dictionary: dict, Capacity: 8, HashFunc: "weighted", LogLevel: "info"}
}

func TestReload(t *testing.T) {
	fs := memFs(t, map[string]string{"dict.txt": "new words"})
	e := newTestEngine("old")

	stats, err := Reload(fs, testConfig("dict.txt"), e)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Distinct != 2 {
		t.Errorf("Distinct = %d, want 2", stats.Distinct)
	}
	if e.Check("old") || !e.Check("new") || !e.Check("words") {
		t.Errorf("engine not swapped")
	}
}

func TestReloadFailureKeepsTable(t *testing.T) {
	e := newTestEngine("old")
	if _, err := Reload(afero.NewMemMapFs(), testConfig("missing.txt"), e); err == nil {
		t.Fatal("expected error")
	}
	if !e.Check("old") {
		t.Errorf("engine lost its table after a failed reload")
	}
}

func TestWatchDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.txt")
	if err := os.WriteFile(path, []byte("first"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := testConfig(path)
	e := newTestEngine("first")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- WatchDictionary(ctx, afero.NewOsFs(), cfg, e) }()

	// The watch is registered asynchronously, so keep rewriting until it is
	// seen, leaving the events time to settle between writes.
	deadline := time.Now().Add(10 * time.Second)
	for !e.Check("second") {
		if time.Now().After(deadline) {
			t.Fatal("dictionary change was not picked up")
		}
		if err := os.WriteFile(path, []byte("second"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(3 * reloadSettle)
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("WatchDictionary() = %v", err)
	}
}

func TestReloadEmptyKeepsTable(t *testing.T) {
	fs := memFs(t, map[string]string{"dict.txt": ""})
	e := newTestEngine("apple")

	if _, err := Reload(fs, testConfig("dict.txt"), e); err != errEmptyDictionary {
		t.Fatalf("Reload() = %v, want %v", err, errEmptyDictionary)
	}
	if !e.Check("apple") {
		t.Errorf("engine lost its words after reloading an empty file")
	}

	// An empty engine may take an empty dictionary.
	empty := newTestEngine()
	if _, err := Reload(fs, testConfig("dict.txt"), empty); err != nil {
		t.Errorf("Reload() into empty engine = %v", err)
	}
}

func TestReloadClosedEngine(t *testing.T) {
	fs := memFs(t, map[string]string{"dict.txt": "apple"})
	e := newTestEngine("old")
	e.Close()
	if _, err := Reload(fs, testConfig("dict.txt"), e); err != errEngineClosed {
		t.Errorf("Reload() = %v, want %v", err, errEngineClosed)
	}
}

func TestWatchDictionaryRewriteInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.txt")
	if err := os.WriteFile(path, []byte("apple banana"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := testConfig(path)
	e := newTestEngine("apple", "banana")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- WatchDictionary(ctx, afero.NewOsFs(), cfg, e) }()
	defer func() {
		cancel()
		<-done
	}()
	time.Sleep(200 * time.Millisecond)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(3 * reloadSettle)
	if !e.Check("apple") {
		t.Errorf("truncated dictionary replaced the loaded words")
	}

	if _, err := f.WriteString("cherry date elder"); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(10 * time.Second)
	for !e.Check("cherry") {
		if time.Now().After(deadline) {
			t.Fatal("rewritten dictionary was not picked up")
		}
		time.Sleep(50 * time.Millisecond)
	}
	if e.Check("apple") || e.Stats().Words != 3 {
		t.Errorf("after reload: apple=%v words=%d, want false, 3", e.Check("apple"), e.Stats().Words)
	}
}

func TestStartWatcherWait(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.txt")
	if err := os.WriteFile(path, []byte("apple"), 0o644); err != nil {
		t.Fatal(err)
	}
	e := newTestEngine("apple")

	ctx, cancel := context.WithCancel(context.Background())
	wait := StartWatcher(ctx, afero.NewOsFs(), testConfig(path), e)
	cancel()

	waited := make(chan struct{})
	go func() {
		wait()
		close(waited)
	}()
	select {
	case <-waited:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not exit after cancellation")
	}

	// Nothing can swap a table in once the watcher is gone.
	e.Close()
	if e.Stats().Words != 0 {
		t.Errorf("closed engine still holds words")
	}
}
