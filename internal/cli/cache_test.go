package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", appName)
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	custom := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", custom)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(custom, appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestNewCacheDisabled(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	if _, ok := c.newCache(true).(interface{ Dir() string }); ok {
		t.Error("newCache(true) returned a file cache")
	}
}

func TestNewCacheFile(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c := New(os.Stderr, LogInfo)

	fc, ok := c.newCache(false).(interface{ Dir() string })
	if !ok {
		t.Fatal("newCache(false) did not return a file cache")
	}
	if _, err := os.Stat(fc.Dir()); err != nil {
		t.Errorf("cache dir not created: %v", err)
	}
}
