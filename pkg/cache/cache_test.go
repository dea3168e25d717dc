package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if _, hit, err := c.Get(ctx, "missing"); hit || err != nil {
		t.Errorf("Get(missing) = hit %v, err %v", hit, err)
	}

	if err := c.Set(ctx, "site:abc", []byte("<html>"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "site:abc")
	if err != nil || !hit || string(data) != "<html>" {
		t.Errorf("Get = %q, %v, %v", data, hit, err)
	}

	if err := c.Delete(ctx, "site:abc"); err != nil {
		t.Errorf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "site:abc"); hit {
		t.Error("entry survived Delete")
	}
	if err := c.Delete(ctx, "site:abc"); err != nil {
		t.Errorf("Delete of a missing key: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "old", []byte("x"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Millisecond)
	if _, hit, _ := c.Get(ctx, "old"); hit {
		t.Error("expired entry returned as hit")
	}
	if _, err := os.Stat(c.path("old")); !os.IsNotExist(err) {
		t.Error("expired entry was not removed")
	}

	if err := c.Set(ctx, "forever", []byte("x"), 0); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("entry without TTL should not expire")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	p := c.path("broken")
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, hit, err := c.Get(ctx, "broken")
	if hit || err != nil {
		t.Errorf("Get(corrupt) = hit %v, err %v", hit, err)
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Error("corrupt entry was not removed")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, _ := NewFileCache(dir)

	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), time.Hour); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("cache dir removed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("%d entries left after Clear", len(entries))
	}
}

func TestFileCachePathLayout(t *testing.T) {
	c := &FileCache{dir: "/cache"}
	p := c.path("key")
	hash := Hash([]byte("key"))
	want := filepath.Join("/cache", hash[:2], hash[2:]+".json")
	if p != want {
		t.Errorf("path = %s, want %s", p, want)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestHashNamed(t *testing.T) {
	base := map[string][]byte{"dane": []byte(`{"a":1}`), "najmy": []byte(`{"b":2}`)}

	tests := []struct {
		name  string
		blobs map[string][]byte
		same  bool
	}{
		{"identical", map[string][]byte{"najmy": []byte(`{"b":2}`), "dane": []byte(`{"a":1}`)}, true},
		{"edited", map[string][]byte{"dane": []byte(`{"a":2}`), "najmy": []byte(`{"b":2}`)}, false},
		{"renamed", map[string][]byte{"dane2": []byte(`{"a":1}`), "najmy": []byte(`{"b":2}`)}, false},
		{"dropped", map[string][]byte{"dane": []byte(`{"a":1}`)}, false},
	}

	want := HashNamed(base)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HashNamed(tt.blobs); (got == want) != tt.same {
				t.Errorf("HashNamed equal = %v, want %v", got == want, tt.same)
			}
		})
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	sk1 := k.SiteKey("fixtures", SiteKeyOpts{Version: "v1", Breakpoint: 640})
	sk2 := k.SiteKey("fixtures", SiteKeyOpts{Version: "v2", Breakpoint: 640})
	sk3 := k.SiteKey("other", SiteKeyOpts{Version: "v1", Breakpoint: 640})
	if sk1 == sk2 || sk1 == sk3 {
		t.Error("SiteKey should depend on the fixture hash and every option")
	}
	if !strings.HasPrefix(sk1, "site:") || len(sk1) != len("site:")+64 {
		t.Errorf("SiteKey unexpected: %s", sk1)
	}
	if sk1 != k.SiteKey("fixtures", SiteKeyOpts{Version: "v1", Breakpoint: 640}) {
		t.Error("SiteKey should be deterministic")
	}

	ak1 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg"})
	ak2 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg", Detailed: true})
	if ak1 == ak2 {
		t.Error("Different ArtifactKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(ak1, "artifact:svg:") {
		t.Errorf("ArtifactKey unexpected: %s", ak1)
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "preview:")

	opts := SiteKeyOpts{Version: "v1"}
	if got, want := scoped.SiteKey("h", opts), "preview:"+inner.SiteKey("h", opts); got != want {
		t.Errorf("SiteKey = %s, want %s", got, want)
	}
	aopts := ArtifactKeyOpts{Format: "svg"}
	if got, want := scoped.ArtifactKey("h", aopts), "preview:"+inner.ArtifactKey("h", aopts); got != want {
		t.Errorf("ArtifactKey = %s, want %s", got, want)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.SiteKey("h", SiteKeyOpts{})
	if !strings.HasPrefix(key, "prefix:site:") {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	err := Retryable(ErrUnavailable)
	if err == nil {
		t.Fatal("Retryable should return wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}
	if err.Error() != ErrUnavailable.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}
	if IsRetryable(ErrUnavailable) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestBackoffDo(t *testing.T) {
	ctx := context.Background()
	b := Backoff{Attempts: 3, Delay: time.Millisecond}

	calls := 0
	err := b.Do(ctx, func() error {
		calls++
		return nil
	})
	if err != nil || calls != 1 {
		t.Errorf("success: err %v after %d calls", err, calls)
	}

	// Non-retryable error stops immediately
	calls = 0
	err = b.Do(ctx, func() error {
		calls++
		return ErrUnavailable
	})
	if err != ErrUnavailable || calls != 1 {
		t.Errorf("non-retryable: err %v after %d calls", err, calls)
	}

	calls = 0
	err = b.Do(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(ErrUnavailable)
		}
		return nil
	})
	if err != nil || calls != 2 {
		t.Errorf("retryable: err %v after %d calls", err, calls)
	}

	calls = 0
	err = b.Do(ctx, func() error {
		calls++
		return Retryable(ErrUnavailable)
	})
	if !IsRetryable(err) || calls != 3 {
		t.Errorf("exhausted: err %v after %d calls", err, calls)
	}
}

func TestBackoffDoAtLeastOnce(t *testing.T) {
	calls := 0
	err := Backoff{}.Do(context.Background(), func() error {
		calls++
		return Retryable(ErrUnavailable)
	})
	if calls != 1 || !IsRetryable(err) {
		t.Errorf("zero Backoff: err %v after %d calls, want 1 call", err, calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrUnavailable)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}

func TestRedisCachePrefix(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{"default prefix", "", "site:abc", "wtfcesko:cache:site:abc"},
		{"custom prefix", "preview:", "site:abc", "preview:cache:site:abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewRedisCacheFromClient(nil, tt.prefix)
			if got := c.prefixKey(tt.key); got != tt.want {
				t.Errorf("prefixKey(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestNewRedisCacheBadURL(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), "http://not-redis", ""); err == nil {
		t.Error("NewRedisCache accepted a non-redis URL")
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	c, err := Open(ctx, OpenOptions{Disabled: true, RedisURL: "redis://localhost:6379"})
	if err != nil {
		t.Fatalf("Open(disabled): %v", err)
	}
	if Describe(c) != "disabled" {
		t.Errorf("Open(disabled) = %s", Describe(c))
	}

	dir := filepath.Join(t.TempDir(), "c")
	c, err = Open(ctx, OpenOptions{Dir: dir})
	if err != nil {
		t.Fatalf("Open(dir): %v", err)
	}
	if Describe(c) != "file:"+dir {
		t.Errorf("Open(dir) = %s", Describe(c))
	}
}

func TestDefaultDir(t *testing.T) {
	t.Setenv(EnvXDGCache, "/tmp/xdg")
	dir, err := DefaultDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/tmp/xdg", "wtfcesko") {
		t.Errorf("DefaultDir = %s", dir)
	}
}
