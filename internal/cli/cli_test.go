package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sgtmarmite/wtfcesko/pkg/cache"
	"github.com/sgtmarmite/wtfcesko/pkg/errors"
	"github.com/sgtmarmite/wtfcesko/pkg/pipeline"
	"github.com/sgtmarmite/wtfcesko/pkg/registry"
	"github.com/sgtmarmite/wtfcesko/pkg/site"
)

// execute runs the CLI with args and returns what the command wrote to
// its output stream.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	quietOutput(t)
	t.Setenv(cache.EnvRedisURL, "")
	t.Setenv(cache.EnvXDGCache, t.TempDir())

	var stdout bytes.Buffer
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	want := []string{"build", "serve", "charts", "cache", "completion"}
	for _, name := range want {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	for _, path := range [][]string{
		{"charts", "list"},
		{"charts", "show"},
		{"charts", "browse"},
		{"charts", "sitemap"},
		{"cache", "clear"},
		{"cache", "path"},
	} {
		if cmd, _, err := root.Find(path); err != nil || cmd.Name() != path[1] {
			t.Errorf("subcommand %q not registered", strings.Join(path, " "))
		}
	}
}

func TestChartsShow(t *testing.T) {
	tests := []struct {
		args     []string
		wantType string
	}{
		{args: []string{"charts", "show", "kupni-sila"}, wantType: "line"},
		{args: []string{"charts", "show", "dane", "--mobile"}, wantType: "bar"},
		{args: []string{"charts", "show", "zdaneni-prace"}, wantType: "doughnut"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args[2:], " "), func(t *testing.T) {
			got, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}

			var m struct {
				Canvas string `json:"canvas"`
				Config struct {
					Type string `json:"type"`
				} `json:"config"`
			}
			if err := json.Unmarshal([]byte(got), &m); err != nil {
				t.Fatalf("output is not JSON: %v\n%s", err, got)
			}
			if m.Canvas != registry.CanvasID(tt.args[2]) {
				t.Errorf("canvas = %q, want %q", m.Canvas, registry.CanvasID(tt.args[2]))
			}
			if m.Config.Type != tt.wantType {
				t.Errorf("type = %q, want %q", m.Config.Type, tt.wantType)
			}
		})
	}
}

func TestChartsShowMobileDiffers(t *testing.T) {
	desktop, err := execute(t, "charts", "show", "mzdy-realita")
	if err != nil {
		t.Fatal(err)
	}
	mobile, err := execute(t, "charts", "show", "mzdy-realita", "--mobile")
	if err != nil {
		t.Fatal(err)
	}
	if desktop == mobile {
		t.Error("desktop and mobile configurations are identical")
	}
}

func TestChartsShowWidthUsesConfigBreakpoint(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "site.toml")
	if err := os.WriteFile(cfgPath, []byte("[site]\nbreakpoint = 1024\n"), 0644); err != nil {
		t.Fatal(err)
	}
	desktop, err := execute(t, "charts", "show", "mzdy-realita")
	if err != nil {
		t.Fatal(err)
	}
	mobile, err := execute(t, "charts", "show", "mzdy-realita", "--mobile")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default breakpoint", []string{"--width", "800"}, desktop},
		{"configured breakpoint", []string{"--width", "800", "--config", cfgPath}, mobile},
		{"above configured breakpoint", []string{"--width", "1280", "--config", cfgPath}, desktop},
		{"width beats mobile flag", []string{"--mobile", "--width", "1280"}, desktop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, append([]string{"charts", "show", "mzdy-realita"}, tt.args...)...)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Error("printed the wrong device variant")
			}
		})
	}
}

func TestChartsShowUnknown(t *testing.T) {
	_, err := execute(t, "charts", "show", "neexistuje")
	if !errors.Is(err, errors.ErrCodeChartNotFound) {
		t.Fatalf("err = %v, want %s", err, errors.ErrCodeChartNotFound)
	}
}

func TestChartsList(t *testing.T) {
	got, err := execute(t, "charts", "list")
	if err != nil {
		t.Fatal(err)
	}
	reg, err := registry.Default()
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range reg.Keys() {
		if !strings.Contains(got, key) {
			t.Errorf("list output missing %q", key)
		}
	}
}

func TestChartsSitemapDOT(t *testing.T) {
	got, err := execute(t, "charts", "sitemap", "--dot", "-o", "-")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "digraph sitemap {") {
		t.Errorf("output is not a DOT digraph:\n%.80s", got)
	}
	if !strings.Contains(got, `"chart:volby-vek"`) {
		t.Error("DOT output missing the last chart")
	}
}

func TestBuildCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dist")
	if _, err := execute(t, "build", "-o", dir, "--no-cache"); err != nil {
		t.Fatalf("build: %v", err)
	}

	index, err := os.ReadFile(filepath.Join(dir, site.IndexFile))
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 6; i++ {
		if id := registry.ActID(i); !bytes.Contains(index, []byte(`id="`+id+`"`)) {
			t.Errorf("index.html missing %s", id)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, pipeline.ManifestFile)); err != nil {
		t.Errorf("manifest not written: %v", err)
	}
}

func TestBuildCommandConfigFile(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "site.toml")
	outDir := filepath.Join(tmp, "public")
	cfg := "[site]\ntitle = \"Testovací titulek\"\n\n[build]\nout_dir = \"" + filepath.ToSlash(outDir) + "\"\n\n[cache]\ndisabled = true\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "build", "--config", cfgPath); err != nil {
		t.Fatalf("build: %v", err)
	}
	index, err := os.ReadFile(filepath.Join(outDir, site.IndexFile))
	if err != nil {
		t.Fatalf("out_dir from config not used: %v", err)
	}
	if !bytes.Contains(index, []byte("Testovací titulek")) {
		t.Error("title from config not rendered")
	}
}

func TestBuildCommandBadConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "site.toml")
	if err := os.WriteFile(cfgPath, []byte("[site]\ntitel = \"typo\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := execute(t, "build", "--config", cfgPath, "-o", t.TempDir())
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("err = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestCachePathCommand(t *testing.T) {
	got, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(strings.TrimSpace(got), appName) {
		t.Errorf("cache path = %q, want a %s directory", got, appName)
	}
}

func TestCacheClearCommand(t *testing.T) {
	xdg := t.TempDir()
	quietOutput(t)
	t.Setenv(cache.EnvRedisURL, "")
	t.Setenv(cache.EnvXDGCache, xdg)

	fc, err := cache.NewFileCache(filepath.Join(xdg, appName))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if err := fc.Set(ctx, "site:abc", []byte("{}"), cache.TTLSite); err != nil {
		t.Fatal(err)
	}

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"cache", "clear"})
	root.SetOut(io.Discard)
	if err := root.ExecuteContext(ctx); err != nil {
		t.Fatalf("cache clear: %v", err)
	}

	if _, ok, _ := fc.Get(ctx, "site:abc"); ok {
		t.Error("entry survived cache clear")
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			got, err := execute(t, "completion", shell)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(got, appName) {
				t.Errorf("%s completion does not mention %s", shell, appName)
			}
		})
	}
}

func TestCompletionHelpMentionsChartKeys(t *testing.T) {
	help := completionHelp()
	for _, want := range []string{"charts show", "chart keys", "bash", "zsh", "fish", "powershell", appName + " completion fish | source"} {
		if !strings.Contains(help, want) {
			t.Errorf("completion help missing %q", want)
		}
	}
	if strings.Contains(help, "%!") {
		t.Errorf("completion help has a formatting error:\n%s", help)
	}
}

func TestCompleteChartKeys(t *testing.T) {
	tests := []struct {
		prefix string
		want   []string
	}{
		{"kupni", []string{"kupni-sila"}},
		{"zdaneni-", []string{"zdaneni-prace"}},
		{"neexistuje", nil},
	}
	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			got, err := execute(t, "__complete", "charts", "show", tt.prefix)
			if err != nil {
				t.Fatal(err)
			}
			var keys []string
			for _, line := range strings.Split(strings.TrimSpace(got), "\n") {
				if line == "" || strings.HasPrefix(line, ":") {
					continue
				}
				key, title, _ := strings.Cut(line, "\t")
				if title == "" {
					t.Errorf("%s has no title description", key)
				}
				keys = append(keys, key)
			}
			if strings.Join(keys, ",") != strings.Join(tt.want, ",") {
				t.Errorf("completions = %v, want %v", keys, tt.want)
			}
		})
	}
}

func TestCompletionCommandRejectsUnknownShell(t *testing.T) {
	if _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("expected error for unsupported shell")
	}
}
