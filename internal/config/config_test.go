package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/jpl-au/lnedit/internal/lint"
	"github.com/jpl-au/lnedit/internal/view"
)

// isolate points HOME and the working directory at temp dirs so the
// global/local cascade does not touch the developer's real config.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)

	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(orig) })
	return home, work
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	if !reflect.DeepEqual(cfg.LinterCommand(), lint.DefaultCommand) {
		t.Errorf("LinterCommand = %v, want default", cfg.LinterCommand())
	}
	if !reflect.DeepEqual(cfg.Extensions(), []string{".py"}) {
		t.Errorf("Extensions = %v, want [.py]", cfg.Extensions())
	}
	if cfg.WindowSize() != view.DefaultWindow {
		t.Errorf("WindowSize = %d, want %d", cfg.WindowSize(), view.DefaultWindow)
	}
	if !reflect.DeepEqual(cfg.BlockingProfile().Codes, lint.DefaultBlockingCodes) {
		t.Errorf("BlockingProfile = %v", cfg.BlockingProfile().Codes)
	}
}

func TestLoadPrefersLocalOverGlobal(t *testing.T) {
	home, work := isolate(t)

	globalYAML := "window:\n  size: 50\n"
	if err := os.MkdirAll(filepath.Join(home, ".lnedit"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, ".lnedit", "config.yaml"), []byte(globalYAML), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WindowSize() != 50 {
		t.Errorf("global WindowSize = %d, want 50", cfg.WindowSize())
	}
	if cfg.Scope() != ScopeGlobal {
		t.Errorf("Scope = %v, want global", cfg.Scope())
	}

	localYAML := "window:\n  size: 25\n"
	if err := os.MkdirAll(filepath.Join(work, ".lnedit"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, ".lnedit", "config.yaml"), []byte(localYAML), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load with local config: %v", err)
	}
	if cfg.WindowSize() != 25 {
		t.Errorf("local WindowSize = %d, want 25", cfg.WindowSize())
	}
	if cfg.Scope() != ScopeLocal {
		t.Errorf("Scope = %v, want local", cfg.Scope())
	}
}

func TestSaveRoundTrip(t *testing.T) {
	isolate(t)

	cfg, err := LoadScope(ScopeGlobal)
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Set("linter.blocking", "E999,E902"); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Set("window.size", "30"); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := LoadScope(ScopeGlobal)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got.Linter.Blocking, []string{"E999", "E902"}) {
		t.Errorf("Blocking = %v", got.Linter.Blocking)
	}
	if got.WindowSize() != 30 {
		t.Errorf("WindowSize = %d, want 30", got.WindowSize())
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	home, _ := isolate(t)

	bad := "window:\n  size: 0\n"
	if err := os.MkdirAll(filepath.Join(home, ".lnedit"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, ".lnedit", "config.yaml"), []byte(bad), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load()
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("Load with size 0 = %v, want ErrInvalidValue", err)
	}
}

func TestGetSet(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		want    string
		wantErr error
	}{
		{
			name:  "linter command",
			key:   "linter.command",
			value: "flake8 --isolated --max-line-length=120",
			want:  "flake8 --isolated --max-line-length=120",
		},
		{
			name:  "blocking codes",
			key:   "linter.blocking",
			value: "E999, E902",
			want:  "E999,E902",
		},
		{
			name:  "warning codes",
			key:   "linter.warning",
			value: "F821",
			want:  "F821",
		},
		{
			name:  "extensions",
			key:   "linter.extensions",
			value: ".py,.pyi",
			want:  ".py,.pyi",
		},
		{
			name:  "window size",
			key:   "window.size",
			value: "42",
			want:  "42",
		},
		{
			name:    "unknown key",
			key:     "linter.nope",
			value:   "x",
			wantErr: ErrUnknownKey,
		},
		{
			name:    "empty command",
			key:     "linter.command",
			value:   "  ",
			wantErr: ErrInvalidValue,
		},
		{
			name:    "empty code in list",
			key:     "linter.blocking",
			value:   "E999,,E902",
			wantErr: ErrInvalidValue,
		},
		{
			name:    "extension without dot",
			key:     "linter.extensions",
			value:   "py",
			wantErr: ErrInvalidValue,
		},
		{
			name:    "window size not a number",
			key:     "window.size",
			value:   "many",
			wantErr: ErrInvalidValue,
		},
		{
			name:    "window size zero",
			key:     "window.size",
			value:   "0",
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			err := cfg.Set(tt.key, tt.value)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Set(%q, %q) = %v, want %v", tt.key, tt.value, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Set(%q, %q): %v", tt.key, tt.value, err)
			}

			got, err := cfg.Get(tt.key)
			if err != nil {
				t.Fatalf("Get(%q): %v", tt.key, err)
			}
			if got != tt.want {
				t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestGetUnknownKey(t *testing.T) {
	cfg := &Config{}
	if _, err := cfg.Get("window.nope"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Get unknown key = %v, want ErrUnknownKey", err)
	}
}

func TestAllCoversValidKeys(t *testing.T) {
	cfg := &Config{}
	all := cfg.All()
	for _, key := range ValidKeys() {
		if _, ok := all[key]; !ok {
			t.Errorf("All() missing key %q", key)
		}
		if !IsValidKey(key) {
			t.Errorf("IsValidKey(%q) = false", key)
		}
	}
	if IsValidKey("linter") {
		t.Error("bare section name must not be a valid key")
	}
	// Defaults are rendered, not blank.
	if !strings.Contains(all["linter.blocking"], "E999") {
		t.Errorf("All()[linter.blocking] = %q", all["linter.blocking"])
	}
}
