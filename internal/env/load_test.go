package env

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeEnv(t, "# physics overrides\n\nPHYSICS_FIXED_DT=0.01\nexport PHYSICS_GRAVITY_Y = \"-3.5\"\nPHYSICS_LABEL='demo'\nPHYSICS_EMPTY=\n")
	for _, k := range []string{"PHYSICS_FIXED_DT", "PHYSICS_GRAVITY_Y", "PHYSICS_LABEL", "PHYSICS_EMPTY"} {
		t.Setenv(k, "unset")
	}

	applied, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	wantKeys := []string{"PHYSICS_FIXED_DT", "PHYSICS_GRAVITY_Y", "PHYSICS_LABEL", "PHYSICS_EMPTY"}
	if !slices.Equal(applied, wantKeys) {
		t.Errorf("Load() keys = %q, want %q", applied, wantKeys)
	}
	want := map[string]string{
		"PHYSICS_FIXED_DT":  "0.01",
		"PHYSICS_GRAVITY_Y": "-3.5",
		"PHYSICS_LABEL":     "demo",
		"PHYSICS_EMPTY":     "",
	}
	for k, v := range want {
		if got := os.Getenv(k); got != v {
			t.Errorf("Getenv(%q) = %q, want %q", k, got, v)
		}
	}
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantLine string
		wantKeys int
	}{
		{"no equals", "PHYSICS_A=1\nnot a pair\n", ":2:", 1},
		{"empty key", "=ignored\n", ":1:", 0},
		{"space in key", "# c\nPHYSICS A=1\n", ":2:", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PHYSICS_A", "")
			path := writeEnv(t, tt.content)
			applied, err := Load(path)
			if err == nil {
				t.Fatal("Load() error = nil")
			}
			if !strings.HasPrefix(err.Error(), "env: "+path+tt.wantLine) {
				t.Errorf("Load() error = %q, want %s line prefix", err, tt.wantLine)
			}
			if len(applied) != tt.wantKeys {
				t.Errorf("applied = %q, want %d keys", applied, tt.wantKeys)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	applied, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil || applied != nil {
		t.Errorf("Load(missing) = %q, %v, want nil, nil", applied, err)
	}
}
