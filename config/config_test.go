package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	p := filepath.Join(dir, "berth.yaml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoad_ExplicitPath(t *testing.T) {
	p := writeConfig(t, t.TempDir(), "name: web\nversion: \"1.2\"\nport: 8080\n")

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "web" || cfg.Version != "1.2" || cfg.Port != 8080 {
		t.Errorf("cfg = %+v, want web/1.2/8080", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoad_MissingFileListsCandidates(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load should fail when no config exists")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	p := writeConfig(t, t.TempDir(), "name: [oops\n")
	if _, err := Load(p); err == nil {
		t.Fatal("Load should fail on malformed yaml")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		desc    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Name: "web", Version: "1.0", Port: 8080}, false},
		{"missing name", Config{Version: "1.0", Port: 8080}, true},
		{"name with space", Config{Name: "my app", Version: "1.0", Port: 8080}, true},
		{"missing version", Config{Name: "web", Port: 8080}, true},
		{"port zero", Config{Name: "web", Version: "1.0"}, true},
		{"port too large", Config{Name: "web", Version: "1.0", Port: 90000}, true},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("Validate should fail")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}
