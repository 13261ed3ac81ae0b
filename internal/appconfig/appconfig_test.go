// internal/appconfig/appconfig_test.go
package appconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultMatchesPipelineConventions(t *testing.T) {
	cfg := Default()
	if cfg.MainReport != "main-report.txt" {
		t.Fatalf("main report default: %q", cfg.MainReport)
	}
	if cfg.CurrentReport != "current-report.txt" {
		t.Fatalf("current report default: %q", cfg.CurrentReport)
	}
	if cfg.Output != "comparison_diff.html" {
		t.Fatalf("output default: %q", cfg.Output)
	}
	markers := cfg.Markers()
	if len(markers) != 1 || markers[0] != "PhantomData" {
		t.Fatalf("marker defaults: %v", markers)
	}
}

func TestMarkersFallBackWhenCleared(t *testing.T) {
	cfg := Config{}
	markers := cfg.Markers()
	if len(markers) != 1 || markers[0] != "PhantomData" {
		t.Fatalf("expected default markers, got %v", markers)
	}

	cfg.ExcludeMarkers = []string{"Placeholder"}
	markers = cfg.Markers()
	if len(markers) != 1 || markers[0] != "Placeholder" {
		t.Fatalf("expected configured markers, got %v", markers)
	}
}

func TestValidateBytes(t *testing.T) {
	valid := `{
        "mainReport": "a.txt",
        "currentReport": "b.txt",
        "output": "out.html",
        "excludeMarkers": ["PhantomData"],
        "debug": true
    }`
	if err := ValidateBytes([]byte(valid)); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	if err := ValidateBytes([]byte(`{"mainReport": 12}`)); err == nil {
		t.Fatal("expected type violation to be rejected")
	}

	if err := ValidateBytes([]byte(`{"mainreport": "a.txt"}`)); err == nil {
		t.Fatal("expected unknown key to be rejected")
	} else if !strings.Contains(err.Error(), "invalid config") {
		t.Fatalf("unexpected error shape: %v", err)
	}

	if err := ValidateBytes([]byte(`{"excludeMarkers": [""]}`)); err == nil {
		t.Fatal("expected empty marker to be rejected")
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()

	if err := ValidateFile(filepath.Join(dir, "missing.json")); err != nil {
		t.Fatalf("missing config must be fine, got: %v", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"debug": "yes"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ValidateFile(path); err == nil {
		t.Fatal("expected invalid config file to be rejected")
	}
}
