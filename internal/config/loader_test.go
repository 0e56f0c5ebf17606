package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "milkybridge.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_InterpolatesEnvironment(t *testing.T) {
	t.Setenv("MILKY_TOKEN", "s3cret-tok")

	path := writeConfig(t, `
version: "1"
modules:
  channel.milky:
    endpoint: ${MILKY_ENDPOINT:-http://127.0.0.1:3000}
    token: ${MILKY_TOKEN}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Version != "1" {
		t.Errorf("Version = %q, want %q", cfg.Version, "1")
	}

	node, ok := cfg.Modules["channel.milky"]
	if !ok {
		t.Fatal("channel.milky module missing")
	}
	var mod struct {
		Endpoint string `yaml:"endpoint"`
		Token    string `yaml:"token"`
	}
	if err := node.Decode(&mod); err != nil {
		t.Fatalf("decode module config: %v", err)
	}
	if mod.Endpoint != "http://127.0.0.1:3000" {
		t.Errorf("Endpoint = %q, want the :-default", mod.Endpoint)
	}
	if mod.Token != "s3cret-tok" {
		t.Errorf("Token = %q, want env value", mod.Token)
	}
}

func TestLoad_EnvironmentWinsOverDefault(t *testing.T) {
	t.Setenv("MILKY_ENDPOINT", "https://gw.example.com")

	path := writeConfig(t, `
version: "1"
modules:
  channel.milky:
    endpoint: ${MILKY_ENDPOINT:-http://127.0.0.1:3000}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	var mod struct {
		Endpoint string `yaml:"endpoint"`
	}
	node := cfg.Modules["channel.milky"]
	if err := node.Decode(&mod); err != nil {
		t.Fatalf("decode module config: %v", err)
	}
	if mod.Endpoint != "https://gw.example.com" {
		t.Errorf("Endpoint = %q, want env value", mod.Endpoint)
	}
}

func TestLoad_ReportsAllUnresolvedVariables(t *testing.T) {
	path := writeConfig(t, `
version: "1"
modules:
  channel.milky:
    endpoint: ${MILKYBRIDGE_TEST_MISSING_A}
    token: ${MILKYBRIDGE_TEST_MISSING_B}
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() succeeded with unresolved variables")
	}
	for _, name := range []string{"MILKYBRIDGE_TEST_MISSING_A", "MILKYBRIDGE_TEST_MISSING_B"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name %s", err, name)
		}
	}
}

func TestLoad_FileMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load() succeeded for a missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "version: [unclosed\n")
	if _, err := Load(path); err == nil {
		t.Fatal("Load() succeeded for invalid YAML")
	}
}

func TestModuleIDs_Sorted(t *testing.T) {
	path := writeConfig(t, `
version: "1"
modules:
  gateway.http: {}
  bridge.hub: {}
  channel.milky: {}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	ids := cfg.ModuleIDs()
	want := []string{"bridge.hub", "channel.milky", "gateway.http"}
	if len(ids) != len(want) {
		t.Fatalf("ModuleIDs() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ModuleIDs()[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}
