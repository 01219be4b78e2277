package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestYamlLoader(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.yaml", "db:\n  default:\n    driver: sqlite3\n    url: \":memory:\"\n")

	values, err := NewYamlConfigLoader(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	c := NewMapConfig(values)
	if got := c.GetString("db.default.driver"); got != "sqlite3" {
		t.Errorf("driver = %q", got)
	}
}

func TestYamlLoaderInvalid(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.yaml", "db: [unclosed\n")

	if _, err := NewYamlConfigLoader(path).Load(); err == nil {
		t.Error("expected parse error")
	}
}

func TestJSONLoader(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.json", `{"db":{"default":{"driver":"postgres"}}}`)

	values, err := NewJSONConfigLoader(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	c := NewMapConfig(values)
	if got := c.GetString("db.default.driver"); got != "postgres" {
		t.Errorf("driver = %q", got)
	}
}

func TestEnvLoader(t *testing.T) {
	t.Setenv("STANDALONE_DB__DEFAULT__DRIVER", "mysql")
	t.Setenv("STANDALONE_APP__PORT", "9090")

	values, err := NewEnvConfigLoader("STANDALONE_").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	c := NewMapConfig(values)
	if got := c.GetString("db.default.driver"); got != "mysql" {
		t.Errorf("driver = %q", got)
	}
	if got := c.GetInt("app.port"); got != 9090 {
		t.Errorf("port = %d", got)
	}
}

func TestChainLoaderMergesAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.yaml", "db:\n  default:\n    driver: sqlite3\n")
	t.Setenv("STANDALONE_DB__DEFAULT__DRIVER", "postgres")

	values, err := NewChainLoader(
		NewYamlConfigLoader(path),
		NewEnvConfigLoader("STANDALONE_"),
	).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	c := NewMapConfig(values)
	if got := c.GetString("db.default.driver"); got != "postgres" {
		t.Errorf("env layer should win, got %q", got)
	}
}

func TestChainLoaderNoSource(t *testing.T) {
	if _, err := NewChainLoader(NewYamlConfigLoader("/nonexistent/app.yaml")).Load(); err == nil {
		t.Error("expected no-source error")
	}
}

func TestTemplatedLoader(t *testing.T) {
	t.Setenv("STANDALONE_TEST_URL", "postgres://host/db")
	dir := t.TempDir()
	path := writeFile(t, dir, "app.yaml",
		"db:\n  default:\n    url: '{{ env \"STANDALONE_TEST_URL\" }}'\n    driver: '{{ default \"sqlite3\" (env \"STANDALONE_TEST_DRIVER\") }}'\n")

	values, err := newTemplatedLoader(NewYamlConfigLoader(path)).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	c := NewMapConfig(values)
	if got := c.GetString("db.default.url"); got != "postgres://host/db" {
		t.Errorf("url = %q", got)
	}
	if got := c.GetString("db.default.driver"); got != "sqlite3" {
		t.Errorf("driver default = %q", got)
	}
}
