package configs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "colorsift.yaml")
	if err := os.WriteFile(path, []byte("app:\n  name: test\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, v, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.App.Name != "test" {
		t.Errorf("app.name = %q", cfg.App.Name)
	}
	if cfg.Session.Key != DefaultSessionKey {
		t.Errorf("session.key = %q", cfg.Session.Key)
	}
	if cfg.Session.Debounce != 400 {
		t.Errorf("session.debounce = %d", cfg.Session.Debounce)
	}
	if v.ConfigFileUsed() != path {
		t.Errorf("ConfigFileUsed = %q", v.ConfigFileUsed())
	}
}

func TestValidate_Version(t *testing.T) {
	cfg, err := Decode(NewViper())
	if err != nil {
		t.Fatalf("Decode defaults: %v", err)
	}

	for _, ver := range []string{"1.0", "v1.2.3", "1"} {
		cfg.Version = ver
		if err := cfg.Validate(); err != nil {
			t.Errorf("version %q: unexpected error %v", ver, err)
		}
	}
	for _, ver := range []string{"2.0", "abc", ""} {
		cfg.Version = ver
		if err := cfg.Validate(); err == nil {
			t.Errorf("version %q: expected error", ver)
		}
	}
}

func TestValidate_Format(t *testing.T) {
	cfg, err := Decode(NewViper())
	if err != nil {
		t.Fatal(err)
	}
	cfg.Extract.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestParseOutputFormat(t *testing.T) {
	cases := map[string]OutputFormat{
		"yml": FormatYAML, "JSON": FormatJSON, "toml": FormatTOML,
		"": FormatText, "md": FormatMarkdown, "table": FormatTable,
		"tree": FormatTree,
	}
	for in, want := range cases {
		got, err := ParseOutputFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseOutputFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseOutputFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	for _, format := range []OutputFormat{FormatYAML, FormatJSON, FormatTOML} {
		name, err := DefaultConfigFile(format)
		if err != nil {
			t.Fatal(err)
		}
		path := filepath.Join(dir, name)
		if err := CreateDefaultConfig(path, format); err != nil {
			t.Fatalf("CreateDefaultConfig(%s): %v", format, err)
		}
		cfg, _, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("reload %s: %v", format, err)
		}
		if cfg.Server.CacheSize != 128 {
			t.Errorf("%s: server.cache_size = %d", format, cfg.Server.CacheSize)
		}
		if err := CreateDefaultConfig(path, format); err == nil {
			t.Errorf("%s: expected error when file exists", format)
		}
	}
	if err := CreateDefaultConfig(filepath.Join(dir, "x"), FormatText); err == nil {
		t.Error("expected error for text format")
	}
}

func TestGetConfigSection(t *testing.T) {
	v := NewViper()
	data, err := GetConfigSection(v, "session", true)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := data.(SessionConfig); !ok {
		t.Fatalf("unexpected type %T", data)
	}
	if _, err := GetConfigSection(v, "nope", true); err == nil {
		t.Fatal("expected error for unknown section")
	}
	if _, err := GetConfigSection(v, "", false); err != nil {
		t.Fatal(err)
	}
}
