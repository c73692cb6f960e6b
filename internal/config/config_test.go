package config

import "testing"

func TestLoadArgsFlags(t *testing.T) {
	cfg, err := LoadArgs([]string{"-root", "menu.json", "-config", "cfg.json", "-width", "80", "-trace"}, nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.App.RootMenu != "menu.json" {
		t.Fatalf("expected root menu, got %q", cfg.App.RootMenu)
	}
	if cfg.App.ConfigPath != "cfg.json" {
		t.Fatalf("expected config path, got %q", cfg.App.ConfigPath)
	}
	if cfg.App.Width != 80 {
		t.Fatalf("expected width 80, got %d", cfg.App.Width)
	}
	if !cfg.Logging.Trace {
		t.Fatal("expected trace enabled")
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestLoadArgsPositional(t *testing.T) {
	cfg, err := LoadArgs([]string{"menu.json", "cfg.json"}, nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.App.RootMenu != "menu.json" || cfg.App.ConfigPath != "cfg.json" {
		t.Fatalf("positional arguments not applied: %+v", cfg.App)
	}
}

func TestLoadArgsEnvFallback(t *testing.T) {
	environ := []string{
		"POPUP_LAUNCHER_ROOT=env-menu.json",
		"POPUP_LAUNCHER_CONFIG=env-cfg.json",
		"POPUP_LAUNCHER_VERBOSE=true",
		"POPUP_LAUNCHER_HEIGHT=24",
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.App.RootMenu != "env-menu.json" {
		t.Fatalf("expected env root, got %q", cfg.App.RootMenu)
	}
	if !cfg.App.Verbose || cfg.App.Height != 24 {
		t.Fatalf("env fallbacks not applied: %+v", cfg.App)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	cfg, err := LoadArgs([]string{"-root", "flag.json"}, []string{"POPUP_LAUNCHER_ROOT=env.json"})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.App.RootMenu != "flag.json" {
		t.Fatalf("expected flag to win, got %q", cfg.App.RootMenu)
	}
}

func TestNegativeDimensionsRejected(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatal("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-2"}, nil); err == nil {
		t.Fatal("expected error for negative height")
	}
}

func TestValidateRequiresRootAndConfig(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation failure without root menu")
	}

	cfg, err = LoadArgs([]string{"menu.json"}, nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation failure without config path")
	}
}
