package config

import (
	"strings"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	LoadConfig()

	if AppConfig.Server.Port == "" {
		t.Error("server port not set")
	}
	if AppConfig.Postgres.Host == "" || AppConfig.Postgres.Port == 0 {
		t.Errorf("postgres defaults: %+v", AppConfig.Postgres)
	}
	if AppConfig.Loader.InputDir == "" {
		t.Error("loader input dir not set")
	}
	if AppConfig.Postgres.URL == "" {
		t.Error("postgres URL not computed")
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("POSTGRES_DB", "tradeflow_test")
	t.Setenv("LOADER_INPUT_DIR", "/tmp/in")

	LoadConfig()

	if AppConfig.Postgres.DBName != "tradeflow_test" {
		t.Errorf("db name: %q", AppConfig.Postgres.DBName)
	}
	if AppConfig.Loader.InputDir != "/tmp/in" {
		t.Errorf("input dir: %q", AppConfig.Loader.InputDir)
	}
	if !strings.Contains(AppConfig.Postgres.URL, "tradeflow_test") {
		t.Errorf("URL does not reflect override: %q", AppConfig.Postgres.URL)
	}
}
