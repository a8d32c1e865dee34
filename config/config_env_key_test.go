package config

import (
	"strings"
	"testing"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"identity": map[string]any{
			"dbName": "identity",
		},
		"storage": map[string]any{
			"bucketUrl": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "IDENTITY_DBNAME", want: "identity.dbName"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestPostgresConfigDSN(t *testing.T) {
	cfg := &PostgresConfig{
		DBName:  "turnos",
		SSLMode: "require",
	}
	conn := ConnectionConfig{Host: "db.internal", Port: "5432", UserName: "turnos", Password: "secret"}

	want := "host=db.internal port=5432 user=turnos password=secret dbname=turnos sslmode=require TimeZone=America/Bogota"
	if got := cfg.DSN(conn); got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}
}

func TestPostgresConfigDSNDefaults(t *testing.T) {
	cfg := &PostgresConfig{DBName: "turnos"}
	got := cfg.DSN(ConnectionConfig{Host: "localhost", Port: "5432"})

	for _, fragment := range []string{"sslmode=disable", "TimeZone=America/Bogota"} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("DSN() = %q, missing %q", got, fragment)
		}
	}
}
