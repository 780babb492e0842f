package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"accessTokenTTL": "8h",
		},
		"storage": map[string]any{
			"driver": "memory",
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
		{envKey: "AUTH_ACCESSTOKENTTL", want: "auth.accessTokenTTL"},
		{envKey: "STORAGE_DRIVER", want: "storage.driver"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "REVENUE_MONTHS", want: "revenue.months"},
		{envKey: "STORAGE__DRIVER", want: "storage.driver"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
