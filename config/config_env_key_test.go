package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"mail": map[string]any{
			"apiKey":    "",
			"fromEmail": "",
		},
		"migrations": map[string]any{
			"databaseUrl": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := map[string]string{
		"POSTGRES_SSLMODE":         "postgres.sslMode",
		"POSTGRES_MASTER_USERNAME": "postgres.master.userName",
		"MAIL_APIKEY":              "mail.apiKey",
		"MAIL_FROMEMAIL":           "mail.fromEmail",
		"MIGRATIONS_DATABASEURL":   "migrations.databaseUrl",
		"SECRETKEY_ACCESS":         "secretKey.access",
		"NEW_FEATURE_FLAG":         "new.feature.flag",
	}

	for envKey, want := range tests {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, existing))
		})
	}
}
