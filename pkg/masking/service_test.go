package masking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cortexops/playbookd/pkg/config"
)

func TestMaskString_Baseline(t *testing.T) {
	s := NewService(nil)

	tests := []struct {
		name     string
		input    string
		wantMask string
		wantKept string
	}{
		{
			name:     "json api key",
			input:    `{"api_key": "sk1234567890abcdefghij", "site": "example"}`,
			wantMask: "__MASKED_API_KEY__",
			wantKept: `"site"`,
		},
		{
			name:     "yaml password",
			input:    "password: hunter2-super-secret\nhost: db",
			wantMask: "__MASKED_PASSWORD__",
			wantKept: "host: db",
		},
		{
			name:     "bearer token",
			input:    `token=eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9`,
			wantMask: "__MASKED_TOKEN__",
		},
		{
			name:     "secret key assignment",
			input:    `secret_key: "AAAABBBBCCCCDDDDEEEE1234"`,
			wantMask: "__MASKED_SECRET_KEY__",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.MaskString("sem-hub", tt.input)
			assert.Contains(t, got, tt.wantMask)
			if tt.wantKept != "" {
				assert.Contains(t, got, tt.wantKept)
			}
		})
	}
}

func TestMaskString_PlainTextUntouched(t *testing.T) {
	s := NewService(nil)
	input := "keyword volume for garden ponds is 12400 searches per month"
	assert.Equal(t, input, s.MaskString("sem-hub", input))
}

func TestMaskString_ClusterPatterns(t *testing.T) {
	registry := config.NewClusterRegistry(map[string]*config.ClusterConfig{
		"wp-hub": {
			Kind:    config.ClusterKindHTTPHub,
			BaseURL: "http://wp-hub:8080",
			Timeout: time.Minute,
			Masking: &config.MaskingConfig{Patterns: []string{"wordpress_app_password"}},
		},
		"sem-hub": {
			Kind:    config.ClusterKindHTTPHub,
			BaseURL: "http://sem-hub:8080",
			Timeout: time.Minute,
		},
	})
	s := NewService(registry)

	appPassword := "AbCd EfGh IjKl MnOp QrSt UvWx"
	masked := s.MaskString("wp-hub", "connect with "+appPassword)
	assert.Contains(t, masked, "__MASKED_WP_APP_PASSWORD__")
	assert.NotContains(t, masked, appPassword)

	// Cluster without the extra pattern keeps the text
	assert.Contains(t, s.MaskString("sem-hub", "connect with "+appPassword), appPassword)
}

func TestMaskString_CertificateBlock(t *testing.T) {
	registry := config.NewClusterRegistry(map[string]*config.ClusterConfig{
		"local_mcp": {
			Kind:    config.ClusterKindLocalMCP,
			Command: "npx",
			Masking: &config.MaskingConfig{PatternGroups: []string{"security"}},
		},
	})
	s := NewService(registry)

	input := "before\n-----BEGIN CERTIFICATE-----\nMIIB\nMIIC\n-----END CERTIFICATE-----\nafter"
	got := s.MaskString("local_mcp", input)
	assert.Contains(t, got, "__MASKED_CERTIFICATE__")
	assert.Contains(t, got, "before")
	assert.Contains(t, got, "after")
	assert.NotContains(t, got, "BEGIN CERTIFICATE")
}

func TestMaskValue_WalksStructures(t *testing.T) {
	s := NewService(nil)

	in := map[string]any{
		"status": "ok",
		"count":  3,
		"config": map[string]any{
			"api_key": `api_key: "ZZZZYYYYXXXXWWWWVVVV1111"`,
		},
		"rows": []any{"plain", `password: "correct-horse-battery"`},
	}

	out, ok := s.MaskValue("sem-hub", in).(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "ok", out["status"])
	assert.Equal(t, 3, out["count"])
	assert.Contains(t, out["config"].(map[string]any)["api_key"], "__MASKED_API_KEY__")
	rows := out["rows"].([]any)
	assert.Equal(t, "plain", rows[0])
	assert.Contains(t, rows[1], "__MASKED_PASSWORD__")
}

func TestResolve_DeduplicatesAndIgnoresUnknown(t *testing.T) {
	s := NewService(nil)
	resolved := s.resolve(&config.MaskingConfig{
		PatternGroups: []string{"secrets", "no_such_group"},
		Patterns:      []string{"api_key", "no_such_pattern"},
	})

	names := make(map[string]int)
	for _, cp := range resolved {
		names[cp.Name]++
	}
	assert.Equal(t, 1, names["api_key"])
	assert.Equal(t, 1, names["password"])
	assert.NotContains(t, names, "no_such_pattern")
}
