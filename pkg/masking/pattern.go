package masking

import (
	"log/slog"
	"regexp"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

type rawPattern struct {
	pattern     string
	replacement string
}

// builtinPatterns covers the secret shapes tool output is most likely to
// leak: credentials in JSON/YAML key-value form, PEM blocks and well-known
// provider token formats.
func builtinPatterns() map[string]rawPattern {
	return map[string]rawPattern{
		"api_key": {
			pattern:     `(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{20,})["']?`,
			replacement: `"api_key": "__MASKED_API_KEY__"`,
		},
		"password": {
			pattern:     `(?i)(?:password|pwd|passwd)["']?\s*[:=]\s*["']?([^"'\s\n]{6,})["']?`,
			replacement: `"password": "__MASKED_PASSWORD__"`,
		},
		"token": {
			pattern:     `(?i)(?:token|bearer|jwt)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
			replacement: `"token": "__MASKED_TOKEN__"`,
		},
		"private_key": {
			pattern:     `(?i)(?:private[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
			replacement: `"private_key": "__MASKED_PRIVATE_KEY__"`,
		},
		"secret_key": {
			pattern:     `(?i)(?:secret[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
			replacement: `"secret_key": "__MASKED_SECRET_KEY__"`,
		},
		"certificate": {
			pattern:     `(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`,
			replacement: `__MASKED_CERTIFICATE__`,
		},
		"ssh_key": {
			pattern:     `ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`,
			replacement: `__MASKED_SSH_KEY__`,
		},
		"email": {
			pattern:     `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9]+(?:[.-][A-Za-z0-9]+)*\.[A-Za-z]{2,63}\b`,
			replacement: `__MASKED_EMAIL__`,
		},
		"wordpress_app_password": {
			pattern:     `\b(?:[A-Za-z0-9]{4} ){5}[A-Za-z0-9]{4}\b`,
			replacement: `__MASKED_WP_APP_PASSWORD__`,
		},
		"openai_key": {
			pattern:     `sk-[A-Za-z0-9_\-]{20,}`,
			replacement: `__MASKED_OPENAI_KEY__`,
		},
	}
}

// patternGroups are named bundles configs can reference instead of listing
// individual patterns. The "secrets" group is the always-on baseline.
func patternGroups() map[string][]string {
	return map[string][]string{
		"secrets":   {"api_key", "password", "token", "private_key", "secret_key"},
		"security":  {"api_key", "password", "token", "certificate", "ssh_key", "email"},
		"providers": {"wordpress_app_password", "openai_key"},
		"all": {"api_key", "password", "token", "private_key", "secret_key",
			"certificate", "ssh_key", "email", "wordpress_app_password", "openai_key"},
	}
}

// compileBuiltins compiles the builtin table, skipping invalid patterns.
func compileBuiltins() map[string]*CompiledPattern {
	compiled := make(map[string]*CompiledPattern)
	for name, raw := range builtinPatterns() {
		re, err := regexp.Compile(raw.pattern)
		if err != nil {
			slog.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		compiled[name] = &CompiledPattern{
			Name:        name,
			Regex:       re,
			Replacement: raw.replacement,
		}
	}
	return compiled
}
