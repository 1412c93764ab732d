package config

import "time"

// LLMConfig holds settings for the LLM sidecar connection and the
// step-driver iteration budget.
type LLMConfig struct {
	// SidecarAddr is the gRPC address of the LLM sidecar service.
	SidecarAddr string `yaml:"sidecar_addr"`

	// Model is the default model identifier passed through to the sidecar.
	Model string `yaml:"model"`

	// Temperature for playbook-step completions.
	Temperature float64 `yaml:"temperature"`

	// MaxTokens caps a single completion.
	MaxTokens int `yaml:"max_tokens"`

	// RequestTimeout bounds a single Chat call.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// MaxStepIterations caps outer step-driver iterations per continue
	// call before the run is failed as non-converging.
	MaxStepIterations int `yaml:"max_step_iterations"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		SidecarAddr:       "localhost:50051",
		Model:             "gpt-4o",
		Temperature:       0.2,
		MaxTokens:         4096,
		RequestTimeout:    120 * time.Second,
		MaxStepIterations: 24,
	}
}
