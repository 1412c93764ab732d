package config

import (
	"errors"
	"fmt"
)

// Validator performs validation on a loaded Config.
type Validator struct {
	cfg  *Config
	errs []error
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll runs every validation pass and returns the collected errors.
func (v *Validator) ValidateAll() error {
	v.validateQueue()
	v.validateStream()
	v.validateCoordinator()
	v.validateLLM()
	v.validateClusters()

	if len(v.errs) > 0 {
		return fmt.Errorf("%w: %w", ErrValidationFailed, errors.Join(v.errs...))
	}
	return nil
}

func (v *Validator) addError(component, id, field string, err error) {
	v.errs = append(v.errs, NewValidationError(component, id, field, err))
}

func (v *Validator) validateQueue() {
	q := v.cfg.Queue
	if q == nil {
		v.addError("queue", "queue", "", ErrMissingRequiredField)
		return
	}
	if q.RunnerCount < 1 {
		v.addError("queue", "queue", "runner_count", fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	if q.MaxConcurrentTasks < 1 {
		v.addError("queue", "queue", "max_concurrent_tasks", fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	if q.PollInterval <= 0 {
		v.addError("queue", "queue", "poll_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.PollIntervalJitter < 0 || q.PollIntervalJitter >= q.PollInterval {
		v.addError("queue", "queue", "poll_interval_jitter", fmt.Errorf("%w: must be in [0, poll_interval)", ErrInvalidValue))
	}
	if q.HeartbeatTTL <= 0 {
		v.addError("queue", "queue", "heartbeat_ttl", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.NoHeartbeatTTL < q.HeartbeatTTL {
		v.addError("queue", "queue", "no_heartbeat_ttl", fmt.Errorf("%w: must be >= heartbeat_ttl", ErrInvalidValue))
	}
	if q.HeartbeatInterval <= 0 || q.HeartbeatInterval >= q.HeartbeatTTL {
		v.addError("queue", "queue", "heartbeat_interval", fmt.Errorf("%w: must be in (0, heartbeat_ttl)", ErrInvalidValue))
	}
}

func (v *Validator) validateStream() {
	s := v.cfg.Stream
	if s == nil {
		v.addError("stream", "stream", "", ErrMissingRequiredField)
		return
	}
	if s.PollInterval <= 0 {
		v.addError("stream", "stream", "poll_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
}

func (v *Validator) validateCoordinator() {
	c := v.cfg.Coordinator
	if c == nil {
		v.addError("coordinator", "coordinator", "", ErrMissingRequiredField)
		return
	}
	for priority, threshold := range c.Thresholds {
		if threshold < 0 || threshold > 1 {
			v.addError("coordinator", priority, "threshold", fmt.Errorf("%w: must be in [0, 1]", ErrInvalidValue))
		}
	}
	if c.SuppressionWindow < 0 {
		v.addError("coordinator", "coordinator", "suppression_window", fmt.Errorf("%w: must be non-negative", ErrInvalidValue))
	}
}

func (v *Validator) validateLLM() {
	l := v.cfg.LLM
	if l == nil {
		v.addError("llm", "llm", "", ErrMissingRequiredField)
		return
	}
	if l.SidecarAddr == "" {
		v.addError("llm", "llm", "sidecar_addr", ErrMissingRequiredField)
	}
	if l.MaxStepIterations < 1 {
		v.addError("llm", "llm", "max_step_iterations", fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
}

func (v *Validator) validateClusters() {
	if v.cfg.ClusterRegistry == nil {
		v.addError("cluster", "registry", "", ErrMissingRequiredField)
		return
	}
	for _, name := range v.cfg.ClusterRegistry.Names() {
		cluster, err := v.cfg.ClusterRegistry.Get(name)
		if err != nil {
			continue
		}
		switch cluster.Kind {
		case ClusterKindLocalMCP:
			if cluster.Command == "" {
				v.addError("cluster", name, "command", ErrMissingRequiredField)
			}
		case ClusterKindHTTPHub:
			if cluster.BaseURL == "" {
				v.addError("cluster", name, "base_url", ErrMissingRequiredField)
			}
		default:
			v.addError("cluster", name, "kind", fmt.Errorf("%w: %q", ErrInvalidValue, cluster.Kind))
		}
	}
}
