package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// PlaybookdYAMLConfig represents the complete playbookd.yaml file structure
type PlaybookdYAMLConfig struct {
	System       *SystemYAMLConfig         `yaml:"system"`
	Queue        *QueueConfig              `yaml:"queue"`
	Stream       *StreamConfig             `yaml:"stream"`
	Coordinator  *CoordinatorConfig        `yaml:"coordinator"`
	LLM          *LLMConfig                `yaml:"llm"`
	Retention    *RetentionConfig          `yaml:"retention"`
	Clusters     map[string]ClusterConfig  `yaml:"clusters"`
	PlaybookDirs []string                  `yaml:"playbook_dirs"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load playbookd.yaml from configDir
//  2. Expand environment variables
//  3. Merge user-defined sections over built-in defaults
//  4. Build the cluster registry
//  5. Validate all configuration
//  6. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"clusters", stats.Clusters,
		"playbook_dirs", stats.PlaybookDirs)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	yamlCfg, err := loader.loadPlaybookdYAML()
	if err != nil {
		return nil, NewLoadError("playbookd.yaml", err)
	}

	// Merge user config into defaults so unset fields keep their defaults.
	queueCfg := DefaultQueueConfig()
	if yamlCfg.Queue != nil {
		if err := mergo.Merge(queueCfg, yamlCfg.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	streamCfg := DefaultStreamConfig()
	if yamlCfg.Stream != nil {
		if err := mergo.Merge(streamCfg, yamlCfg.Stream, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge stream config: %w", err)
		}
	}

	coordinatorCfg := DefaultCoordinatorConfig()
	if yamlCfg.Coordinator != nil {
		if err := mergo.Merge(coordinatorCfg, yamlCfg.Coordinator, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge coordinator config: %w", err)
		}
	}

	llmCfg := DefaultLLMConfig()
	if yamlCfg.LLM != nil {
		if err := mergo.Merge(llmCfg, yamlCfg.LLM, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge llm config: %w", err)
		}
	}

	retentionCfg := DefaultRetentionConfig()
	if yamlCfg.Retention != nil {
		if err := mergo.Merge(retentionCfg, yamlCfg.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	clusters := mergeClusters(DefaultClusters(), yamlCfg.Clusters)
	clusterRegistry := NewClusterRegistry(clusters)

	listenAddr := ":8000"
	if yamlCfg.System != nil && yamlCfg.System.ListenAddr != "" {
		listenAddr = yamlCfg.System.ListenAddr
	}

	return &Config{
		configDir:       configDir,
		ListenAddr:      listenAddr,
		Queue:           queueCfg,
		Stream:          streamCfg,
		Coordinator:     coordinatorCfg,
		LLM:             llmCfg,
		Retention:       retentionCfg,
		ClusterRegistry: clusterRegistry,
		PlaybookDirs:    yamlCfg.PlaybookDirs,
	}, nil
}

// mergeClusters overlays user-defined clusters on the built-in set.
// A user entry with the same name replaces the built-in one wholesale.
func mergeClusters(builtin map[string]*ClusterConfig, user map[string]ClusterConfig) map[string]*ClusterConfig {
	merged := make(map[string]*ClusterConfig, len(builtin)+len(user))
	for name, cluster := range builtin {
		merged[name] = cluster
	}
	for name, cluster := range user {
		c := cluster
		merged[name] = &c
	}
	return merged
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadPlaybookdYAML() (*PlaybookdYAMLConfig, error) {
	var config PlaybookdYAMLConfig

	// Initialize maps to avoid nil maps
	config.Clusters = make(map[string]ClusterConfig)

	if err := l.loadYAML("playbookd.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}
