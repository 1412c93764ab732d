// playbookd server — exposes the execution API, runs the runner pool and
// drives playbook executions against the LLM sidecar.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/cortexops/playbookd/pkg/api"
	"github.com/cortexops/playbookd/pkg/chat"
	"github.com/cortexops/playbookd/pkg/checkpoint"
	"github.com/cortexops/playbookd/pkg/cleanup"
	"github.com/cortexops/playbookd/pkg/config"
	"github.com/cortexops/playbookd/pkg/conversation"
	"github.com/cortexops/playbookd/pkg/coordinator"
	"github.com/cortexops/playbookd/pkg/database"
	"github.com/cortexops/playbookd/pkg/llm"
	"github.com/cortexops/playbookd/pkg/playbook"
	"github.com/cortexops/playbookd/pkg/queue"
	"github.com/cortexops/playbookd/pkg/runner"
	"github.com/cortexops/playbookd/pkg/services"
	"github.com/cortexops/playbookd/pkg/stream"
	"github.com/cortexops/playbookd/pkg/tools"
	"github.com/cortexops/playbookd/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolveRunnerID determines the runner identifier for multi-replica
// coordination. Priority: RUNNER_ID env > HOSTNAME env > "local"
func resolveRunnerID() string {
	if id := os.Getenv("RUNNER_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	runnerID := resolveRunnerID()
	slog.Info("Starting playbookd",
		"version", version.Full(),
		"runner_id", runnerID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Pack catalog: builtins plus user-defined pack directories
	registry := playbook.NewRegistry(playbook.Builtins())
	for _, dir := range cfg.PlaybookDirs {
		loaded, err := registry.LoadDir(dir)
		if err != nil {
			slog.Error("Failed to load playbook dir", "dir", dir, "error", err)
			os.Exit(1)
		}
		slog.Info("Loaded playbook dir", "dir", dir, "packs", loaded)
	}

	// 4. Domain services
	tasksService := services.NewTaskService(dbClient.Client)
	eventsService := services.NewEventService(dbClient.Client)
	execsService := services.NewExecutionService(dbClient.Client)
	stagesService := services.NewStageResultService(dbClient.Client)
	artifactsService := services.NewArtifactService(dbClient.Client)
	toolCallsService := services.NewToolCallService(dbClient.Client)
	runnersService := services.NewRunnerService(dbClient.Client)
	workspacesService := services.NewWorkspaceService(dbClient.Client)
	prefsService := services.NewPreferenceService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. Tool executor (masking resolved from the cluster registry)
	toolExecutor, err := tools.NewExecutorFromRegistry(cfg.ClusterRegistry, toolCallsService, eventsService)
	if err != nil {
		slog.Error("Failed to initialize tool executor", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := toolExecutor.Close(); err != nil {
			slog.Error("Error closing tool executor", "error", err)
		}
	}()

	// 6. LLM sidecar connection
	// Note: grpc.NewClient dials lazily; the connection happens on first RPC
	provider, err := llm.NewGRPCProvider(cfg.LLM.SidecarAddr)
	if err != nil {
		slog.Error("Failed to initialize LLM provider", "addr", cfg.LLM.SidecarAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := provider.Close(); err != nil {
			slog.Error("Error closing LLM provider", "error", err)
		}
	}()
	slog.Info("LLM provider initialized", "addr", cfg.LLM.SidecarAddr)

	// 7. Coordinator and the habit-learning hook
	coord := coordinator.New(tasksService, workspacesService, prefsService, registry, cfg.Coordinator)

	habitHook := func(hookCtx context.Context, executionID string) {
		t, err := tasksService.GetTask(hookCtx, executionID)
		if err != nil {
			slog.Error("Habit hook could not load task", "execution_id", executionID, "error", err)
			return
		}
		coord.Process(hookCtx, t.WorkspaceID, "", []coordinator.Proposal{{
			PackID:      "habit_learning",
			Params:      map[string]any{"observed_execution_id": executionID},
			AutoExecute: true,
		}})
	}

	// 8. Step driver
	stepDriver := runner.New(runner.Deps{
		Name:     runnerID,
		Tasks:    tasksService,
		Events:   eventsService,
		Execs:    execsService,
		Stages:   stagesService,
		Ckpt:     checkpoint.NewManager(tasksService, execsService),
		Registry: registry,
		Convs:    conversation.NewRegistry(),
		Provider: provider,
		Tools:    toolExecutor,
		MaxSteps: cfg.LLM.MaxStepIterations,
		Habit:    habitHook,
	})

	// 9. Runner pool (claims queued tasks and feeds them to the driver)
	pool := queue.NewRunnerPool(runnerID, tasksService, eventsService, runnersService, registry, cfg.Queue, stepDriver)
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start runner pool", "error", err)
		os.Exit(1)
	}

	// 10. Chat, retention, stream projection
	chatService := chat.NewService(tasksService, eventsService, stepDriver, provider)

	retention := cleanup.NewService(cfg.Retention, tasksService, eventsService, toolCallsService, stagesService, execsService)
	retention.Start(ctx)

	projector := stream.NewProjector(tasksService, eventsService, toolCallsService, stagesService, cfg.Stream)

	// 11. HTTP server
	server := api.NewServer(api.Deps{
		Tasks:     tasksService,
		Events:    eventsService,
		Execs:     execsService,
		Stages:    stagesService,
		Artifacts: artifactsService,
		ToolCalls: toolCallsService,
		Runner:    stepDriver,
		Chat:      chatService,
		Projector: projector,
		Pool:      pool,
		DBPing: func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_, err := dbClient.CheckHealth(pingCtx)
			return err
		},
	})

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("playbookd started successfully",
		"runner_id", runnerID,
		"workers", cfg.Queue.RunnerCount)

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown. Stopping the pool marks still-running tasks as
	// interrupted so the next replica revives them from their checkpoints.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Runner pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — interrupted tasks will be revived on restart")
	}

	chatService.Wait()
	retention.Stop()

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
