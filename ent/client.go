// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/cortexops/playbookd/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/cortexops/playbookd/ent/artifact"
	"github.com/cortexops/playbookd/ent/mindevent"
	"github.com/cortexops/playbookd/ent/playbookexecution"
	"github.com/cortexops/playbookd/ent/runnerheartbeat"
	"github.com/cortexops/playbookd/ent/stageresult"
	"github.com/cortexops/playbookd/ent/suggestionpreference"
	"github.com/cortexops/playbookd/ent/task"
	"github.com/cortexops/playbookd/ent/toolcall"
	"github.com/cortexops/playbookd/ent/workspace"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Artifact is the client for interacting with the Artifact builders.
	Artifact *ArtifactClient
	// MindEvent is the client for interacting with the MindEvent builders.
	MindEvent *MindEventClient
	// PlaybookExecution is the client for interacting with the PlaybookExecution builders.
	PlaybookExecution *PlaybookExecutionClient
	// RunnerHeartbeat is the client for interacting with the RunnerHeartbeat builders.
	RunnerHeartbeat *RunnerHeartbeatClient
	// StageResult is the client for interacting with the StageResult builders.
	StageResult *StageResultClient
	// SuggestionPreference is the client for interacting with the SuggestionPreference builders.
	SuggestionPreference *SuggestionPreferenceClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// ToolCall is the client for interacting with the ToolCall builders.
	ToolCall *ToolCallClient
	// Workspace is the client for interacting with the Workspace builders.
	Workspace *WorkspaceClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Artifact = NewArtifactClient(c.config)
	c.MindEvent = NewMindEventClient(c.config)
	c.PlaybookExecution = NewPlaybookExecutionClient(c.config)
	c.RunnerHeartbeat = NewRunnerHeartbeatClient(c.config)
	c.StageResult = NewStageResultClient(c.config)
	c.SuggestionPreference = NewSuggestionPreferenceClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.ToolCall = NewToolCallClient(c.config)
	c.Workspace = NewWorkspaceClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                  ctx,
		config:               cfg,
		Artifact:             NewArtifactClient(cfg),
		MindEvent:            NewMindEventClient(cfg),
		PlaybookExecution:    NewPlaybookExecutionClient(cfg),
		RunnerHeartbeat:      NewRunnerHeartbeatClient(cfg),
		StageResult:          NewStageResultClient(cfg),
		SuggestionPreference: NewSuggestionPreferenceClient(cfg),
		Task:                 NewTaskClient(cfg),
		ToolCall:             NewToolCallClient(cfg),
		Workspace:            NewWorkspaceClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                  ctx,
		config:               cfg,
		Artifact:             NewArtifactClient(cfg),
		MindEvent:            NewMindEventClient(cfg),
		PlaybookExecution:    NewPlaybookExecutionClient(cfg),
		RunnerHeartbeat:      NewRunnerHeartbeatClient(cfg),
		StageResult:          NewStageResultClient(cfg),
		SuggestionPreference: NewSuggestionPreferenceClient(cfg),
		Task:                 NewTaskClient(cfg),
		ToolCall:             NewToolCallClient(cfg),
		Workspace:            NewWorkspaceClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Artifact.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Artifact, c.MindEvent, c.PlaybookExecution, c.RunnerHeartbeat, c.StageResult,
		c.SuggestionPreference, c.Task, c.ToolCall, c.Workspace,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Artifact, c.MindEvent, c.PlaybookExecution, c.RunnerHeartbeat, c.StageResult,
		c.SuggestionPreference, c.Task, c.ToolCall, c.Workspace,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ArtifactMutation:
		return c.Artifact.mutate(ctx, m)
	case *MindEventMutation:
		return c.MindEvent.mutate(ctx, m)
	case *PlaybookExecutionMutation:
		return c.PlaybookExecution.mutate(ctx, m)
	case *RunnerHeartbeatMutation:
		return c.RunnerHeartbeat.mutate(ctx, m)
	case *StageResultMutation:
		return c.StageResult.mutate(ctx, m)
	case *SuggestionPreferenceMutation:
		return c.SuggestionPreference.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *ToolCallMutation:
		return c.ToolCall.mutate(ctx, m)
	case *WorkspaceMutation:
		return c.Workspace.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ArtifactClient is a client for the Artifact schema.
type ArtifactClient struct {
	config
}

// NewArtifactClient returns a client for the Artifact from the given config.
func NewArtifactClient(c config) *ArtifactClient {
	return &ArtifactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `artifact.Hooks(f(g(h())))`.
func (c *ArtifactClient) Use(hooks ...Hook) {
	c.hooks.Artifact = append(c.hooks.Artifact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `artifact.Intercept(f(g(h())))`.
func (c *ArtifactClient) Intercept(interceptors ...Interceptor) {
	c.inters.Artifact = append(c.inters.Artifact, interceptors...)
}

// Create returns a builder for creating a Artifact entity.
func (c *ArtifactClient) Create() *ArtifactCreate {
	mutation := newArtifactMutation(c.config, OpCreate)
	return &ArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Artifact entities.
func (c *ArtifactClient) CreateBulk(builders ...*ArtifactCreate) *ArtifactCreateBulk {
	return &ArtifactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ArtifactClient) MapCreateBulk(slice any, setFunc func(*ArtifactCreate, int)) *ArtifactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ArtifactCreateBulk{err: fmt.Errorf("calling to ArtifactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ArtifactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ArtifactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Artifact.
func (c *ArtifactClient) Update() *ArtifactUpdate {
	mutation := newArtifactMutation(c.config, OpUpdate)
	return &ArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ArtifactClient) UpdateOne(_m *Artifact) *ArtifactUpdateOne {
	mutation := newArtifactMutation(c.config, OpUpdateOne, withArtifact(_m))
	return &ArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ArtifactClient) UpdateOneID(id string) *ArtifactUpdateOne {
	mutation := newArtifactMutation(c.config, OpUpdateOne, withArtifactID(id))
	return &ArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Artifact.
func (c *ArtifactClient) Delete() *ArtifactDelete {
	mutation := newArtifactMutation(c.config, OpDelete)
	return &ArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ArtifactClient) DeleteOne(_m *Artifact) *ArtifactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ArtifactClient) DeleteOneID(id string) *ArtifactDeleteOne {
	builder := c.Delete().Where(artifact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ArtifactDeleteOne{builder}
}

// Query returns a query builder for Artifact.
func (c *ArtifactClient) Query() *ArtifactQuery {
	return &ArtifactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeArtifact},
		inters: c.Interceptors(),
	}
}

// Get returns a Artifact entity by its id.
func (c *ArtifactClient) Get(ctx context.Context, id string) (*Artifact, error) {
	return c.Query().Where(artifact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ArtifactClient) GetX(ctx context.Context, id string) *Artifact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ArtifactClient) Hooks() []Hook {
	return c.hooks.Artifact
}

// Interceptors returns the client interceptors.
func (c *ArtifactClient) Interceptors() []Interceptor {
	return c.inters.Artifact
}

func (c *ArtifactClient) mutate(ctx context.Context, m *ArtifactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Artifact mutation op: %q", m.Op())
	}
}

// MindEventClient is a client for the MindEvent schema.
type MindEventClient struct {
	config
}

// NewMindEventClient returns a client for the MindEvent from the given config.
func NewMindEventClient(c config) *MindEventClient {
	return &MindEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mindevent.Hooks(f(g(h())))`.
func (c *MindEventClient) Use(hooks ...Hook) {
	c.hooks.MindEvent = append(c.hooks.MindEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mindevent.Intercept(f(g(h())))`.
func (c *MindEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.MindEvent = append(c.inters.MindEvent, interceptors...)
}

// Create returns a builder for creating a MindEvent entity.
func (c *MindEventClient) Create() *MindEventCreate {
	mutation := newMindEventMutation(c.config, OpCreate)
	return &MindEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MindEvent entities.
func (c *MindEventClient) CreateBulk(builders ...*MindEventCreate) *MindEventCreateBulk {
	return &MindEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MindEventClient) MapCreateBulk(slice any, setFunc func(*MindEventCreate, int)) *MindEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MindEventCreateBulk{err: fmt.Errorf("calling to MindEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MindEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MindEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MindEvent.
func (c *MindEventClient) Update() *MindEventUpdate {
	mutation := newMindEventMutation(c.config, OpUpdate)
	return &MindEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MindEventClient) UpdateOne(_m *MindEvent) *MindEventUpdateOne {
	mutation := newMindEventMutation(c.config, OpUpdateOne, withMindEvent(_m))
	return &MindEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MindEventClient) UpdateOneID(id string) *MindEventUpdateOne {
	mutation := newMindEventMutation(c.config, OpUpdateOne, withMindEventID(id))
	return &MindEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MindEvent.
func (c *MindEventClient) Delete() *MindEventDelete {
	mutation := newMindEventMutation(c.config, OpDelete)
	return &MindEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MindEventClient) DeleteOne(_m *MindEvent) *MindEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MindEventClient) DeleteOneID(id string) *MindEventDeleteOne {
	builder := c.Delete().Where(mindevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MindEventDeleteOne{builder}
}

// Query returns a query builder for MindEvent.
func (c *MindEventClient) Query() *MindEventQuery {
	return &MindEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMindEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a MindEvent entity by its id.
func (c *MindEventClient) Get(ctx context.Context, id string) (*MindEvent, error) {
	return c.Query().Where(mindevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MindEventClient) GetX(ctx context.Context, id string) *MindEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MindEventClient) Hooks() []Hook {
	return c.hooks.MindEvent
}

// Interceptors returns the client interceptors.
func (c *MindEventClient) Interceptors() []Interceptor {
	return c.inters.MindEvent
}

func (c *MindEventClient) mutate(ctx context.Context, m *MindEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MindEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MindEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MindEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MindEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MindEvent mutation op: %q", m.Op())
	}
}

// PlaybookExecutionClient is a client for the PlaybookExecution schema.
type PlaybookExecutionClient struct {
	config
}

// NewPlaybookExecutionClient returns a client for the PlaybookExecution from the given config.
func NewPlaybookExecutionClient(c config) *PlaybookExecutionClient {
	return &PlaybookExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `playbookexecution.Hooks(f(g(h())))`.
func (c *PlaybookExecutionClient) Use(hooks ...Hook) {
	c.hooks.PlaybookExecution = append(c.hooks.PlaybookExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `playbookexecution.Intercept(f(g(h())))`.
func (c *PlaybookExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PlaybookExecution = append(c.inters.PlaybookExecution, interceptors...)
}

// Create returns a builder for creating a PlaybookExecution entity.
func (c *PlaybookExecutionClient) Create() *PlaybookExecutionCreate {
	mutation := newPlaybookExecutionMutation(c.config, OpCreate)
	return &PlaybookExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PlaybookExecution entities.
func (c *PlaybookExecutionClient) CreateBulk(builders ...*PlaybookExecutionCreate) *PlaybookExecutionCreateBulk {
	return &PlaybookExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlaybookExecutionClient) MapCreateBulk(slice any, setFunc func(*PlaybookExecutionCreate, int)) *PlaybookExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlaybookExecutionCreateBulk{err: fmt.Errorf("calling to PlaybookExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlaybookExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlaybookExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PlaybookExecution.
func (c *PlaybookExecutionClient) Update() *PlaybookExecutionUpdate {
	mutation := newPlaybookExecutionMutation(c.config, OpUpdate)
	return &PlaybookExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlaybookExecutionClient) UpdateOne(_m *PlaybookExecution) *PlaybookExecutionUpdateOne {
	mutation := newPlaybookExecutionMutation(c.config, OpUpdateOne, withPlaybookExecution(_m))
	return &PlaybookExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlaybookExecutionClient) UpdateOneID(id string) *PlaybookExecutionUpdateOne {
	mutation := newPlaybookExecutionMutation(c.config, OpUpdateOne, withPlaybookExecutionID(id))
	return &PlaybookExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PlaybookExecution.
func (c *PlaybookExecutionClient) Delete() *PlaybookExecutionDelete {
	mutation := newPlaybookExecutionMutation(c.config, OpDelete)
	return &PlaybookExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlaybookExecutionClient) DeleteOne(_m *PlaybookExecution) *PlaybookExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlaybookExecutionClient) DeleteOneID(id string) *PlaybookExecutionDeleteOne {
	builder := c.Delete().Where(playbookexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlaybookExecutionDeleteOne{builder}
}

// Query returns a query builder for PlaybookExecution.
func (c *PlaybookExecutionClient) Query() *PlaybookExecutionQuery {
	return &PlaybookExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlaybookExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a PlaybookExecution entity by its id.
func (c *PlaybookExecutionClient) Get(ctx context.Context, id string) (*PlaybookExecution, error) {
	return c.Query().Where(playbookexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlaybookExecutionClient) GetX(ctx context.Context, id string) *PlaybookExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PlaybookExecutionClient) Hooks() []Hook {
	return c.hooks.PlaybookExecution
}

// Interceptors returns the client interceptors.
func (c *PlaybookExecutionClient) Interceptors() []Interceptor {
	return c.inters.PlaybookExecution
}

func (c *PlaybookExecutionClient) mutate(ctx context.Context, m *PlaybookExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlaybookExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlaybookExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlaybookExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlaybookExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PlaybookExecution mutation op: %q", m.Op())
	}
}

// RunnerHeartbeatClient is a client for the RunnerHeartbeat schema.
type RunnerHeartbeatClient struct {
	config
}

// NewRunnerHeartbeatClient returns a client for the RunnerHeartbeat from the given config.
func NewRunnerHeartbeatClient(c config) *RunnerHeartbeatClient {
	return &RunnerHeartbeatClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runnerheartbeat.Hooks(f(g(h())))`.
func (c *RunnerHeartbeatClient) Use(hooks ...Hook) {
	c.hooks.RunnerHeartbeat = append(c.hooks.RunnerHeartbeat, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runnerheartbeat.Intercept(f(g(h())))`.
func (c *RunnerHeartbeatClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunnerHeartbeat = append(c.inters.RunnerHeartbeat, interceptors...)
}

// Create returns a builder for creating a RunnerHeartbeat entity.
func (c *RunnerHeartbeatClient) Create() *RunnerHeartbeatCreate {
	mutation := newRunnerHeartbeatMutation(c.config, OpCreate)
	return &RunnerHeartbeatCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunnerHeartbeat entities.
func (c *RunnerHeartbeatClient) CreateBulk(builders ...*RunnerHeartbeatCreate) *RunnerHeartbeatCreateBulk {
	return &RunnerHeartbeatCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunnerHeartbeatClient) MapCreateBulk(slice any, setFunc func(*RunnerHeartbeatCreate, int)) *RunnerHeartbeatCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunnerHeartbeatCreateBulk{err: fmt.Errorf("calling to RunnerHeartbeatClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunnerHeartbeatCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunnerHeartbeatCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunnerHeartbeat.
func (c *RunnerHeartbeatClient) Update() *RunnerHeartbeatUpdate {
	mutation := newRunnerHeartbeatMutation(c.config, OpUpdate)
	return &RunnerHeartbeatUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunnerHeartbeatClient) UpdateOne(_m *RunnerHeartbeat) *RunnerHeartbeatUpdateOne {
	mutation := newRunnerHeartbeatMutation(c.config, OpUpdateOne, withRunnerHeartbeat(_m))
	return &RunnerHeartbeatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunnerHeartbeatClient) UpdateOneID(id string) *RunnerHeartbeatUpdateOne {
	mutation := newRunnerHeartbeatMutation(c.config, OpUpdateOne, withRunnerHeartbeatID(id))
	return &RunnerHeartbeatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunnerHeartbeat.
func (c *RunnerHeartbeatClient) Delete() *RunnerHeartbeatDelete {
	mutation := newRunnerHeartbeatMutation(c.config, OpDelete)
	return &RunnerHeartbeatDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunnerHeartbeatClient) DeleteOne(_m *RunnerHeartbeat) *RunnerHeartbeatDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunnerHeartbeatClient) DeleteOneID(id string) *RunnerHeartbeatDeleteOne {
	builder := c.Delete().Where(runnerheartbeat.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunnerHeartbeatDeleteOne{builder}
}

// Query returns a query builder for RunnerHeartbeat.
func (c *RunnerHeartbeatClient) Query() *RunnerHeartbeatQuery {
	return &RunnerHeartbeatQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunnerHeartbeat},
		inters: c.Interceptors(),
	}
}

// Get returns a RunnerHeartbeat entity by its id.
func (c *RunnerHeartbeatClient) Get(ctx context.Context, id string) (*RunnerHeartbeat, error) {
	return c.Query().Where(runnerheartbeat.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunnerHeartbeatClient) GetX(ctx context.Context, id string) *RunnerHeartbeat {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RunnerHeartbeatClient) Hooks() []Hook {
	return c.hooks.RunnerHeartbeat
}

// Interceptors returns the client interceptors.
func (c *RunnerHeartbeatClient) Interceptors() []Interceptor {
	return c.inters.RunnerHeartbeat
}

func (c *RunnerHeartbeatClient) mutate(ctx context.Context, m *RunnerHeartbeatMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunnerHeartbeatCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunnerHeartbeatUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunnerHeartbeatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunnerHeartbeatDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunnerHeartbeat mutation op: %q", m.Op())
	}
}

// StageResultClient is a client for the StageResult schema.
type StageResultClient struct {
	config
}

// NewStageResultClient returns a client for the StageResult from the given config.
func NewStageResultClient(c config) *StageResultClient {
	return &StageResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stageresult.Hooks(f(g(h())))`.
func (c *StageResultClient) Use(hooks ...Hook) {
	c.hooks.StageResult = append(c.hooks.StageResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stageresult.Intercept(f(g(h())))`.
func (c *StageResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.StageResult = append(c.inters.StageResult, interceptors...)
}

// Create returns a builder for creating a StageResult entity.
func (c *StageResultClient) Create() *StageResultCreate {
	mutation := newStageResultMutation(c.config, OpCreate)
	return &StageResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StageResult entities.
func (c *StageResultClient) CreateBulk(builders ...*StageResultCreate) *StageResultCreateBulk {
	return &StageResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StageResultClient) MapCreateBulk(slice any, setFunc func(*StageResultCreate, int)) *StageResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StageResultCreateBulk{err: fmt.Errorf("calling to StageResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StageResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StageResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StageResult.
func (c *StageResultClient) Update() *StageResultUpdate {
	mutation := newStageResultMutation(c.config, OpUpdate)
	return &StageResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StageResultClient) UpdateOne(_m *StageResult) *StageResultUpdateOne {
	mutation := newStageResultMutation(c.config, OpUpdateOne, withStageResult(_m))
	return &StageResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StageResultClient) UpdateOneID(id string) *StageResultUpdateOne {
	mutation := newStageResultMutation(c.config, OpUpdateOne, withStageResultID(id))
	return &StageResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StageResult.
func (c *StageResultClient) Delete() *StageResultDelete {
	mutation := newStageResultMutation(c.config, OpDelete)
	return &StageResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StageResultClient) DeleteOne(_m *StageResult) *StageResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StageResultClient) DeleteOneID(id string) *StageResultDeleteOne {
	builder := c.Delete().Where(stageresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StageResultDeleteOne{builder}
}

// Query returns a query builder for StageResult.
func (c *StageResultClient) Query() *StageResultQuery {
	return &StageResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStageResult},
		inters: c.Interceptors(),
	}
}

// Get returns a StageResult entity by its id.
func (c *StageResultClient) Get(ctx context.Context, id string) (*StageResult, error) {
	return c.Query().Where(stageresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StageResultClient) GetX(ctx context.Context, id string) *StageResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StageResultClient) Hooks() []Hook {
	return c.hooks.StageResult
}

// Interceptors returns the client interceptors.
func (c *StageResultClient) Interceptors() []Interceptor {
	return c.inters.StageResult
}

func (c *StageResultClient) mutate(ctx context.Context, m *StageResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StageResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StageResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StageResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StageResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StageResult mutation op: %q", m.Op())
	}
}

// SuggestionPreferenceClient is a client for the SuggestionPreference schema.
type SuggestionPreferenceClient struct {
	config
}

// NewSuggestionPreferenceClient returns a client for the SuggestionPreference from the given config.
func NewSuggestionPreferenceClient(c config) *SuggestionPreferenceClient {
	return &SuggestionPreferenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `suggestionpreference.Hooks(f(g(h())))`.
func (c *SuggestionPreferenceClient) Use(hooks ...Hook) {
	c.hooks.SuggestionPreference = append(c.hooks.SuggestionPreference, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `suggestionpreference.Intercept(f(g(h())))`.
func (c *SuggestionPreferenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.SuggestionPreference = append(c.inters.SuggestionPreference, interceptors...)
}

// Create returns a builder for creating a SuggestionPreference entity.
func (c *SuggestionPreferenceClient) Create() *SuggestionPreferenceCreate {
	mutation := newSuggestionPreferenceMutation(c.config, OpCreate)
	return &SuggestionPreferenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SuggestionPreference entities.
func (c *SuggestionPreferenceClient) CreateBulk(builders ...*SuggestionPreferenceCreate) *SuggestionPreferenceCreateBulk {
	return &SuggestionPreferenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SuggestionPreferenceClient) MapCreateBulk(slice any, setFunc func(*SuggestionPreferenceCreate, int)) *SuggestionPreferenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SuggestionPreferenceCreateBulk{err: fmt.Errorf("calling to SuggestionPreferenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SuggestionPreferenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SuggestionPreferenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SuggestionPreference.
func (c *SuggestionPreferenceClient) Update() *SuggestionPreferenceUpdate {
	mutation := newSuggestionPreferenceMutation(c.config, OpUpdate)
	return &SuggestionPreferenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SuggestionPreferenceClient) UpdateOne(_m *SuggestionPreference) *SuggestionPreferenceUpdateOne {
	mutation := newSuggestionPreferenceMutation(c.config, OpUpdateOne, withSuggestionPreference(_m))
	return &SuggestionPreferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SuggestionPreferenceClient) UpdateOneID(id string) *SuggestionPreferenceUpdateOne {
	mutation := newSuggestionPreferenceMutation(c.config, OpUpdateOne, withSuggestionPreferenceID(id))
	return &SuggestionPreferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SuggestionPreference.
func (c *SuggestionPreferenceClient) Delete() *SuggestionPreferenceDelete {
	mutation := newSuggestionPreferenceMutation(c.config, OpDelete)
	return &SuggestionPreferenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SuggestionPreferenceClient) DeleteOne(_m *SuggestionPreference) *SuggestionPreferenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SuggestionPreferenceClient) DeleteOneID(id string) *SuggestionPreferenceDeleteOne {
	builder := c.Delete().Where(suggestionpreference.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SuggestionPreferenceDeleteOne{builder}
}

// Query returns a query builder for SuggestionPreference.
func (c *SuggestionPreferenceClient) Query() *SuggestionPreferenceQuery {
	return &SuggestionPreferenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSuggestionPreference},
		inters: c.Interceptors(),
	}
}

// Get returns a SuggestionPreference entity by its id.
func (c *SuggestionPreferenceClient) Get(ctx context.Context, id string) (*SuggestionPreference, error) {
	return c.Query().Where(suggestionpreference.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SuggestionPreferenceClient) GetX(ctx context.Context, id string) *SuggestionPreference {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SuggestionPreferenceClient) Hooks() []Hook {
	return c.hooks.SuggestionPreference
}

// Interceptors returns the client interceptors.
func (c *SuggestionPreferenceClient) Interceptors() []Interceptor {
	return c.inters.SuggestionPreference
}

func (c *SuggestionPreferenceClient) mutate(ctx context.Context, m *SuggestionPreferenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SuggestionPreferenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SuggestionPreferenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SuggestionPreferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SuggestionPreferenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SuggestionPreference mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// ToolCallClient is a client for the ToolCall schema.
type ToolCallClient struct {
	config
}

// NewToolCallClient returns a client for the ToolCall from the given config.
func NewToolCallClient(c config) *ToolCallClient {
	return &ToolCallClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `toolcall.Hooks(f(g(h())))`.
func (c *ToolCallClient) Use(hooks ...Hook) {
	c.hooks.ToolCall = append(c.hooks.ToolCall, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `toolcall.Intercept(f(g(h())))`.
func (c *ToolCallClient) Intercept(interceptors ...Interceptor) {
	c.inters.ToolCall = append(c.inters.ToolCall, interceptors...)
}

// Create returns a builder for creating a ToolCall entity.
func (c *ToolCallClient) Create() *ToolCallCreate {
	mutation := newToolCallMutation(c.config, OpCreate)
	return &ToolCallCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ToolCall entities.
func (c *ToolCallClient) CreateBulk(builders ...*ToolCallCreate) *ToolCallCreateBulk {
	return &ToolCallCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ToolCallClient) MapCreateBulk(slice any, setFunc func(*ToolCallCreate, int)) *ToolCallCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ToolCallCreateBulk{err: fmt.Errorf("calling to ToolCallClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ToolCallCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ToolCallCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ToolCall.
func (c *ToolCallClient) Update() *ToolCallUpdate {
	mutation := newToolCallMutation(c.config, OpUpdate)
	return &ToolCallUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ToolCallClient) UpdateOne(_m *ToolCall) *ToolCallUpdateOne {
	mutation := newToolCallMutation(c.config, OpUpdateOne, withToolCall(_m))
	return &ToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ToolCallClient) UpdateOneID(id string) *ToolCallUpdateOne {
	mutation := newToolCallMutation(c.config, OpUpdateOne, withToolCallID(id))
	return &ToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ToolCall.
func (c *ToolCallClient) Delete() *ToolCallDelete {
	mutation := newToolCallMutation(c.config, OpDelete)
	return &ToolCallDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ToolCallClient) DeleteOne(_m *ToolCall) *ToolCallDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ToolCallClient) DeleteOneID(id string) *ToolCallDeleteOne {
	builder := c.Delete().Where(toolcall.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ToolCallDeleteOne{builder}
}

// Query returns a query builder for ToolCall.
func (c *ToolCallClient) Query() *ToolCallQuery {
	return &ToolCallQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeToolCall},
		inters: c.Interceptors(),
	}
}

// Get returns a ToolCall entity by its id.
func (c *ToolCallClient) Get(ctx context.Context, id string) (*ToolCall, error) {
	return c.Query().Where(toolcall.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ToolCallClient) GetX(ctx context.Context, id string) *ToolCall {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ToolCallClient) Hooks() []Hook {
	return c.hooks.ToolCall
}

// Interceptors returns the client interceptors.
func (c *ToolCallClient) Interceptors() []Interceptor {
	return c.inters.ToolCall
}

func (c *ToolCallClient) mutate(ctx context.Context, m *ToolCallMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ToolCallCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ToolCallUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ToolCallDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ToolCall mutation op: %q", m.Op())
	}
}

// WorkspaceClient is a client for the Workspace schema.
type WorkspaceClient struct {
	config
}

// NewWorkspaceClient returns a client for the Workspace from the given config.
func NewWorkspaceClient(c config) *WorkspaceClient {
	return &WorkspaceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workspace.Hooks(f(g(h())))`.
func (c *WorkspaceClient) Use(hooks ...Hook) {
	c.hooks.Workspace = append(c.hooks.Workspace, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workspace.Intercept(f(g(h())))`.
func (c *WorkspaceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Workspace = append(c.inters.Workspace, interceptors...)
}

// Create returns a builder for creating a Workspace entity.
func (c *WorkspaceClient) Create() *WorkspaceCreate {
	mutation := newWorkspaceMutation(c.config, OpCreate)
	return &WorkspaceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Workspace entities.
func (c *WorkspaceClient) CreateBulk(builders ...*WorkspaceCreate) *WorkspaceCreateBulk {
	return &WorkspaceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkspaceClient) MapCreateBulk(slice any, setFunc func(*WorkspaceCreate, int)) *WorkspaceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkspaceCreateBulk{err: fmt.Errorf("calling to WorkspaceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkspaceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkspaceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Workspace.
func (c *WorkspaceClient) Update() *WorkspaceUpdate {
	mutation := newWorkspaceMutation(c.config, OpUpdate)
	return &WorkspaceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkspaceClient) UpdateOne(_m *Workspace) *WorkspaceUpdateOne {
	mutation := newWorkspaceMutation(c.config, OpUpdateOne, withWorkspace(_m))
	return &WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkspaceClient) UpdateOneID(id string) *WorkspaceUpdateOne {
	mutation := newWorkspaceMutation(c.config, OpUpdateOne, withWorkspaceID(id))
	return &WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Workspace.
func (c *WorkspaceClient) Delete() *WorkspaceDelete {
	mutation := newWorkspaceMutation(c.config, OpDelete)
	return &WorkspaceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkspaceClient) DeleteOne(_m *Workspace) *WorkspaceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkspaceClient) DeleteOneID(id string) *WorkspaceDeleteOne {
	builder := c.Delete().Where(workspace.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkspaceDeleteOne{builder}
}

// Query returns a query builder for Workspace.
func (c *WorkspaceClient) Query() *WorkspaceQuery {
	return &WorkspaceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkspace},
		inters: c.Interceptors(),
	}
}

// Get returns a Workspace entity by its id.
func (c *WorkspaceClient) Get(ctx context.Context, id string) (*Workspace, error) {
	return c.Query().Where(workspace.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkspaceClient) GetX(ctx context.Context, id string) *Workspace {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WorkspaceClient) Hooks() []Hook {
	return c.hooks.Workspace
}

// Interceptors returns the client interceptors.
func (c *WorkspaceClient) Interceptors() []Interceptor {
	return c.inters.Workspace
}

func (c *WorkspaceClient) mutate(ctx context.Context, m *WorkspaceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkspaceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkspaceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkspaceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Workspace mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Artifact, MindEvent, PlaybookExecution, RunnerHeartbeat, StageResult,
		SuggestionPreference, Task, ToolCall, Workspace []ent.Hook
	}
	inters struct {
		Artifact, MindEvent, PlaybookExecution, RunnerHeartbeat, StageResult,
		SuggestionPreference, Task, ToolCall, Workspace []ent.Interceptor
	}
)
