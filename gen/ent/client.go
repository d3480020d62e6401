// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/extractiondefinition"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/extractionresult"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/processingsession"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/summarization"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/summarizationprompt"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/transcriptfile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ExtractionDefinition is the client for interacting with the ExtractionDefinition builders.
	ExtractionDefinition *ExtractionDefinitionClient
	// ExtractionResult is the client for interacting with the ExtractionResult builders.
	ExtractionResult *ExtractionResultClient
	// ProcessingSession is the client for interacting with the ProcessingSession builders.
	ProcessingSession *ProcessingSessionClient
	// Summarization is the client for interacting with the Summarization builders.
	Summarization *SummarizationClient
	// SummarizationPrompt is the client for interacting with the SummarizationPrompt builders.
	SummarizationPrompt *SummarizationPromptClient
	// TranscriptFile is the client for interacting with the TranscriptFile builders.
	TranscriptFile *TranscriptFileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ExtractionDefinition = NewExtractionDefinitionClient(c.config)
	c.ExtractionResult = NewExtractionResultClient(c.config)
	c.ProcessingSession = NewProcessingSessionClient(c.config)
	c.Summarization = NewSummarizationClient(c.config)
	c.SummarizationPrompt = NewSummarizationPromptClient(c.config)
	c.TranscriptFile = NewTranscriptFileClient(c.config)
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
		ExtractionDefinition: NewExtractionDefinitionClient(cfg),
		ExtractionResult:     NewExtractionResultClient(cfg),
		ProcessingSession:    NewProcessingSessionClient(cfg),
		Summarization:        NewSummarizationClient(cfg),
		SummarizationPrompt:  NewSummarizationPromptClient(cfg),
		TranscriptFile:       NewTranscriptFileClient(cfg),
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
		ExtractionDefinition: NewExtractionDefinitionClient(cfg),
		ExtractionResult:     NewExtractionResultClient(cfg),
		ProcessingSession:    NewProcessingSessionClient(cfg),
		Summarization:        NewSummarizationClient(cfg),
		SummarizationPrompt:  NewSummarizationPromptClient(cfg),
		TranscriptFile:       NewTranscriptFileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ExtractionDefinition.
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
		c.ExtractionDefinition, c.ExtractionResult, c.ProcessingSession,
		c.Summarization, c.SummarizationPrompt, c.TranscriptFile,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ExtractionDefinition, c.ExtractionResult, c.ProcessingSession,
		c.Summarization, c.SummarizationPrompt, c.TranscriptFile,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExtractionDefinitionMutation:
		return c.ExtractionDefinition.mutate(ctx, m)
	case *ExtractionResultMutation:
		return c.ExtractionResult.mutate(ctx, m)
	case *ProcessingSessionMutation:
		return c.ProcessingSession.mutate(ctx, m)
	case *SummarizationMutation:
		return c.Summarization.mutate(ctx, m)
	case *SummarizationPromptMutation:
		return c.SummarizationPrompt.mutate(ctx, m)
	case *TranscriptFileMutation:
		return c.TranscriptFile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExtractionDefinitionClient is a client for the ExtractionDefinition schema.
type ExtractionDefinitionClient struct {
	config
}

// NewExtractionDefinitionClient returns a client for the ExtractionDefinition from the given config.
func NewExtractionDefinitionClient(c config) *ExtractionDefinitionClient {
	return &ExtractionDefinitionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractiondefinition.Hooks(f(g(h())))`.
func (c *ExtractionDefinitionClient) Use(hooks ...Hook) {
	c.hooks.ExtractionDefinition = append(c.hooks.ExtractionDefinition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractiondefinition.Intercept(f(g(h())))`.
func (c *ExtractionDefinitionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractionDefinition = append(c.inters.ExtractionDefinition, interceptors...)
}

// Create returns a builder for creating a ExtractionDefinition entity.
func (c *ExtractionDefinitionClient) Create() *ExtractionDefinitionCreate {
	mutation := newExtractionDefinitionMutation(c.config, OpCreate)
	return &ExtractionDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractionDefinition entities.
func (c *ExtractionDefinitionClient) CreateBulk(builders ...*ExtractionDefinitionCreate) *ExtractionDefinitionCreateBulk {
	return &ExtractionDefinitionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionDefinitionClient) MapCreateBulk(slice any, setFunc func(*ExtractionDefinitionCreate, int)) *ExtractionDefinitionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionDefinitionCreateBulk{err: fmt.Errorf("calling to ExtractionDefinitionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionDefinitionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionDefinitionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractionDefinition.
func (c *ExtractionDefinitionClient) Update() *ExtractionDefinitionUpdate {
	mutation := newExtractionDefinitionMutation(c.config, OpUpdate)
	return &ExtractionDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionDefinitionClient) UpdateOne(_m *ExtractionDefinition) *ExtractionDefinitionUpdateOne {
	mutation := newExtractionDefinitionMutation(c.config, OpUpdateOne, withExtractionDefinition(_m))
	return &ExtractionDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionDefinitionClient) UpdateOneID(id uuid.UUID) *ExtractionDefinitionUpdateOne {
	mutation := newExtractionDefinitionMutation(c.config, OpUpdateOne, withExtractionDefinitionID(id))
	return &ExtractionDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractionDefinition.
func (c *ExtractionDefinitionClient) Delete() *ExtractionDefinitionDelete {
	mutation := newExtractionDefinitionMutation(c.config, OpDelete)
	return &ExtractionDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionDefinitionClient) DeleteOne(_m *ExtractionDefinition) *ExtractionDefinitionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionDefinitionClient) DeleteOneID(id uuid.UUID) *ExtractionDefinitionDeleteOne {
	builder := c.Delete().Where(extractiondefinition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionDefinitionDeleteOne{builder}
}

// Query returns a query builder for ExtractionDefinition.
func (c *ExtractionDefinitionClient) Query() *ExtractionDefinitionQuery {
	return &ExtractionDefinitionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractionDefinition},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractionDefinition entity by its id.
func (c *ExtractionDefinitionClient) Get(ctx context.Context, id uuid.UUID) (*ExtractionDefinition, error) {
	return c.Query().Where(extractiondefinition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionDefinitionClient) GetX(ctx context.Context, id uuid.UUID) *ExtractionDefinition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryResults queries the results edge of a ExtractionDefinition.
func (c *ExtractionDefinitionClient) QueryResults(_m *ExtractionDefinition) *ExtractionResultQuery {
	query := (&ExtractionResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractiondefinition.Table, extractiondefinition.FieldID, id),
			sqlgraph.To(extractionresult.Table, extractionresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, extractiondefinition.ResultsTable, extractiondefinition.ResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractionDefinitionClient) Hooks() []Hook {
	return c.hooks.ExtractionDefinition
}

// Interceptors returns the client interceptors.
func (c *ExtractionDefinitionClient) Interceptors() []Interceptor {
	return c.inters.ExtractionDefinition
}

func (c *ExtractionDefinitionClient) mutate(ctx context.Context, m *ExtractionDefinitionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractionDefinition mutation op: %q", m.Op())
	}
}

// ExtractionResultClient is a client for the ExtractionResult schema.
type ExtractionResultClient struct {
	config
}

// NewExtractionResultClient returns a client for the ExtractionResult from the given config.
func NewExtractionResultClient(c config) *ExtractionResultClient {
	return &ExtractionResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractionresult.Hooks(f(g(h())))`.
func (c *ExtractionResultClient) Use(hooks ...Hook) {
	c.hooks.ExtractionResult = append(c.hooks.ExtractionResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractionresult.Intercept(f(g(h())))`.
func (c *ExtractionResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractionResult = append(c.inters.ExtractionResult, interceptors...)
}

// Create returns a builder for creating a ExtractionResult entity.
func (c *ExtractionResultClient) Create() *ExtractionResultCreate {
	mutation := newExtractionResultMutation(c.config, OpCreate)
	return &ExtractionResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractionResult entities.
func (c *ExtractionResultClient) CreateBulk(builders ...*ExtractionResultCreate) *ExtractionResultCreateBulk {
	return &ExtractionResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionResultClient) MapCreateBulk(slice any, setFunc func(*ExtractionResultCreate, int)) *ExtractionResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionResultCreateBulk{err: fmt.Errorf("calling to ExtractionResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractionResult.
func (c *ExtractionResultClient) Update() *ExtractionResultUpdate {
	mutation := newExtractionResultMutation(c.config, OpUpdate)
	return &ExtractionResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionResultClient) UpdateOne(_m *ExtractionResult) *ExtractionResultUpdateOne {
	mutation := newExtractionResultMutation(c.config, OpUpdateOne, withExtractionResult(_m))
	return &ExtractionResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionResultClient) UpdateOneID(id uuid.UUID) *ExtractionResultUpdateOne {
	mutation := newExtractionResultMutation(c.config, OpUpdateOne, withExtractionResultID(id))
	return &ExtractionResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractionResult.
func (c *ExtractionResultClient) Delete() *ExtractionResultDelete {
	mutation := newExtractionResultMutation(c.config, OpDelete)
	return &ExtractionResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionResultClient) DeleteOne(_m *ExtractionResult) *ExtractionResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionResultClient) DeleteOneID(id uuid.UUID) *ExtractionResultDeleteOne {
	builder := c.Delete().Where(extractionresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionResultDeleteOne{builder}
}

// Query returns a query builder for ExtractionResult.
func (c *ExtractionResultClient) Query() *ExtractionResultQuery {
	return &ExtractionResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractionResult},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractionResult entity by its id.
func (c *ExtractionResultClient) Get(ctx context.Context, id uuid.UUID) (*ExtractionResult, error) {
	return c.Query().Where(extractionresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionResultClient) GetX(ctx context.Context, id uuid.UUID) *ExtractionResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a ExtractionResult.
func (c *ExtractionResultClient) QueryFile(_m *ExtractionResult) *TranscriptFileQuery {
	query := (&TranscriptFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionresult.Table, extractionresult.FieldID, id),
			sqlgraph.To(transcriptfile.Table, transcriptfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractionresult.FileTable, extractionresult.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySession queries the session edge of a ExtractionResult.
func (c *ExtractionResultClient) QuerySession(_m *ExtractionResult) *ProcessingSessionQuery {
	query := (&ProcessingSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionresult.Table, extractionresult.FieldID, id),
			sqlgraph.To(processingsession.Table, processingsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractionresult.SessionTable, extractionresult.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDefinition queries the definition edge of a ExtractionResult.
func (c *ExtractionResultClient) QueryDefinition(_m *ExtractionResult) *ExtractionDefinitionQuery {
	query := (&ExtractionDefinitionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionresult.Table, extractionresult.FieldID, id),
			sqlgraph.To(extractiondefinition.Table, extractiondefinition.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractionresult.DefinitionTable, extractionresult.DefinitionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractionResultClient) Hooks() []Hook {
	return c.hooks.ExtractionResult
}

// Interceptors returns the client interceptors.
func (c *ExtractionResultClient) Interceptors() []Interceptor {
	return c.inters.ExtractionResult
}

func (c *ExtractionResultClient) mutate(ctx context.Context, m *ExtractionResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractionResult mutation op: %q", m.Op())
	}
}

// ProcessingSessionClient is a client for the ProcessingSession schema.
type ProcessingSessionClient struct {
	config
}

// NewProcessingSessionClient returns a client for the ProcessingSession from the given config.
func NewProcessingSessionClient(c config) *ProcessingSessionClient {
	return &ProcessingSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processingsession.Hooks(f(g(h())))`.
func (c *ProcessingSessionClient) Use(hooks ...Hook) {
	c.hooks.ProcessingSession = append(c.hooks.ProcessingSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processingsession.Intercept(f(g(h())))`.
func (c *ProcessingSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessingSession = append(c.inters.ProcessingSession, interceptors...)
}

// Create returns a builder for creating a ProcessingSession entity.
func (c *ProcessingSessionClient) Create() *ProcessingSessionCreate {
	mutation := newProcessingSessionMutation(c.config, OpCreate)
	return &ProcessingSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessingSession entities.
func (c *ProcessingSessionClient) CreateBulk(builders ...*ProcessingSessionCreate) *ProcessingSessionCreateBulk {
	return &ProcessingSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessingSessionClient) MapCreateBulk(slice any, setFunc func(*ProcessingSessionCreate, int)) *ProcessingSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessingSessionCreateBulk{err: fmt.Errorf("calling to ProcessingSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessingSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessingSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessingSession.
func (c *ProcessingSessionClient) Update() *ProcessingSessionUpdate {
	mutation := newProcessingSessionMutation(c.config, OpUpdate)
	return &ProcessingSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessingSessionClient) UpdateOne(_m *ProcessingSession) *ProcessingSessionUpdateOne {
	mutation := newProcessingSessionMutation(c.config, OpUpdateOne, withProcessingSession(_m))
	return &ProcessingSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessingSessionClient) UpdateOneID(id uuid.UUID) *ProcessingSessionUpdateOne {
	mutation := newProcessingSessionMutation(c.config, OpUpdateOne, withProcessingSessionID(id))
	return &ProcessingSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessingSession.
func (c *ProcessingSessionClient) Delete() *ProcessingSessionDelete {
	mutation := newProcessingSessionMutation(c.config, OpDelete)
	return &ProcessingSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessingSessionClient) DeleteOne(_m *ProcessingSession) *ProcessingSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessingSessionClient) DeleteOneID(id uuid.UUID) *ProcessingSessionDeleteOne {
	builder := c.Delete().Where(processingsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessingSessionDeleteOne{builder}
}

// Query returns a query builder for ProcessingSession.
func (c *ProcessingSessionClient) Query() *ProcessingSessionQuery {
	return &ProcessingSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessingSession},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessingSession entity by its id.
func (c *ProcessingSessionClient) Get(ctx context.Context, id uuid.UUID) (*ProcessingSession, error) {
	return c.Query().Where(processingsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessingSessionClient) GetX(ctx context.Context, id uuid.UUID) *ProcessingSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a ProcessingSession.
func (c *ProcessingSessionClient) QueryFile(_m *ProcessingSession) *TranscriptFileQuery {
	query := (&TranscriptFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processingsession.Table, processingsession.FieldID, id),
			sqlgraph.To(transcriptfile.Table, transcriptfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, processingsession.FileTable, processingsession.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResults queries the results edge of a ProcessingSession.
func (c *ProcessingSessionClient) QueryResults(_m *ProcessingSession) *ExtractionResultQuery {
	query := (&ExtractionResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processingsession.Table, processingsession.FieldID, id),
			sqlgraph.To(extractionresult.Table, extractionresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, processingsession.ResultsTable, processingsession.ResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProcessingSessionClient) Hooks() []Hook {
	return c.hooks.ProcessingSession
}

// Interceptors returns the client interceptors.
func (c *ProcessingSessionClient) Interceptors() []Interceptor {
	return c.inters.ProcessingSession
}

func (c *ProcessingSessionClient) mutate(ctx context.Context, m *ProcessingSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessingSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessingSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessingSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessingSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessingSession mutation op: %q", m.Op())
	}
}

// SummarizationClient is a client for the Summarization schema.
type SummarizationClient struct {
	config
}

// NewSummarizationClient returns a client for the Summarization from the given config.
func NewSummarizationClient(c config) *SummarizationClient {
	return &SummarizationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `summarization.Hooks(f(g(h())))`.
func (c *SummarizationClient) Use(hooks ...Hook) {
	c.hooks.Summarization = append(c.hooks.Summarization, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `summarization.Intercept(f(g(h())))`.
func (c *SummarizationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Summarization = append(c.inters.Summarization, interceptors...)
}

// Create returns a builder for creating a Summarization entity.
func (c *SummarizationClient) Create() *SummarizationCreate {
	mutation := newSummarizationMutation(c.config, OpCreate)
	return &SummarizationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Summarization entities.
func (c *SummarizationClient) CreateBulk(builders ...*SummarizationCreate) *SummarizationCreateBulk {
	return &SummarizationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SummarizationClient) MapCreateBulk(slice any, setFunc func(*SummarizationCreate, int)) *SummarizationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SummarizationCreateBulk{err: fmt.Errorf("calling to SummarizationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SummarizationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SummarizationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Summarization.
func (c *SummarizationClient) Update() *SummarizationUpdate {
	mutation := newSummarizationMutation(c.config, OpUpdate)
	return &SummarizationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SummarizationClient) UpdateOne(_m *Summarization) *SummarizationUpdateOne {
	mutation := newSummarizationMutation(c.config, OpUpdateOne, withSummarization(_m))
	return &SummarizationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SummarizationClient) UpdateOneID(id uuid.UUID) *SummarizationUpdateOne {
	mutation := newSummarizationMutation(c.config, OpUpdateOne, withSummarizationID(id))
	return &SummarizationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Summarization.
func (c *SummarizationClient) Delete() *SummarizationDelete {
	mutation := newSummarizationMutation(c.config, OpDelete)
	return &SummarizationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SummarizationClient) DeleteOne(_m *Summarization) *SummarizationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SummarizationClient) DeleteOneID(id uuid.UUID) *SummarizationDeleteOne {
	builder := c.Delete().Where(summarization.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SummarizationDeleteOne{builder}
}

// Query returns a query builder for Summarization.
func (c *SummarizationClient) Query() *SummarizationQuery {
	return &SummarizationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSummarization},
		inters: c.Interceptors(),
	}
}

// Get returns a Summarization entity by its id.
func (c *SummarizationClient) Get(ctx context.Context, id uuid.UUID) (*Summarization, error) {
	return c.Query().Where(summarization.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SummarizationClient) GetX(ctx context.Context, id uuid.UUID) *Summarization {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a Summarization.
func (c *SummarizationClient) QueryFile(_m *Summarization) *TranscriptFileQuery {
	query := (&TranscriptFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(summarization.Table, summarization.FieldID, id),
			sqlgraph.To(transcriptfile.Table, transcriptfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, summarization.FileTable, summarization.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTemplate queries the template edge of a Summarization.
func (c *SummarizationClient) QueryTemplate(_m *Summarization) *SummarizationPromptQuery {
	query := (&SummarizationPromptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(summarization.Table, summarization.FieldID, id),
			sqlgraph.To(summarizationprompt.Table, summarizationprompt.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, summarization.TemplateTable, summarization.TemplateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SummarizationClient) Hooks() []Hook {
	return c.hooks.Summarization
}

// Interceptors returns the client interceptors.
func (c *SummarizationClient) Interceptors() []Interceptor {
	return c.inters.Summarization
}

func (c *SummarizationClient) mutate(ctx context.Context, m *SummarizationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SummarizationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SummarizationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SummarizationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SummarizationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Summarization mutation op: %q", m.Op())
	}
}

// SummarizationPromptClient is a client for the SummarizationPrompt schema.
type SummarizationPromptClient struct {
	config
}

// NewSummarizationPromptClient returns a client for the SummarizationPrompt from the given config.
func NewSummarizationPromptClient(c config) *SummarizationPromptClient {
	return &SummarizationPromptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `summarizationprompt.Hooks(f(g(h())))`.
func (c *SummarizationPromptClient) Use(hooks ...Hook) {
	c.hooks.SummarizationPrompt = append(c.hooks.SummarizationPrompt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `summarizationprompt.Intercept(f(g(h())))`.
func (c *SummarizationPromptClient) Intercept(interceptors ...Interceptor) {
	c.inters.SummarizationPrompt = append(c.inters.SummarizationPrompt, interceptors...)
}

// Create returns a builder for creating a SummarizationPrompt entity.
func (c *SummarizationPromptClient) Create() *SummarizationPromptCreate {
	mutation := newSummarizationPromptMutation(c.config, OpCreate)
	return &SummarizationPromptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SummarizationPrompt entities.
func (c *SummarizationPromptClient) CreateBulk(builders ...*SummarizationPromptCreate) *SummarizationPromptCreateBulk {
	return &SummarizationPromptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SummarizationPromptClient) MapCreateBulk(slice any, setFunc func(*SummarizationPromptCreate, int)) *SummarizationPromptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SummarizationPromptCreateBulk{err: fmt.Errorf("calling to SummarizationPromptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SummarizationPromptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SummarizationPromptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SummarizationPrompt.
func (c *SummarizationPromptClient) Update() *SummarizationPromptUpdate {
	mutation := newSummarizationPromptMutation(c.config, OpUpdate)
	return &SummarizationPromptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SummarizationPromptClient) UpdateOne(_m *SummarizationPrompt) *SummarizationPromptUpdateOne {
	mutation := newSummarizationPromptMutation(c.config, OpUpdateOne, withSummarizationPrompt(_m))
	return &SummarizationPromptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SummarizationPromptClient) UpdateOneID(id uuid.UUID) *SummarizationPromptUpdateOne {
	mutation := newSummarizationPromptMutation(c.config, OpUpdateOne, withSummarizationPromptID(id))
	return &SummarizationPromptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SummarizationPrompt.
func (c *SummarizationPromptClient) Delete() *SummarizationPromptDelete {
	mutation := newSummarizationPromptMutation(c.config, OpDelete)
	return &SummarizationPromptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SummarizationPromptClient) DeleteOne(_m *SummarizationPrompt) *SummarizationPromptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SummarizationPromptClient) DeleteOneID(id uuid.UUID) *SummarizationPromptDeleteOne {
	builder := c.Delete().Where(summarizationprompt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SummarizationPromptDeleteOne{builder}
}

// Query returns a query builder for SummarizationPrompt.
func (c *SummarizationPromptClient) Query() *SummarizationPromptQuery {
	return &SummarizationPromptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSummarizationPrompt},
		inters: c.Interceptors(),
	}
}

// Get returns a SummarizationPrompt entity by its id.
func (c *SummarizationPromptClient) Get(ctx context.Context, id uuid.UUID) (*SummarizationPrompt, error) {
	return c.Query().Where(summarizationprompt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SummarizationPromptClient) GetX(ctx context.Context, id uuid.UUID) *SummarizationPrompt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySummarizations queries the summarizations edge of a SummarizationPrompt.
func (c *SummarizationPromptClient) QuerySummarizations(_m *SummarizationPrompt) *SummarizationQuery {
	query := (&SummarizationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(summarizationprompt.Table, summarizationprompt.FieldID, id),
			sqlgraph.To(summarization.Table, summarization.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, summarizationprompt.SummarizationsTable, summarizationprompt.SummarizationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SummarizationPromptClient) Hooks() []Hook {
	return c.hooks.SummarizationPrompt
}

// Interceptors returns the client interceptors.
func (c *SummarizationPromptClient) Interceptors() []Interceptor {
	return c.inters.SummarizationPrompt
}

func (c *SummarizationPromptClient) mutate(ctx context.Context, m *SummarizationPromptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SummarizationPromptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SummarizationPromptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SummarizationPromptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SummarizationPromptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SummarizationPrompt mutation op: %q", m.Op())
	}
}

// TranscriptFileClient is a client for the TranscriptFile schema.
type TranscriptFileClient struct {
	config
}

// NewTranscriptFileClient returns a client for the TranscriptFile from the given config.
func NewTranscriptFileClient(c config) *TranscriptFileClient {
	return &TranscriptFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `transcriptfile.Hooks(f(g(h())))`.
func (c *TranscriptFileClient) Use(hooks ...Hook) {
	c.hooks.TranscriptFile = append(c.hooks.TranscriptFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `transcriptfile.Intercept(f(g(h())))`.
func (c *TranscriptFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.TranscriptFile = append(c.inters.TranscriptFile, interceptors...)
}

// Create returns a builder for creating a TranscriptFile entity.
func (c *TranscriptFileClient) Create() *TranscriptFileCreate {
	mutation := newTranscriptFileMutation(c.config, OpCreate)
	return &TranscriptFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TranscriptFile entities.
func (c *TranscriptFileClient) CreateBulk(builders ...*TranscriptFileCreate) *TranscriptFileCreateBulk {
	return &TranscriptFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TranscriptFileClient) MapCreateBulk(slice any, setFunc func(*TranscriptFileCreate, int)) *TranscriptFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TranscriptFileCreateBulk{err: fmt.Errorf("calling to TranscriptFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TranscriptFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TranscriptFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TranscriptFile.
func (c *TranscriptFileClient) Update() *TranscriptFileUpdate {
	mutation := newTranscriptFileMutation(c.config, OpUpdate)
	return &TranscriptFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TranscriptFileClient) UpdateOne(_m *TranscriptFile) *TranscriptFileUpdateOne {
	mutation := newTranscriptFileMutation(c.config, OpUpdateOne, withTranscriptFile(_m))
	return &TranscriptFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TranscriptFileClient) UpdateOneID(id uuid.UUID) *TranscriptFileUpdateOne {
	mutation := newTranscriptFileMutation(c.config, OpUpdateOne, withTranscriptFileID(id))
	return &TranscriptFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TranscriptFile.
func (c *TranscriptFileClient) Delete() *TranscriptFileDelete {
	mutation := newTranscriptFileMutation(c.config, OpDelete)
	return &TranscriptFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TranscriptFileClient) DeleteOne(_m *TranscriptFile) *TranscriptFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TranscriptFileClient) DeleteOneID(id uuid.UUID) *TranscriptFileDeleteOne {
	builder := c.Delete().Where(transcriptfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TranscriptFileDeleteOne{builder}
}

// Query returns a query builder for TranscriptFile.
func (c *TranscriptFileClient) Query() *TranscriptFileQuery {
	return &TranscriptFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTranscriptFile},
		inters: c.Interceptors(),
	}
}

// Get returns a TranscriptFile entity by its id.
func (c *TranscriptFileClient) Get(ctx context.Context, id uuid.UUID) (*TranscriptFile, error) {
	return c.Query().Where(transcriptfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TranscriptFileClient) GetX(ctx context.Context, id uuid.UUID) *TranscriptFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySessions queries the sessions edge of a TranscriptFile.
func (c *TranscriptFileClient) QuerySessions(_m *TranscriptFile) *ProcessingSessionQuery {
	query := (&ProcessingSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(transcriptfile.Table, transcriptfile.FieldID, id),
			sqlgraph.To(processingsession.Table, processingsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, transcriptfile.SessionsTable, transcriptfile.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResults queries the results edge of a TranscriptFile.
func (c *TranscriptFileClient) QueryResults(_m *TranscriptFile) *ExtractionResultQuery {
	query := (&ExtractionResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(transcriptfile.Table, transcriptfile.FieldID, id),
			sqlgraph.To(extractionresult.Table, extractionresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, transcriptfile.ResultsTable, transcriptfile.ResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySummarizations queries the summarizations edge of a TranscriptFile.
func (c *TranscriptFileClient) QuerySummarizations(_m *TranscriptFile) *SummarizationQuery {
	query := (&SummarizationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(transcriptfile.Table, transcriptfile.FieldID, id),
			sqlgraph.To(summarization.Table, summarization.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, transcriptfile.SummarizationsTable, transcriptfile.SummarizationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TranscriptFileClient) Hooks() []Hook {
	return c.hooks.TranscriptFile
}

// Interceptors returns the client interceptors.
func (c *TranscriptFileClient) Interceptors() []Interceptor {
	return c.inters.TranscriptFile
}

func (c *TranscriptFileClient) mutate(ctx context.Context, m *TranscriptFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TranscriptFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TranscriptFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TranscriptFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TranscriptFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TranscriptFile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ExtractionDefinition, ExtractionResult, ProcessingSession, Summarization,
		SummarizationPrompt, TranscriptFile []ent.Hook
	}
	inters struct {
		ExtractionDefinition, ExtractionResult, ProcessingSession, Summarization,
		SummarizationPrompt, TranscriptFile []ent.Interceptor
	}
)
