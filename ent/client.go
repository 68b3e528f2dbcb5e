// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/deathnote2501/fia-v3.0-sub000/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/learnersession"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/llmrequestevent"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/module"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/slide"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/stage"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/submodule"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/trainingplan"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// LearnerSession is the client for interacting with the LearnerSession builders.
	LearnerSession *LearnerSessionClient
	// Module is the client for interacting with the Module builders.
	Module *ModuleClient
	// Slide is the client for interacting with the Slide builders.
	Slide *SlideClient
	// Stage is the client for interacting with the Stage builders.
	Stage *StageClient
	// Submodule is the client for interacting with the Submodule builders.
	Submodule *SubmoduleClient
	// TrainingPlan is the client for interacting with the TrainingPlan builders.
	TrainingPlan *TrainingPlanClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.LearnerSession = NewLearnerSessionClient(c.config)
	c.Module = NewModuleClient(c.config)
	c.Slide = NewSlideClient(c.config)
	c.Stage = NewStageClient(c.config)
	c.Submodule = NewSubmoduleClient(c.config)
	c.TrainingPlan = NewTrainingPlanClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		LearnerSession:  NewLearnerSessionClient(cfg),
		Module:          NewModuleClient(cfg),
		Slide:           NewSlideClient(cfg),
		Stage:           NewStageClient(cfg),
		Submodule:       NewSubmoduleClient(cfg),
		TrainingPlan:    NewTrainingPlanClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		LearnerSession:  NewLearnerSessionClient(cfg),
		Module:          NewModuleClient(cfg),
		Slide:           NewSlideClient(cfg),
		Stage:           NewStageClient(cfg),
		Submodule:       NewSubmoduleClient(cfg),
		TrainingPlan:    NewTrainingPlanClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		LLMRequestEvent.
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
		c.LLMRequestEvent, c.LearnerSession, c.Module, c.Slide, c.Stage, c.Submodule,
		c.TrainingPlan,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.LLMRequestEvent, c.LearnerSession, c.Module, c.Slide, c.Stage, c.Submodule,
		c.TrainingPlan,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *LearnerSessionMutation:
		return c.LearnerSession.mutate(ctx, m)
	case *ModuleMutation:
		return c.Module.mutate(ctx, m)
	case *SlideMutation:
		return c.Slide.mutate(ctx, m)
	case *StageMutation:
		return c.Stage.mutate(ctx, m)
	case *SubmoduleMutation:
		return c.Submodule.mutate(ctx, m)
	case *TrainingPlanMutation:
		return c.TrainingPlan.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// LearnerSessionClient is a client for the LearnerSession schema.
type LearnerSessionClient struct {
	config
}

// NewLearnerSessionClient returns a client for the LearnerSession from the given config.
func NewLearnerSessionClient(c config) *LearnerSessionClient {
	return &LearnerSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learnersession.Hooks(f(g(h())))`.
func (c *LearnerSessionClient) Use(hooks ...Hook) {
	c.hooks.LearnerSession = append(c.hooks.LearnerSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learnersession.Intercept(f(g(h())))`.
func (c *LearnerSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearnerSession = append(c.inters.LearnerSession, interceptors...)
}

// Create returns a builder for creating a LearnerSession entity.
func (c *LearnerSessionClient) Create() *LearnerSessionCreate {
	mutation := newLearnerSessionMutation(c.config, OpCreate)
	return &LearnerSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearnerSession entities.
func (c *LearnerSessionClient) CreateBulk(builders ...*LearnerSessionCreate) *LearnerSessionCreateBulk {
	return &LearnerSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearnerSessionClient) MapCreateBulk(slice any, setFunc func(*LearnerSessionCreate, int)) *LearnerSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearnerSessionCreateBulk{err: fmt.Errorf("calling to LearnerSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearnerSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearnerSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearnerSession.
func (c *LearnerSessionClient) Update() *LearnerSessionUpdate {
	mutation := newLearnerSessionMutation(c.config, OpUpdate)
	return &LearnerSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearnerSessionClient) UpdateOne(_m *LearnerSession) *LearnerSessionUpdateOne {
	mutation := newLearnerSessionMutation(c.config, OpUpdateOne, withLearnerSession(_m))
	return &LearnerSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearnerSessionClient) UpdateOneID(id uuid.UUID) *LearnerSessionUpdateOne {
	mutation := newLearnerSessionMutation(c.config, OpUpdateOne, withLearnerSessionID(id))
	return &LearnerSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearnerSession.
func (c *LearnerSessionClient) Delete() *LearnerSessionDelete {
	mutation := newLearnerSessionMutation(c.config, OpDelete)
	return &LearnerSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearnerSessionClient) DeleteOne(_m *LearnerSession) *LearnerSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearnerSessionClient) DeleteOneID(id uuid.UUID) *LearnerSessionDeleteOne {
	builder := c.Delete().Where(learnersession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearnerSessionDeleteOne{builder}
}

// Query returns a query builder for LearnerSession.
func (c *LearnerSessionClient) Query() *LearnerSessionQuery {
	return &LearnerSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearnerSession},
		inters: c.Interceptors(),
	}
}

// Get returns a LearnerSession entity by its id.
func (c *LearnerSessionClient) Get(ctx context.Context, id uuid.UUID) (*LearnerSession, error) {
	return c.Query().Where(learnersession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearnerSessionClient) GetX(ctx context.Context, id uuid.UUID) *LearnerSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearnerSessionClient) Hooks() []Hook {
	return c.hooks.LearnerSession
}

// Interceptors returns the client interceptors.
func (c *LearnerSessionClient) Interceptors() []Interceptor {
	return c.inters.LearnerSession
}

func (c *LearnerSessionClient) mutate(ctx context.Context, m *LearnerSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearnerSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearnerSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearnerSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearnerSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearnerSession mutation op: %q", m.Op())
	}
}

// ModuleClient is a client for the Module schema.
type ModuleClient struct {
	config
}

// NewModuleClient returns a client for the Module from the given config.
func NewModuleClient(c config) *ModuleClient {
	return &ModuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `module.Hooks(f(g(h())))`.
func (c *ModuleClient) Use(hooks ...Hook) {
	c.hooks.Module = append(c.hooks.Module, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `module.Intercept(f(g(h())))`.
func (c *ModuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.Module = append(c.inters.Module, interceptors...)
}

// Create returns a builder for creating a Module entity.
func (c *ModuleClient) Create() *ModuleCreate {
	mutation := newModuleMutation(c.config, OpCreate)
	return &ModuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Module entities.
func (c *ModuleClient) CreateBulk(builders ...*ModuleCreate) *ModuleCreateBulk {
	return &ModuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ModuleClient) MapCreateBulk(slice any, setFunc func(*ModuleCreate, int)) *ModuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ModuleCreateBulk{err: fmt.Errorf("calling to ModuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ModuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ModuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Module.
func (c *ModuleClient) Update() *ModuleUpdate {
	mutation := newModuleMutation(c.config, OpUpdate)
	return &ModuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ModuleClient) UpdateOne(_m *Module) *ModuleUpdateOne {
	mutation := newModuleMutation(c.config, OpUpdateOne, withModule(_m))
	return &ModuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ModuleClient) UpdateOneID(id uuid.UUID) *ModuleUpdateOne {
	mutation := newModuleMutation(c.config, OpUpdateOne, withModuleID(id))
	return &ModuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Module.
func (c *ModuleClient) Delete() *ModuleDelete {
	mutation := newModuleMutation(c.config, OpDelete)
	return &ModuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ModuleClient) DeleteOne(_m *Module) *ModuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ModuleClient) DeleteOneID(id uuid.UUID) *ModuleDeleteOne {
	builder := c.Delete().Where(module.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ModuleDeleteOne{builder}
}

// Query returns a query builder for Module.
func (c *ModuleClient) Query() *ModuleQuery {
	return &ModuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeModule},
		inters: c.Interceptors(),
	}
}

// Get returns a Module entity by its id.
func (c *ModuleClient) Get(ctx context.Context, id uuid.UUID) (*Module, error) {
	return c.Query().Where(module.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ModuleClient) GetX(ctx context.Context, id uuid.UUID) *Module {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStage queries the stage edge of a Module.
func (c *ModuleClient) QueryStage(_m *Module) *StageQuery {
	query := (&StageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(module.Table, module.FieldID, id),
			sqlgraph.To(stage.Table, stage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, module.StageTable, module.StageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySubmodules queries the submodules edge of a Module.
func (c *ModuleClient) QuerySubmodules(_m *Module) *SubmoduleQuery {
	query := (&SubmoduleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(module.Table, module.FieldID, id),
			sqlgraph.To(submodule.Table, submodule.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, module.SubmodulesTable, module.SubmodulesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ModuleClient) Hooks() []Hook {
	return c.hooks.Module
}

// Interceptors returns the client interceptors.
func (c *ModuleClient) Interceptors() []Interceptor {
	return c.inters.Module
}

func (c *ModuleClient) mutate(ctx context.Context, m *ModuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ModuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ModuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ModuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ModuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Module mutation op: %q", m.Op())
	}
}

// SlideClient is a client for the Slide schema.
type SlideClient struct {
	config
}

// NewSlideClient returns a client for the Slide from the given config.
func NewSlideClient(c config) *SlideClient {
	return &SlideClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `slide.Hooks(f(g(h())))`.
func (c *SlideClient) Use(hooks ...Hook) {
	c.hooks.Slide = append(c.hooks.Slide, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `slide.Intercept(f(g(h())))`.
func (c *SlideClient) Intercept(interceptors ...Interceptor) {
	c.inters.Slide = append(c.inters.Slide, interceptors...)
}

// Create returns a builder for creating a Slide entity.
func (c *SlideClient) Create() *SlideCreate {
	mutation := newSlideMutation(c.config, OpCreate)
	return &SlideCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Slide entities.
func (c *SlideClient) CreateBulk(builders ...*SlideCreate) *SlideCreateBulk {
	return &SlideCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SlideClient) MapCreateBulk(slice any, setFunc func(*SlideCreate, int)) *SlideCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SlideCreateBulk{err: fmt.Errorf("calling to SlideClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SlideCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SlideCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Slide.
func (c *SlideClient) Update() *SlideUpdate {
	mutation := newSlideMutation(c.config, OpUpdate)
	return &SlideUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SlideClient) UpdateOne(_m *Slide) *SlideUpdateOne {
	mutation := newSlideMutation(c.config, OpUpdateOne, withSlide(_m))
	return &SlideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SlideClient) UpdateOneID(id uuid.UUID) *SlideUpdateOne {
	mutation := newSlideMutation(c.config, OpUpdateOne, withSlideID(id))
	return &SlideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Slide.
func (c *SlideClient) Delete() *SlideDelete {
	mutation := newSlideMutation(c.config, OpDelete)
	return &SlideDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SlideClient) DeleteOne(_m *Slide) *SlideDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SlideClient) DeleteOneID(id uuid.UUID) *SlideDeleteOne {
	builder := c.Delete().Where(slide.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SlideDeleteOne{builder}
}

// Query returns a query builder for Slide.
func (c *SlideClient) Query() *SlideQuery {
	return &SlideQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSlide},
		inters: c.Interceptors(),
	}
}

// Get returns a Slide entity by its id.
func (c *SlideClient) Get(ctx context.Context, id uuid.UUID) (*Slide, error) {
	return c.Query().Where(slide.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SlideClient) GetX(ctx context.Context, id uuid.UUID) *Slide {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySubmodule queries the submodule edge of a Slide.
func (c *SlideClient) QuerySubmodule(_m *Slide) *SubmoduleQuery {
	query := (&SubmoduleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(slide.Table, slide.FieldID, id),
			sqlgraph.To(submodule.Table, submodule.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, slide.SubmoduleTable, slide.SubmoduleColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SlideClient) Hooks() []Hook {
	return c.hooks.Slide
}

// Interceptors returns the client interceptors.
func (c *SlideClient) Interceptors() []Interceptor {
	return c.inters.Slide
}

func (c *SlideClient) mutate(ctx context.Context, m *SlideMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SlideCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SlideUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SlideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SlideDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Slide mutation op: %q", m.Op())
	}
}

// StageClient is a client for the Stage schema.
type StageClient struct {
	config
}

// NewStageClient returns a client for the Stage from the given config.
func NewStageClient(c config) *StageClient {
	return &StageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stage.Hooks(f(g(h())))`.
func (c *StageClient) Use(hooks ...Hook) {
	c.hooks.Stage = append(c.hooks.Stage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stage.Intercept(f(g(h())))`.
func (c *StageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Stage = append(c.inters.Stage, interceptors...)
}

// Create returns a builder for creating a Stage entity.
func (c *StageClient) Create() *StageCreate {
	mutation := newStageMutation(c.config, OpCreate)
	return &StageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Stage entities.
func (c *StageClient) CreateBulk(builders ...*StageCreate) *StageCreateBulk {
	return &StageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StageClient) MapCreateBulk(slice any, setFunc func(*StageCreate, int)) *StageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StageCreateBulk{err: fmt.Errorf("calling to StageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Stage.
func (c *StageClient) Update() *StageUpdate {
	mutation := newStageMutation(c.config, OpUpdate)
	return &StageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StageClient) UpdateOne(_m *Stage) *StageUpdateOne {
	mutation := newStageMutation(c.config, OpUpdateOne, withStage(_m))
	return &StageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StageClient) UpdateOneID(id uuid.UUID) *StageUpdateOne {
	mutation := newStageMutation(c.config, OpUpdateOne, withStageID(id))
	return &StageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Stage.
func (c *StageClient) Delete() *StageDelete {
	mutation := newStageMutation(c.config, OpDelete)
	return &StageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StageClient) DeleteOne(_m *Stage) *StageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StageClient) DeleteOneID(id uuid.UUID) *StageDeleteOne {
	builder := c.Delete().Where(stage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StageDeleteOne{builder}
}

// Query returns a query builder for Stage.
func (c *StageClient) Query() *StageQuery {
	return &StageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStage},
		inters: c.Interceptors(),
	}
}

// Get returns a Stage entity by its id.
func (c *StageClient) Get(ctx context.Context, id uuid.UUID) (*Stage, error) {
	return c.Query().Where(stage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StageClient) GetX(ctx context.Context, id uuid.UUID) *Stage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPlan queries the plan edge of a Stage.
func (c *StageClient) QueryPlan(_m *Stage) *TrainingPlanQuery {
	query := (&TrainingPlanClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stage.Table, stage.FieldID, id),
			sqlgraph.To(trainingplan.Table, trainingplan.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stage.PlanTable, stage.PlanColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryModules queries the modules edge of a Stage.
func (c *StageClient) QueryModules(_m *Stage) *ModuleQuery {
	query := (&ModuleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stage.Table, stage.FieldID, id),
			sqlgraph.To(module.Table, module.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stage.ModulesTable, stage.ModulesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StageClient) Hooks() []Hook {
	return c.hooks.Stage
}

// Interceptors returns the client interceptors.
func (c *StageClient) Interceptors() []Interceptor {
	return c.inters.Stage
}

func (c *StageClient) mutate(ctx context.Context, m *StageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Stage mutation op: %q", m.Op())
	}
}

// SubmoduleClient is a client for the Submodule schema.
type SubmoduleClient struct {
	config
}

// NewSubmoduleClient returns a client for the Submodule from the given config.
func NewSubmoduleClient(c config) *SubmoduleClient {
	return &SubmoduleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `submodule.Hooks(f(g(h())))`.
func (c *SubmoduleClient) Use(hooks ...Hook) {
	c.hooks.Submodule = append(c.hooks.Submodule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `submodule.Intercept(f(g(h())))`.
func (c *SubmoduleClient) Intercept(interceptors ...Interceptor) {
	c.inters.Submodule = append(c.inters.Submodule, interceptors...)
}

// Create returns a builder for creating a Submodule entity.
func (c *SubmoduleClient) Create() *SubmoduleCreate {
	mutation := newSubmoduleMutation(c.config, OpCreate)
	return &SubmoduleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Submodule entities.
func (c *SubmoduleClient) CreateBulk(builders ...*SubmoduleCreate) *SubmoduleCreateBulk {
	return &SubmoduleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubmoduleClient) MapCreateBulk(slice any, setFunc func(*SubmoduleCreate, int)) *SubmoduleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubmoduleCreateBulk{err: fmt.Errorf("calling to SubmoduleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubmoduleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubmoduleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Submodule.
func (c *SubmoduleClient) Update() *SubmoduleUpdate {
	mutation := newSubmoduleMutation(c.config, OpUpdate)
	return &SubmoduleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubmoduleClient) UpdateOne(_m *Submodule) *SubmoduleUpdateOne {
	mutation := newSubmoduleMutation(c.config, OpUpdateOne, withSubmodule(_m))
	return &SubmoduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubmoduleClient) UpdateOneID(id uuid.UUID) *SubmoduleUpdateOne {
	mutation := newSubmoduleMutation(c.config, OpUpdateOne, withSubmoduleID(id))
	return &SubmoduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Submodule.
func (c *SubmoduleClient) Delete() *SubmoduleDelete {
	mutation := newSubmoduleMutation(c.config, OpDelete)
	return &SubmoduleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubmoduleClient) DeleteOne(_m *Submodule) *SubmoduleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubmoduleClient) DeleteOneID(id uuid.UUID) *SubmoduleDeleteOne {
	builder := c.Delete().Where(submodule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubmoduleDeleteOne{builder}
}

// Query returns a query builder for Submodule.
func (c *SubmoduleClient) Query() *SubmoduleQuery {
	return &SubmoduleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubmodule},
		inters: c.Interceptors(),
	}
}

// Get returns a Submodule entity by its id.
func (c *SubmoduleClient) Get(ctx context.Context, id uuid.UUID) (*Submodule, error) {
	return c.Query().Where(submodule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubmoduleClient) GetX(ctx context.Context, id uuid.UUID) *Submodule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryModule queries the module edge of a Submodule.
func (c *SubmoduleClient) QueryModule(_m *Submodule) *ModuleQuery {
	query := (&ModuleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(submodule.Table, submodule.FieldID, id),
			sqlgraph.To(module.Table, module.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, submodule.ModuleTable, submodule.ModuleColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySlides queries the slides edge of a Submodule.
func (c *SubmoduleClient) QuerySlides(_m *Submodule) *SlideQuery {
	query := (&SlideClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(submodule.Table, submodule.FieldID, id),
			sqlgraph.To(slide.Table, slide.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, submodule.SlidesTable, submodule.SlidesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubmoduleClient) Hooks() []Hook {
	return c.hooks.Submodule
}

// Interceptors returns the client interceptors.
func (c *SubmoduleClient) Interceptors() []Interceptor {
	return c.inters.Submodule
}

func (c *SubmoduleClient) mutate(ctx context.Context, m *SubmoduleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubmoduleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubmoduleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubmoduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubmoduleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Submodule mutation op: %q", m.Op())
	}
}

// TrainingPlanClient is a client for the TrainingPlan schema.
type TrainingPlanClient struct {
	config
}

// NewTrainingPlanClient returns a client for the TrainingPlan from the given config.
func NewTrainingPlanClient(c config) *TrainingPlanClient {
	return &TrainingPlanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `trainingplan.Hooks(f(g(h())))`.
func (c *TrainingPlanClient) Use(hooks ...Hook) {
	c.hooks.TrainingPlan = append(c.hooks.TrainingPlan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `trainingplan.Intercept(f(g(h())))`.
func (c *TrainingPlanClient) Intercept(interceptors ...Interceptor) {
	c.inters.TrainingPlan = append(c.inters.TrainingPlan, interceptors...)
}

// Create returns a builder for creating a TrainingPlan entity.
func (c *TrainingPlanClient) Create() *TrainingPlanCreate {
	mutation := newTrainingPlanMutation(c.config, OpCreate)
	return &TrainingPlanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TrainingPlan entities.
func (c *TrainingPlanClient) CreateBulk(builders ...*TrainingPlanCreate) *TrainingPlanCreateBulk {
	return &TrainingPlanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TrainingPlanClient) MapCreateBulk(slice any, setFunc func(*TrainingPlanCreate, int)) *TrainingPlanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TrainingPlanCreateBulk{err: fmt.Errorf("calling to TrainingPlanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TrainingPlanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TrainingPlanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TrainingPlan.
func (c *TrainingPlanClient) Update() *TrainingPlanUpdate {
	mutation := newTrainingPlanMutation(c.config, OpUpdate)
	return &TrainingPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TrainingPlanClient) UpdateOne(_m *TrainingPlan) *TrainingPlanUpdateOne {
	mutation := newTrainingPlanMutation(c.config, OpUpdateOne, withTrainingPlan(_m))
	return &TrainingPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TrainingPlanClient) UpdateOneID(id uuid.UUID) *TrainingPlanUpdateOne {
	mutation := newTrainingPlanMutation(c.config, OpUpdateOne, withTrainingPlanID(id))
	return &TrainingPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TrainingPlan.
func (c *TrainingPlanClient) Delete() *TrainingPlanDelete {
	mutation := newTrainingPlanMutation(c.config, OpDelete)
	return &TrainingPlanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TrainingPlanClient) DeleteOne(_m *TrainingPlan) *TrainingPlanDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TrainingPlanClient) DeleteOneID(id uuid.UUID) *TrainingPlanDeleteOne {
	builder := c.Delete().Where(trainingplan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TrainingPlanDeleteOne{builder}
}

// Query returns a query builder for TrainingPlan.
func (c *TrainingPlanClient) Query() *TrainingPlanQuery {
	return &TrainingPlanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrainingPlan},
		inters: c.Interceptors(),
	}
}

// Get returns a TrainingPlan entity by its id.
func (c *TrainingPlanClient) Get(ctx context.Context, id uuid.UUID) (*TrainingPlan, error) {
	return c.Query().Where(trainingplan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TrainingPlanClient) GetX(ctx context.Context, id uuid.UUID) *TrainingPlan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStages queries the stages edge of a TrainingPlan.
func (c *TrainingPlanClient) QueryStages(_m *TrainingPlan) *StageQuery {
	query := (&StageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(trainingplan.Table, trainingplan.FieldID, id),
			sqlgraph.To(stage.Table, stage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, trainingplan.StagesTable, trainingplan.StagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TrainingPlanClient) Hooks() []Hook {
	return c.hooks.TrainingPlan
}

// Interceptors returns the client interceptors.
func (c *TrainingPlanClient) Interceptors() []Interceptor {
	return c.inters.TrainingPlan
}

func (c *TrainingPlanClient) mutate(ctx context.Context, m *TrainingPlanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TrainingPlanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TrainingPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TrainingPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TrainingPlanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TrainingPlan mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		LLMRequestEvent, LearnerSession, Module, Slide, Stage, Submodule,
		TrainingPlan []ent.Hook
	}
	inters struct {
		LLMRequestEvent, LearnerSession, Module, Slide, Stage, Submodule,
		TrainingPlan []ent.Interceptor
	}
)
