// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/loomchat/companion/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loomchat/companion/ent/agentsession"
	"github.com/loomchat/companion/ent/agentstep"
	"github.com/loomchat/companion/ent/event"
	"github.com/loomchat/companion/ent/job"
	"github.com/loomchat/companion/ent/listenercursor"
	"github.com/loomchat/companion/ent/outboxentry"
	"github.com/loomchat/companion/ent/rollingsummary"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentSession is the client for interacting with the AgentSession builders.
	AgentSession *AgentSessionClient
	// AgentStep is the client for interacting with the AgentStep builders.
	AgentStep *AgentStepClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// Job is the client for interacting with the Job builders.
	Job *JobClient
	// ListenerCursor is the client for interacting with the ListenerCursor builders.
	ListenerCursor *ListenerCursorClient
	// OutboxEntry is the client for interacting with the OutboxEntry builders.
	OutboxEntry *OutboxEntryClient
	// RollingSummary is the client for interacting with the RollingSummary builders.
	RollingSummary *RollingSummaryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentSession = NewAgentSessionClient(c.config)
	c.AgentStep = NewAgentStepClient(c.config)
	c.Event = NewEventClient(c.config)
	c.Job = NewJobClient(c.config)
	c.ListenerCursor = NewListenerCursorClient(c.config)
	c.OutboxEntry = NewOutboxEntryClient(c.config)
	c.RollingSummary = NewRollingSummaryClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		AgentSession:   NewAgentSessionClient(cfg),
		AgentStep:      NewAgentStepClient(cfg),
		Event:          NewEventClient(cfg),
		Job:            NewJobClient(cfg),
		ListenerCursor: NewListenerCursorClient(cfg),
		OutboxEntry:    NewOutboxEntryClient(cfg),
		RollingSummary: NewRollingSummaryClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		AgentSession:   NewAgentSessionClient(cfg),
		AgentStep:      NewAgentStepClient(cfg),
		Event:          NewEventClient(cfg),
		Job:            NewJobClient(cfg),
		ListenerCursor: NewListenerCursorClient(cfg),
		OutboxEntry:    NewOutboxEntryClient(cfg),
		RollingSummary: NewRollingSummaryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentSession.
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
		c.AgentSession, c.AgentStep, c.Event, c.Job, c.ListenerCursor, c.OutboxEntry,
		c.RollingSummary,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentSession, c.AgentStep, c.Event, c.Job, c.ListenerCursor, c.OutboxEntry,
		c.RollingSummary,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentSessionMutation:
		return c.AgentSession.mutate(ctx, m)
	case *AgentStepMutation:
		return c.AgentStep.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *JobMutation:
		return c.Job.mutate(ctx, m)
	case *ListenerCursorMutation:
		return c.ListenerCursor.mutate(ctx, m)
	case *OutboxEntryMutation:
		return c.OutboxEntry.mutate(ctx, m)
	case *RollingSummaryMutation:
		return c.RollingSummary.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentSessionClient is a client for the AgentSession schema.
type AgentSessionClient struct {
	config
}

// NewAgentSessionClient returns a client for the AgentSession from the given config.
func NewAgentSessionClient(c config) *AgentSessionClient {
	return &AgentSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentsession.Hooks(f(g(h())))`.
func (c *AgentSessionClient) Use(hooks ...Hook) {
	c.hooks.AgentSession = append(c.hooks.AgentSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentsession.Intercept(f(g(h())))`.
func (c *AgentSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentSession = append(c.inters.AgentSession, interceptors...)
}

// Create returns a builder for creating a AgentSession entity.
func (c *AgentSessionClient) Create() *AgentSessionCreate {
	mutation := newAgentSessionMutation(c.config, OpCreate)
	return &AgentSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentSession entities.
func (c *AgentSessionClient) CreateBulk(builders ...*AgentSessionCreate) *AgentSessionCreateBulk {
	return &AgentSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentSessionClient) MapCreateBulk(slice any, setFunc func(*AgentSessionCreate, int)) *AgentSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentSessionCreateBulk{err: fmt.Errorf("calling to AgentSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentSession.
func (c *AgentSessionClient) Update() *AgentSessionUpdate {
	mutation := newAgentSessionMutation(c.config, OpUpdate)
	return &AgentSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentSessionClient) UpdateOne(_m *AgentSession) *AgentSessionUpdateOne {
	mutation := newAgentSessionMutation(c.config, OpUpdateOne, withAgentSession(_m))
	return &AgentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentSessionClient) UpdateOneID(id string) *AgentSessionUpdateOne {
	mutation := newAgentSessionMutation(c.config, OpUpdateOne, withAgentSessionID(id))
	return &AgentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentSession.
func (c *AgentSessionClient) Delete() *AgentSessionDelete {
	mutation := newAgentSessionMutation(c.config, OpDelete)
	return &AgentSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentSessionClient) DeleteOne(_m *AgentSession) *AgentSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentSessionClient) DeleteOneID(id string) *AgentSessionDeleteOne {
	builder := c.Delete().Where(agentsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentSessionDeleteOne{builder}
}

// Query returns a query builder for AgentSession.
func (c *AgentSessionClient) Query() *AgentSessionQuery {
	return &AgentSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentSession},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentSession entity by its id.
func (c *AgentSessionClient) Get(ctx context.Context, id string) (*AgentSession, error) {
	return c.Query().Where(agentsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentSessionClient) GetX(ctx context.Context, id string) *AgentSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySteps queries the steps edge of a AgentSession.
func (c *AgentSessionClient) QuerySteps(_m *AgentSession) *AgentStepQuery {
	query := (&AgentStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentsession.Table, agentsession.FieldID, id),
			sqlgraph.To(agentstep.Table, agentstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentsession.StepsTable, agentsession.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentSessionClient) Hooks() []Hook {
	return c.hooks.AgentSession
}

// Interceptors returns the client interceptors.
func (c *AgentSessionClient) Interceptors() []Interceptor {
	return c.inters.AgentSession
}

func (c *AgentSessionClient) mutate(ctx context.Context, m *AgentSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentSession mutation op: %q", m.Op())
	}
}

// AgentStepClient is a client for the AgentStep schema.
type AgentStepClient struct {
	config
}

// NewAgentStepClient returns a client for the AgentStep from the given config.
func NewAgentStepClient(c config) *AgentStepClient {
	return &AgentStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentstep.Hooks(f(g(h())))`.
func (c *AgentStepClient) Use(hooks ...Hook) {
	c.hooks.AgentStep = append(c.hooks.AgentStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentstep.Intercept(f(g(h())))`.
func (c *AgentStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentStep = append(c.inters.AgentStep, interceptors...)
}

// Create returns a builder for creating a AgentStep entity.
func (c *AgentStepClient) Create() *AgentStepCreate {
	mutation := newAgentStepMutation(c.config, OpCreate)
	return &AgentStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentStep entities.
func (c *AgentStepClient) CreateBulk(builders ...*AgentStepCreate) *AgentStepCreateBulk {
	return &AgentStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentStepClient) MapCreateBulk(slice any, setFunc func(*AgentStepCreate, int)) *AgentStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentStepCreateBulk{err: fmt.Errorf("calling to AgentStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentStep.
func (c *AgentStepClient) Update() *AgentStepUpdate {
	mutation := newAgentStepMutation(c.config, OpUpdate)
	return &AgentStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentStepClient) UpdateOne(_m *AgentStep) *AgentStepUpdateOne {
	mutation := newAgentStepMutation(c.config, OpUpdateOne, withAgentStep(_m))
	return &AgentStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentStepClient) UpdateOneID(id string) *AgentStepUpdateOne {
	mutation := newAgentStepMutation(c.config, OpUpdateOne, withAgentStepID(id))
	return &AgentStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentStep.
func (c *AgentStepClient) Delete() *AgentStepDelete {
	mutation := newAgentStepMutation(c.config, OpDelete)
	return &AgentStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentStepClient) DeleteOne(_m *AgentStep) *AgentStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentStepClient) DeleteOneID(id string) *AgentStepDeleteOne {
	builder := c.Delete().Where(agentstep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentStepDeleteOne{builder}
}

// Query returns a query builder for AgentStep.
func (c *AgentStepClient) Query() *AgentStepQuery {
	return &AgentStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentStep},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentStep entity by its id.
func (c *AgentStepClient) Get(ctx context.Context, id string) (*AgentStep, error) {
	return c.Query().Where(agentstep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentStepClient) GetX(ctx context.Context, id string) *AgentStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a AgentStep.
func (c *AgentStepClient) QuerySession(_m *AgentStep) *AgentSessionQuery {
	query := (&AgentSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentstep.Table, agentstep.FieldID, id),
			sqlgraph.To(agentsession.Table, agentsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentstep.SessionTable, agentstep.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentStepClient) Hooks() []Hook {
	return c.hooks.AgentStep
}

// Interceptors returns the client interceptors.
func (c *AgentStepClient) Interceptors() []Interceptor {
	return c.inters.AgentStep
}

func (c *AgentStepClient) mutate(ctx context.Context, m *AgentStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentStep mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int64) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int64) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int64) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int64) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// JobClient is a client for the Job schema.
type JobClient struct {
	config
}

// NewJobClient returns a client for the Job from the given config.
func NewJobClient(c config) *JobClient {
	return &JobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `job.Hooks(f(g(h())))`.
func (c *JobClient) Use(hooks ...Hook) {
	c.hooks.Job = append(c.hooks.Job, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `job.Intercept(f(g(h())))`.
func (c *JobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Job = append(c.inters.Job, interceptors...)
}

// Create returns a builder for creating a Job entity.
func (c *JobClient) Create() *JobCreate {
	mutation := newJobMutation(c.config, OpCreate)
	return &JobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Job entities.
func (c *JobClient) CreateBulk(builders ...*JobCreate) *JobCreateBulk {
	return &JobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobClient) MapCreateBulk(slice any, setFunc func(*JobCreate, int)) *JobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobCreateBulk{err: fmt.Errorf("calling to JobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Job.
func (c *JobClient) Update() *JobUpdate {
	mutation := newJobMutation(c.config, OpUpdate)
	return &JobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobClient) UpdateOne(_m *Job) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJob(_m))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobClient) UpdateOneID(id int64) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJobID(id))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Job.
func (c *JobClient) Delete() *JobDelete {
	mutation := newJobMutation(c.config, OpDelete)
	return &JobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobClient) DeleteOne(_m *Job) *JobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobClient) DeleteOneID(id int64) *JobDeleteOne {
	builder := c.Delete().Where(job.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDeleteOne{builder}
}

// Query returns a query builder for Job.
func (c *JobClient) Query() *JobQuery {
	return &JobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJob},
		inters: c.Interceptors(),
	}
}

// Get returns a Job entity by its id.
func (c *JobClient) Get(ctx context.Context, id int64) (*Job, error) {
	return c.Query().Where(job.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobClient) GetX(ctx context.Context, id int64) *Job {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *JobClient) Hooks() []Hook {
	return c.hooks.Job
}

// Interceptors returns the client interceptors.
func (c *JobClient) Interceptors() []Interceptor {
	return c.inters.Job
}

func (c *JobClient) mutate(ctx context.Context, m *JobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Job mutation op: %q", m.Op())
	}
}

// ListenerCursorClient is a client for the ListenerCursor schema.
type ListenerCursorClient struct {
	config
}

// NewListenerCursorClient returns a client for the ListenerCursor from the given config.
func NewListenerCursorClient(c config) *ListenerCursorClient {
	return &ListenerCursorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `listenercursor.Hooks(f(g(h())))`.
func (c *ListenerCursorClient) Use(hooks ...Hook) {
	c.hooks.ListenerCursor = append(c.hooks.ListenerCursor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `listenercursor.Intercept(f(g(h())))`.
func (c *ListenerCursorClient) Intercept(interceptors ...Interceptor) {
	c.inters.ListenerCursor = append(c.inters.ListenerCursor, interceptors...)
}

// Create returns a builder for creating a ListenerCursor entity.
func (c *ListenerCursorClient) Create() *ListenerCursorCreate {
	mutation := newListenerCursorMutation(c.config, OpCreate)
	return &ListenerCursorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ListenerCursor entities.
func (c *ListenerCursorClient) CreateBulk(builders ...*ListenerCursorCreate) *ListenerCursorCreateBulk {
	return &ListenerCursorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ListenerCursorClient) MapCreateBulk(slice any, setFunc func(*ListenerCursorCreate, int)) *ListenerCursorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ListenerCursorCreateBulk{err: fmt.Errorf("calling to ListenerCursorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ListenerCursorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ListenerCursorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ListenerCursor.
func (c *ListenerCursorClient) Update() *ListenerCursorUpdate {
	mutation := newListenerCursorMutation(c.config, OpUpdate)
	return &ListenerCursorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ListenerCursorClient) UpdateOne(_m *ListenerCursor) *ListenerCursorUpdateOne {
	mutation := newListenerCursorMutation(c.config, OpUpdateOne, withListenerCursor(_m))
	return &ListenerCursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ListenerCursorClient) UpdateOneID(id string) *ListenerCursorUpdateOne {
	mutation := newListenerCursorMutation(c.config, OpUpdateOne, withListenerCursorID(id))
	return &ListenerCursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ListenerCursor.
func (c *ListenerCursorClient) Delete() *ListenerCursorDelete {
	mutation := newListenerCursorMutation(c.config, OpDelete)
	return &ListenerCursorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ListenerCursorClient) DeleteOne(_m *ListenerCursor) *ListenerCursorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ListenerCursorClient) DeleteOneID(id string) *ListenerCursorDeleteOne {
	builder := c.Delete().Where(listenercursor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ListenerCursorDeleteOne{builder}
}

// Query returns a query builder for ListenerCursor.
func (c *ListenerCursorClient) Query() *ListenerCursorQuery {
	return &ListenerCursorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeListenerCursor},
		inters: c.Interceptors(),
	}
}

// Get returns a ListenerCursor entity by its id.
func (c *ListenerCursorClient) Get(ctx context.Context, id string) (*ListenerCursor, error) {
	return c.Query().Where(listenercursor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ListenerCursorClient) GetX(ctx context.Context, id string) *ListenerCursor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ListenerCursorClient) Hooks() []Hook {
	return c.hooks.ListenerCursor
}

// Interceptors returns the client interceptors.
func (c *ListenerCursorClient) Interceptors() []Interceptor {
	return c.inters.ListenerCursor
}

func (c *ListenerCursorClient) mutate(ctx context.Context, m *ListenerCursorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ListenerCursorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ListenerCursorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ListenerCursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ListenerCursorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ListenerCursor mutation op: %q", m.Op())
	}
}

// OutboxEntryClient is a client for the OutboxEntry schema.
type OutboxEntryClient struct {
	config
}

// NewOutboxEntryClient returns a client for the OutboxEntry from the given config.
func NewOutboxEntryClient(c config) *OutboxEntryClient {
	return &OutboxEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `outboxentry.Hooks(f(g(h())))`.
func (c *OutboxEntryClient) Use(hooks ...Hook) {
	c.hooks.OutboxEntry = append(c.hooks.OutboxEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `outboxentry.Intercept(f(g(h())))`.
func (c *OutboxEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.OutboxEntry = append(c.inters.OutboxEntry, interceptors...)
}

// Create returns a builder for creating a OutboxEntry entity.
func (c *OutboxEntryClient) Create() *OutboxEntryCreate {
	mutation := newOutboxEntryMutation(c.config, OpCreate)
	return &OutboxEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OutboxEntry entities.
func (c *OutboxEntryClient) CreateBulk(builders ...*OutboxEntryCreate) *OutboxEntryCreateBulk {
	return &OutboxEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OutboxEntryClient) MapCreateBulk(slice any, setFunc func(*OutboxEntryCreate, int)) *OutboxEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OutboxEntryCreateBulk{err: fmt.Errorf("calling to OutboxEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OutboxEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OutboxEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OutboxEntry.
func (c *OutboxEntryClient) Update() *OutboxEntryUpdate {
	mutation := newOutboxEntryMutation(c.config, OpUpdate)
	return &OutboxEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OutboxEntryClient) UpdateOne(_m *OutboxEntry) *OutboxEntryUpdateOne {
	mutation := newOutboxEntryMutation(c.config, OpUpdateOne, withOutboxEntry(_m))
	return &OutboxEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OutboxEntryClient) UpdateOneID(id int64) *OutboxEntryUpdateOne {
	mutation := newOutboxEntryMutation(c.config, OpUpdateOne, withOutboxEntryID(id))
	return &OutboxEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OutboxEntry.
func (c *OutboxEntryClient) Delete() *OutboxEntryDelete {
	mutation := newOutboxEntryMutation(c.config, OpDelete)
	return &OutboxEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OutboxEntryClient) DeleteOne(_m *OutboxEntry) *OutboxEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OutboxEntryClient) DeleteOneID(id int64) *OutboxEntryDeleteOne {
	builder := c.Delete().Where(outboxentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OutboxEntryDeleteOne{builder}
}

// Query returns a query builder for OutboxEntry.
func (c *OutboxEntryClient) Query() *OutboxEntryQuery {
	return &OutboxEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOutboxEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a OutboxEntry entity by its id.
func (c *OutboxEntryClient) Get(ctx context.Context, id int64) (*OutboxEntry, error) {
	return c.Query().Where(outboxentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OutboxEntryClient) GetX(ctx context.Context, id int64) *OutboxEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OutboxEntryClient) Hooks() []Hook {
	return c.hooks.OutboxEntry
}

// Interceptors returns the client interceptors.
func (c *OutboxEntryClient) Interceptors() []Interceptor {
	return c.inters.OutboxEntry
}

func (c *OutboxEntryClient) mutate(ctx context.Context, m *OutboxEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OutboxEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OutboxEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OutboxEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OutboxEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OutboxEntry mutation op: %q", m.Op())
	}
}

// RollingSummaryClient is a client for the RollingSummary schema.
type RollingSummaryClient struct {
	config
}

// NewRollingSummaryClient returns a client for the RollingSummary from the given config.
func NewRollingSummaryClient(c config) *RollingSummaryClient {
	return &RollingSummaryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rollingsummary.Hooks(f(g(h())))`.
func (c *RollingSummaryClient) Use(hooks ...Hook) {
	c.hooks.RollingSummary = append(c.hooks.RollingSummary, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rollingsummary.Intercept(f(g(h())))`.
func (c *RollingSummaryClient) Intercept(interceptors ...Interceptor) {
	c.inters.RollingSummary = append(c.inters.RollingSummary, interceptors...)
}

// Create returns a builder for creating a RollingSummary entity.
func (c *RollingSummaryClient) Create() *RollingSummaryCreate {
	mutation := newRollingSummaryMutation(c.config, OpCreate)
	return &RollingSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RollingSummary entities.
func (c *RollingSummaryClient) CreateBulk(builders ...*RollingSummaryCreate) *RollingSummaryCreateBulk {
	return &RollingSummaryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RollingSummaryClient) MapCreateBulk(slice any, setFunc func(*RollingSummaryCreate, int)) *RollingSummaryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RollingSummaryCreateBulk{err: fmt.Errorf("calling to RollingSummaryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RollingSummaryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RollingSummaryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RollingSummary.
func (c *RollingSummaryClient) Update() *RollingSummaryUpdate {
	mutation := newRollingSummaryMutation(c.config, OpUpdate)
	return &RollingSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RollingSummaryClient) UpdateOne(_m *RollingSummary) *RollingSummaryUpdateOne {
	mutation := newRollingSummaryMutation(c.config, OpUpdateOne, withRollingSummary(_m))
	return &RollingSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RollingSummaryClient) UpdateOneID(id string) *RollingSummaryUpdateOne {
	mutation := newRollingSummaryMutation(c.config, OpUpdateOne, withRollingSummaryID(id))
	return &RollingSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RollingSummary.
func (c *RollingSummaryClient) Delete() *RollingSummaryDelete {
	mutation := newRollingSummaryMutation(c.config, OpDelete)
	return &RollingSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RollingSummaryClient) DeleteOne(_m *RollingSummary) *RollingSummaryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RollingSummaryClient) DeleteOneID(id string) *RollingSummaryDeleteOne {
	builder := c.Delete().Where(rollingsummary.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RollingSummaryDeleteOne{builder}
}

// Query returns a query builder for RollingSummary.
func (c *RollingSummaryClient) Query() *RollingSummaryQuery {
	return &RollingSummaryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRollingSummary},
		inters: c.Interceptors(),
	}
}

// Get returns a RollingSummary entity by its id.
func (c *RollingSummaryClient) Get(ctx context.Context, id string) (*RollingSummary, error) {
	return c.Query().Where(rollingsummary.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RollingSummaryClient) GetX(ctx context.Context, id string) *RollingSummary {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RollingSummaryClient) Hooks() []Hook {
	return c.hooks.RollingSummary
}

// Interceptors returns the client interceptors.
func (c *RollingSummaryClient) Interceptors() []Interceptor {
	return c.inters.RollingSummary
}

func (c *RollingSummaryClient) mutate(ctx context.Context, m *RollingSummaryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RollingSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RollingSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RollingSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RollingSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RollingSummary mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentSession, AgentStep, Event, Job, ListenerCursor, OutboxEntry,
		RollingSummary []ent.Hook
	}
	inters struct {
		AgentSession, AgentStep, Event, Job, ListenerCursor, OutboxEntry,
		RollingSummary []ent.Interceptor
	}
)
