// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentSession is the predicate function for agentsession builders.
type AgentSession func(*sql.Selector)

// AgentStep is the predicate function for agentstep builders.
type AgentStep func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// ListenerCursor is the predicate function for listenercursor builders.
type ListenerCursor func(*sql.Selector)

// OutboxEntry is the predicate function for outboxentry builders.
type OutboxEntry func(*sql.Selector)

// RollingSummary is the predicate function for rollingsummary builders.
type RollingSummary func(*sql.Selector)
