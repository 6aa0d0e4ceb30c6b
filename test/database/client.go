// Package database provides database clients for integration tests.
package database

import (
	"testing"

	"github.com/loomchat/companion/pkg/database"
	"github.com/loomchat/companion/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to the external PostgreSQL
// service container. In local dev: spins up a PostgreSQL testcontainer.
// Cleanup (schema drop and connection close) runs when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
