// Package containers starts the throwaway docker containers used by the
// storage tests.
package containers

import (
	"context"
	"path/filepath"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresImage = "postgres:16.3-alpine"
	dbName        = "starter_optimizer"
	dbUser        = "optimizer"
	dbPassword    = "secret"
)

// PostgresContainer runs postgres with schema/schema.sql already applied.
type PostgresContainer struct {
	container *postgres.PostgresContainer
}

func NewPostgresContainer() *PostgresContainer {
	ctx := context.Background()

	container, err := postgres.Run(ctx, postgresImage,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.WithInitScripts(schemaPath()),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(10*time.Second)),
	)
	if err != nil {
		logrus.Fatalf("error starting postgres container: %v", err)
	}

	return &PostgresContainer{container: container}
}

func (c *PostgresContainer) Shutdown() {
	if err := c.container.Terminate(context.Background()); err != nil {
		logrus.Fatalf("error terminating postgres container: %v", err)
	}
}

func (c *PostgresContainer) ConnectionString() string {
	// the container is not configured to use TLS
	connStr, err := c.container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		logrus.Fatalf("error getting connection string: %v", err)
	}
	return connStr
}

// schemaPath finds the schema from this file's location so tests in any
// package can start the container.
func schemaPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "schema", "schema.sql")
}
