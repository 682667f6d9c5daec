// Package testing starts the storage backends used by integration tests.
// Callers skip these tests under -short.
package testing

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/elasticsearch"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresImage      = "postgres:17.5"
	elasticsearchImage = "docker.elastic.co/elasticsearch/elasticsearch:8.12.0"
	startupTimeout     = 60 * time.Second
)

// migrations returns the articles schema files in apply order.
func migrations() ([]string, error) {
	_, self, _, _ := runtime.Caller(0)
	dir := filepath.Join(filepath.Dir(self), "..", "..", "db", "migrations")

	files, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no migrations found in %s", dir)
	}
	sort.Strings(files)
	return files, nil
}

// StartPostgres runs a migrated articles database and returns its
// connection string. The container is removed when the test ends.
func StartPostgres(ctx context.Context, tb testing.TB) string {
	tb.Helper()

	scripts, err := migrations()
	if err != nil {
		tb.Fatalf("failed to locate migrations: %v", err)
	}

	container, err := postgres.Run(ctx, postgresImage,
		postgres.WithDatabase("howtobangalore_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(scripts...),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(startupTimeout),
		),
	)
	terminateOnCleanup(tb, container)
	if err != nil {
		tb.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		tb.Fatalf("failed to read postgres connection string: %v", err)
	}
	return connStr
}

// StartElasticsearch runs a single node cluster and returns its HTTP
// address.
func StartElasticsearch(ctx context.Context, tb testing.TB) string {
	tb.Helper()

	container, err := elasticsearch.Run(ctx, elasticsearchImage,
		elasticsearch.WithPassword(""),
		testcontainers.WithWaitStrategy(
			wait.ForHTTP("/").WithPort("9200").WithStartupTimeout(startupTimeout),
		),
	)
	terminateOnCleanup(tb, container)
	if err != nil {
		tb.Fatalf("failed to start elasticsearch container: %v", err)
	}

	port, err := container.MappedPort(ctx, "9200")
	if err != nil {
		tb.Fatalf("failed to read elasticsearch port: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		tb.Fatalf("failed to read elasticsearch host: %v", err)
	}
	return fmt.Sprintf("http://%s:%s", host, port.Port())
}

func terminateOnCleanup(tb testing.TB, c testcontainers.Container) {
	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(c); err != nil {
			tb.Logf("failed to terminate container: %v", err)
		}
	})
}
