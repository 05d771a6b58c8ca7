// Package common provides shared infrastructure for integration tests.
package common

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	surrealOnce sync.Once
	surrealURL  string
	surrealErr  error
)

// SurrealAddress starts the shared SurrealDB container on first use and
// returns its WebSocket RPC address. One container serves the whole test
// process; the testcontainers reaper tears it down when the run exits.
// Skipped unless FOLIO_TEST_DOCKER=true.
func SurrealAddress(t *testing.T) string {
	t.Helper()

	if os.Getenv("FOLIO_TEST_DOCKER") != "true" {
		t.Skip("Docker tests disabled (set FOLIO_TEST_DOCKER=true to enable)")
	}

	surrealOnce.Do(func() {
		ctx := context.Background()

		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "surrealdb/surrealdb:v3.0.0",
				ExposedPorts: []string{"8000/tcp"},
				Cmd:          []string{"start", "--user", "root", "--pass", "root"},
				WaitingFor: wait.ForAll(
					wait.ForListeningPort("8000/tcp"),
					wait.ForLog("Started web server"),
				).WithDeadline(60 * time.Second),
			},
			Started: true,
		})
		if err != nil {
			surrealErr = fmt.Errorf("start SurrealDB container: %w", err)
			return
		}

		endpoint, err := container.PortEndpoint(ctx, "8000/tcp", "")
		if err != nil {
			container.Terminate(ctx)
			surrealErr = fmt.Errorf("resolve SurrealDB endpoint: %w", err)
			return
		}

		surrealURL = fmt.Sprintf("ws://%s/rpc", endpoint)
	})

	if surrealErr != nil {
		t.Fatalf("SurrealDB container failed: %v", surrealErr)
	}

	return surrealURL
}
