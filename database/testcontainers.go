//go:build integration

package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/stacklok/readmode-server/internal/config"
)

const (
	postgresImage = "postgres:16-alpine"
	postgresPort  = "5432/tcp"

	dbName = "testdb"
	dbUser = "testuser"
	dbPass = "testpass"
)

type nopLogger struct{}

func (*nopLogger) Printf(_ string, _ ...any) {}

// SetupTestDB starts a Postgres container, runs the migrations and returns
// an open connection together with a source configuration pointing at it.
func SetupTestDB(t *testing.T) (*pgx.Conn, *config.DatabaseConfig) {
	t.Helper()

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        postgresImage,
			ExposedPorts: []string{postgresPort},
			Env: map[string]string{
				"POSTGRES_DB":       dbName,
				"POSTGRES_USER":     dbUser,
				"POSTGRES_PASSWORD": dbPass,
			},
			// the server restarts once after initdb
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
		Logger:  &nopLogger{},
	})
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, postgresPort)
	require.NoError(t, err)

	passwordFile := filepath.Join(t.TempDir(), "password")
	require.NoError(t, os.WriteFile(passwordFile, []byte(dbPass+"\n"), 0600))

	portNum, err := strconv.Atoi(port.Port())
	require.NoError(t, err)

	dbCfg := &config.DatabaseConfig{
		Host:         host,
		Port:         portNum,
		User:         dbUser,
		PasswordFile: passwordFile,
		Database:     dbName,
		SSLMode:      "disable",
	}

	connStr, err := dbCfg.GetConnectionString()
	require.NoError(t, err)

	db, err := pgx.Connect(ctx, connStr)
	require.NoError(t, err, fmt.Sprintf("failed to connect to %s:%d", host, portNum))
	t.Cleanup(func() {
		_ = db.Close(context.Background())
	})

	require.NoError(t, MigrateUp(ctx, db))
	return db, dbCfg
}
