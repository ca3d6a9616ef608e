//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"bengkel-service/cmd/bootstrap"
	"bengkel-service/cmd/bootstrap/components"
	"bengkel-service/internal/infra/db"
	"bengkel-service/internal/pkg/config"
	"bengkel-service/internal/usecase/shared"
	"bengkel-service/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "bengkel"
	pgPassword = "bengkel-e2e"
	pgPort     = "5432/tcp"
)

var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
)

var migrationFiles = []string{
	"migrations/001_initial_schema.sql",
}

type endpoint struct {
	Host string
	Port nat.Port
}

func (e endpoint) dsn(dbName string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, e.Host, e.Port.Port(), dbName)
}

// SharedSuite gives every e2e suite its own database inside one shared container.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	ep := postgresEndpoint(t)
	dbCfg := createDatabase(t, ep)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, closePool, err := db.Connect(ctx, dbCfg)
	require.NoError(t, err, "connect to e2e database")
	t.Cleanup(closePool)

	require.NoError(t, migrate(ctx, pool), "apply migrations")
	require.NoError(t, dbtest.SeedReferenceData(pool), "seed reference data")

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	s.DB = pool
	s.Config = cfg
	s.Router = startApp(t, pool, cfg)
}

// SetupSubTest truncates everything and reseeds the catalog between subtests.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}

func postgresEndpoint(t *testing.T) endpoint {
	t.Helper()

	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		var err error
		pgContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{pgPort},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
					"TZ":                "Asia/Jakarta",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "synchronous_commit=off",
					"-c", "full_page_writes=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return endpoint{Host: host, Port: port}.dsn("postgres")
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "bengkel-e2e"},
			},
			Started: true,
		})
		require.NoError(t, err, "start postgres container")
	})
	require.NotNil(t, pgContainer, "postgres container failed to start earlier")

	ctx := context.Background()
	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, nat.Port(pgPort))
	require.NoError(t, err)
	return endpoint{Host: host, Port: port}
}

// createDatabase makes a throwaway database so suites never share rows.
func createDatabase(t *testing.T, ep endpoint) config.DBConfig {
	t.Helper()

	name := "bengkel_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, ep.dsn("postgres"))
	require.NoError(t, err, "connect as admin")
	defer admin.Close()

	// The container can accept connections a moment before it accepts DDL.
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("create database failed, retrying", "attempt", attempt, "error", err)
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "create database %s", name)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, ep.dsn("postgres"))
		if err != nil {
			slog.Warn("drop database skipped", "database", name, "error", err)
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop database failed", "database", name, "error", err)
		}
	})

	return config.DBConfig{
		Driver:   config.DriverPostgres,
		Host:     ep.Host,
		Port:     ep.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Asia/Jakarta",
		MaxConns: 20,
	}
}

func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, file := range migrationFiles {
		sql, err := readFromRepoRoot(file)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("execute %s: %w", file, err)
		}
	}
	return nil
}

// readFromRepoRoot walks up from the package directory go test runs in.
func readFromRepoRoot(rel string) ([]byte, error) {
	dir := "."
	for range 5 {
		b, err := os.ReadFile(filepath.Join(dir, rel))
		if err == nil {
			return b, nil
		}
		dir = filepath.Join(dir, "..")
	}
	return nil, fmt.Errorf("migration %s not found above working directory", rel)
}

// startApp wires the production modules against the test pool and config.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() *gin.Engine { return gin.New() },
			shared.NewBookingPolicy,
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		bootstrap.EventsModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start fx app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("stop fx app", "error", err)
		}
	})

	require.NotNil(t, router)
	return router
}
