package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/NataIS0203/vdk-wonder-drugs-hcp/config"
	"github.com/NataIS0203/vdk-wonder-drugs-hcp/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	seedRecords(t, cfg)

	ids, err := repo.AccountIDsByTerritory(ctx, "02139", "oncology")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"A1", "A2"}, ids)

	// secondary specialty also matches
	ids, err = repo.AccountIDsByTerritory(ctx, "02139", "cardiology")
	require.NoError(t, err)
	require.Equal(t, []string{"A1"}, ids)

	ids, err = repo.AccountIDsByTerritory(ctx, "99999", "oncology")
	require.NoError(t, err)
	require.Empty(t, ids)

	members, err := repo.TeamMembersByAccounts(ctx, []string{"A1", "A2"})
	require.NoError(t, err)
	require.Len(t, members, 3)
	require.Equal(t, "tm1", members[0].TeamMemberID)
	require.Equal(t, "A1", members[0].AccountID)
	require.Nil(t, members[2].ManagerID)

	before := time.Now().Add(-time.Minute)
	mr, err := repo.CreateMeetingRequest(ctx, entities.MeetingRequest{
		AssigneeID:  "U1",
		AccountID:   "A1",
		InviteeName: strPtr("Dr. Who"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, mr.ID)
	require.True(t, mr.CreatedAt.After(before), "timestamp must be set by the server at write time")

	// unknown account violates the FK and rolls the write back
	_, err = repo.CreateMeetingRequest(ctx, entities.MeetingRequest{
		AssigneeID:  "U1",
		AccountID:   "NO_SUCH_ACCOUNT",
		InviteeName: strPtr("Dr. Who"),
	})
	require.ErrorIs(t, err, entities.ErrWriteAborted)
	require.Contains(t, err.Error(), "Dr. Who")

	// repeated identical failing input fails the same way, no partial rows
	_, err = repo.CreateMeetingRequest(ctx, entities.MeetingRequest{
		AssigneeID:  "U1",
		AccountID:   "NO_SUCH_ACCOUNT",
		InviteeName: strPtr("Dr. Who"),
	})
	require.ErrorIs(t, err, entities.ErrWriteAborted)
	require.Equal(t, 1, countMeetingRequests(t, cfg))
}

func strPtr(s string) *string { return &s }

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()
	return zap.NewNop().Sugar()
}

func seedRecords(t *testing.T, cfg *config.Config) {
	t.Helper()

	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	stmts := []string{
		`INSERT INTO accounts(id, group_specialty_1, group_specialty_2) VALUES
			('A1', 'oncology', 'cardiology'),
			('A2', 'neurology', 'oncology'),
			('A3', 'oncology', NULL)`,
		`INSERT INTO addresses(id, account_id, postal_code) VALUES
			('ad1', 'A1', '02139'),
			('ad2', 'A2', '02139'),
			('ad3', 'A3', '10001')`,
		`INSERT INTO team_members(id, name, email, mobile_phone, first_name, last_name, manager_id, company, title) VALUES
			('tm1', 'Jane Roe', 'jane@wonderdrugs.example', '555-0101', 'Jane', 'Roe', 'tm3', 'WonderDrugs', 'MSL'),
			('tm2', 'John Doe', 'john@wonderdrugs.example', '555-0102', 'John', 'Doe', 'tm3', 'WonderDrugs', 'manager'),
			('tm3', 'Ada Lane', 'ada@wonderdrugs.example', NULL, 'Ada', 'Lane', NULL, 'WonderDrugs', 'rep')`,
		`INSERT INTO account_plans(id, account_id) VALUES
			('ap1', 'A1'),
			('ap2', 'A2')`,
		`INSERT INTO account_team_members(account_plan_id, team_member_id) VALUES
			('ap1', 'tm1'),
			('ap1', 'tm2'),
			('ap2', 'tm3')`,
	}
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
}

func countMeetingRequests(t *testing.T, cfg *config.Config) int {
	t.Helper()

	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM meeting_requests`).Scan(&n))
	return n
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=hcp_territory_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "hcp_territory_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			MigrateTimeout: 60 * time.Second,
			QueryTimeout:   30 * time.Second,
			MaxConns:       5,
			MinConns:       1,
		},
		Logging: config.LoggingConfig{Level: "debug"},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", cfg.Postgres.DSN())
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	return cfg, func() { _ = pool.Purge(resource) }
}
