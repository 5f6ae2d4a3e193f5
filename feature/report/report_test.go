package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"cheevo-checker/core/database"
	"cheevo-checker/core/reconcile"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func setupSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func sampleReport(id string, started time.Time) *reconcile.Report {
	return &reconcile.Report{
		RunID:      id,
		StartedAt:  started,
		FinishedAt: started.Add(time.Minute),
		Partitions: []reconcile.PartitionReport{
			{
				Console:     "GameCube",
				ConsoleID:   16,
				Active:      true,
				Local:       reconcile.LocalStats{NewHashes: 2, CacheHits: 5, Failures: 1},
				RemoteGames: 4,
				Found:       2,
				Missing: []reconcile.MissingGame{{
					Game: reconcile.RemoteGame{ID: 101, Title: "Beta"},
					Candidates: []reconcile.HashCandidate{
						{Hash: "0123456789abcdef0123456789abcdef", Name: "Beta (USA).iso", Labels: []string{"redump"}},
					},
				}},
				Skipped: []reconcile.SkippedGame{{
					Game: reconcile.RemoteGame{ID: 102, Title: "Gamma ~Demo~"},
					Rule: "demo",
				}},
			},
			{Console: "Virtual Boy", Active: false, Error: "console not found"},
		},
		Anomalies: []reconcile.Anomaly{{
			ConsoleID: 16, ConsoleName: "GameCube", Hash: "aabbccddeeff00112233445566778899",
			FirstGameID: 1, FirstTitle: "Alpha", GameID: 3, Title: "Alpha (Rev 1)",
		}},
		Summary: reconcile.Summary{Partitions: 2, Inactive: 1, RemoteGames: 4, Found: 2, Missing: 1, Skipped: 1, Anomalies: 1},
	}
}

func TestFromReport(t *testing.T) {
	run := FromReport(sampleReport("run-1", time.Now()))

	assert.Equal(t, "run-1", run.ID)
	assert.Equal(t, 1, run.Missing)
	assert.Equal(t, 1, run.Inactive)

	require.Len(t, run.Consoles, 2)
	assert.Equal(t, ConsoleResult{
		Console: "GameCube", ConsoleID: 16, Active: true, RemoteGames: 4, Found: 2,
		Missing: 1, Skipped: 1, NewHashes: 2, CacheHits: 5, Failures: 1,
	}, run.Consoles[0])
	assert.Equal(t, "console not found", run.Consoles[1].Error)

	require.Len(t, run.Games, 2)
	assert.False(t, run.Games[0].Skipped)
	assert.Equal(t, 101, run.Games[0].GameID)
	require.Len(t, run.Games[0].Candidates, 1)
	assert.True(t, run.Games[1].Skipped)
	assert.Equal(t, "demo", run.Games[1].Rule)

	require.Len(t, run.Duplicates, 1)
	assert.Equal(t, "Alpha (Rev 1)", run.Duplicates[0].Title)
}

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupSQLite(t))
	require.NoError(t, repo.Migrate())

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, FromReport(sampleReport("run-1", base))))
	require.NoError(t, repo.Save(ctx, FromReport(sampleReport("run-2", base.Add(time.Hour)))))

	runs, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-2", runs[0].ID, "newest first")
	assert.Empty(t, runs[0].Consoles, "list does not load details")

	runs, err = repo.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, runs, 1)

	run, err := repo.Get(ctx, "run-1", false)
	require.NoError(t, err)
	assert.Equal(t, 1, run.Missing)
	assert.Len(t, run.Consoles, 2)
	assert.Len(t, run.Duplicates, 1)
	require.Len(t, run.Games, 1)
	assert.Equal(t, "Beta", run.Games[0].Title)
	require.Len(t, run.Games[0].Candidates, 1)
	assert.Equal(t, []string{"redump"}, run.Games[0].Candidates[0].Labels)

	run, err = repo.Get(ctx, "run-1", true)
	require.NoError(t, err)
	require.Len(t, run.Games, 2)
	assert.True(t, run.Games[1].Skipped)

	_, err = repo.Get(ctx, "missing", false)
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestRepository_ListError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT (.+) FROM `runs`").WillReturnError(errors.New("connection lost"))

	_, err := NewRepository(db).List(context.Background(), 10)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection lost")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Trigger(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupSQLite(t))
	require.NoError(t, repo.Migrate())

	calls := 0
	svc := NewService(func(ctx context.Context) (*reconcile.Report, error) {
		calls++
		return sampleReport("run-1", time.Now()), nil
	}, repo, nil)

	run, _, err := svc.Trigger(ctx)
	require.NoError(t, err)
	assert.Equal(t, "run-1", run.ID)
	assert.Equal(t, 1, calls)

	stored, err := svc.Get(ctx, "run-1", true)
	require.NoError(t, err)
	assert.Len(t, stored.Games, 2)

	runs, err := svc.List(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestService_TriggerCallerCancelled(t *testing.T) {
	repo := NewRepository(setupSQLite(t))
	require.NoError(t, repo.Migrate())

	started := make(chan struct{})
	release := make(chan struct{})
	svc := NewService(func(ctx context.Context) (*reconcile.Report, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return sampleReport("run-1", time.Now()), nil
	}, repo, nil)

	caller, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, _, err := svc.Trigger(caller)
		firstErr <- err
	}()

	<-started
	cancel()
	close(release)

	require.NoError(t, <-firstErr)
	_, err := repo.Get(context.Background(), "run-1", false)
	assert.NoError(t, err, "the run is stored although its first caller went away")
}

func TestService_TriggerErrors(t *testing.T) {
	t.Run("Run fails", func(t *testing.T) {
		repo := NewRepository(setupSQLite(t))
		svc := NewService(func(ctx context.Context) (*reconcile.Report, error) {
			return nil, errors.New("list consoles: status 503")
		}, repo, nil)

		run, _, err := svc.Trigger(context.Background())
		assert.Nil(t, run)
		assert.Contains(t, err.Error(), "status 503")
	})

	t.Run("Save fails", func(t *testing.T) {
		// tables are not migrated
		repo := NewRepository(setupSQLite(t))
		svc := NewService(func(ctx context.Context) (*reconcile.Report, error) {
			return sampleReport("run-1", time.Now()), nil
		}, repo, nil)

		run, _, err := svc.Trigger(context.Background())
		assert.Nil(t, run)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "save run run-1")
	})
}
