package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ChainBot_Go/internal/chat"
	"github.com/osse101/ChainBot_Go/internal/config"
	"github.com/osse101/ChainBot_Go/internal/database"
	"github.com/osse101/ChainBot_Go/internal/database/postgres"
)

// Repositories holds the repository implementations used by the application
type Repositories struct {
	Chat chat.Repository
}

// InitializeDatabase connects to Postgres and applies pending migrations.
// It returns a nil pool when the database is disabled.
func InitializeDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	if !cfg.DBEnabled {
		slog.Warn(LogMsgDatabaseDisabled)
		return nil, nil
	}

	connString := cfg.GetDBConnString()
	pool, err := database.NewPool(ctx, connString, cfg.DBMaxConns, database.DefaultMaxConnIdleTime, database.DefaultMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	if err := database.Migrate(ctx, connString); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDB, err)
	}

	return pool, nil
}

// InitializeRepositories creates the repository implementations backed by dbPool
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	repos := &Repositories{
		Chat: postgres.NewChatRepository(dbPool),
	}
	slog.Info(LogMsgRepositoriesLoaded)
	return repos
}
