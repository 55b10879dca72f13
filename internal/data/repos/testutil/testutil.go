package testutil

import (
	"os"
	"sync"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/fedaykin-adel/sietch-shop/internal/data/db"
	"github.com/fedaykin-adel/sietch-shop/internal/platform/logger"
)

var (
	dbOnce     sync.Once
	testDB     *gorm.DB
	dbErr      error
	dbPostgres bool

	logOnce sync.Once
	logg    *logger.Logger
	logErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

// DB returns a migrated test database. It uses Postgres when
// TEST_POSTGRES_DSN is set and falls back to a shared in-memory
// SQLite database otherwise.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dbOnce.Do(func() {
		cfg := &gorm.Config{
			DisableForeignKeyConstraintWhenMigrating: true,
			Logger:                                   gormLogger.Default.LogMode(gormLogger.Silent),
		}

		if dsn := os.Getenv("TEST_POSTGRES_DSN"); dsn != "" {
			testDB, dbErr = gorm.Open(postgres.Open(dsn), cfg)
			dbPostgres = true
		} else {
			testDB, dbErr = gorm.Open(sqlite.Open("file::memory:?cache=shared"), cfg)
		}
		if dbErr != nil {
			return
		}
		dbErr = db.AutoMigrateAll(testDB)
	})

	if dbErr != nil {
		tb.Fatalf("failed to init test db: %v", dbErr)
	}
	return testDB
}

// Tx begins a transaction that is rolled back when the test finishes,
// keeping tests isolated on a shared database.
func Tx(tb testing.TB, gdb *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := gdb.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}

// RequirePostgres skips tests that need real parallel transaction
// isolation, which the SQLite fallback cannot provide.
func RequirePostgres(tb testing.TB) {
	tb.Helper()
	DB(tb)
	if !dbPostgres {
		tb.Skip("set TEST_POSTGRES_DSN to run concurrency tests")
	}
}
