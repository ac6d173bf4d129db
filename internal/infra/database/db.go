package database

import (
	"context"
	"fmt"
	"time"

	"github.com/DioGolang/GoCheckout/configs"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/mysql"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

type driver struct {
	sqlName string
	dialect string
}

var drivers = map[string]driver{
	"postgres": {sqlName: "postgres", dialect: "postgres"},
	"pgx":      {sqlName: "pgx", dialect: "postgres"},
	"mysql":    {sqlName: "mysql", dialect: "mysql"},
	"sqlite":   {sqlName: "sqlite", dialect: "sqlite3"},
}

// Conn is a pooled connection plus the SQL dialect its statements are
// built for.
type Conn struct {
	*sqlx.DB
	Dialect goqu.DialectWrapper
}

func NewConn(db *sqlx.DB, dialect string) *Conn {
	return &Conn{DB: db, Dialect: goqu.Dialect(dialect)}
}

// DSN builds the driver specific data source name from the config.
func DSN(cfg *configs.Conf) (string, error) {
	switch cfg.DBDriver {
	case "postgres", "pgx":
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName), nil
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&clientFoundRows=true",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName), nil
	case "sqlite":
		return cfg.DBName, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

func Open(ctx context.Context, cfg *configs.Conf) (*Conn, error) {
	d, ok := drivers[cfg.DBDriver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(d.sqlName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}

	if d.sqlName == "sqlite" {
		// every new connection to :memory: would see an empty database
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		db.SetMaxOpenConns(50)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(time.Hour)
		db.SetConnMaxIdleTime(5 * time.Minute)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.DBDriver, err)
	}

	return NewConn(db, d.dialect), nil
}
