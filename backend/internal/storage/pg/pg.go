package pg

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/leerobin22/forum-api/shared/domain"
	internal_errors "github.com/leerobin22/forum-api/shared/errors"
	"github.com/leerobin22/forum-api/shared/logger"
	sharedpg "github.com/leerobin22/forum-api/shared/storage/pg"

	"github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Storage implements the thread, comment, reply and user repositories on
// top of one connection pool. It is opened at startup and closed with Cleanup.
type Storage struct {
	db    *sql.DB
	newId domain.IdGenerator
	now   func() time.Time
}

func New(ctx context.Context, dsn string, newId domain.IdGenerator) (*Storage, error) {
	return NewWithPool(ctx, dsn, newId, sharedpg.DefaultConnectionConfig())
}

// NewWithPool is New with explicit pool settings.
func NewWithPool(ctx context.Context, dsn string, newId domain.IdGenerator, pool sharedpg.ConnectionConfig) (*Storage, error) {
	log := logger.Component("pg")
	log.Info("connecting to db")
	db, err := sharedpg.Connect(ctx, dsn, pool)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	log.Info("succesfully connected to db")
	return &Storage{db: db, newId: newId, now: time.Now}, nil
}

// Migrate applies the embedded schema migrations.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

func (s *Storage) date() string {
	return domain.FormatDate(s.now())
}

const foreignKeyViolation = "23503"

// insertError turns a foreign key violation into a 404 for the referenced entity.
func insertError(err error, notFoundMessage string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
		return &internal_errors.ErrorWithStatusCode{Message: notFoundMessage, StatusCode: http.StatusNotFound}
	}
	return err
}
