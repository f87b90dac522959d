package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/leerobin22/forum-api/shared/domain"
	internal_errors "github.com/leerobin22/forum-api/shared/errors"
)

func threadNotFound() error {
	return &internal_errors.ErrorWithStatusCode{Message: "thread tidak ditemukan", StatusCode: http.StatusNotFound}
}

func (s *Storage) AddThread(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error) {
	id := domain.ThreadIdPrefix + s.newId()

	var rowId, title, owner string
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO threads (id, title, body, owner, date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, title, owner
    `, id, thread.Title, thread.Body, thread.Owner, s.date()).Scan(&rowId, &title, &owner)
	if err != nil {
		return domain.AddedThread{}, insertError(fmt.Errorf("failed to insert thread: %w", err), "user tidak ditemukan")
	}
	return domain.ParseAddedThread(domain.Payload{"id": rowId, "title": title, "owner": owner})
}

func (s *Storage) CheckThreadAvailability(ctx context.Context, id domain.ThreadId) error {
	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM threads WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check thread: %w", err)
	}
	if !exists {
		return threadNotFound()
	}
	return nil
}

func (s *Storage) GetThreadDetail(ctx context.Context, id domain.ThreadId) (domain.ThreadRow, error) {
	var thread domain.ThreadRow
	err := s.db.QueryRowContext(ctx, `
        SELECT threads.id, threads.title, threads.body, threads.date, users.username
        FROM threads
        JOIN users ON users.id = threads.owner
        WHERE threads.id = $1
    `, id).Scan(&thread.Id, &thread.Title, &thread.Body, &thread.Date, &thread.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadRow{}, threadNotFound()
		}
		return domain.ThreadRow{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	return thread, nil
}
