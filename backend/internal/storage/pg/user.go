package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/leerobin22/forum-api/shared/domain"
	internal_errors "github.com/leerobin22/forum-api/shared/errors"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// AddUser stores an account and returns its generated id.
func (s *Storage) AddUser(ctx context.Context, user domain.User) (domain.UserId, error) {
	id := domain.UserIdPrefix + s.newId()
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO users (id, username, password, fullname)
        VALUES ($1, $2, $3, $4)
    `, id, user.Username, user.PassHash, user.Fullname)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return "", &internal_errors.ErrorWithStatusCode{Message: "username tidak tersedia", StatusCode: http.StatusBadRequest}
		}
		return "", fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

func (s *Storage) UserByUsername(ctx context.Context, username string) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, password, fullname FROM users WHERE username = $1", username,
	).Scan(&user.Id, &user.Username, &user.PassHash, &user.Fullname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "user tidak ditemukan", StatusCode: http.StatusNotFound}
		}
		return domain.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}
