package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/leerobin22/forum-api/shared/domain"
	internal_errors "github.com/leerobin22/forum-api/shared/errors"
	sharedpg "github.com/leerobin22/forum-api/shared/storage/pg"
)

func commentNotFound() error {
	return &internal_errors.ErrorWithStatusCode{Message: "comment tidak ditemukan", StatusCode: http.StatusNotFound}
}

func accessDenied() error {
	return &internal_errors.ErrorWithStatusCode{Message: "tidak dapat mengakses data", StatusCode: http.StatusForbidden}
}

func (s *Storage) AddThreadComment(ctx context.Context, comment domain.NewThreadComment) (domain.AddedThreadComment, error) {
	id := domain.CommentIdPrefix + s.newId()

	var rowId, content, owner string
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO thread_comments (id, thread_id, content, owner, date, is_delete)
        VALUES ($1, $2, $3, $4, $5, FALSE)
        RETURNING id, content, owner
    `, id, comment.ThreadId, comment.Content, comment.Owner, s.date()).Scan(&rowId, &content, &owner)
	if err != nil {
		return domain.AddedThreadComment{}, insertError(fmt.Errorf("failed to insert comment: %w", err), "thread tidak ditemukan")
	}
	return domain.ParseAddedThreadComment(domain.Payload{"id": rowId, "content": content, "owner": owner})
}

// commentOwner returns the owner of a comment, or a 404 when it does not exist.
func (s *Storage) commentOwner(ctx context.Context, id domain.CommentId) (domain.UserId, error) {
	var owner domain.UserId
	err := s.db.QueryRowContext(ctx, "SELECT owner FROM thread_comments WHERE id = $1", id).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", commentNotFound()
		}
		return "", fmt.Errorf("failed to fetch comment: %w", err)
	}
	return owner, nil
}

func (s *Storage) CheckThreadCommentAvailability(ctx context.Context, id domain.CommentId) error {
	_, err := s.commentOwner(ctx, id)
	return err
}

func (s *Storage) CheckThreadCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error {
	actual, err := s.commentOwner(ctx, id)
	if err != nil {
		return err
	}
	if actual != owner {
		return accessDenied()
	}
	return nil
}

func (s *Storage) GetThreadComment(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT thread_comments.id, thread_comments.content, thread_comments.date, users.username, thread_comments.is_delete
        FROM thread_comments
        JOIN users ON users.id = thread_comments.owner
        WHERE thread_comments.thread_id = $1
        ORDER BY thread_comments.date ASC, thread_comments.seq ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.CommentRow
	for rows.Next() {
		var c domain.CommentRow
		if err := rows.Scan(&c.Id, &c.Content, &c.Date, &c.Username, &c.IsDelete); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	if len(comments) == 0 {
		return nil, commentNotFound()
	}
	return comments, nil
}

// DeleteThreadComment only flags the comment; the row and its replies stay.
func (s *Storage) DeleteThreadComment(ctx context.Context, id domain.CommentId) error {
	result, err := s.db.ExecContext(ctx, "UPDATE thread_comments SET is_delete = TRUE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return commentNotFound()
	}
	return nil
}

// LikeDislikeComment flips the like of owner on a comment. The comment row
// is locked for the duration so two toggles by the same user cannot both
// observe "not liked".
func (s *Storage) LikeDislikeComment(ctx context.Context, id domain.CommentId, owner domain.UserId) error {
	return sharedpg.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var locked domain.CommentId
		err := tx.QueryRowContext(ctx, "SELECT id FROM thread_comments WHERE id = $1 FOR UPDATE", id).Scan(&locked)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return commentNotFound()
			}
			return fmt.Errorf("failed to lock comment: %w", err)
		}

		result, err := tx.ExecContext(ctx, "DELETE FROM comment_likes WHERE comment_id = $1 AND owner = $2", id, owner)
		if err != nil {
			return fmt.Errorf("failed to remove like: %w", err)
		}
		removed, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to remove like: %w", err)
		}
		if removed > 0 {
			return nil
		}

		_, err = tx.ExecContext(ctx, `
            INSERT INTO comment_likes (id, comment_id, owner, date)
            VALUES ($1, $2, $3, $4)
        `, domain.LikeIdPrefix+s.newId(), id, owner, s.date())
		if err != nil {
			return insertError(fmt.Errorf("failed to add like: %w", err), "user tidak ditemukan")
		}
		return nil
	})
}

func (s *Storage) GetLikeCount(ctx context.Context, id domain.CommentId) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comment_likes WHERE comment_id = $1", id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}
