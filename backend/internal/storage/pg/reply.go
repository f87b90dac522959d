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

func replyNotFound() error {
	return &internal_errors.ErrorWithStatusCode{Message: "reply tidak ditemukan", StatusCode: http.StatusNotFound}
}

func (s *Storage) AddCommentReply(ctx context.Context, reply domain.NewCommentReply) (domain.AddedCommentReply, error) {
	id := domain.ReplyIdPrefix + s.newId()

	var rowId, content, owner string
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO comment_replies (id, comment_id, content, owner, date, is_delete)
        VALUES ($1, $2, $3, $4, $5, FALSE)
        RETURNING id, content, owner
    `, id, reply.CommentId, reply.Content, reply.Owner, s.date()).Scan(&rowId, &content, &owner)
	if err != nil {
		return domain.AddedCommentReply{}, insertError(fmt.Errorf("failed to insert reply: %w", err), "comment tidak ditemukan")
	}
	return domain.ParseAddedCommentReply(domain.Payload{"id": rowId, "content": content, "owner": owner})
}

func (s *Storage) replyOwner(ctx context.Context, id domain.ReplyId) (domain.UserId, error) {
	var owner domain.UserId
	err := s.db.QueryRowContext(ctx, "SELECT owner FROM comment_replies WHERE id = $1", id).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", replyNotFound()
		}
		return "", fmt.Errorf("failed to fetch reply: %w", err)
	}
	return owner, nil
}

func (s *Storage) CheckCommentReplyAvailability(ctx context.Context, id domain.ReplyId) error {
	_, err := s.replyOwner(ctx, id)
	return err
}

func (s *Storage) CheckCommentReplyOwner(ctx context.Context, id domain.ReplyId, owner domain.UserId) error {
	actual, err := s.replyOwner(ctx, id)
	if err != nil {
		return err
	}
	if actual != owner {
		return accessDenied()
	}
	return nil
}

func (s *Storage) DeleteCommentReply(ctx context.Context, id domain.ReplyId) error {
	result, err := s.db.ExecContext(ctx, "UPDATE comment_replies SET is_delete = TRUE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return replyNotFound()
	}
	return nil
}

func (s *Storage) GetCommentReplies(ctx context.Context, commentId domain.CommentId) ([]domain.ReplyRow, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT comment_replies.id, comment_replies.comment_id, comment_replies.content,
               comment_replies.date, users.username, comment_replies.is_delete
        FROM comment_replies
        JOIN users ON users.id = comment_replies.owner
        WHERE comment_replies.comment_id = $1
        ORDER BY comment_replies.date ASC, comment_replies.seq ASC
    `, commentId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch replies: %w", err)
	}
	defer rows.Close()

	replies := []domain.ReplyRow{}
	for rows.Next() {
		var r domain.ReplyRow
		if err := rows.Scan(&r.Id, &r.CommentId, &r.Content, &r.Date, &r.Username, &r.IsDelete); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		replies = append(replies, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return replies, nil
}
