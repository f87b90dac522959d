package service

import (
	"context"

	"github.com/leerobin22/forum-api/shared/domain"
)

// Storage contracts the services depend on. The pg package implements all
// three; tests use hand written mocks.

type ThreadRepository interface {
	AddThread(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error)
	// CheckThreadAvailability fails with a 404 error when the thread does not exist.
	CheckThreadAvailability(ctx context.Context, id domain.ThreadId) error
	GetThreadDetail(ctx context.Context, id domain.ThreadId) (domain.ThreadRow, error)
}

type CommentRepository interface {
	AddThreadComment(ctx context.Context, comment domain.NewThreadComment) (domain.AddedThreadComment, error)
	CheckThreadCommentAvailability(ctx context.Context, id domain.CommentId) error
	// CheckThreadCommentOwner fails with 404 for a missing comment and 403 for a foreign one.
	CheckThreadCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error
	// GetThreadComment returns comments by date ascending and fails with 404 when there are none.
	GetThreadComment(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error)
	DeleteThreadComment(ctx context.Context, id domain.CommentId) error
	// LikeDislikeComment adds the owner's like or removes it if present.
	LikeDislikeComment(ctx context.Context, id domain.CommentId, owner domain.UserId) error
	GetLikeCount(ctx context.Context, id domain.CommentId) (int, error)
}

type ReplyRepository interface {
	AddCommentReply(ctx context.Context, reply domain.NewCommentReply) (domain.AddedCommentReply, error)
	CheckCommentReplyAvailability(ctx context.Context, id domain.ReplyId) error
	CheckCommentReplyOwner(ctx context.Context, id domain.ReplyId, owner domain.UserId) error
	DeleteCommentReply(ctx context.Context, id domain.ReplyId) error
	// GetCommentReplies returns replies by date ascending, empty when there are none.
	GetCommentReplies(ctx context.Context, commentId domain.CommentId) ([]domain.ReplyRow, error)
}
