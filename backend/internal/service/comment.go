package service

import (
	"context"

	"github.com/leerobin22/forum-api/shared/domain"
	internal_errors "github.com/leerobin22/forum-api/shared/errors"
	"github.com/leerobin22/forum-api/shared/middleware/metrics"
	"github.com/leerobin22/forum-api/shared/utils"
)

const (
	deleteCommentUseCase = "DELETE_THREAD_COMMENT_USE_CASE"
	likeCommentUseCase   = "LIKE_DISLIKE_COMMENT_USE_CASE"
)

type CommentService interface {
	Create(ctx context.Context, payload domain.Payload) (domain.AddedThreadComment, error)
	Delete(ctx context.Context, payload domain.Payload) error
	ToggleLike(ctx context.Context, payload domain.Payload) error
}

type Comment struct {
	threads   ThreadRepository
	comments  CommentRepository
	sanitizer utils.ContentSanitizer
}

func NewComment(threads ThreadRepository, comments CommentRepository, sanitizer utils.ContentSanitizer) CommentService {
	return &Comment{threads, comments, sanitizer}
}

func (s *Comment) Create(ctx context.Context, payload domain.Payload) (domain.AddedThreadComment, error) {
	newComment, err := domain.ParseNewThreadComment(payload)
	if err != nil {
		return domain.AddedThreadComment{}, err
	}
	newComment.Content = s.sanitizer.Sanitize(newComment.Content)
	if newComment.Content == "" {
		return domain.AddedThreadComment{}, internal_errors.NewDomainError("NEW_THREAD_COMMENT." + internal_errors.NotContainNeededProperty)
	}

	if err := s.threads.CheckThreadAvailability(ctx, newComment.ThreadId); err != nil {
		return domain.AddedThreadComment{}, err
	}

	added, err := s.comments.AddThreadComment(ctx, newComment)
	if err != nil {
		return domain.AddedThreadComment{}, err
	}
	metrics.RecordCreated(metrics.KindComment)
	return added, nil
}

// Delete soft deletes a comment. Only its owner may do so.
func (s *Comment) Delete(ctx context.Context, payload domain.Payload) error {
	v, err := requireUseCaseFields(payload, deleteCommentUseCase, "threadId", "commentId", "owner")
	if err != nil {
		return err
	}

	if err := s.threads.CheckThreadAvailability(ctx, v["threadId"]); err != nil {
		return err
	}
	if err := s.comments.CheckThreadCommentAvailability(ctx, v["commentId"]); err != nil {
		return err
	}
	if err := s.comments.CheckThreadCommentOwner(ctx, v["commentId"], v["owner"]); err != nil {
		return err
	}
	if err := s.comments.DeleteThreadComment(ctx, v["commentId"]); err != nil {
		return err
	}
	metrics.RecordDeleted(metrics.KindComment)
	return nil
}

// ToggleLike likes the comment for owner, or removes the like if it is already there.
func (s *Comment) ToggleLike(ctx context.Context, payload domain.Payload) error {
	v, err := requireUseCaseFields(payload, likeCommentUseCase, "threadId", "commentId", "owner")
	if err != nil {
		return err
	}

	if err := s.threads.CheckThreadAvailability(ctx, v["threadId"]); err != nil {
		return err
	}
	if err := s.comments.CheckThreadCommentAvailability(ctx, v["commentId"]); err != nil {
		return err
	}
	if err := s.comments.LikeDislikeComment(ctx, v["commentId"], v["owner"]); err != nil {
		return err
	}
	metrics.RecordLikeToggle()
	return nil
}

func requireUseCaseFields(p domain.Payload, useCase string, keys ...string) (map[string]string, error) {
	return domain.RequireStrings(p, useCase,
		internal_errors.NotContainRequiredAttributes,
		internal_errors.PayloadNotMeetDataTypeSpecification,
		keys...)
}
