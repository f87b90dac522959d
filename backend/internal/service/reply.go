package service

import (
	"context"

	"github.com/leerobin22/forum-api/shared/domain"
	internal_errors "github.com/leerobin22/forum-api/shared/errors"
	"github.com/leerobin22/forum-api/shared/middleware/metrics"
	"github.com/leerobin22/forum-api/shared/utils"
)

const deleteReplyUseCase = "DELETE_COMMENT_REPLY_USE_CASE"

type ReplyService interface {
	Create(ctx context.Context, payload domain.Payload) (domain.AddedCommentReply, error)
	Delete(ctx context.Context, payload domain.Payload) error
}

type Reply struct {
	threads   ThreadRepository
	comments  CommentRepository
	replies   ReplyRepository
	sanitizer utils.ContentSanitizer
}

func NewReply(threads ThreadRepository, comments CommentRepository, replies ReplyRepository, sanitizer utils.ContentSanitizer) ReplyService {
	return &Reply{threads, comments, replies, sanitizer}
}

func (s *Reply) Create(ctx context.Context, payload domain.Payload) (domain.AddedCommentReply, error) {
	newReply, err := domain.ParseNewCommentReply(payload)
	if err != nil {
		return domain.AddedCommentReply{}, err
	}
	newReply.Content = s.sanitizer.Sanitize(newReply.Content)
	if newReply.Content == "" {
		return domain.AddedCommentReply{}, internal_errors.NewDomainError("NEW_COMMENT_REPLY." + internal_errors.NotContainNeededProperty)
	}

	if err := s.threads.CheckThreadAvailability(ctx, newReply.ThreadId); err != nil {
		return domain.AddedCommentReply{}, err
	}
	if err := s.comments.CheckThreadCommentAvailability(ctx, newReply.CommentId); err != nil {
		return domain.AddedCommentReply{}, err
	}

	added, err := s.replies.AddCommentReply(ctx, newReply)
	if err != nil {
		return domain.AddedCommentReply{}, err
	}
	metrics.RecordCreated(metrics.KindReply)
	return added, nil
}

func (s *Reply) Delete(ctx context.Context, payload domain.Payload) error {
	v, err := requireUseCaseFields(payload, deleteReplyUseCase, "threadId", "commentId", "replyId", "owner")
	if err != nil {
		return err
	}

	if err := s.threads.CheckThreadAvailability(ctx, v["threadId"]); err != nil {
		return err
	}
	if err := s.comments.CheckThreadCommentAvailability(ctx, v["commentId"]); err != nil {
		return err
	}
	if err := s.replies.CheckCommentReplyAvailability(ctx, v["replyId"]); err != nil {
		return err
	}
	if err := s.replies.CheckCommentReplyOwner(ctx, v["replyId"], v["owner"]); err != nil {
		return err
	}
	if err := s.replies.DeleteCommentReply(ctx, v["replyId"]); err != nil {
		return err
	}
	metrics.RecordDeleted(metrics.KindReply)
	return nil
}
