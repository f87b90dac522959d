package service

import (
	"context"

	"github.com/leerobin22/forum-api/shared/domain"
	internal_errors "github.com/leerobin22/forum-api/shared/errors"
	"github.com/leerobin22/forum-api/shared/middleware/metrics"
	"github.com/leerobin22/forum-api/shared/utils"
)

type ThreadService interface {
	Create(ctx context.Context, payload domain.Payload) (domain.AddedThread, error)
	Detail(ctx context.Context, payload domain.Payload) (domain.ThreadDetail, error)
}

type Thread struct {
	threads   ThreadRepository
	comments  CommentRepository
	replies   ReplyRepository
	sanitizer utils.ContentSanitizer
}

func NewThread(threads ThreadRepository, comments CommentRepository, replies ReplyRepository, sanitizer utils.ContentSanitizer) ThreadService {
	return &Thread{threads, comments, replies, sanitizer}
}

func (s *Thread) Create(ctx context.Context, payload domain.Payload) (domain.AddedThread, error) {
	newThread, err := domain.ParseNewThread(payload)
	if err != nil {
		return domain.AddedThread{}, err
	}

	newThread.Title = s.sanitizer.Sanitize(newThread.Title)
	newThread.Body = s.sanitizer.Sanitize(newThread.Body)
	if newThread.Title == "" || newThread.Body == "" {
		return domain.AddedThread{}, internal_errors.NewDomainError("NEW_THREAD." + internal_errors.NotContainNeededProperty)
	}

	added, err := s.threads.AddThread(ctx, newThread)
	if err != nil {
		return domain.AddedThread{}, err
	}
	metrics.RecordCreated(metrics.KindThread)
	return added, nil
}

// Detail renders a thread with its comments and each comment's replies.
// Deleted comments and replies keep their place but have their content masked.
func (s *Thread) Detail(ctx context.Context, payload domain.Payload) (domain.ThreadDetail, error) {
	req, err := domain.ParseThreadDetail(payload)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	if err := s.threads.CheckThreadAvailability(ctx, req.ThreadId); err != nil {
		return domain.ThreadDetail{}, err
	}
	thread, err := s.threads.GetThreadDetail(ctx, req.ThreadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	comments, err := s.comments.GetThreadComment(ctx, req.ThreadId)
	if err != nil && !internal_errors.IsNotFound(err) {
		return domain.ThreadDetail{}, err
	}

	views := make([]domain.CommentView, 0, len(comments))
	for _, comment := range comments {
		replies, err := s.replies.GetCommentReplies(ctx, comment.Id)
		if err != nil {
			return domain.ThreadDetail{}, err
		}
		views = append(views, commentView(comment, replies))
	}

	return domain.ThreadDetail{ThreadRow: thread, Comments: views}, nil
}

func commentView(comment domain.CommentRow, replies []domain.ReplyRow) domain.CommentView {
	content := comment.Content
	if comment.IsDelete {
		content = domain.DeletedCommentContent
	}
	return domain.CommentView{
		Id:       comment.Id,
		Content:  content,
		Date:     comment.Date,
		Username: comment.Username,
		Replies:  replyViews(comment.Id, replies),
	}
}

// replyViews keeps only replies of commentId; the result is never nil.
func replyViews(commentId domain.CommentId, replies []domain.ReplyRow) []domain.ReplyView {
	views := make([]domain.ReplyView, 0, len(replies))
	for _, reply := range replies {
		if reply.CommentId != commentId {
			continue
		}
		content := reply.Content
		if reply.IsDelete {
			content = domain.DeletedReplyContent
		}
		views = append(views, domain.ReplyView{
			Id:       reply.Id,
			Content:  content,
			Date:     reply.Date,
			Username: reply.Username,
		})
	}
	return views
}
