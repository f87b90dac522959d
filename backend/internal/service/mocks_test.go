package service

import (
	"context"

	"github.com/leerobin22/forum-api/shared/domain"
)

// callLog records the order in which mocked repository methods are called.
type callLog struct {
	calls []string
}

func (l *callLog) add(name string) {
	if l != nil {
		l.calls = append(l.calls, name)
	}
}

// MockThreadRepository mocks the ThreadRepository interface.
type MockThreadRepository struct {
	log                         *callLog
	addThreadFunc               func(thread domain.NewThread) (domain.AddedThread, error)
	checkThreadAvailabilityFunc func(id domain.ThreadId) error
	getThreadDetailFunc         func(id domain.ThreadId) (domain.ThreadRow, error)
}

func (m *MockThreadRepository) AddThread(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error) {
	m.log.add("AddThread")
	if m.addThreadFunc != nil {
		return m.addThreadFunc(thread)
	}
	return domain.AddedThread{}, nil
}

func (m *MockThreadRepository) CheckThreadAvailability(ctx context.Context, id domain.ThreadId) error {
	m.log.add("CheckThreadAvailability")
	if m.checkThreadAvailabilityFunc != nil {
		return m.checkThreadAvailabilityFunc(id)
	}
	return nil
}

func (m *MockThreadRepository) GetThreadDetail(ctx context.Context, id domain.ThreadId) (domain.ThreadRow, error) {
	m.log.add("GetThreadDetail")
	if m.getThreadDetailFunc != nil {
		return m.getThreadDetailFunc(id)
	}
	return domain.ThreadRow{}, nil
}

// MockCommentRepository mocks the CommentRepository interface.
type MockCommentRepository struct {
	log                                *callLog
	addThreadCommentFunc               func(comment domain.NewThreadComment) (domain.AddedThreadComment, error)
	checkThreadCommentAvailabilityFunc func(id domain.CommentId) error
	checkThreadCommentOwnerFunc        func(id domain.CommentId, owner domain.UserId) error
	getThreadCommentFunc               func(threadId domain.ThreadId) ([]domain.CommentRow, error)
	deleteThreadCommentFunc            func(id domain.CommentId) error
	likeDislikeCommentFunc             func(id domain.CommentId, owner domain.UserId) error
	getLikeCountFunc                   func(id domain.CommentId) (int, error)
}

func (m *MockCommentRepository) AddThreadComment(ctx context.Context, comment domain.NewThreadComment) (domain.AddedThreadComment, error) {
	m.log.add("AddThreadComment")
	if m.addThreadCommentFunc != nil {
		return m.addThreadCommentFunc(comment)
	}
	return domain.AddedThreadComment{}, nil
}

func (m *MockCommentRepository) CheckThreadCommentAvailability(ctx context.Context, id domain.CommentId) error {
	m.log.add("CheckThreadCommentAvailability")
	if m.checkThreadCommentAvailabilityFunc != nil {
		return m.checkThreadCommentAvailabilityFunc(id)
	}
	return nil
}

func (m *MockCommentRepository) CheckThreadCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error {
	m.log.add("CheckThreadCommentOwner")
	if m.checkThreadCommentOwnerFunc != nil {
		return m.checkThreadCommentOwnerFunc(id, owner)
	}
	return nil
}

func (m *MockCommentRepository) GetThreadComment(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error) {
	m.log.add("GetThreadComment")
	if m.getThreadCommentFunc != nil {
		return m.getThreadCommentFunc(threadId)
	}
	return nil, nil
}

func (m *MockCommentRepository) DeleteThreadComment(ctx context.Context, id domain.CommentId) error {
	m.log.add("DeleteThreadComment")
	if m.deleteThreadCommentFunc != nil {
		return m.deleteThreadCommentFunc(id)
	}
	return nil
}

func (m *MockCommentRepository) LikeDislikeComment(ctx context.Context, id domain.CommentId, owner domain.UserId) error {
	m.log.add("LikeDislikeComment")
	if m.likeDislikeCommentFunc != nil {
		return m.likeDislikeCommentFunc(id, owner)
	}
	return nil
}

func (m *MockCommentRepository) GetLikeCount(ctx context.Context, id domain.CommentId) (int, error) {
	m.log.add("GetLikeCount")
	if m.getLikeCountFunc != nil {
		return m.getLikeCountFunc(id)
	}
	return 0, nil
}

// MockReplyRepository mocks the ReplyRepository interface.
type MockReplyRepository struct {
	log                               *callLog
	addCommentReplyFunc               func(reply domain.NewCommentReply) (domain.AddedCommentReply, error)
	checkCommentReplyAvailabilityFunc func(id domain.ReplyId) error
	checkCommentReplyOwnerFunc        func(id domain.ReplyId, owner domain.UserId) error
	deleteCommentReplyFunc            func(id domain.ReplyId) error
	getCommentRepliesFunc             func(commentId domain.CommentId) ([]domain.ReplyRow, error)
}

func (m *MockReplyRepository) AddCommentReply(ctx context.Context, reply domain.NewCommentReply) (domain.AddedCommentReply, error) {
	m.log.add("AddCommentReply")
	if m.addCommentReplyFunc != nil {
		return m.addCommentReplyFunc(reply)
	}
	return domain.AddedCommentReply{}, nil
}

func (m *MockReplyRepository) CheckCommentReplyAvailability(ctx context.Context, id domain.ReplyId) error {
	m.log.add("CheckCommentReplyAvailability")
	if m.checkCommentReplyAvailabilityFunc != nil {
		return m.checkCommentReplyAvailabilityFunc(id)
	}
	return nil
}

func (m *MockReplyRepository) CheckCommentReplyOwner(ctx context.Context, id domain.ReplyId, owner domain.UserId) error {
	m.log.add("CheckCommentReplyOwner")
	if m.checkCommentReplyOwnerFunc != nil {
		return m.checkCommentReplyOwnerFunc(id, owner)
	}
	return nil
}

func (m *MockReplyRepository) DeleteCommentReply(ctx context.Context, id domain.ReplyId) error {
	m.log.add("DeleteCommentReply")
	if m.deleteCommentReplyFunc != nil {
		return m.deleteCommentReplyFunc(id)
	}
	return nil
}

func (m *MockReplyRepository) GetCommentReplies(ctx context.Context, commentId domain.CommentId) ([]domain.ReplyRow, error) {
	m.log.add("GetCommentReplies")
	if m.getCommentRepliesFunc != nil {
		return m.getCommentRepliesFunc(commentId)
	}
	return nil, nil
}

// funcSanitizer lets a test decide what sanitizing does.
type funcSanitizer func(string) string

func (f funcSanitizer) Sanitize(s string) string { return f(s) }
