package router

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/leerobin22/forum-api/shared/domain"
	internal_errors "github.com/leerobin22/forum-api/shared/errors"
)

type memComment struct {
	domain.CommentRow
	threadId domain.ThreadId
	owner    domain.UserId
}

type memReply struct {
	domain.ReplyRow
	owner domain.UserId
}

type memLike struct {
	commentId domain.CommentId
	owner     domain.UserId
}

// memStore is an in-memory stand-in for the postgres storage with the same
// error behavior, used to drive the router end to end.
type memStore struct {
	mu        sync.Mutex
	seq       int
	clock     time.Time
	usernames map[domain.UserId]string
	threads   map[domain.ThreadId]domain.ThreadRow
	comments  []*memComment
	replies   []*memReply
	likes     []memLike
	pingErr   error
}

func newMemStore() *memStore {
	return &memStore{
		clock:     time.Date(2021, 8, 8, 7, 0, 0, 0, time.UTC),
		usernames: map[domain.UserId]string{},
		threads:   map[domain.ThreadId]domain.ThreadRow{},
	}
}

func (m *memStore) addUser(id domain.UserId, username string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.usernames[id] = username
}

func (m *memStore) next(prefix string) (string, string) {
	m.seq++
	m.clock = m.clock.Add(time.Second)
	return fmt.Sprintf("%s%03d", prefix, m.seq), domain.FormatDate(m.clock)
}

func (m *memStore) AddThread(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, date := m.next(domain.ThreadIdPrefix)
	m.threads[id] = domain.ThreadRow{Id: id, Title: thread.Title, Body: thread.Body, Date: date, Username: m.usernames[thread.Owner]}
	return domain.AddedThread{Id: id, Title: thread.Title, Owner: thread.Owner}, nil
}

func (m *memStore) CheckThreadAvailability(ctx context.Context, id domain.ThreadId) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.threads[id]; !ok {
		return internal_errors.NewNotFoundError("thread tidak ditemukan")
	}
	return nil
}

func (m *memStore) GetThreadDetail(ctx context.Context, id domain.ThreadId) (domain.ThreadRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	thread, ok := m.threads[id]
	if !ok {
		return domain.ThreadRow{}, internal_errors.NewNotFoundError("thread tidak ditemukan")
	}
	return thread, nil
}

func (m *memStore) AddThreadComment(ctx context.Context, comment domain.NewThreadComment) (domain.AddedThreadComment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, date := m.next(domain.CommentIdPrefix)
	m.comments = append(m.comments, &memComment{
		CommentRow: domain.CommentRow{Id: id, Content: comment.Content, Date: date, Username: m.usernames[comment.Owner]},
		threadId:   comment.ThreadId,
		owner:      comment.Owner,
	})
	return domain.AddedThreadComment{Id: id, Content: comment.Content, Owner: comment.Owner}, nil
}

func (m *memStore) findComment(id domain.CommentId) (*memComment, error) {
	for _, c := range m.comments {
		if c.Id == id {
			return c, nil
		}
	}
	return nil, internal_errors.NewNotFoundError("comment tidak ditemukan")
}

func (m *memStore) CheckThreadCommentAvailability(ctx context.Context, id domain.CommentId) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, err := m.findComment(id)
	return err
}

func (m *memStore) CheckThreadCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, err := m.findComment(id)
	if err != nil {
		return err
	}
	if c.owner != owner {
		return internal_errors.NewAuthorizationError("tidak dapat mengakses data")
	}
	return nil
}

func (m *memStore) GetThreadComment(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var rows []domain.CommentRow
	for _, c := range m.comments {
		if c.threadId == threadId {
			rows = append(rows, c.CommentRow)
		}
	}
	if len(rows) == 0 {
		return nil, internal_errors.NewNotFoundError("comment tidak ditemukan")
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows, nil
}

func (m *memStore) DeleteThreadComment(ctx context.Context, id domain.CommentId) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, err := m.findComment(id)
	if err != nil {
		return err
	}
	c.IsDelete = true
	return nil
}

func (m *memStore) LikeDislikeComment(ctx context.Context, id domain.CommentId, owner domain.UserId) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, like := range m.likes {
		if like.commentId == id && like.owner == owner {
			m.likes = append(m.likes[:i], m.likes[i+1:]...)
			return nil
		}
	}
	m.likes = append(m.likes, memLike{commentId: id, owner: owner})
	return nil
}

func (m *memStore) GetLikeCount(ctx context.Context, id domain.CommentId) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, like := range m.likes {
		if like.commentId == id {
			n++
		}
	}
	return n, nil
}

func (m *memStore) AddCommentReply(ctx context.Context, reply domain.NewCommentReply) (domain.AddedCommentReply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, date := m.next(domain.ReplyIdPrefix)
	m.replies = append(m.replies, &memReply{
		ReplyRow: domain.ReplyRow{Id: id, CommentId: reply.CommentId, Content: reply.Content, Date: date, Username: m.usernames[reply.Owner]},
		owner:    reply.Owner,
	})
	return domain.AddedCommentReply{Id: id, Content: reply.Content, Owner: reply.Owner}, nil
}

func (m *memStore) findReply(id domain.ReplyId) (*memReply, error) {
	for _, r := range m.replies {
		if r.Id == id {
			return r, nil
		}
	}
	return nil, internal_errors.NewNotFoundError("reply tidak ditemukan")
}

func (m *memStore) CheckCommentReplyAvailability(ctx context.Context, id domain.ReplyId) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, err := m.findReply(id)
	return err
}

func (m *memStore) CheckCommentReplyOwner(ctx context.Context, id domain.ReplyId, owner domain.UserId) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, err := m.findReply(id)
	if err != nil {
		return err
	}
	if r.owner != owner {
		return internal_errors.NewAuthorizationError("tidak dapat mengakses data")
	}
	return nil
}

func (m *memStore) DeleteCommentReply(ctx context.Context, id domain.ReplyId) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, err := m.findReply(id)
	if err != nil {
		return err
	}
	r.IsDelete = true
	return nil
}

func (m *memStore) GetCommentReplies(ctx context.Context, commentId domain.CommentId) ([]domain.ReplyRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := []domain.ReplyRow{}
	for _, r := range m.replies {
		if r.CommentId == commentId {
			rows = append(rows, r.ReplyRow)
		}
	}
	return rows, nil
}

func (m *memStore) Ping(ctx context.Context) error {
	return m.pingErr
}
