package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leerobin22/forum-api/shared/domain"
	internal_errors "github.com/leerobin22/forum-api/shared/errors"
	mw "github.com/leerobin22/forum-api/shared/middleware"
)

// --- Mocks for services ---

type MockThreadService struct {
	CreateFunc func(payload domain.Payload) (domain.AddedThread, error)
	DetailFunc func(payload domain.Payload) (domain.ThreadDetail, error)
}

func (m *MockThreadService) Create(ctx context.Context, payload domain.Payload) (domain.AddedThread, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(payload)
	}
	return domain.AddedThread{}, nil
}

func (m *MockThreadService) Detail(ctx context.Context, payload domain.Payload) (domain.ThreadDetail, error) {
	if m.DetailFunc != nil {
		return m.DetailFunc(payload)
	}
	return domain.ThreadDetail{}, nil
}

type MockCommentService struct {
	CreateFunc     func(payload domain.Payload) (domain.AddedThreadComment, error)
	DeleteFunc     func(payload domain.Payload) error
	ToggleLikeFunc func(payload domain.Payload) error
}

func (m *MockCommentService) Create(ctx context.Context, payload domain.Payload) (domain.AddedThreadComment, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(payload)
	}
	return domain.AddedThreadComment{}, nil
}

func (m *MockCommentService) Delete(ctx context.Context, payload domain.Payload) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(payload)
	}
	return nil
}

func (m *MockCommentService) ToggleLike(ctx context.Context, payload domain.Payload) error {
	if m.ToggleLikeFunc != nil {
		return m.ToggleLikeFunc(payload)
	}
	return nil
}

type MockReplyService struct {
	CreateFunc func(payload domain.Payload) (domain.AddedCommentReply, error)
	DeleteFunc func(payload domain.Payload) error
}

func (m *MockReplyService) Create(ctx context.Context, payload domain.Payload) (domain.AddedCommentReply, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(payload)
	}
	return domain.AddedCommentReply{}, nil
}

func (m *MockReplyService) Delete(ctx context.Context, payload domain.Payload) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(payload)
	}
	return nil
}

// newRequest builds a request carrying chi path params and, if owner is set,
// an authenticated user.
func newRequest(method, body, owner string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if owner != "" {
		ctx = mw.WithUser(ctx, &domain.User{Id: owner})
	}
	return req.WithContext(ctx)
}

func TestCreateThread(t *testing.T) {
	t.Run("passes body and owner to the service", func(t *testing.T) {
		var got domain.Payload
		h := &Handler{thread: &MockThreadService{
			CreateFunc: func(payload domain.Payload) (domain.AddedThread, error) {
				got = payload
				return domain.AddedThread{Id: "thread-123", Title: "judul", Owner: "user-123"}, nil
			},
		}}

		rr := httptest.NewRecorder()
		h.CreateThread(rr, newRequest("POST", `{"title":"judul","body":"isi","owner":"user-evil"}`, "user-123", nil))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, domain.Payload{"title": "judul", "body": "isi", "owner": "user-123"}, got)
		assert.JSONEq(t, `{"status":"success","data":{"addedThread":{"id":"thread-123","title":"judul","owner":"user-123"}}}`, rr.Body.String())
	})

	t.Run("domain error becomes 400", func(t *testing.T) {
		h := &Handler{thread: &MockThreadService{
			CreateFunc: func(payload domain.Payload) (domain.AddedThread, error) {
				return domain.AddedThread{}, internal_errors.NewDomainError("NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY")
			},
		}}

		rr := httptest.NewRecorder()
		h.CreateThread(rr, newRequest("POST", `{}`, "user-123", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"status":"fail","message":"tidak dapat membuat thread harus mengirimkan title dan body"}`, rr.Body.String())
	})

	t.Run("unexpected error becomes 500", func(t *testing.T) {
		h := &Handler{thread: &MockThreadService{
			CreateFunc: func(payload domain.Payload) (domain.AddedThread, error) {
				return domain.AddedThread{}, errors.New("connection reset")
			},
		}}

		rr := httptest.NewRecorder()
		h.CreateThread(rr, newRequest("POST", `{"title":"a","body":"b"}`, "user-123", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"status":"error","message":"terjadi kegagalan pada server kami"}`, rr.Body.String())
	})

	t.Run("array body is rejected before the service", func(t *testing.T) {
		called := false
		h := &Handler{thread: &MockThreadService{
			CreateFunc: func(payload domain.Payload) (domain.AddedThread, error) {
				called = true
				return domain.AddedThread{}, nil
			},
		}}

		rr := httptest.NewRecorder()
		h.CreateThread(rr, newRequest("POST", `[1,2]`, "user-123", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.False(t, called)
	})
}

func TestGetThread(t *testing.T) {
	h := &Handler{thread: &MockThreadService{
		DetailFunc: func(payload domain.Payload) (domain.ThreadDetail, error) {
			assert.Equal(t, domain.Payload{"threadId": "thread-123"}, payload)
			return domain.ThreadDetail{
				ThreadRow: domain.ThreadRow{Id: "thread-123", Title: "t", Body: "b", Date: "2021-08-08T07:19:09.775Z", Username: "dicoding"},
				Comments:  []domain.CommentView{{Id: "comment-1", Content: "c", Date: "2021-08-08T07:22:33.555Z", Username: "johndoe", Replies: []domain.ReplyView{}}},
			}, nil
		},
	}}

	rr := httptest.NewRecorder()
	h.GetThread(rr, newRequest("GET", "", "", map[string]string{"threadId": "thread-123"}))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"status": "success",
		"data": {"thread": {
			"id": "thread-123", "title": "t", "body": "b", "date": "2021-08-08T07:19:09.775Z", "username": "dicoding",
			"comments": [{"id": "comment-1", "content": "c", "date": "2021-08-08T07:22:33.555Z", "username": "johndoe", "replies": []}]
		}}
	}`, rr.Body.String())
}

func TestCommentHandlers(t *testing.T) {
	params := map[string]string{"threadId": "thread-123", "commentId": "comment-123"}

	t.Run("create merges path param", func(t *testing.T) {
		h := &Handler{comment: &MockCommentService{
			CreateFunc: func(payload domain.Payload) (domain.AddedThreadComment, error) {
				assert.Equal(t, domain.Payload{"content": "isi", "threadId": "thread-123", "owner": "user-123"}, payload)
				return domain.AddedThreadComment{Id: "comment-123", Content: "isi", Owner: "user-123"}, nil
			},
		}}
		rr := httptest.NewRecorder()
		h.CreateComment(rr, newRequest("POST", `{"content":"isi"}`, "user-123", params))
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.JSONEq(t, `{"status":"success","data":{"addedComment":{"id":"comment-123","content":"isi","owner":"user-123"}}}`, rr.Body.String())
	})

	t.Run("delete", func(t *testing.T) {
		h := &Handler{comment: &MockCommentService{
			DeleteFunc: func(payload domain.Payload) error {
				assert.Equal(t, domain.Payload{"threadId": "thread-123", "commentId": "comment-123", "owner": "user-123"}, payload)
				return nil
			},
		}}
		rr := httptest.NewRecorder()
		h.DeleteComment(rr, newRequest("DELETE", "", "user-123", params))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"success"}`, rr.Body.String())
	})

	t.Run("delete forbidden", func(t *testing.T) {
		h := &Handler{comment: &MockCommentService{
			DeleteFunc: func(payload domain.Payload) error {
				return internal_errors.NewAuthorizationError("tidak dapat mengakses data")
			},
		}}
		rr := httptest.NewRecorder()
		h.DeleteComment(rr, newRequest("DELETE", "", "user-456", params))
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.JSONEq(t, `{"status":"fail","message":"tidak dapat mengakses data"}`, rr.Body.String())
	})

	t.Run("like not found", func(t *testing.T) {
		h := &Handler{comment: &MockCommentService{
			ToggleLikeFunc: func(payload domain.Payload) error {
				return internal_errors.NewNotFoundError("comment tidak ditemukan")
			},
		}}
		rr := httptest.NewRecorder()
		h.LikeComment(rr, newRequest("PUT", "", "user-123", params))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestReplyHandlers(t *testing.T) {
	params := map[string]string{"threadId": "thread-123", "commentId": "comment-123", "replyId": "reply-123"}

	h := &Handler{reply: &MockReplyService{
		CreateFunc: func(payload domain.Payload) (domain.AddedCommentReply, error) {
			assert.Equal(t, "comment-123", payload["commentId"])
			return domain.AddedCommentReply{Id: "reply-123", Content: "isi", Owner: "user-123"}, nil
		},
		DeleteFunc: func(payload domain.Payload) error {
			assert.Equal(t, "reply-123", payload["replyId"])
			return nil
		},
	}}

	rr := httptest.NewRecorder()
	h.CreateReply(rr, newRequest("POST", `{"content":"isi"}`, "user-123", params))
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"status":"success","data":{"addedReply":{"id":"reply-123","content":"isi","owner":"user-123"}}}`, rr.Body.String())

	rr = httptest.NewRecorder()
	h.DeleteReply(rr, newRequest("DELETE", "", "user-123", params))
	assert.Equal(t, http.StatusOK, rr.Code)
}
