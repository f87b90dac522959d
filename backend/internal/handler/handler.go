package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leerobin22/forum-api/backend/internal/service"
	"github.com/leerobin22/forum-api/shared/domain"
	mw "github.com/leerobin22/forum-api/shared/middleware"
	"github.com/leerobin22/forum-api/shared/utils"
)

// HealthChecker reports whether the storage answers.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	thread  service.ThreadService
	comment service.CommentService
	reply   service.ReplyService
	health  HealthChecker
}

func New(thread service.ThreadService, comment service.CommentService, reply service.ReplyService, health HealthChecker) *Handler {
	return &Handler{thread: thread, comment: comment, reply: reply, health: health}
}

// readPayload decodes the body (if any) and merges in the named path params
// and the authenticated owner. Path params win over body fields.
func readPayload(r *http.Request, withBody bool, params ...string) (domain.Payload, error) {
	payload := domain.Payload{}
	if withBody {
		var err error
		if payload, err = utils.DecodePayload(r.Body); err != nil {
			return nil, err
		}
	}
	for _, name := range params {
		payload[name] = chi.URLParam(r, name)
	}
	if user := mw.GetUserFromContext(r); user != nil {
		payload["owner"] = user.Id
	}
	return payload, nil
}
