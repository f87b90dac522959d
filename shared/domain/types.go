package domain

import (
	"time"

	"github.com/go-playground/validator/v10"

	internal_errors "github.com/leerobin22/forum-api/shared/errors"
)

type (
	UserId    = string
	ThreadId  = string
	CommentId = string
	ReplyId   = string
	LikeId    = string
)

// Id prefixes applied by the component that creates the row.
const (
	ThreadIdPrefix  = "thread-"
	CommentIdPrefix = "comment-"
	ReplyIdPrefix   = "reply-"
	LikeIdPrefix    = "likes-"
	UserIdPrefix    = "user-"
)

// DateLayout matches ISO-8601 with millisecond precision in UTC so that
// dates stored as text sort in creation order.
const DateLayout = "2006-01-02T15:04:05.000Z"

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// IdGenerator returns an opaque unique token. The caller adds the prefix.
type IdGenerator func() string

// Payload is a decoded JSON object plus values taken from the request
// (path params, authenticated owner). Keeping it untyped lets entities tell
// a missing field apart from a field of the wrong type.
type Payload map[string]any

var presence = validator.New()

// RequireStrings checks that every key is present (non zero) and only then
// that every key holds a string. Failures are reported as
// prefix + "." + missingCode or prefix + "." + typeCode.
func RequireStrings(p Payload, prefix, missingCode, typeCode string, keys ...string) (map[string]string, error) {
	for _, key := range keys {
		if err := presence.Var(p[key], "required"); err != nil {
			return nil, internal_errors.NewDomainError(prefix + "." + missingCode)
		}
	}

	values := make(map[string]string, len(keys))
	for _, key := range keys {
		s, ok := p[key].(string)
		if !ok {
			return nil, internal_errors.NewDomainError(prefix + "." + typeCode)
		}
		values[key] = s
	}
	return values, nil
}

// requireEntityFields is RequireStrings with the codes used by entities.
func requireEntityFields(p Payload, prefix string, keys ...string) (map[string]string, error) {
	return RequireStrings(p, prefix, internal_errors.NotContainNeededProperty, internal_errors.NotMeetDataTypeSpecification, keys...)
}
