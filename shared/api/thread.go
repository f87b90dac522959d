package api

import "github.com/leerobin22/forum-api/shared/domain"

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Response DTOs. Every body carries a status; data is omitted on plain
// acknowledgements such as deletes.

type Response struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

type FailResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// UnauthorizedResponse is written by the auth middleware.
type UnauthorizedResponse struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

type AddedThreadData struct {
	AddedThread domain.AddedThread `json:"addedThread"`
}

type AddedCommentData struct {
	AddedComment domain.AddedThreadComment `json:"addedComment"`
}

type AddedReplyData struct {
	AddedReply domain.AddedCommentReply `json:"addedReply"`
}

type ThreadDetailData struct {
	Thread domain.ThreadDetail `json:"thread"`
}

func Success(data any) Response {
	return Response{Status: StatusSuccess, Data: data}
}
