package utils

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/leerobin22/forum-api/shared/api"
	"github.com/leerobin22/forum-api/shared/domain"
	"github.com/leerobin22/forum-api/shared/errors"
	"github.com/leerobin22/forum-api/shared/logger"
)

const internalErrorMessage = "terjadi kegagalan pada server kami"

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// WriteErrorAndStatusCode renders err as a fail response. Domain errors are
// translated first; errors without a status code become a 500.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	err = errors.Translate(err)

	var e *errors.ErrorWithStatusCode
	if stderrors.As(err, &e) {
		WriteJSON(w, e.StatusCode, api.FailResponse{Status: api.StatusFail, Message: e.Message})
		return
	}
	// default error is 500
	logger.Log.Error("unhandled error", "error", err)
	WriteJSON(w, http.StatusInternalServerError, api.FailResponse{Status: api.StatusError, Message: internalErrorMessage})
}

// DecodePayload reads a JSON object body. An empty body decodes to an empty
// payload so that field presence is judged by the entities.
func DecodePayload(r io.Reader) (domain.Payload, error) {
	payload := domain.Payload{}
	if r == nil {
		return payload, nil
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		if stderrors.Is(err, io.EOF) {
			return domain.Payload{}, nil
		}
		logger.Log.Debug("invalid request body", "error", err)
		return nil, errors.NewClientError("Body is invalid json")
	}
	if payload == nil {
		// body was the literal null
		payload = domain.Payload{}
	}
	return payload, nil
}
