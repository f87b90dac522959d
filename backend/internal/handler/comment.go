package handler

import (
	"net/http"

	"github.com/leerobin22/forum-api/shared/api"
	"github.com/leerobin22/forum-api/shared/utils"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	payload, err := readPayload(r, true, "threadId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.comment.Create(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.Success(api.AddedCommentData{AddedComment: added}))
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	payload, err := readPayload(r, false, "threadId", "commentId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.comment.Delete(r.Context(), payload); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Success(nil))
}

// LikeComment toggles the caller's like on a comment.
func (h *Handler) LikeComment(w http.ResponseWriter, r *http.Request) {
	payload, err := readPayload(r, false, "threadId", "commentId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.comment.ToggleLike(r.Context(), payload); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Success(nil))
}
