package handler

import (
	"net/http"

	"github.com/leerobin22/forum-api/shared/api"
	"github.com/leerobin22/forum-api/shared/utils"
)

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	payload, err := readPayload(r, true, "threadId", "commentId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.reply.Create(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.Success(api.AddedReplyData{AddedReply: added}))
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	payload, err := readPayload(r, false, "threadId", "commentId", "replyId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.reply.Delete(r.Context(), payload); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Success(nil))
}
