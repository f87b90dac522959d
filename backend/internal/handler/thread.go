package handler

import (
	"net/http"

	"github.com/leerobin22/forum-api/shared/api"
	"github.com/leerobin22/forum-api/shared/utils"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	payload, err := readPayload(r, true)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.thread.Create(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.Success(api.AddedThreadData{AddedThread: added}))
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	payload, err := readPayload(r, false, "threadId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.thread.Detail(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Success(api.ThreadDetailData{Thread: thread}))
}
