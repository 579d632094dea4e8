package handlers

import (
	"encoding/json"
	"net/http"

	"qc-backend/internal/models"
	"qc-backend/internal/services"
	"qc-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type HoldHandler struct {
	Service *services.HoldService
}

func NewHoldHandler(service *services.HoldService) *HoldHandler {
	return &HoldHandler{Service: service}
}

func (h *HoldHandler) CreateHold(w http.ResponseWriter, r *http.Request) {
	var req models.CreateHoldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SessionID == "" || req.UserID == "" {
		utils.Error(w, http.StatusBadRequest, "session_id and user_id are required")
		return
	}
	if req.Reason == "" {
		req.Reason = "Out-of-spec measurement"
	}

	hold, err := h.Service.Create(&req)
	if err != nil {
		utils.Error(w, statusForError(err), err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, hold)
}

func (h *HoldHandler) ListHolds(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.List())
}

func (h *HoldHandler) GetHold(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	hold, err := h.Service.Get(id)
	if err != nil {
		utils.Error(w, statusForError(err), err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, hold)
}

func (h *HoldHandler) ReleaseHold(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.ReleaseHoldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	hold, err := h.Service.Release(id, req.UserID)
	if err != nil {
		utils.Error(w, statusForError(err), err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, hold)
}
