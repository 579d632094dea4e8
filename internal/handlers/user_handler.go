package handlers

import (
	"net/http"

	"qc-backend/internal/repositories"
	"qc-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	Repo *repositories.UserRepository
}

func NewUserHandler(repo *repositories.UserRepository) *UserHandler {
	return &UserHandler{Repo: repo}
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Repo.List())
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	user, err := h.Repo.Get(id)
	if err != nil {
		utils.Error(w, statusForError(err), err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, user)
}
