package handlers

import (
	"encoding/json"
	"net/http"

	"qc-backend/internal/models"
	"qc-backend/internal/services"
	"qc-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type QueueHandler struct {
	Queue       *services.QueueService
	Inspections *services.InspectionService
}

func NewQueueHandler(queue *services.QueueService, inspections *services.InspectionService) *QueueHandler {
	return &QueueHandler{Queue: queue, Inspections: inspections}
}

func (h *QueueHandler) ListQueue(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := services.QueueFilter{
		Search:   q.Get("search"),
		Priority: q.Get("priority"),
		Line:     q.Get("line"),
		Sort:     q.Get("sort") == "true" || q.Get("sort") == "1",
	}

	items := h.Queue.List(filter)
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"items":        items,
		"missed_count": h.Queue.MissedCount(),
	})
}

func (h *QueueHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	item, err := h.Queue.Get(id)
	if err != nil {
		utils.Error(w, statusForError(err), err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, item)
}

// StartInspection locks the item for the requesting user and opens a
// session. 409 on lock conflict, 404 on unknown item or user.
func (h *QueueHandler) StartInspection(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.StartInspectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" {
		utils.Error(w, http.StatusBadRequest, "user_id is required")
		return
	}

	session, err := h.Inspections.Start(id, req.UserID)
	if err != nil {
		utils.Error(w, statusForError(err), err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, session)
}
