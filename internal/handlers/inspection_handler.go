package handlers

import (
	"encoding/json"
	"net/http"

	"qc-backend/internal/models"
	"qc-backend/internal/services"
	"qc-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type InspectionHandler struct {
	Service *services.InspectionService
}

func NewInspectionHandler(service *services.InspectionService) *InspectionHandler {
	return &InspectionHandler{Service: service}
}

func (h *InspectionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	session, err := h.Service.Get(id)
	if err != nil {
		utils.Error(w, statusForError(err), err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, session)
}

func (h *InspectionHandler) RecordMeasurement(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.RecordMeasurementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.Service.RecordMeasurement(id, req.FieldID, req.Value)
	if err != nil {
		utils.Error(w, statusForError(err), err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"field_id": req.FieldID,
		"result":   result,
	})
}

func (h *InspectionHandler) UpdateScanData(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateScanDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Service.UpdateScanData(id, &req); err != nil {
		utils.Error(w, statusForError(err), err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Scan data updated"})
}

func (h *InspectionHandler) AddAttachment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.AddAttachmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Ref == "" {
		utils.Error(w, http.StatusBadRequest, "ref is required")
		return
	}

	if err := h.Service.AddAttachment(id, req.Ref); err != nil {
		utils.Error(w, statusForError(err), err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Attachment added"})
}

// Submit settles the session: 409 when measurements are still pending,
// outcome hold_triggered or completed otherwise.
func (h *InspectionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	resp, err := h.Service.Submit(id)
	if err != nil {
		utils.Error(w, statusForError(err), err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, resp)
}

func (h *InspectionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.Cancel(id); err != nil {
		utils.Error(w, statusForError(err), err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Inspection cancelled"})
}
