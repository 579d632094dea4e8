package handlers

import (
	"net/http"

	"qc-backend/internal/services"
	"qc-backend/pkg/utils"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: service}
}

func (h *ReportHandler) GetKPI(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.KPISummary())
}

func (h *ReportHandler) DownloadInspectionsCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.InspectionsCSV()
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="inspections.csv"`)
	w.Write(data)
}

func (h *ReportHandler) DownloadKPIPDF(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.KPIPDF()
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="kpi_report.pdf"`)
	w.Write(data)
}

func (h *ReportHandler) DownloadBundle(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.Bundle()
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="qc_reports.zip"`)
	w.Write(data)
}
