package http

import (
	"encoding/json"
	"log"
	"net/http"

	"amortizer/domain"
	"amortizer/service"
)

type ExportHandler struct {
	scheduleService *service.ScheduleService
	exportService   *service.ExportService
}

func NewExportHandler(
	scheduleService *service.ScheduleService,
	exportService *service.ExportService,
) *ExportHandler {
	return &ExportHandler{
		scheduleService: scheduleService,
		exportService:   exportService,
	}
}

// ExportSchedule builds the schedule for the posted request and returns it as
// a downloadable file. The format query parameter selects csv, pdf or xlsx.
func (h *ExportHandler) ExportSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	var req domain.LoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.scheduleService.BuildSchedule(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var payload []byte
	var contentType, filename string

	switch format {
	case "csv":
		payload, err = h.exportService.RenderCSV(result)
		contentType, filename = "text/csv", "amortization_schedule.csv"
	case "pdf":
		payload, err = h.exportService.RenderPDF(req, result)
		contentType, filename = "application/pdf", "amortization_schedule.pdf"
	case "xlsx":
		payload, err = h.exportService.RenderXLSX(req, result)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		filename = "amortization_schedule.xlsx"
	default:
		http.Error(w, "formato inválido", http.StatusBadRequest)
		return
	}

	if err != nil {
		log.Printf("Error rendering %s export: %v", format, err)
		http.Error(w, "failed to generate export", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	if _, err := w.Write(payload); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
