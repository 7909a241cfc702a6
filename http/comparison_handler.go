package http

import (
	"encoding/json"
	"net/http"

	"amortizer/domain"
	"amortizer/service"
)

type ComparisonHandler struct {
	service *service.ComparisonService
}

func NewComparisonHandler(service *service.ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{service: service}
}

func (h *ComparisonHandler) CompareExtraPayment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.ComparisonInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CompareExtraPayment(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
