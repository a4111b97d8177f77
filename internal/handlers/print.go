package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/pantrybase/pantrygo/internal/printer"
)

// printLabels renders a QR label sheet for the current inventory
func (r *Router) printLabels(w http.ResponseWriter, req *http.Request) {
	config := printer.DefaultLabelConfig()
	if req.ContentLength > 0 {
		if err := json.NewDecoder(req.Body).Decode(&config); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request payload")
			return
		}
	}

	items := r.store.Items()
	if len(items) == 0 {
		respondError(w, http.StatusNotFound, "No items to print")
		return
	}

	pdfBytes, err := printer.GenerateLabelsPDF(config, items)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to generate PDF: %v", err))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"pantry_labels.pdf\"")
	w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))
	w.Write(pdfBytes)
}
