package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pantrybase/pantrygo/internal/gtin"
	"github.com/pantrybase/pantrygo/internal/models"
)

// ScanResult carries a product-code hit back to the scanner, with the
// record unpacked into form-fill fields.
type ScanResult struct {
	Found         bool                  `json:"found"`
	Code          string                `json:"code"`
	Brand         string                `json:"brand,omitempty"`
	Variety       string                `json:"variety,omitempty"`
	Food          string                `json:"food,omitempty"`
	Capacity      float64               `json:"capacity,omitempty"`
	Measurement   models.FoodMeasurement `json:"measurement"`
	PackageFormat *models.StorageFormat `json:"packageFormat,omitempty"`
	Category      *models.FoodCategory  `json:"category,omitempty"`
}

// scanCode resolves a scanned barcode against the cache and cloud
func (r *Router) scanCode(w http.ResponseWriter, req *http.Request) {
	code := mux.Vars(req)["code"]
	record := r.cache.Lookup(req.Context(), code)
	if record == nil {
		respondJSON(w, http.StatusOK, ScanResult{Found: false, Code: code, Measurement: models.MeasureCount})
		return
	}

	variety, food := record.VarietyAndFood()
	capacity, measurement := record.CapacityAndMeasurement()
	respondJSON(w, http.StatusOK, ScanResult{
		Found:         true,
		Code:          record.Code,
		Brand:         gtin.BrandByBSIN(record.BrandRef),
		Variety:       variety,
		Food:          food,
		Capacity:      capacity,
		Measurement:   measurement,
		PackageFormat: record.PackageFormat,
		Category:      record.Category,
	})
}

// recordScan links a saved item back to the barcode it was scanned
// from, so the next scan of that code pre-fills the form
func (r *Router) recordScan(w http.ResponseWriter, req *http.Request) {
	code := mux.Vars(req)["code"]

	var body models.InventoryItem
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	requestRemoteUpdate := req.URL.Query().Get("share") == "true"
	r.cache.UpdateCache(req.Context(), code, &body, requestRemoteUpdate)

	if err := r.snapshots.SaveGTINRecords(r.cache.Snapshot()); err != nil {
		log.Printf("⚠️ Could not persist GTIN cache: %v", err)
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Scan recorded",
		"code":    code,
	})
}
