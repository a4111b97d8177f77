package models

import "strings"

// GTINItem is a cached product record keyed by its scanned code.
// Records are immutable once fetched; a nil *GTINItem in the cache
// means the cloud confirmed the code has no record.
type GTINItem struct {
	Code          string           `gorm:"primaryKey" json:"code"`
	Image         int              `json:"image"`
	MassOz        *float64         `json:"massOz,omitempty"`
	MassFlOz      *float64         `json:"massFlOz,omitempty"`
	MassG         *float64         `json:"massG,omitempty"`
	BrandRef      string           `json:"brandRef,omitempty"`
	Name          string           `json:"name,omitempty"`
	PackageFormat *StorageFormat   `json:"packageFormat,omitempty"`
	Category      *FoodCategory    `json:"category,omitempty"`
}

// TableName specifies the snapshot table for GTINItem.
func (GTINItem) TableName() string {
	return "gtin_cache"
}

// VarietyAndFood unpacks the pipe-delimited name convention
// "{variety}|{food}|". Either part may come back empty.
func (g *GTINItem) VarietyAndFood() (variety, food string) {
	parts := strings.Split(g.Name, "|")
	if len(parts) > 0 {
		variety = parts[0]
	}
	if len(parts) > 1 {
		food = parts[1]
	}
	return variety, food
}

// CapacityAndMeasurement picks the populated mass field and its unit.
// Stored values are already normalized to oz/fl oz/g by cache writes.
func (g *GTINItem) CapacityAndMeasurement() (float64, FoodMeasurement) {
	switch {
	case g.MassFlOz != nil:
		return *g.MassFlOz, MeasureFlOz
	case g.MassOz != nil:
		return *g.MassOz, MeasureOz
	case g.MassG != nil:
		return *g.MassG, MeasureG
	default:
		return 0, MeasureCount
	}
}
