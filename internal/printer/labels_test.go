package printer

import (
	"bytes"
	"testing"
	"time"

	"gorm.io/datatypes"

	"github.com/pantrybase/pantrygo/internal/models"
)

func labelTestItems(count int) []*models.InventoryItem {
	items := make([]*models.InventoryItem, 0, count)
	for i := 0; i < count; i++ {
		src := &models.InventoryItem{
			Brand:            "Vital Farms",
			Food:             "Eggs",
			Measurement:      models.MeasureCount,
			Capacity:         float64(6 + i),
			StorageFormat:    models.FormatCarton,
			StorageLocation:  models.LocationRefrigerator,
			ContainersOnHand: 1,
			FoodCategories:   datatypes.JSONSlice[models.FoodCategory]{models.CategoryEggs},
			Expiration:       time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		}
		items = append(items, models.NewInventoryItem(src, "harper"))
	}
	return items
}

func TestGenerateLabelsPDF(t *testing.T) {
	pdf, err := GenerateLabelsPDF(DefaultLabelConfig(), labelTestItems(3))
	if err != nil {
		t.Fatalf("Failed to generate PDF: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("Output does not look like a PDF")
	}
}

func TestGenerateLabelsPDFSpillsToSecondPage(t *testing.T) {
	// A 3x7 sheet holds 21 labels; 25 items need two pages
	small, err := GenerateLabelsPDF(DefaultLabelConfig(), labelTestItems(3))
	if err != nil {
		t.Fatalf("Failed to generate small PDF: %v", err)
	}
	large, err := GenerateLabelsPDF(DefaultLabelConfig(), labelTestItems(25))
	if err != nil {
		t.Fatalf("Failed to generate large PDF: %v", err)
	}
	if len(large) <= len(small) {
		t.Error("Two-page sheet should be larger than a three-label sheet")
	}
}

func TestGenerateLabelsPDFRejectsBadGrid(t *testing.T) {
	cfg := DefaultLabelConfig()
	cfg.Cols = 0
	if _, err := GenerateLabelsPDF(cfg, labelTestItems(1)); err == nil {
		t.Error("Expected an error for a zero-column grid")
	}
}
