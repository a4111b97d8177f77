package inventory

import (
	"testing"

	"gorm.io/datatypes"

	"github.com/pantrybase/pantrygo/internal/models"
)

func validTestItem() *models.InventoryItem {
	return &models.InventoryItem{
		Food:             "Eggs",
		Measurement:      models.MeasureCount,
		Capacity:         12,
		StorageFormat:    models.FormatCarton,
		StorageLocation:  models.LocationRefrigerator,
		ContainersOnHand: 1,
		FoodCategories:   datatypes.JSONSlice[models.FoodCategory]{models.CategoryEggs},
	}
}

func TestValidateItemAccepts(t *testing.T) {
	if field := ValidateItem(validTestItem()); field != "" {
		t.Errorf("Valid item flagged field %q", field)
	}
}

func TestValidateItemFieldNames(t *testing.T) {
	cases := map[string]struct {
		mutate func(*models.InventoryItem)
		field  string
	}{
		"missing food": {
			mutate: func(i *models.InventoryItem) { i.Food = "" },
			field:  "Product Name",
		},
		"negative measurement": {
			mutate: func(i *models.InventoryItem) { i.Measurement = -1 },
			field:  "Measurement",
		},
		"negative format": {
			mutate: func(i *models.InventoryItem) {
				i.Measurement = models.MeasureOz
				i.StorageFormat = -1
			},
			field: "Format",
		},
		"negative location": {
			mutate: func(i *models.InventoryItem) { i.StorageLocation = -1 },
			field:  "Location",
		},
		"negative on hand": {
			mutate: func(i *models.InventoryItem) { i.ContainersOnHand = -1 },
			field:  "On Hand",
		},
		"too many decimal places": {
			mutate: func(i *models.InventoryItem) { i.ContainersOnHand = 1.125 },
			field:  "On Hand Numbers After Decimal Point",
		},
	}

	for name, tc := range cases {
		item := validTestItem()
		tc.mutate(item)
		if field := ValidateItem(item); field != tc.field {
			t.Errorf("%s: expected field %q, got %q", name, tc.field, field)
		}
	}
}

func TestValidateItemCountSkipsFormat(t *testing.T) {
	item := validTestItem()
	item.Measurement = models.MeasureCount
	item.StorageFormat = -1
	if field := ValidateItem(item); field != "" {
		t.Errorf("Count-measured item should not need a format, got %q", field)
	}
}

func TestValidateItemDecimalBoundary(t *testing.T) {
	item := validTestItem()
	item.ContainersOnHand = 1.25
	if field := ValidateItem(item); field != "" {
		t.Errorf("Two decimal places should pass, got %q", field)
	}
}

func TestValidateItemIgnoresCapacity(t *testing.T) {
	item := validTestItem()
	item.Capacity = -3.14159
	if field := ValidateItem(item); field != "" {
		t.Errorf("Capacity is optional and should never be flagged, got %q", field)
	}
	if item.Capacity != -3.14159 {
		t.Error("Validation must not mutate the record")
	}
}
