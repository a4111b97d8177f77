package text

import (
	"testing"

	"github.com/pantrybase/pantrygo/internal/models"
)

func TestNumbersWithFraction(t *testing.T) {
	cases := []struct {
		input float64
		want  string
	}{
		{0, ""},
		{2, "2"},
		{2.0, "2"},
		{1.5, "1½"},
		{0.5, "½"},
		{0.25, "¼"},
		{0.75, "¾"},
		{0.33, "⅓"},
		{0.66, "⅔"},
		{1.33, "1⅓"},
		{1.2, "1.2"},
		{12, "12"},
	}
	for _, tc := range cases {
		if got := NumbersWithFraction(tc.input); got != tc.want {
			t.Errorf("NumbersWithFraction(%v) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFriendlyExpression(t *testing.T) {
	item := &models.InventoryItem{
		Brand:            "Acme",
		Variety:          "Crunchy",
		Food:             "Peanut Butter",
		Measurement:      models.MeasureOz,
		Capacity:         16,
		StorageFormat:    models.FormatJar,
		ContainersOnHand: 2,
	}
	want := "(2) 16oz Jars of Acme Crunchy Peanut Butter"
	if got := FriendlyExpression(item, true); got != want {
		t.Errorf("FriendlyExpression = %q, want %q", got, want)
	}
}

func TestFriendlyExpressionSuppressesPlaceholders(t *testing.T) {
	item := &models.InventoryItem{
		Brand:            models.BrandlessPlaceholder,
		Variety:          models.PlainPlaceholder,
		Food:             "Eggs",
		Measurement:      models.MeasureCount,
		ContainersOnHand: 12,
	}
	want := "12 Eggs"
	if got := FriendlyExpression(item, true); got != want {
		t.Errorf("FriendlyExpression = %q, want %q", got, want)
	}
}

func TestFriendlyExpressionSingleContainer(t *testing.T) {
	item := &models.InventoryItem{
		Food:             "Milk",
		Measurement:      models.MeasureFlOz,
		Capacity:         128,
		StorageFormat:    models.FormatJug,
		ContainersOnHand: 1,
	}
	// A single container drops the leading count
	want := "128fl oz Jug of Milk"
	if got := FriendlyExpression(item, true); got != want {
		t.Errorf("FriendlyExpression = %q, want %q", got, want)
	}
}

func TestFriendlyExpressionNil(t *testing.T) {
	if got := FriendlyExpression(nil, true); got != "" {
		t.Errorf("Expected empty string for nil item, got %q", got)
	}
}

func TestTotalQuantityString(t *testing.T) {
	item := &models.InventoryItem{
		Food:             "Milk",
		Measurement:      models.MeasureFlOz,
		Capacity:         32,
		StorageLocation:  models.LocationRefrigerator,
		ContainersOnHand: 3,
	}
	want := "96fl oz of Milk in ❄️"
	if got := TotalQuantityString(item); got != want {
		t.Errorf("TotalQuantityString = %q, want %q", got, want)
	}

	counted := &models.InventoryItem{
		Food:             "Eggs",
		Measurement:      models.MeasureCount,
		StorageLocation:  models.LocationPantry,
		ContainersOnHand: 12,
	}
	want = "12 Eggs in 🚪"
	if got := TotalQuantityString(counted); got != want {
		t.Errorf("TotalQuantityString = %q, want %q", got, want)
	}
}

func TestDaysSinceUpdatedString(t *testing.T) {
	cases := map[int]string{
		0: "Updated Today",
		1: "Updated 1 Day Ago",
		7: "Updated 7 Days Ago",
	}
	for days, want := range cases {
		if got := DaysSinceUpdatedString(days); got != want {
			t.Errorf("DaysSinceUpdatedString(%d) = %q, want %q", days, got, want)
		}
	}
}

func TestRandomChefDrawsFromPool(t *testing.T) {
	pool := make(map[string]bool, len(chefs))
	for _, chef := range chefs {
		pool[chef] = true
	}
	for i := 0; i < 50; i++ {
		if chef := RandomChef(); !pool[chef] {
			t.Fatalf("RandomChef returned %q, not in the pool", chef)
		}
	}
}
