package metadata

import (
	"testing"

	"gorm.io/datatypes"

	"github.com/pantrybase/pantrygo/internal/models"
)

func testItem(variety, food string, categories ...models.FoodCategory) *models.InventoryItem {
	return &models.InventoryItem{
		Variety:        variety,
		Food:           food,
		FoodCategories: datatypes.JSONSlice[models.FoodCategory](categories),
	}
}

func TestGetByNameExact(t *testing.T) {
	entry := GetByName("banana")
	if entry == nil {
		t.Fatal("expected a match for banana")
	}
	if entry.Name != "banana" {
		t.Errorf("expected banana, got %s", entry.Name)
	}
}

func TestGetByNameCaseAndPlural(t *testing.T) {
	if entry := GetByName("Bananas"); entry == nil || entry.Name != "banana" {
		t.Errorf("plural uppercase lookup failed: %+v", entry)
	}
	if entry := GetByName("CHERRIES"); entry == nil || entry.Name != "cherry" {
		t.Errorf("declared plural lookup failed: %+v", entry)
	}
}

func TestGetByNameAlias(t *testing.T) {
	entry := GetByName("shiitake")
	if entry == nil || entry.Name != "mushroom" {
		t.Fatalf("expected shiitake to resolve to mushroom, got %+v", entry)
	}
	// aliases get the same naive pluralization as names
	if entry := GetByName("shallots"); entry == nil || entry.Name != "garlic" {
		t.Errorf("expected shallots to resolve to garlic, got %+v", entry)
	}
}

func TestGetByNameUnknown(t *testing.T) {
	if entry := GetByName("unobtainium"); entry != nil {
		t.Errorf("expected nil for unknown name, got %s", entry.Name)
	}
	if entry := GetByName(""); entry != nil {
		t.Errorf("expected nil for empty name, got %s", entry.Name)
	}
}

func TestDuplicateAliasKeepsLastEntry(t *testing.T) {
	// "squash" is declared on both broccoli and pumpkin; the later
	// declaration wins the value while keeping the earlier position.
	entry := GetByName("squash")
	if entry == nil || entry.Name != "pumpkin" {
		t.Fatalf("expected squash to resolve to pumpkin, got %+v", entry)
	}
}

func TestGetByItemDirectNameHit(t *testing.T) {
	item := testItem("green", "banana", models.CategoryFruits)
	entry := GetByItem(item)
	if entry == nil || entry.Name != "banana" {
		t.Fatalf("expected banana, got %+v", entry)
	}
}

func TestGetByItemGhostSubcategory(t *testing.T) {
	// The food name restates the category, so the variety is scanned
	// for something more specific.
	item := testItem("shiitake", "vegetables", models.CategoryVegetables)
	entry := GetByItem(item)
	if entry == nil || entry.Name != "mushroom" {
		t.Fatalf("expected variety scan to find mushroom, got %+v", entry)
	}
}

func TestGetByItemUnknownFoodFallsBackToCategory(t *testing.T) {
	item := testItem("", "rambutan", models.CategoryFruits)
	entry := GetByItem(item)
	if entry == nil || entry.Name != "fruits" {
		t.Fatalf("expected category fallback to fruits, got %+v", entry)
	}
}

func TestGetByItemNoCategoriesDefaultsToOther(t *testing.T) {
	item := testItem("", "rambutan")
	entry := GetByItem(item)
	if entry == nil || entry.Name != "other" {
		t.Fatalf("expected other, got %+v", entry)
	}
}

func TestGetByItemStable(t *testing.T) {
	// Re-classifying with the category the last classification chose
	// must return the same entry, not ping-pong between buckets.
	item := testItem("chocolate chip", "cookies", models.CategoryConfectionaries)
	first := GetByItem(item)
	if first == nil {
		t.Fatal("expected a classification")
	}
	item.FoodCategories = datatypes.JSONSlice[models.FoodCategory]{first.Category}
	second := GetByItem(item)
	if second == nil || second.Name != first.Name {
		t.Errorf("classification not stable: %s then %+v", first.Name, second)
	}
}

func TestGetByItemNil(t *testing.T) {
	if entry := GetByItem(nil); entry != nil {
		t.Errorf("expected nil for nil item, got %+v", entry)
	}
}

func TestCategorySymbolAndColor(t *testing.T) {
	if sym := CategorySymbol(models.CategoryEggs); sym != "🥚" {
		t.Errorf("expected egg symbol, got %q", sym)
	}
	if color := CategoryColor(models.CategoryEggs); color != "#f0e548" {
		t.Errorf("unexpected egg color %q", color)
	}
}
