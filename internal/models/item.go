package models

import (
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"
)

const (
	// BrandlessPlaceholder is stored in place of an empty brand. The
	// placeholder, not the empty string, is what id derivation and
	// display code see.
	BrandlessPlaceholder = "brandless"
	// PlainPlaceholder is stored in place of an empty variety.
	PlainPlaceholder = "plain"
	// UncategorizedToken stands in for the first category inside an id
	// when the record has no categories.
	UncategorizedToken = "uncategorized"

	// OnHandEpsilon is the quantity below which a record counts as gone.
	OnHandEpsilon = 0.01

	idDateFormat = "01-02-2006"
)

// InventoryItem is one kind of physical container a household tracks.
// Its id is derived from the identity-bearing fields; records with the
// same identity collapse to the same id on purpose.
type InventoryItem struct {
	ID               string                           `gorm:"primaryKey" json:"id"`
	Brand            string                           `json:"brand"`
	Variety          string                           `json:"variety"`
	Food             string                           `gorm:"index" json:"food"`
	Measurement      FoodMeasurement                  `json:"measurement"`
	Capacity         float64                          `json:"capacity"`
	StorageFormat    StorageFormat                    `json:"storageFormat"`
	StorageLocation  StorageLocation                  `json:"storageLocation"`
	ContainersOnHand float64                          `json:"containersOnHand"`
	FoodCategories   datatypes.JSONSlice[FoodCategory] `gorm:"type:jsonb" json:"foodCategories"`
	Expiration       time.Time                        `json:"expiration"`
	LastUpdated      time.Time                        `json:"lastUpdated"`
}

// TableName specifies the snapshot table for InventoryItem.
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// ValidationStamp is the minimal projection the cloud returns for cheap
// reconciliation: just enough to tell fresh from stale.
type ValidationStamp struct {
	ID          string    `json:"id"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// NewInventoryItem builds an item from src (nil means blank-entry
// defaults) and derives its id for the given owner.
func NewInventoryItem(src *InventoryItem, ownerID string) *InventoryItem {
	item := &InventoryItem{}
	if src == nil {
		item.Expiration = time.Now()
		item.FoodCategories = datatypes.JSONSlice[FoodCategory]{}
	} else {
		item.ApplyUpdate(src)
	}
	item.DeriveID(ownerID)
	return item
}

// ApplyUpdate copies the allowed fields of src onto the item, one by
// one. Unknown or computed fields (the id) never transfer.
func (i *InventoryItem) ApplyUpdate(src *InventoryItem) {
	i.Brand = src.Brand
	i.Variety = src.Variety
	i.Food = src.Food
	i.Measurement = src.Measurement
	i.Capacity = src.Capacity
	i.StorageFormat = src.StorageFormat
	i.StorageLocation = src.StorageLocation
	i.ContainersOnHand = src.ContainersOnHand
	i.FoodCategories = append(datatypes.JSONSlice[FoodCategory]{}, src.FoodCategories...)
	i.Expiration = src.Expiration
	i.LastUpdated = src.LastUpdated
}

// DeriveID computes the content-addressed id
// {owner}.{brand}.{variety}.{food}.{category}.{capacity}.{measurement}.{format}.{location}.{expiration}
// and stores it on the item. Empty brand and variety are normalized to
// their placeholders in place; callers rely on that side effect.
func (i *InventoryItem) DeriveID(ownerID string) string {
	properties := make([]string, 0, 10)
	properties = append(properties, ownerID)

	if i.Brand == "" {
		i.Brand = BrandlessPlaceholder
	}
	properties = append(properties, i.Brand)

	if i.Variety == "" {
		i.Variety = PlainPlaceholder
	}
	properties = append(properties, i.Variety)

	properties = append(properties, i.Food)

	if len(i.FoodCategories) > 0 {
		properties = append(properties, strconv.Itoa(int(i.FoodCategories[0])))
	} else {
		properties = append(properties, UncategorizedToken)
	}

	if i.Capacity != 0 {
		properties = append(properties, strconv.FormatFloat(i.Capacity, 'f', -1, 64))
	}
	properties = append(properties, i.Measurement.Abbreviation())

	if i.StorageFormat != 0 {
		properties = append(properties, i.StorageFormat.Label(1))
	}
	properties = append(properties, i.StorageLocation.Label())
	properties = append(properties, i.Expiration.Format(idDateFormat))

	id := strings.ToLower(strings.Join(properties, "."))
	// Only the first space becomes an underscore. Changing this would
	// change every existing id and break deduplication, so it stays.
	id = strings.Replace(id, " ", "_", 1)
	i.ID = id
	return id
}

// SameIdentity reports whether two records agree on every
// identity-bearing field.
func SameIdentity(a, b *InventoryItem) bool {
	if a == nil || b == nil {
		return a == b
	}
	firstCategory := func(item *InventoryItem) FoodCategory {
		if len(item.FoodCategories) > 0 {
			return item.FoodCategories[0]
		}
		return -1
	}
	return a.Brand == b.Brand &&
		a.Variety == b.Variety &&
		a.Food == b.Food &&
		a.Measurement == b.Measurement &&
		a.Capacity == b.Capacity &&
		a.StorageFormat == b.StorageFormat &&
		a.StorageLocation == b.StorageLocation &&
		firstCategory(a) == firstCategory(b) &&
		a.Expiration.Equal(b.Expiration)
}
