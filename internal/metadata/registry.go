// Package metadata classifies food names into presentation and
// shelf-life reference data using a static table built once at startup.
package metadata

import (
	"strings"
	"sync"

	"github.com/pantrybase/pantrygo/internal/models"
)

// ItemMetadata is one row of the static reference table: how a food
// family is presented and how long it keeps.
type ItemMetadata struct {
	Name                          string
	Symbol                        string
	BackgroundColor               string
	BorderColor                   string
	Match                         []string
	AverageLifeDaysPantry         int
	AverageLifeDaysFridge         int
	AverageLifeDaysFreezer        int
	UseSoonDaysThreshold          int
	UseOrDiscardSoonDaysThreshold int
	Category                      models.FoodCategory
}

// registry holds the lookup maps plus their keys in table declaration
// order. The substring fallback in GetByItem depends on that order, so
// plain map iteration is not enough.
type registry struct {
	entries   []ItemMetadata
	byName    map[string]*ItemMetadata
	nameKeys  []string
	byMatch   map[string]*ItemMetadata
	matchKeys []string
}

var (
	regOnce sync.Once
	reg     *registry
)

func getRegistry() *registry {
	regOnce.Do(func() {
		r := &registry{
			entries: itemMetadataTable,
			byName:  make(map[string]*ItemMetadata),
			byMatch: make(map[string]*ItemMetadata),
		}
		for idx := range r.entries {
			entry := &r.entries[idx]
			r.setName(entry.Name, entry)
			r.setName(entry.Name+"s", entry) // naive pluralization
			for _, alias := range entry.Match {
				r.setMatch(alias, entry)
				r.setMatch(alias+"s", entry)
			}
		}
		reg = r
	})
	return reg
}

// setName upserts a name key; a duplicate keeps its original position
// but points at the later entry.
func (r *registry) setName(key string, entry *ItemMetadata) {
	if _, exists := r.byName[key]; !exists {
		r.nameKeys = append(r.nameKeys, key)
	}
	r.byName[key] = entry
}

func (r *registry) setMatch(key string, entry *ItemMetadata) {
	if _, exists := r.byMatch[key]; !exists {
		r.matchKeys = append(r.matchKeys, key)
	}
	r.byMatch[key] = entry
}

// Default returns the catch-all "other" entry.
func Default() *ItemMetadata {
	return &getRegistry().entries[0]
}

// GetByName resolves a food name to its metadata: exact name first
// (including the plural alias), declared alternate spellings second.
// Returns nil when nothing matches.
func GetByName(name string) *ItemMetadata {
	if name == "" {
		return nil
	}
	r := getRegistry()
	lower := strings.ToLower(name)
	if entry, ok := r.byName[lower]; ok {
		return entry
	}
	if entry, ok := r.byMatch[lower]; ok {
		return entry
	}
	return nil
}

// GetByItem resolves a record to metadata. Exact food-name hits are
// cheap and common. When the name is unknown, or only restates the
// record's own category, the variety+food string is scanned against
// every table key so that a specific term declared as an alias of a
// broader bucket ("shiitake" under "mushroom") still lands. A key equal
// to the record's current category label is skipped; rematching it
// would be a no-op classification.
func GetByItem(item *models.InventoryItem) *ItemMetadata {
	if item == nil {
		return nil
	}
	r := getRegistry()

	category := models.CategoryOther
	if len(item.FoodCategories) > 0 {
		category = item.FoodCategories[0]
	}
	lowerCategory := strings.ToLower(category.Label())
	nameMatch := GetByName(item.Food)

	if nameMatch == nil || nameMatch.Name == lowerCategory {
		standardName := strings.ToLower(item.Variety + " " + item.Food)
		currentCategoryName := ""
		if len(item.FoodCategories) > 0 {
			currentCategoryName = strings.ToLower(item.FoodCategories[0].Label())
		}
		for _, key := range r.nameKeys {
			if strings.Contains(standardName, key) &&
				len(item.FoodCategories) > 0 && key != currentCategoryName {
				return r.byName[key]
			}
		}
		for _, key := range r.matchKeys {
			if strings.Contains(standardName, key) && key != currentCategoryName {
				return r.byMatch[key]
			}
		}
		if nameMatch != nil {
			return nameMatch
		}
		if entry, ok := r.byName[lowerCategory]; ok {
			return entry
		}
		return Default()
	}

	return nameMatch
}

// CategorySymbol returns the emoji for a category, or "?" when the
// category has no table entry of its own.
func CategorySymbol(category models.FoodCategory) string {
	entry := GetByName(strings.ToLower(category.Label()))
	if entry == nil {
		return "?"
	}
	return entry.Symbol
}

// CategoryColor returns the background color for a category.
func CategoryColor(category models.FoodCategory) string {
	entry := GetByName(strings.ToLower(category.Label()))
	if entry == nil || entry.BackgroundColor == "" {
		return "white"
	}
	return entry.BackgroundColor
}
