package metadata

import (
	"fmt"
	"time"

	"github.com/pantrybase/pantrygo/internal/models"
	"github.com/pantrybase/pantrygo/internal/text"
)

// ShelfLife describes how urgently a record should be used.
type ShelfLife struct {
	Name             string
	Symbol           string
	Color            string
	ExpiresInMessage string
}

var shelfLives = []ShelfLife{
	{Name: "Fresh", Symbol: "", Color: "green"},
	{Name: "Use Soon", Symbol: "⏳", Color: "yellow"},
	{Name: "Use or Discard Soon", Symbol: "⌛", Color: "orange"},
	{Name: "Discard", Symbol: "🤢", Color: "red"},
}

// ShelfLifeByName returns a copy of the named band so callers can set
// per-item fields without touching the shared table. Nil for unknown
// names. The Fresh band gets a random chef for its symbol.
func ShelfLifeByName(name string) *ShelfLife {
	for i := range shelfLives {
		if shelfLives[i].Name == name {
			life := shelfLives[i]
			if life.Name == "Fresh" {
				life.Symbol = text.RandomChef()
			}
			return &life
		}
	}
	return nil
}

// DaysUntilExpiration returns whole days elapsed since the expiration
// date, truncated toward zero. Negative while the item is still good.
func DaysUntilExpiration(expiration time.Time) int {
	return daysUntilExpirationAt(time.Now(), expiration)
}

func daysUntilExpirationAt(now, expiration time.Time) int {
	return int(now.Sub(expiration).Hours() / 24)
}

// DaysSinceUpdated returns whole days since the record last changed.
func DaysSinceUpdated(lastUpdated time.Time) int {
	return int(time.Since(lastUpdated).Hours() / 24)
}

// ShelfLifeForItem classifies the record and maps its expiration date
// onto a shelf-life band using the classification's thresholds.
func ShelfLifeForItem(item *models.InventoryItem) *ShelfLife {
	return shelfLifeForItemAt(time.Now(), item)
}

func shelfLifeForItemAt(now time.Time, item *models.InventoryItem) *ShelfLife {
	if item == nil {
		return nil
	}
	meta := GetByItem(item)
	if meta == nil {
		return nil
	}

	diff := daysUntilExpirationAt(now, item.Expiration)
	var life *ShelfLife

	if diff < 0 {
		remaining := -diff
		if remaining >= meta.UseSoonDaysThreshold {
			life = ShelfLifeByName("Fresh")
		} else {
			life = ShelfLifeByName("Use Soon")
		}
		life.ExpiresInMessage = fmt.Sprintf("Expires in %d day", remaining)
		if remaining > 1 {
			life.ExpiresInMessage += "s"
		}
		return life
	}

	if diff < meta.UseOrDiscardSoonDaysThreshold {
		life = ShelfLifeByName("Use or Discard Soon")
	} else {
		life = ShelfLifeByName("Discard")
	}
	if diff == 0 {
		life.ExpiresInMessage = "Expired today"
	} else if diff > 1 {
		life.ExpiresInMessage = fmt.Sprintf("Expired %d days ago", diff)
	} else {
		life.ExpiresInMessage = fmt.Sprintf("Expired %d day ago", diff)
	}
	return life
}
