// Package text renders inventory records and quantities as display strings.
package text

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/pantrybase/pantrygo/internal/models"
)

// LocationSymbol returns the emoji marker for a storage location.
func LocationSymbol(location models.StorageLocation) string {
	switch location {
	case models.LocationPantry:
		return "🚪"
	case models.LocationFreezer:
		return "🧊"
	case models.LocationRefrigerator:
		return "❄️"
	case models.LocationStorage:
		return "📦"
	case models.LocationTravel:
		return "🎒"
	default:
		return "?"
	}
}

// NumbersWithFraction renders quantities like 1.5 as "1½" for display.
func NumbersWithFraction(input float64) string {
	if input == 0 {
		return ""
	}
	inStr := fmt.Sprintf("%.2f", input)
	for strings.HasSuffix(inStr, "0") || strings.HasSuffix(inStr, ".") {
		if strings.HasSuffix(inStr, ".75") || strings.HasSuffix(inStr, ".25") ||
			strings.HasSuffix(inStr, ".66") || strings.HasSuffix(inStr, ".33") {
			break
		}
		trimDot := strings.HasSuffix(inStr, ".")
		inStr = inStr[:len(inStr)-1]
		if trimDot {
			break
		}
	}
	decimalIndex := strings.Index(inStr, ".")
	if decimalIndex < 0 {
		return inStr
	}
	whole := inStr[:decimalIndex]
	fraction := inStr[decimalIndex+1:]
	switch fraction {
	case "75":
		fraction = "¾"
	case "66":
		fraction = "⅔"
	case "5":
		fraction = "½"
	case "33", "3":
		fraction = "⅓"
	case "25":
		fraction = "¼"
	default:
		fraction = "." + fraction
	}
	if whole == "0" {
		return fraction
	}
	return whole + fraction
}

// FriendlyExpression renders a record as a human phrase, e.g.
// "(2) 16oz Jars of Acme Crunchy Peanut Butter". The brandless/plain
// placeholders are suppressed.
func FriendlyExpression(item *models.InventoryItem, abbreviation bool) string {
	if item == nil {
		return ""
	}
	expression := make([]string, 0, 8)
	if item.ContainersOnHand != 1 && item.Measurement != models.MeasureCount {
		expression = append(expression, "("+NumbersWithFraction(item.ContainersOnHand)+")")
	}
	if item.Capacity != 0 && item.Measurement != models.MeasureCount {
		unit := item.Measurement.Abbreviation()
		if !abbreviation {
			unit = " " + item.Measurement.Label(item.ContainersOnHand)
		}
		expression = append(expression,
			NumbersWithFraction(item.Capacity)+unit,
			item.StorageFormat.Label(item.ContainersOnHand),
			"of")
	}
	if item.Measurement == models.MeasureCount && item.ContainersOnHand != 0 {
		expression = append(expression, NumbersWithFraction(item.ContainersOnHand))
	}
	if item.Brand != "" && item.Brand != models.BrandlessPlaceholder {
		expression = append(expression, item.Brand)
	}
	if item.Variety != "" && item.Variety != models.PlainPlaceholder {
		expression = append(expression, item.Variety)
	}
	expression = append(expression, item.Food)
	return strings.Join(expression, " ")
}

// TotalQuantityString summarizes how much of a food is on hand, e.g.
// "96oz of Milk ❄️".
func TotalQuantityString(item *models.InventoryItem) string {
	if item == nil {
		return ""
	}
	symbol := " in " + LocationSymbol(item.StorageLocation)
	if item.Measurement == models.MeasureCount {
		return fmt.Sprintf("%s %s%s", NumbersWithFraction(item.ContainersOnHand), item.Food, symbol)
	}
	total := item.ContainersOnHand * item.Capacity
	return fmt.Sprintf("%.0f%s of %s%s", total, item.Measurement.Abbreviation(), item.Food, symbol)
}

// QualifiedFoodName is the "variety food" string the classifier scans.
func QualifiedFoodName(item *models.InventoryItem) string {
	return item.Variety + " " + item.Food
}

// DaysSinceUpdatedString renders the freshness footer for a list row.
func DaysSinceUpdatedString(days int) string {
	switch {
	case days == 0:
		return "Updated Today"
	case days == 1:
		return "Updated 1 Day Ago"
	default:
		return fmt.Sprintf("Updated %d Days Ago", days)
	}
}

// chefs is the decorative symbol pool for fresh items.
var chefs = []string{
	"👨‍🍳", "👨🏻‍🍳", "👨🏼‍🍳", "👨🏽‍🍳", "👨🏾‍🍳", "👨🏿‍🍳",
	"👩‍🍳", "👩🏻‍🍳", "👩🏼‍🍳", "👩🏽‍🍳", "👩🏾‍🍳", "👩🏿‍🍳",
}

// RandomChef picks one of the chef emojis uniformly.
func RandomChef() string {
	return chefs[rand.Intn(len(chefs))]
}
