package inventory

import (
	"strconv"
	"strings"

	"github.com/pantrybase/pantrygo/internal/models"
)

// validateDecimal checks that a quantity renders as an unsigned
// decimal with at most two places. ok is false when the value is
// malformed; problem carries an extra message fragment when there is
// something more specific to say than the field name.
func validateDecimal(value float64) (ok bool, problem string) {
	rendered := strconv.FormatFloat(value, 'f', -1, 64)
	if rendered == "" {
		return false, ""
	}
	for _, ch := range rendered {
		if (ch < '0' || ch > '9') && ch != '.' {
			return false, ""
		}
	}
	if dot := strings.IndexByte(rendered, '.'); dot >= 0 {
		if len(rendered)-(dot+1) > 2 {
			return false, " Numbers After Decimal Point"
		}
	}
	return true, ""
}

// ValidateItem checks the minimum fields needed to derive an id plus
// the on-hand quantity. It returns the name of the first offending
// field, or the empty string when the record is valid. Capacity is
// optional and gets no error of its own.
func ValidateItem(item *models.InventoryItem) string {
	if len(item.Food) < 1 {
		return "Product Name"
	}
	if item.Measurement < 0 {
		return "Measurement"
	}
	if item.StorageFormat < 0 && item.Measurement != models.MeasureCount {
		return "Format"
	}
	if item.StorageLocation < 0 {
		return "Location"
	}

	if ok, problem := validateDecimal(item.ContainersOnHand); !ok {
		return "On Hand" + problem
	}

	return ""
}
