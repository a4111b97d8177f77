package models

// FoodCategory buckets a food item; each category also covers its
// common substitutes (see the metadata table for the match lists).
type FoodCategory int

const (
	CategoryOther FoodCategory = iota
	CategoryAlcohols
	CategoryBabyFood
	CategoryBaking
	CategoryBeverages
	CategoryBreads
	CategoryCanned
	CategoryCheeses
	CategoryCoffee
	CategoryConfectionaries
	CategoryDried
	CategoryEggs
	CategoryFruits
	CategoryGrainsAndCereals
	CategoryIce
	CategoryLegumes
	CategoryMeats
	CategoryMilksAndCreams
	CategoryNutsAndSeeds
	CategoryOils
	CategoryPastas
	CategoryPetFoods
	CategoryPrepared
	CategoryPreserves
	CategorySauces
	CategorySeasonings
	CategoryTea
	CategoryVegetables
	CategoryVinegars
	CategoryYogurts

	FoodCategoryCount
)

// Label returns the display name for a category.
func (c FoodCategory) Label() string {
	switch c {
	case CategoryAlcohols:
		return "Alcohols"
	case CategoryBabyFood:
		return "Baby Food"
	case CategoryBaking:
		return "Baking"
	case CategoryBeverages:
		return "Beverages"
	case CategoryBreads:
		return "Breads"
	case CategoryCanned:
		return "Canned"
	case CategoryCheeses:
		return "Cheeses"
	case CategoryCoffee:
		return "Coffee"
	case CategoryConfectionaries:
		return "Confectionaries"
	case CategoryDried:
		return "Dried"
	case CategoryEggs:
		return "Eggs"
	case CategoryFruits:
		return "Fruits"
	case CategoryGrainsAndCereals:
		return "Grains and Cereals"
	case CategoryIce:
		return "Ice"
	case CategoryLegumes:
		return "Legumes"
	case CategoryMeats:
		return "Meats"
	case CategoryMilksAndCreams:
		return "Milks and Creams"
	case CategoryNutsAndSeeds:
		return "Nuts and Seeds"
	case CategoryOils:
		return "Oils"
	case CategoryOther:
		return "Other"
	case CategoryPastas:
		return "Pastas"
	case CategoryPetFoods:
		return "Pet Foods"
	case CategoryPrepared:
		return "Prepared"
	case CategoryPreserves:
		return "Preserves"
	case CategorySauces:
		return "Sauces"
	case CategorySeasonings:
		return "Seasonings"
	case CategoryTea:
		return "Tea"
	case CategoryVegetables:
		return "Vegetables"
	case CategoryVinegars:
		return "Vinegars"
	case CategoryYogurts:
		return "Yogurts"
	default:
		return "Unknown"
	}
}

// FoodMeasurement is the unit a container's capacity is expressed in.
type FoodMeasurement int

const (
	MeasureOz FoodMeasurement = iota
	MeasureLb
	MeasureFlOz
	MeasureGal
	MeasureG
	MeasureCount

	FoodMeasurementCount
)

// Abbreviation is the short unit label. Record ids embed these, so the
// values must never change.
func (m FoodMeasurement) Abbreviation() string {
	switch m {
	case MeasureOz:
		return "oz"
	case MeasureFlOz:
		return "fl oz"
	case MeasureGal:
		return "gal"
	case MeasureLb:
		return "lb"
	case MeasureG:
		return "g"
	case MeasureCount:
		return "ct"
	default:
		return "unknown"
	}
}

// Label is the long unit name, pluralized on quantity.
func (m FoodMeasurement) Label(quantity float64) string {
	plural := quantity != 0 && quantity != 1
	switch m {
	case MeasureOz:
		return pluralized("Ounce", plural)
	case MeasureFlOz:
		return pluralized("Fluid Ounce", plural)
	case MeasureLb:
		return pluralized("Pound", plural)
	case MeasureGal:
		return pluralized("Gallon", plural)
	case MeasureG:
		return pluralized("Gram", plural)
	case MeasureCount:
		return "Count"
	default:
		return "Unknown"
	}
}

// StorageFormat is the physical packaging of a container.
type StorageFormat int

const (
	FormatBag StorageFormat = iota
	FormatBarrel
	FormatBasket
	FormatBlister
	FormatBlock
	FormatBottle
	FormatBox
	FormatBucket
	FormatCarton
	FormatCan
	FormatCase
	FormatCrate
	FormatFlat
	FormatGrinder
	FormatJar
	FormatJug
	FormatLog
	FormatOther
	FormatPacket
	FormatPallet
	FormatRoll
	FormatSpool
	FormatTray
	FormatTub
	FormatTube
	FormatWrapper

	StorageFormatCount
)

// Label returns the packaging name, pluralized on quantity. The
// singular form participates in record ids.
func (f StorageFormat) Label(quantity float64) string {
	plural := quantity > 1
	switch f {
	case FormatBag:
		return pluralized("Bag", plural)
	case FormatBarrel:
		return pluralized("Barrel", plural)
	case FormatBasket:
		return pluralized("Basket", plural)
	case FormatBlister:
		return pluralized("Blister", plural)
	case FormatBlock:
		return pluralized("Block", plural)
	case FormatBottle:
		return pluralized("Bottle", plural)
	case FormatBox:
		if plural {
			return "Boxes"
		}
		return "Box"
	case FormatBucket:
		return pluralized("Bucket", plural)
	case FormatCarton:
		return pluralized("Carton", plural)
	case FormatCan:
		return pluralized("Can", plural)
	case FormatCase:
		return pluralized("Case", plural)
	case FormatCrate:
		return pluralized("Crate", plural)
	case FormatFlat:
		return pluralized("Flat", plural)
	case FormatGrinder:
		return pluralized("Grinder", plural)
	case FormatJar:
		return pluralized("Jar", plural)
	case FormatJug:
		return pluralized("Jug", plural)
	case FormatLog:
		return pluralized("Log", plural)
	case FormatOther:
		return "Other"
	case FormatPacket:
		return pluralized("Packet", plural)
	case FormatPallet:
		return pluralized("Pallet", plural)
	case FormatRoll:
		return pluralized("Roll", plural)
	case FormatSpool:
		return pluralized("Spool", plural)
	case FormatTray:
		return pluralized("Tray", plural)
	case FormatTub:
		return pluralized("Tub", plural)
	case FormatTube:
		return pluralized("Tube", plural)
	case FormatWrapper:
		return pluralized("Wrapper", plural)
	default:
		return "unknown"
	}
}

// StorageLocation is where a container lives in the household.
type StorageLocation int

const (
	LocationPantry StorageLocation = iota
	LocationRefrigerator
	LocationFreezer
	LocationStorage
	LocationTravel

	StorageLocationCount
)

// Label returns the household location name.
func (l StorageLocation) Label() string {
	switch l {
	case LocationPantry:
		return "Pantry"
	case LocationRefrigerator:
		return "Refrigerator"
	case LocationFreezer:
		return "Freezer"
	case LocationStorage:
		return "Storage"
	case LocationTravel:
		return "Travel"
	default:
		return "Unknown"
	}
}

func pluralized(singular string, plural bool) string {
	if plural {
		return singular + "s"
	}
	return singular
}
