package metadata

import "github.com/pantrybase/pantrygo/internal/models"

// itemMetadataTable is the static reference table. Declaration order
// matters: the substring fallback returns the first key that hits.
// Index 0 is the catch-all default.
var itemMetadataTable = []ItemMetadata{
	{
		Name:                          "other",
		Symbol:                        "🍲",
		BackgroundColor:               "#f7f7f7",
		BorderColor:                   "#000000",
		AverageLifeDaysFreezer:        90,
		AverageLifeDaysFridge:         14,
		AverageLifeDaysPantry:         7,
		UseSoonDaysThreshold:          7,
		UseOrDiscardSoonDaysThreshold: 14,
		Category:                      models.CategoryOther,
	}, {
		Name:                          "pizza",
		Symbol:                        "🍕",
		BackgroundColor:               "#fffa96",
		BorderColor:                   "#fc3d3d",
		AverageLifeDaysFreezer:        365,
		AverageLifeDaysFridge:         30,
		AverageLifeDaysPantry:         2,
		UseSoonDaysThreshold:          5,
		UseOrDiscardSoonDaysThreshold: 3,
		Category:                      models.CategoryPrepared,
	}, {
		Name:                          "eggs",
		Symbol:                        "🥚",
		BackgroundColor:               "#f0e548",
		BorderColor:                   "#8f8f8f",
		Match:                         []string{"egg"},
		AverageLifeDaysFreezer:        365,
		AverageLifeDaysFridge:         30,
		AverageLifeDaysPantry:         7,
		UseSoonDaysThreshold:          3,
		UseOrDiscardSoonDaysThreshold: 14,
		Category:                      models.CategoryEggs,
	}, {
		Name:                          "tortilla",
		Symbol:                        "🌮",
		BackgroundColor:               "#fff89c",
		BorderColor:                   "#b0964f",
		Match:                         []string{"tostada"},
		AverageLifeDaysFreezer:        365,
		AverageLifeDaysFridge:         30,
		AverageLifeDaysPantry:         7,
		UseSoonDaysThreshold:          3,
		UseOrDiscardSoonDaysThreshold: 7,
		Category:                      models.CategoryBreads,
	}, {
		Name:            "confectionaries",
		Symbol:          "🍭",
		BackgroundColor: "white",
		BorderColor:     "#a03cd6",
		Match: []string{"sweetener", "candy", "candied", "treacle", "molases", "caramel",
			"ice cream", "popcicle", "sugar", "marshmallow", "graham cracker", "white chocolate"},
		AverageLifeDaysFreezer:        365,
		AverageLifeDaysFridge:         365,
		AverageLifeDaysPantry:         365,
		UseSoonDaysThreshold:          30,
		UseOrDiscardSoonDaysThreshold: 60,
		Category:                      models.CategoryConfectionaries,
	}, {
		Name:                          "coffee",
		Symbol:                        "☕",
		BackgroundColor:               "#9e835a",
		BorderColor:                   "#594425",
		AverageLifeDaysFreezer:        365,
		AverageLifeDaysFridge:         60,
		AverageLifeDaysPantry:         30,
		UseSoonDaysThreshold:          14,
		UseOrDiscardSoonDaysThreshold: 60,
		Category:                      models.CategoryCoffee,
	}, {
		Name:                          "tea",
		Symbol:                        "☕",
		BackgroundColor:               "#fff8d9",
		BorderColor:                   "#258a4d",
		AverageLifeDaysFreezer:        365,
		AverageLifeDaysFridge:         60,
		AverageLifeDaysPantry:         30,
		UseSoonDaysThreshold:          14,
		UseOrDiscardSoonDaysThreshold: 60,
		Category:                      models.CategoryTea,
	}, {
		Name:                          "beverages",
		Symbol:                        "🥤",
		BackgroundColor:               "#e0e0e0",
		BorderColor:                   "#ff383b",
		Match:                         []string{"beverage", "juice", "drink", "soda", "pop", "cola", "coke", "kombucha"},
		AverageLifeDaysFreezer:        365,
		AverageLifeDaysFridge:         90,
		AverageLifeDaysPantry:         60,
		UseSoonDaysThreshold:          14,
		UseOrDiscardSoonDaysThreshold: 60,
		Category:                      models.CategoryBeverages,
	}, {
		Name:                          "preserves",
		Symbol:                        "🍯",
		BackgroundColor:               "#f0e573",
		BorderColor:                   "#8a8120",
		Match:                         []string{"preserve", "honey", "syrup", "jam", "jelly", "glaze"},
		AverageLifeDaysFreezer:        365,
		AverageLifeDaysFridge:         365,
		AverageLifeDaysPantry:         365,
		UseSoonDaysThreshold:          30,
		UseOrDiscardSoonDaysThreshold: 365,
		Category:                      models.CategoryPreserves,
	}, {
		Name:                          "dried",
		Symbol:                        "♨",
		BackgroundColor:               "#f5ab7a",
		BorderColor:                   "#8f8f8f",
		Match:                         []string{"jerky", "jerkey"},
		AverageLifeDaysFreezer:        365 * 2,
		AverageLifeDaysFridge:         365,
		AverageLifeDaysPantry:         365,
		UseSoonDaysThreshold:          30,
		UseOrDiscardSoonDaysThreshold: 60,
		Category:                      models.CategoryDried,
	}, {
		Name:                          "pie",
		Symbol:                        "🥧",
		BackgroundColor:               "#f2cb5c",
		BorderColor:                   "#856f31",
		Match:                         []string{"pastry", "pastries", "danish"},
		AverageLifeDaysFreezer:        365,
		AverageLifeDaysFridge:         30,
		AverageLifeDaysPantry:         5,
		UseSoonDaysThreshold:          2,
		UseOrDiscardSoonDaysThreshold: 7,
		Category:                      models.CategoryConfectionaries,
	}, {
		Name:                          "cookie",
		Symbol:                        "🍪",
		BackgroundColor:               "#ba9c47",
		BorderColor:                   "#7d6b38",
		Match:                         []string{"wafer", "biscuit"},
		AverageLifeDaysFreezer:        365,
		AverageLifeDaysFridge:         30,
		AverageLifeDaysPantry:         10,
		UseSoonDaysThreshold:          2,
		UseOrDiscardSoonDaysThreshold: 7,
		Category:                      models.CategoryConfectionaries,
	}, {
		Name:                          "cake",
		Symbol:                        "🍰",
		BackgroundColor:               "#f5f395",
		BorderColor:                   "#d143ca",
		AverageLifeDaysFreezer:        365,
		AverageLifeDaysFridge:         30,
		AverageLifeDaysPantry:         5,
		UseSoonDaysThreshold:          2,
		UseOrDiscardSoonDaysThreshold: 7,
		Category:                      models.CategoryConfectionaries,
	}, {
		Name:                          "chocolate",
		Symbol:                        "🍫",
		BackgroundColor:               "#bd8f62",
		BorderColor:                   "#75502b",
		Match:                         []string{"cocoa", "cacao", "fudge"},
		AverageLifeDaysFreezer:        365,
		AverageLifeDaysFridge:         365,
		AverageLifeDaysPantry:         365 / 2,
		UseSoonDaysThreshold:          14,
		UseOrDiscardSoonDaysThreshold: 90,
		Category:                      models.CategoryConfectionaries,
	}, {
		Name:                          "oyster",
		Symbol:                        "🦪",
		BackgroundColor:               "#ababab",
		BorderColor:                   "#99895c",
		Match:                         []string{"mussel", "clam", "scallop"},
		AverageLifeDaysFreezer:        365,
		AverageLifeDaysFridge:         14,
		AverageLifeDaysPantry:         2,
		UseSoonDaysThreshold:          1,
		UseOrDiscardSoonDaysThreshold: 3,
		Category:                      models.CategoryMeats,
	}, {
		Name:                          "butter",
		Symbol:                        "🧈",
		BackgroundColor:               "#fcffc2",
		BorderColor:                   "#77cae0",
		AverageLifeDaysFreezer:        365 * 2,
		AverageLifeDaysFridge:         30 * 9,
		AverageLifeDaysPantry:         30,
		UseSoonDaysThreshold:          7,
		UseOrDiscardSoonDaysThreshold: 30,
		Category:                      models.CategoryOils,
	}, {
		Name:            "mushroom",
		Symbol:          "🍄",
		BackgroundColor: "#f5dcce",
		BorderColor:     "#6e6e6e",
		Match: []string{"yeast", "truffle", "fungus", "fungi", "crimini", "shitake", "shiitake",
			"portobello", "enoki", "porcini", "chanterelle"},
		AverageLifeDaysFreezer:        30 * 8,
		AverageLifeDaysFridge:         7,
		AverageLifeDaysPantry:         1,
		UseSoonDaysThreshold:          2,
		UseOrDiscardSoonDaysThreshold: 7,
		Category:                      models.CategoryVegetables,
	}, {
		Name:                          "onion",
		Symbol:                        "🧅",
		BackgroundColor:               "#fff8bd",
		BorderColor:                   "#d9c948",
		AverageLifeDaysFreezer:        8 * 30,
		AverageLifeDaysFridge:         60,
		AverageLifeDaysPantry:         30,
		UseSoonDaysThreshold:          7,
		UseOrDiscardSoonDaysThreshold: 7,
		Category:                      models.CategoryVegetables,
	}, {
		Name:                          "garlic",
		Symbol:                        "🧄",
		BackgroundColor:               "#fff8bd",
		BorderColor:                   "#d9c948",
		Match:                         []string{"shallot"},
		AverageLifeDaysFreezer:        365,
		AverageLifeDaysFridge:         365 / 2,
		AverageLifeDaysPantry:         30 * 5,
		UseSoonDaysThreshold:          14,
		UseOrDiscardSoonDaysThreshold: 14,
		Category:                      models.CategoryVegetables,
	}, {
		Name:                          "broccoli",
		Symbol:                        "🥦",
		BackgroundColor:               "#bceb71",
		BorderColor:                   "#4ac748",
		Match:                         []string{"squash"},
		AverageLifeDaysFreezer:        30 * 8,
		AverageLifeDaysFridge:         5,
		AverageLifeDaysPantry:         0,
		UseSoonDaysThreshold:          2,
		UseOrDiscardSoonDaysThreshold: 3,
		Category:                      models.CategoryVegetables,
	}, {
		Name:                          "pumpkin",
		Symbol:                        "🎃",
		BackgroundColor:               "#fcb36a",
		BorderColor:                   "#3d3d3d",
		Match:                         []string{"squash"},
		AverageLifeDaysFreezer:        30 * 8,
		AverageLifeDaysFridge:         3,
		AverageLifeDaysPantry:         30,
		UseSoonDaysThreshold:          2,
		UseOrDiscardSoonDaysThreshold: 5,
		Category:                      models.CategoryVegetables,
	}, {
		Name:                          "cucumber",
		Symbol:                        "🥒",
		BackgroundColor:               "#c5fc8d",
		BorderColor:                   "#6fb528",
		Match:                         []string{"zucchini", "pickle", "relish"},
		AverageLifeDaysFreezer:        30 * 8,
		AverageLifeDaysFridge:         5,
		AverageLifeDaysPantry:         7,
		UseSoonDaysThreshold:          2,
		UseOrDiscardSoonDaysThreshold: 5,
		Category:                      models.CategoryVegetables,
	}, {
		Name:                          "pepper",
		Symbol:                        "🌶",
		BackgroundColor:               "#e66060",
		BorderColor:                   "#5ad442",
		Match:                         []string{"jalapeno", "chile", "habanero", "poblano", "scotch bonnet", "ancho"},
		AverageLifeDaysFreezer:        30 * 8,
		AverageLifeDaysFridge:         14,
		AverageLifeDaysPantry:         7,
		UseSoonDaysThreshold:          2,
		UseOrDiscardSoonDaysThreshold: 7,
		Category:                      models.CategoryVegetables,
	}, {
		Name:                          "corn",
		Symbol:                        "🌽",
		BackgroundColor:               "#fffd9c",
		BorderColor:                   "#62d158",
		Match:                         []string{"maize"},
		AverageLifeDaysFreezer:        30 * 8,
		AverageLifeDaysFridge:         14,
		AverageLifeDaysPantry:         3,
		UseSoonDaysThreshold:          2,
		UseOrDiscardSoonDaysThreshold: 5,
		Category:                      models.CategoryVegetables,
	}, {
		Name:                          "carrot",
		Symbol:                        "🥕",
		BackgroundColor:               "#ffc773",
		BorderColor:                   "#7ddb65",
		AverageLifeDaysFreezer:        30 * 8,
		AverageLifeDaysFridge:         14 * 4,
		AverageLifeDaysPantry:         3,
		UseSoonDaysThreshold:          3,
		UseOrDiscardSoonDaysThreshold: 7,
		Category:                      models.CategoryVegetables,
	}, {
		Name:                          "potato",
		Symbol:                        "🥔",
		BackgroundColor:               "#d1b977",
		BorderColor:                   "#947c3b",
		Match:                         []string{"potatoes"},
		AverageLifeDaysFreezer:        30 * 8,
		AverageLifeDaysFridge:         30 * 3,
		AverageLifeDaysPantry:         14,
		UseSoonDaysThreshold:          3,
		UseOrDiscardSoonDaysThreshold: 7,
		Category:                      models.CategoryVegetables,
	}, {
		Name:                          "eggplant",
		Symbol:                        "🍆",
		BackgroundColor:               "#d080ff",
		BorderColor:                   "#812db3",
		AverageLifeDaysFreezer:        30 * 6,
		AverageLifeDaysFridge:         10,
		AverageLifeDaysPantry:         2,
		UseSoonDaysThreshold:          2,
		UseOrDiscardSoonDaysThreshold: 4,
		Category:                      models.CategoryVegetables,
	}, {
		Name:                          "avocado",
		Symbol:                        "🥑",
		BackgroundColor:               "#b8ff91",
		BorderColor:                   "#508a30",
		AverageLifeDaysFreezer:        30 * 6,
		AverageLifeDaysFridge:         5,
		AverageLifeDaysPantry:         4,
		UseSoonDaysThreshold:          3,
		UseOrDiscardSoonDaysThreshold: 6,
		Category:                      models.CategoryVegetables,
	}, {
		Name:                          "coconut",
		Symbol:                        "🥥",
		BackgroundColor:               "white",
		BorderColor:                   "#916540",
		AverageLifeDaysFreezer:        30 * 6,
		AverageLifeDaysFridge:         7,
		AverageLifeDaysPantry:         30,
		UseSoonDaysThreshold:          4,
		UseOrDiscardSoonDaysThreshold: 8,
		Category:                      models.CategoryFruits,
	}, {
		Name:                          "tomato",
		Symbol:                        "🍅",
		BackgroundColor:               "#ff7d7d",
		BorderColor:                   "#56db44",
		Match:                         []string{"tomatoes", "ketchup"},
		AverageLifeDaysFreezer:        30 * 6,
		AverageLifeDaysFridge:         7,
		AverageLifeDaysPantry:         2,
		UseSoonDaysThreshold:          2,
		UseOrDiscardSoonDaysThreshold: 7,
		Category:                      models.CategoryVegetables,
	}, {
		Name:                          "kiwi",
		Symbol:                        "🥝",
		BackgroundColor:               "#d2ff96",
		BorderColor:                   "#b58b43",
		AverageLifeDaysFreezer:        30 * 6,
		AverageLifeDaysFridge:         7 * 4,
		AverageLifeDaysPantry:         7,
		UseSoonDaysThreshold:          4,
		UseOrDiscardSoonDaysThreshold: 7,
		Category:                      models.CategoryFruits,
	}, {
		Name:                          "strawberry",
		Symbol:                        "🍓",
		BackgroundColor:               "#ff6969",
		BorderColor:                   "#34eb37",
		Match:                         []string{"berry", "berries", "strawberries"},
		AverageLifeDaysFreezer:        30 * 6,
		AverageLifeDaysFridge:         7,
		AverageLifeDaysPantry:         2,
		UseSoonDaysThreshold:          3,
		UseOrDiscardSoonDaysThreshold: 5,
		Category:                      models.CategoryFruits,
	}, {
		Name:                          "cherry",
		Symbol:                        "🍒",
		BackgroundColor:               "#ff8c8c",
		BorderColor:                   "#42d442",
		Match:                         []string{"cherries"},
		AverageLifeDaysFreezer:        30 * 6,
		AverageLifeDaysFridge:         30,
		AverageLifeDaysPantry:         7,
		UseSoonDaysThreshold:          4,
		UseOrDiscardSoonDaysThreshold: 7,
		Category:                      models.CategoryFruits,
	}, {
		Name:                          "peach",
		Symbol:                        "🍑",
		BackgroundColor:               "#ffe2a3",
		BorderColor:                   "#6fde74",
		Match:                         []string{"peaches"},
		AverageLifeDaysFreezer:        30 * 6,
		AverageLifeDaysFridge:         5,
		AverageLifeDaysPantry:         3,
		UseSoonDaysThreshold:          2,
		UseOrDiscardSoonDaysThreshold: 5,
		Category:                      models.CategoryFruits,
	}, {
		Name:                          "pear",
		Symbol:                        "🍐",
		BackgroundColor:               "#e2ffad",
		BorderColor:                   "#e1e376",
		AverageLifeDaysFreezer:        30 * 8,
		AverageLifeDaysFridge:         10,
		AverageLifeDaysPantry:         3,
		UseSoonDaysThreshold:          2,
		UseOrDiscardSoonDaysThreshold: 5,
		Category:                      models.CategoryFruits,
	}, {
		Name:                          "fruits",
		Symbol:                        "🍎",
		BackgroundColor:               "#e05151",
		BorderColor:                   "#78d95b",
		Match:                         []string{"apple", "fruit"},
		AverageLifeDaysFreezer:        30 * 6,
		AverageLifeDaysFridge:         21,
		AverageLifeDaysPantry:         7,
		UseSoonDaysThreshold:          4,
		UseOrDiscardSoonDaysThreshold: 7,
		Category:                      models.CategoryFruits,
	}, {
		Name:                          "mango",
		Symbol:                        "🥭",
		Match:                         []string{"mangoes"},
		BackgroundColor:               "#f0a630",
		BorderColor:                   "#a4d95b",
		AverageLifeDaysFreezer:        30 * 6,
		AverageLifeDaysFridge:         7,
		AverageLifeDaysPantry:         2,
		UseSoonDaysThreshold:          3,
		UseOrDiscardSoonDaysThreshold: 5,
		Category:                      models.CategoryFruits,
	}, {
		Name:                          "pineapple",
		Symbol:                        "🍍",
		BackgroundColor:               "#fcea72",
		BorderColor:                   "#c7ff87",
		AverageLifeDaysFreezer:        30 * 6,
		AverageLifeDaysFridge:         5,
		AverageLifeDaysPantry:         5,
		UseSoonDaysThreshold:          3,
		UseOrDiscardSoonDaysThreshold: 7,
		Category:                      models.CategoryFruits,
	}, {
		Name:                          "banana",
		Symbol:                        "🍌",
		BackgroundColor:               "#eded85",
		BorderColor:                   "#ba993d",
		Match:                         []string{"plantain"},
		AverageLifeDaysFreezer:        30 * 6,
		AverageLifeDaysFridge:         21,
		AverageLifeDaysPantry:         7,
		UseSoonDaysThreshold:          3,
		UseOrDiscardSoonDaysThreshold: 7,
		Category:                      models.CategoryFruits,
	}, {
		Name:            "lemon",
		Symbol:          "🍋",
		BackgroundColor: "#fdffa3",
		BorderColor:     "#46db5f",
		Match: []string{"citron", "bhuddha's hand", "calamondin", "lime", "etrog", "kabosu",
			"oroblanco", "papeda", "pomelo", "shonan", "limetta", "yuzu"},
		AverageLifeDaysFreezer:        30 * 6,
		AverageLifeDaysFridge:         7 * 4,
		AverageLifeDaysPantry:         14,
		UseSoonDaysThreshold:          5,
		UseOrDiscardSoonDaysThreshold: 10,
		Category:                      models.CategoryFruits,
	}, {
		Name:            "orange",
		Symbol:          "🍊",
		BackgroundColor: "#ffdda3",
		BorderColor:     "#46db5f",
		Match: []string{"amanatsu", "mandarian", "cuties", "clementine", "grapefruit", "kinnow",
			"kiyomi", "kumquat", "rangpur", "satsuma", "tangerine", "tangelo", "tangor"},
		AverageLifeDaysFreezer:        30 * 6,
		AverageLifeDaysFridge:         7 * 4,
		AverageLifeDaysPantry:         14,
		UseSoonDaysThreshold:          5,
		UseOrDiscardSoonDaysThreshold: 10,
		Category:                      models.CategoryFruits,
	}, {
		Name:                          "melon",
		Symbol:                        "🍈",
		BackgroundColor:               "#cdfaaa",
		BorderColor:                   "#c7c554",
		Match:                         []string{"cantaloupe", "honeydew", "yubari", "muskmelon"},
		AverageLifeDaysFreezer:        30 * 6,
		AverageLifeDaysFridge:         10,
		AverageLifeDaysPantry:         5,
		UseSoonDaysThreshold:          3,
		UseOrDiscardSoonDaysThreshold: 5,
		Category:                      models.CategoryFruits,
	}, {
		Name:                          "grape",
		Symbol:                        "🍇",
		BackgroundColor:               "#7a5382",
		BorderColor:                   "#c5ff9c",
		AverageLifeDaysFreezer:        30 * 6,
		AverageLifeDaysFridge:         14,
		AverageLifeDaysPantry:         7,
		UseSoonDaysThreshold:          3,
		UseOrDiscardSoonDaysThreshold: 7,
		Category:                      models.CategoryFruits,
	}, {
		Name:                          "prepared",
		Symbol:                        "🥘",
		BackgroundColor:               "#fac16b",
		BorderColor:                   "#7cab43",
		AverageLifeDaysFreezer:        365,
		AverageLifeDaysFridge:         30 * 2,
		AverageLifeDaysPantry:         2,
		UseSoonDaysThreshold:          7,
		UseOrDiscardSoonDaysThreshold: 7,
		Category:                      models.CategoryPrepared,
	}, {
		Name:                          "sauce",
		Symbol:                        "🥘",
		Match:                         []string{"stew", "chutney", "prepared", "dressing"},
		BackgroundColor:               "#fac16b",
		BorderColor:                   "#7cab43",
		AverageLifeDaysFreezer:        365,
		AverageLifeDaysFridge:         30 * 2,
		AverageLifeDaysPantry:         2,
		UseSoonDaysThreshold:          7,
		UseOrDiscardSoonDaysThreshold: 7,
		Category:                      models.CategoryPrepared,
	}, {
		Name:            "vegetables",
		Symbol:          "🥬",
		BackgroundColor: "#7ecc78",
		BorderColor:     "#4ac748",
		Match: []string{"lettuce", "spinach", "kale", "collard", "chard", "fresh basil",
			"cilantro", "leaf", "romaine", "cabbage", "bok choi", "endive", "vegetable"},
		AverageLifeDaysFreezer:        365 / 2,
		AverageLifeDaysFridge:         10,
		AverageLifeDaysPantry:         5,
		UseSoonDaysThreshold:          3,
		UseOrDiscardSoonDaysThreshold: 7,
		Category:                      models.CategoryVegetables,
	}, {
		Name:                          "breads",
		Symbol:                        "🍞",
		BackgroundColor:               "#fff2ba",
		BorderColor:                   "#c4a55c",
		Match:                         []string{"bread", "loaf", "loaves", "english muffin", "cracker"},
		AverageLifeDaysFreezer:        365 / 2,
		AverageLifeDaysFridge:         30,
		AverageLifeDaysPantry:         14,
		UseSoonDaysThreshold:          5,
		UseOrDiscardSoonDaysThreshold: 5,
		Category:                      models.CategoryBreads,
	}, {
		Name:            "nuts and seeds",
		Symbol:          "🥜",
		BackgroundColor: "#d6a960",
		BorderColor:     "#917240",
		Match: []string{"nut", "seed", "peanut butter", "almond butter", "peanut", "almond",
			"cashew", "pistachio", "pecan", "hazelnut", "chestnut", "macadamia", "rotini"},
		AverageLifeDaysFreezer:        365,
		AverageLifeDaysFridge:         365,
		AverageLifeDaysPantry:         365 / 2,
		UseSoonDaysThreshold:          7,
		UseOrDiscardSoonDaysThreshold: 30,
		Category:                      models.CategoryNutsAndSeeds,
	}, {
		Name:                          "vinegars",
		Symbol:                        "🍾",
		BackgroundColor:               "#9cf7ab",
		BorderColor:                   "white",
		Match:                         []string{"vinegar"},
		AverageLifeDaysFreezer:        365,
		AverageLifeDaysFridge:         365,
		AverageLifeDaysPantry:         365 / 2,
		UseSoonDaysThreshold:          30,
		UseOrDiscardSoonDaysThreshold: 30,
		Category:                      models.CategoryVinegars,
	}, {
		Name:            "alcohols",
		Symbol:          "🥃",
		BackgroundColor: "#fced77",
		BorderColor:     "#918b57",
		Match: []string{"alcohol", "beer", "wine", "spirits", "vodka", "rum", "liqueur", "gin",
			"whiskey", "bourbon", "cider", "hard cider", "cooler"},
		AverageLifeDaysFreezer:        365,
		AverageLifeDaysFridge:         365,
		AverageLifeDaysPantry:         365,
		UseSoonDaysThreshold:          60,
		UseOrDiscardSoonDaysThreshold: 60,
		Category:                      models.CategoryAlcohols,
	}, {
		Name:            "pastas",
		Symbol:          "🍝",
		BackgroundColor: "#f2f59f",
		BorderColor:     "#d44317",
		Match: []string{"pasta", "ravioli", "fettuccine", "angel hair", "macaroni", "fusilli",
			"bow tie", "penne", "ziti", "lasagna", "lasagne", "tortellini", "linguine",
			"spaghetti", "noodle"},
		AverageLifeDaysFreezer:        365,
		AverageLifeDaysFridge:         365,
		AverageLifeDaysPantry:         365 / 2,
		UseSoonDaysThreshold:          7,
		UseOrDiscardSoonDaysThreshold: 30,
		Category:                      models.CategoryPastas,
	}, {
		Name:                          "baby food",
		Symbol:                        "👶",
		BackgroundColor:               "#badbff",
		BorderColor:                   "#ffbade",
		AverageLifeDaysFreezer:        365,
		AverageLifeDaysFridge:         365,
		AverageLifeDaysPantry:         365 / 2,
		UseSoonDaysThreshold:          20,
		UseOrDiscardSoonDaysThreshold: 10,
		Category:                      models.CategoryBabyFood,
	}, {
		Name:                          "legumes",
		Symbol:                        "🌱",
		BackgroundColor:               "#8f7336",
		BorderColor:                   "#58a83b",
		Match:                         []string{"bean", "sprout"},
		AverageLifeDaysFreezer:        365 * 2,
		AverageLifeDaysFridge:         365,
		AverageLifeDaysPantry:         365 / 2,
		UseSoonDaysThreshold:          7,
		UseOrDiscardSoonDaysThreshold: 30,
		Category:                      models.CategoryLegumes,
	}, {
		Name:            "grains and cereals",
		Symbol:          "🌾",
		BackgroundColor: "#9fc9ae",
		BorderColor:     "#cdd14d",
		Match: []string{"gain", "cereal", "rice", "rice pilaf", "oat", "grit", "couscous",
			"popcorn", "quinoa"},
		AverageLifeDaysFreezer:        365 * 2,
		AverageLifeDaysFridge:         365,
		AverageLifeDaysPantry:         365 / 2,
		UseSoonDaysThreshold:          7,
		UseOrDiscardSoonDaysThreshold: 30,
		Category:                      models.CategoryGrainsAndCereals,
	}, {
		Name:                          "baking",
		Symbol:                        "🧁",
		BackgroundColor:               "#e0b4db",
		BorderColor:                   "#ff6ec0",
		Match:                         []string{"extract", "corn starch", "flour", "baking powder", "baking soda"},
		AverageLifeDaysFreezer:        365 * 2,
		AverageLifeDaysFridge:         365,
		AverageLifeDaysPantry:         365,
		UseSoonDaysThreshold:          7,
		UseOrDiscardSoonDaysThreshold: 30,
		Category:                      models.CategoryBaking,
	}, {
		Name:            "seasonings",
		Symbol:          "🧂",
		BackgroundColor: "#d9cfb6",
		BorderColor:     "#787878",
		Match: []string{"seasoning", "lemon pepper", "onion powder", "garlic powder",
			"butter seasoning", "chicken boullion", "beef boullion", "vegetable boullion",
			" herb", "herb ", "herbs ", "spice", "stock", "salt"},
		AverageLifeDaysFreezer:        365 * 2,
		AverageLifeDaysFridge:         365 * 2,
		AverageLifeDaysPantry:         365 * 2,
		UseSoonDaysThreshold:          30,
		UseOrDiscardSoonDaysThreshold: 90,
		Category:                      models.CategorySeasonings,
	}, {
		Name:                          "cheeses",
		Match:                         []string{"cheese"},
		Symbol:                        "🧀",
		BackgroundColor:               "#e8e67d",
		BorderColor:                   "#70d7ff",
		AverageLifeDaysFreezer:        30 * 7,
		AverageLifeDaysFridge:         30,
		AverageLifeDaysPantry:         3,
		UseSoonDaysThreshold:          3,
		UseOrDiscardSoonDaysThreshold: 10,
		Category:                      models.CategoryCheeses,
	}, {
		Name:                          "canned",
		Symbol:                        "🥫",
		BackgroundColor:               "#a1a1a1",
		BorderColor:                   "#4f4f4f",
		AverageLifeDaysFreezer:        0,
		AverageLifeDaysFridge:         365,
		AverageLifeDaysPantry:         365,
		UseSoonDaysThreshold:          14,
		UseOrDiscardSoonDaysThreshold: 60,
		Category:                      models.CategoryCanned,
	}, {
		Name:                          "bacon",
		Symbol:                        "🥓",
		BackgroundColor:               "#eb6844",
		BorderColor:                   "#f2b5a5",
		Match:                         []string{"rashers"},
		AverageLifeDaysFreezer:        365,
		AverageLifeDaysFridge:         7,
		AverageLifeDaysPantry:         30,
		UseSoonDaysThreshold:          5,
		UseOrDiscardSoonDaysThreshold: 7,
		Category:                      models.CategoryMeats,
	}, {
		Name:                          "crab",
		Symbol:                        "🦀",
		BackgroundColor:               "#d92525",
		BorderColor:                   "#cc7474",
		AverageLifeDaysFreezer:        365 / 2,
		AverageLifeDaysFridge:         2,
		AverageLifeDaysPantry:         0,
		UseSoonDaysThreshold:          1,
		UseOrDiscardSoonDaysThreshold: 3,
		Category:                      models.CategoryMeats,
	}, {
		Name:            "fish",
		Symbol:          "🐟",
		BackgroundColor: "#b1e6e6",
		BorderColor:     "#b0b0b0",
		Match: []string{"salmon", "tuna", "trout", "cod", "halibut", "bass", "mahi mahi",
			"mahi-mahi", "flounder", "snapper", "catfish", "swordfish", "whitefish", "tilapia",
			"monkfish", "grouper", "butterfish", "butter fish", "roughy", "eel", "mackerel",
			"sardine", "anchovy", "herring", "lingcod", "john dory", "sturgeon", "brill",
			"lamprey", "haddock", "pollock", "turbot", "squid", "calamari", "octopus"},
		AverageLifeDaysFreezer:        365 / 2,
		AverageLifeDaysFridge:         2,
		AverageLifeDaysPantry:         0,
		UseSoonDaysThreshold:          1,
		UseOrDiscardSoonDaysThreshold: 3,
		Category:                      models.CategoryMeats,
	}, {
		Name:                          "olive",
		Symbol:                        "🫒",
		BackgroundColor:               "#77c97c",
		BorderColor:                   "#1a751f",
		AverageLifeDaysFreezer:        365 / 2,
		AverageLifeDaysFridge:         10,
		AverageLifeDaysPantry:         3,
		UseSoonDaysThreshold:          1,
		UseOrDiscardSoonDaysThreshold: 2,
		Category:                      models.CategoryVegetables,
	}, {
		Name:                          "sandwich",
		Symbol:                        "🥪",
		BackgroundColor:               "#c7ab6d",
		BorderColor:                   "#94742e",
		Match:                         []string{"sandwiches"},
		AverageLifeDaysFreezer:        365 / 2,
		AverageLifeDaysFridge:         4,
		AverageLifeDaysPantry:         1,
		UseSoonDaysThreshold:          1,
		UseOrDiscardSoonDaysThreshold: 1,
		Category:                      models.CategoryPrepared,
	}, {
		Name:                          "shrimp",
		Symbol:                        "🦐",
		BackgroundColor:               "#f57878",
		BorderColor:                   "#d4301e",
		Match:                         []string{"prawn", "shellfish"},
		AverageLifeDaysFreezer:        365 / 2,
		AverageLifeDaysFridge:         2,
		AverageLifeDaysPantry:         0,
		UseSoonDaysThreshold:          1,
		UseOrDiscardSoonDaysThreshold: 3,
		Category:                      models.CategoryMeats,
	}, {
		Name:                          "lobster",
		Symbol:                        "🦞",
		BackgroundColor:               "#d92525",
		BorderColor:                   "#cc7474",
		Match:                         []string{"crawfish", "crayfish", "crawdad"},
		AverageLifeDaysFreezer:        365 / 2,
		AverageLifeDaysFridge:         2,
		AverageLifeDaysPantry:         0,
		UseSoonDaysThreshold:          1,
		UseOrDiscardSoonDaysThreshold: 3,
		Category:                      models.CategoryMeats,
	}, {
		Name:            "meats",
		Symbol:          "🥩",
		BackgroundColor: "#cf8f8f",
		BorderColor:     "#ad5f49",
		Match: []string{"meat", "beef", "pork", "lamb", "venison", "veal", "goat", "buffalo",
			"rabbit", "ham", "pepperoni", "pate"},
		AverageLifeDaysFreezer:        365,
		AverageLifeDaysFridge:         2,
		AverageLifeDaysPantry:         0,
		UseSoonDaysThreshold:          1,
		UseOrDiscardSoonDaysThreshold: 3,
		Category:                      models.CategoryMeats,
	}, {
		Name:            "poultry",
		Symbol:          "🍗",
		BackgroundColor: "#fcd89d",
		BorderColor:     "#616161",
		Match: []string{"chicken", "turkey", "duck", "goose", "geese", "guinea fowl", "pigeon",
			"hen", "cornish game hen", "quail", "bird", "fowl", "pheasant"},
		AverageLifeDaysFreezer:        365,
		AverageLifeDaysFridge:         2,
		AverageLifeDaysPantry:         0,
		UseSoonDaysThreshold:          1,
		UseOrDiscardSoonDaysThreshold: 3,
		Category:                      models.CategoryMeats,
	}, {
		Name:                          "oils",
		Symbol:                        "🍳",
		BackgroundColor:               "#f8ffbf",
		BorderColor:                   "#616161",
		Match:                         []string{"cooking spray", "oil", "lard", "ghee", "clarified butter"},
		AverageLifeDaysFreezer:        365 * 2,
		AverageLifeDaysFridge:         365,
		AverageLifeDaysPantry:         365,
		UseSoonDaysThreshold:          14,
		UseOrDiscardSoonDaysThreshold: 30,
		Category:                      models.CategoryOils,
	}, {
		Name:                          "milks and creams",
		Symbol:                        "🥛",
		BackgroundColor:               "#f0efdf",
		BorderColor:                   "#4568f5",
		Match:                         []string{"milk", "cream", "buttermilk", "yogurt"},
		AverageLifeDaysFreezer:        30 * 5,
		AverageLifeDaysFridge:         7,
		AverageLifeDaysPantry:         0,
		UseSoonDaysThreshold:          3,
		UseOrDiscardSoonDaysThreshold: 5,
		Category:                      models.CategoryMilksAndCreams,
	},
}
