package restaurant

// Cuisine is one of the fixed cuisine categories.
type Cuisine string

const (
	CuisineBangladeshi   Cuisine = "Bangladeshi"
	CuisineIndian        Cuisine = "Indian"
	CuisineChinese       Cuisine = "Chinese"
	CuisineThai          Cuisine = "Thai"
	CuisineItalian       Cuisine = "Italian"
	CuisineAmerican      Cuisine = "American"
	CuisineFastFood      Cuisine = "Fast Food"
	CuisineContinental   Cuisine = "Continental"
	CuisineMexican       Cuisine = "Mexican"
	CuisineJapanese      Cuisine = "Japanese"
	CuisineKorean        Cuisine = "Korean"
	CuisineMediterranean Cuisine = "Mediterranean"
	CuisineSeafood       Cuisine = "Seafood"
	CuisineVegetarian    Cuisine = "Vegetarian"
	CuisineDesserts      Cuisine = "Desserts"
	CuisineCafe          Cuisine = "Cafe"
)

// Cuisines lists every accepted cuisine value.
var Cuisines = []Cuisine{
	CuisineBangladeshi, CuisineIndian, CuisineChinese, CuisineThai,
	CuisineItalian, CuisineAmerican, CuisineFastFood, CuisineContinental,
	CuisineMexican, CuisineJapanese, CuisineKorean, CuisineMediterranean,
	CuisineSeafood, CuisineVegetarian, CuisineDesserts, CuisineCafe,
}

func (c Cuisine) IsValid() bool {
	for _, known := range Cuisines {
		if c == known {
			return true
		}
	}
	return false
}

// Feature is one of the fixed amenity tags.
type Feature string

const (
	FeatureDineIn               Feature = "Dine-in"
	FeatureTakeaway             Feature = "Takeaway"
	FeatureDelivery             Feature = "Delivery"
	FeatureOutdoorSeating       Feature = "Outdoor Seating"
	FeatureWiFi                 Feature = "WiFi"
	FeatureParking              Feature = "Parking"
	FeatureAirConditioned       Feature = "Air Conditioned"
	FeatureFamilyFriendly       Feature = "Family Friendly"
	FeatureWheelchairAccessible Feature = "Wheelchair Accessible"
	FeatureAcceptsCards         Feature = "Accepts Cards"
	FeatureHalal                Feature = "Halal"
	FeatureVeganOptions         Feature = "Vegan Options"
)

// Features lists every accepted feature value.
var Features = []Feature{
	FeatureDineIn, FeatureTakeaway, FeatureDelivery, FeatureOutdoorSeating,
	FeatureWiFi, FeatureParking, FeatureAirConditioned, FeatureFamilyFriendly,
	FeatureWheelchairAccessible, FeatureAcceptsCards, FeatureHalal, FeatureVeganOptions,
}

func (f Feature) IsValid() bool {
	for _, known := range Features {
		if f == known {
			return true
		}
	}
	return false
}

// PriceRange is the 4-level price tier. The zero value means "unset".
type PriceRange string

const (
	PriceBudget    PriceRange = "$"
	PriceModerate  PriceRange = "$$"
	PriceExpensive PriceRange = "$$$"
	PriceLuxury    PriceRange = "$$$$"
)

// PriceRanges lists every accepted price tier, cheapest first.
var PriceRanges = []PriceRange{PriceBudget, PriceModerate, PriceExpensive, PriceLuxury}

func (p PriceRange) IsValid() bool {
	for _, known := range PriceRanges {
		if p == known {
			return true
		}
	}
	return false
}
