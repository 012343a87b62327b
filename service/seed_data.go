package services

import (
	"nearby-restaurants/models/restaurant"
	"nearby-restaurants/util"
)

// Reference point the bundled restaurants are laid out around.
const (
	SeedBaseLatitude  = 24.876535
	SeedBaseLongitude = 90.724821
)

type seedPlacement struct {
	distanceKm float64
	bearing    float64
	restaurant restaurant.Restaurant
}

// weekHours opens every day at open, closing at weekdayClose except on
// Friday and Saturday which close at weekendClose.
func weekHours(open, weekdayClose, weekendClose string) restaurant.OpeningHours {
	hours := restaurant.EveryDay(open, weekdayClose)
	hours.Friday = &restaurant.DayHours{Open: open, Close: weekendClose}
	hours.Saturday = &restaurant.DayHours{Open: open, Close: weekendClose}
	return hours
}

func cuisines(c ...restaurant.Cuisine) []restaurant.Cuisine { return c }
func features(f ...restaurant.Feature) []restaurant.Feature { return f }

func dhaka(street, area, zip string) restaurant.Address {
	return restaurant.Address{Street: street, Area: area, City: "Dhaka", ZipCode: zip}
}

// ReferenceRestaurants returns the ten bundled restaurants placed around
// (baseLat, baseLon): six within 2 km and four beyond it. Placement is
// deterministic; bearings step by 36 degrees.
func ReferenceRestaurants(baseLat, baseLon float64) []restaurant.Restaurant {
	placements := []seedPlacement{
		{0.5, 0, restaurant.Restaurant{
			Name:         "Spice Garden",
			Description:  "Authentic Bangladeshi cuisine with a modern twist. Famous for biryani and traditional curries.",
			Cuisine:      cuisines(restaurant.CuisineBangladeshi, restaurant.CuisineIndian),
			Address:      dhaka("House 45, Road 12", "Gulshan", "1212"),
			Phone:        "+880 1712-345678",
			Email:        "info@spicegarden.com",
			Rating:       restaurant.Rating{Average: 4.5, Count: 234},
			PriceRange:   restaurant.PriceModerate,
			OpeningHours: weekHours("11:00", "23:00", "23:30"),
			Images:       []string{"https://example.com/spice-garden-1.jpg"},
			Features: features(restaurant.FeatureDineIn, restaurant.FeatureTakeaway, restaurant.FeatureDelivery,
				restaurant.FeatureAirConditioned, restaurant.FeatureParking, restaurant.FeatureWiFi),
		}},
		{1.2, 36, restaurant.Restaurant{
			Name:         "Pizza Paradise",
			Description:  "Wood-fired pizzas and Italian delicacies. Fresh ingredients, authentic taste.",
			Cuisine:      cuisines(restaurant.CuisineItalian, restaurant.CuisineFastFood),
			Address:      dhaka("Plot 78, Avenue 5", "Banani", "1213"),
			Phone:        "+880 1823-456789",
			Email:        "contact@pizzaparadise.com",
			Rating:       restaurant.Rating{Average: 4.2, Count: 189},
			PriceRange:   restaurant.PriceExpensive,
			OpeningHours: weekHours("12:00", "22:30", "23:00"),
			Images:       []string{"https://example.com/pizza-paradise-1.jpg"},
			Features: features(restaurant.FeatureDineIn, restaurant.FeatureTakeaway, restaurant.FeatureDelivery,
				restaurant.FeatureOutdoorSeating, restaurant.FeatureFamilyFriendly),
		}},
		{0.8, 72, restaurant.Restaurant{
			Name:         "Thai Orchid",
			Description:  "Exquisite Thai cuisine in an elegant setting. Popular for pad thai and green curry.",
			Cuisine:      cuisines(restaurant.CuisineThai),
			Address:      dhaka("Level 3, Dhaka Tower", "Gulshan", "1212"),
			Phone:        "+880 1934-567890",
			Email:        "hello@thaiorchid.com",
			Rating:       restaurant.Rating{Average: 4.7, Count: 312},
			PriceRange:   restaurant.PriceExpensive,
			OpeningHours: weekHours("12:00", "22:00", "23:00"),
			Images:       []string{"https://example.com/thai-orchid-1.jpg"},
			Features: features(restaurant.FeatureDineIn, restaurant.FeatureTakeaway, restaurant.FeatureAirConditioned,
				restaurant.FeatureAcceptsCards, restaurant.FeatureWiFi),
		}},
		{1.5, 108, restaurant.Restaurant{
			Name:         "Burger Buzz",
			Description:  "Gourmet burgers and shakes. Home of the famous triple-stack beef burger.",
			Cuisine:      cuisines(restaurant.CuisineAmerican, restaurant.CuisineFastFood),
			Address:      dhaka("Shop 12, Food Street", "Baridhara", "1212"),
			Phone:        "+880 1745-678901",
			Email:        "info@burgerbuzz.com",
			Rating:       restaurant.Rating{Average: 4.0, Count: 156},
			PriceRange:   restaurant.PriceModerate,
			OpeningHours: weekHours("11:00", "23:00", "00:00"),
			Images:       []string{"https://example.com/burger-buzz-1.jpg"},
			Features: features(restaurant.FeatureDineIn, restaurant.FeatureTakeaway, restaurant.FeatureDelivery,
				restaurant.FeatureWiFi, restaurant.FeatureFamilyFriendly),
		}},
		{1.8, 144, restaurant.Restaurant{
			Name:         "Sushi Station",
			Description:  "Fresh sushi and Japanese cuisine. Daily fresh fish delivery.",
			Cuisine:      cuisines(restaurant.CuisineJapanese, restaurant.CuisineSeafood),
			Address:      dhaka("House 23, Road 45", "Gulshan", "1212"),
			Phone:        "+880 1856-789012",
			Email:        "orders@sushistation.com",
			Rating:       restaurant.Rating{Average: 4.6, Count: 287},
			PriceRange:   restaurant.PriceLuxury,
			OpeningHours: weekHours("12:00", "22:00", "23:00"),
			Images:       []string{"https://example.com/sushi-station-1.jpg"},
			Features: features(restaurant.FeatureDineIn, restaurant.FeatureTakeaway, restaurant.FeatureAirConditioned,
				restaurant.FeatureAcceptsCards, restaurant.FeatureWiFi),
		}},
		{1.0, 180, restaurant.Restaurant{
			Name:         "Veggie Delight",
			Description:  "100% vegetarian restaurant with healthy and delicious options.",
			Cuisine:      cuisines(restaurant.CuisineVegetarian, restaurant.CuisineIndian),
			Address:      dhaka("Road 11, Block C", "Banani", "1213"),
			Phone:        "+880 1967-890123",
			Email:        "contact@veggiedelight.com",
			Rating:       restaurant.Rating{Average: 4.3, Count: 201},
			PriceRange:   restaurant.PriceModerate,
			OpeningHours: weekHours("11:00", "22:00", "22:30"),
			Images:       []string{"https://example.com/veggie-delight-1.jpg"},
			Features: features(restaurant.FeatureDineIn, restaurant.FeatureTakeaway, restaurant.FeatureDelivery,
				restaurant.FeatureVeganOptions, restaurant.FeatureHalal),
		}},

		// beyond the default 2 km radius
		{5.5, 216, restaurant.Restaurant{
			Name:         "Ocean Breeze Seafood",
			Description:  "Premium seafood restaurant with ocean-fresh catch daily.",
			Cuisine:      cuisines(restaurant.CuisineSeafood, restaurant.CuisineContinental),
			Address:      dhaka("Marine Drive 101", "Uttara", "1230"),
			Phone:        "+880 1678-901234",
			Email:        "info@oceanbreeze.com",
			Rating:       restaurant.Rating{Average: 4.8, Count: 423},
			PriceRange:   restaurant.PriceLuxury,
			OpeningHours: weekHours("12:00", "23:00", "23:30"),
			Images:       []string{"https://example.com/ocean-breeze-1.jpg"},
			Features: features(restaurant.FeatureDineIn, restaurant.FeatureOutdoorSeating, restaurant.FeatureParking,
				restaurant.FeatureAirConditioned, restaurant.FeatureAcceptsCards),
		}},
		{8.2, 252, restaurant.Restaurant{
			Name:         "Dragon Wok",
			Description:  "Authentic Chinese cuisine with a wide variety of dim sum and noodles.",
			Cuisine:      cuisines(restaurant.CuisineChinese),
			Address:      dhaka("China Town Complex", "Motijheel", "1000"),
			Phone:        "+880 1589-012345",
			Email:        "orders@dragonwok.com",
			Rating:       restaurant.Rating{Average: 4.1, Count: 178},
			PriceRange:   restaurant.PriceModerate,
			OpeningHours: weekHours("11:30", "22:00", "22:30"),
			Images:       []string{"https://example.com/dragon-wok-1.jpg"},
			Features: features(restaurant.FeatureDineIn, restaurant.FeatureTakeaway, restaurant.FeatureDelivery,
				restaurant.FeatureFamilyFriendly),
		}},
		{3.7, 288, restaurant.Restaurant{
			Name:         "Cafe Mocha",
			Description:  "Cozy cafe serving specialty coffee, desserts, and light snacks.",
			Cuisine:      cuisines(restaurant.CuisineCafe, restaurant.CuisineDesserts),
			Address:      dhaka("Road 27, Dhanmondi", "Dhanmondi", "1209"),
			Phone:        "+880 1490-123456",
			Email:        "hello@cafemocha.com",
			Rating:       restaurant.Rating{Average: 4.4, Count: 267},
			PriceRange:   restaurant.PriceBudget,
			OpeningHours: weekHours("08:00", "22:00", "23:00"),
			Images:       []string{"https://example.com/cafe-mocha-1.jpg"},
			Features: features(restaurant.FeatureDineIn, restaurant.FeatureTakeaway, restaurant.FeatureWiFi,
				restaurant.FeatureAirConditioned, restaurant.FeatureOutdoorSeating),
		}},
		{6.1, 324, restaurant.Restaurant{
			Name:         "Taco Fiesta",
			Description:  "Vibrant Mexican restaurant with authentic tacos, burritos, and margaritas.",
			Cuisine:      cuisines(restaurant.CuisineMexican),
			Address:      dhaka("Level 2, City Mall", "Mirpur", "1216"),
			Phone:        "+880 1701-234567",
			Email:        "info@tacofiesta.com",
			Rating:       restaurant.Rating{Average: 3.9, Count: 142},
			PriceRange:   restaurant.PriceModerate,
			OpeningHours: weekHours("12:00", "22:00", "23:00"),
			Images:       []string{"https://example.com/taco-fiesta-1.jpg"},
			Features: features(restaurant.FeatureDineIn, restaurant.FeatureTakeaway, restaurant.FeatureFamilyFriendly,
				restaurant.FeatureAirConditioned),
		}},
	}

	out := make([]restaurant.Restaurant, len(placements))
	for i, p := range placements {
		lat, lon := util.DestinationPoint(baseLat, baseLon, p.distanceKm, p.bearing)
		r := p.restaurant
		r.Location = restaurant.NewGeoPoint(lat, lon)
		r.IsActive = true
		r.Verified = true
		out[i] = r
	}
	return out
}
