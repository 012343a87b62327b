package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"nearby-restaurants/api"
	"nearby-restaurants/api/restaurants"
	"nearby-restaurants/browse"
	"nearby-restaurants/config"
	"nearby-restaurants/logging"
	"nearby-restaurants/models"
	"nearby-restaurants/models/restaurant"
	services "nearby-restaurants/service"
	"nearby-restaurants/util"
)

type options struct {
	apiURL    string
	offline   bool
	fixture   string
	lat, lon  float64
	radius    float64
	search    string
	cuisines  string
	price     string
	minRating float64
	features  string
	sortBy    string
	mapOut    string
	saveOut   string
	timeout   time.Duration
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.apiURL, "api", "http://localhost:8080/api/v1", "base URL of the restaurant API, including the prefix")
	flag.BoolVar(&o.offline, "offline", false, "answer from a recorded nearby response instead of the API")
	flag.StringVar(&o.fixture, "fixture", "", "recorded nearby response used with -offline (default resources/nearby_response.json)")
	flag.Float64Var(&o.lat, "lat", services.SeedBaseLatitude, "search latitude")
	flag.Float64Var(&o.lon, "lon", services.SeedBaseLongitude, "search longitude")
	flag.Float64Var(&o.radius, "radius", browse.DefaultRadiusKm, "search radius in km (presets: 1, 2, 5, 10)")
	flag.StringVar(&o.search, "q", "", "free-text search over name, cuisine, area and description")
	flag.StringVar(&o.cuisines, "cuisine", "", "comma separated cuisines, any of which must match")
	flag.StringVar(&o.price, "price", "", "price tier: $, $$, $$$ or $$$$")
	flag.Float64Var(&o.minRating, "min-rating", 0, "minimum average rating (0 disables)")
	flag.StringVar(&o.features, "features", "", "comma separated features, all of which must match")
	flag.StringVar(&o.sortBy, "sort", "", "distance, rating or name (default distance)")
	flag.StringVar(&o.mapOut, "map", "", "write an HTML map of the results to this file")
	flag.StringVar(&o.saveOut, "save", "", "write the fetched nearby response to this JSON file")
	flag.DurationVar(&o.timeout, "timeout", 10*time.Second, "request timeout")
	flag.Parse()
	return o
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func filtersFrom(o options) (browse.FilterState, error) {
	f := browse.FilterState{SearchText: o.search}
	for _, c := range splitList(o.cuisines) {
		if !restaurant.Cuisine(c).IsValid() {
			return f, errors.Errorf("unknown cuisine %q", c)
		}
		f = f.ToggleCuisine(restaurant.Cuisine(c))
	}
	for _, feat := range splitList(o.features) {
		if !restaurant.Feature(feat).IsValid() {
			return f, errors.Errorf("unknown feature %q", feat)
		}
		f = f.ToggleFeature(restaurant.Feature(feat))
	}
	if o.price != "" {
		if !restaurant.PriceRange(o.price).IsValid() {
			return f, errors.Errorf("unknown price tier %q", o.price)
		}
		f = f.TogglePriceRange(restaurant.PriceRange(o.price))
	}
	if o.minRating > 0 {
		f = f.ToggleMinRating(o.minRating)
	}
	switch browse.SortBy(o.sortBy) {
	case browse.SortDefault, browse.SortDistance, browse.SortRating, browse.SortName:
		f.SortBy = browse.SortBy(o.sortBy)
	default:
		return f, errors.Errorf("unknown sort %q", o.sortBy)
	}
	return f, nil
}

func newAPI(o options) restaurants.RestaurantsAPI {
	if o.offline {
		return restaurants.NewRestaurantsApiClientMock(o.fixture)
	}
	httpClient := api.NewHTTPClient(strings.TrimRight(o.apiURL, "/"))
	httpClient.HTTPClient.Timeout = o.timeout
	return restaurants.NewRestaurantsApiClient(httpClient)
}

func main() {
	logging.Init("nearby-cli", config.EnvDevelopment)
	o := parseFlags()

	filters, err := filtersFrom(o)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	failed := false
	session := browse.NewSession(newAPI(o),
		browse.WithRadius(o.radius),
		browse.WithAlert(func(message string) {
			failed = true
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}),
	)
	defer session.Close()

	center := models.Point{Latitude: o.lat, Longitude: o.lon}
	<-session.GrantPermission(ctx, center)
	if failed {
		os.Exit(1)
	}
	session.SetFilters(filters)

	visible := session.Visible()
	fmt.Printf("%d of %d restaurants within %s (%d filters active)\n",
		len(visible), len(session.Base()), browse.FormatDistance(o.radius), filters.ActiveCount())
	util.PrintResultsPartially(os.Stdout, visible, browse.FormatDistance)

	if o.saveOut != "" {
		q := models.SearchQuery{Latitude: o.lat, Longitude: o.lon, RadiusKm: o.radius}
		base := session.Base()
		response := models.NearbyResponse{
			Success: true,
			Count:   len(base),
			Data:    models.NearbyData{Restaurants: base, SearchParams: models.NewSearchParams(q)},
		}
		if err := util.WriteJSONFile(o.saveOut, response); err != nil {
			log.Fatal().Err(err).Msg("could not save response")
		}
		log.Info().Str("file", o.saveOut).Msg("saved nearby response")
	}

	if o.mapOut != "" {
		f, err := os.Create(o.mapOut)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create map file")
		}
		defer f.Close()
		if err := util.PlotRestaurants(f, center, o.radius, visible); err != nil {
			log.Fatal().Err(err).Msg("could not render map")
		}
		log.Info().Str("file", o.mapOut).Msg("wrote map")
	}
}
