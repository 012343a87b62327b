package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"nearby-restaurants/models"
	"nearby-restaurants/models/restaurant"
)

// BuildRestaurantsMap creates a geo scatter chart with the search point and
// every restaurant in results.
func BuildRestaurantsMap(center models.Point, radiusKm float64, results []restaurant.Result) *charts.Geo {
	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Nearby Restaurants",
			Width:     "900px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Nearby Restaurants",
			Subtitle: fmt.Sprintf("%d within %.1f km of (%.6f, %.6f)", len(results), radiusKm, center.Latitude, center.Longitude),
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	// GeoJSON order: longitude first.
	pin := []opts.GeoData{{Name: "You are here", Value: []float64{center.Longitude, center.Latitude}}}

	points := make([]opts.GeoData, 0, len(results))
	for _, r := range results {
		points = append(points, opts.GeoData{
			Name:  r.Name,
			Value: []float64{r.Location.Longitude(), r.Location.Latitude(), r.Distance},
		})
	}

	geo.AddSeries("Search point", types.ChartEffectScatter, pin,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}"}),
	)
	geo.AddSeries("Restaurants", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}"}),
	)
	return geo
}

// PlotRestaurants renders the map as an HTML page into w.
func PlotRestaurants(w io.Writer, center models.Point, radiusKm float64, results []restaurant.Result) error {
	if err := BuildRestaurantsMap(center, radiusKm, results).Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
