package util

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"nearby-restaurants/models"
	"nearby-restaurants/models/restaurant"
)

// ReadRestaurantsFromJSON loads a JSON array of restaurants from disk.
func ReadRestaurantsFromJSON(filePath string) ([]restaurant.Restaurant, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var list []restaurant.Restaurant
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal restaurants: %w", err)
	}
	return list, nil
}

// ReadNearbyResponseFromJSON loads a recorded nearby-search response from disk.
func ReadNearbyResponseFromJSON(filePath string) (*models.NearbyResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.NearbyResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal NearbyResponse: %w", err)
	}
	return &resp, nil
}

// WriteJSONFile writes v as indented JSON, replacing filePath.
func WriteJSONFile(filePath string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %q: %w", filePath, err)
	}
	return nil
}

// PrintResultsPartially prints one line per result: name, distance, rating,
// price and whether it is open.
func PrintResultsPartially(w io.Writer, results []restaurant.Result, formatDistance func(float64) string) {
	for i, r := range results {
		open := "closed"
		if r.IsOpenNow {
			open = "open"
		}
		fmt.Fprintf(w, "%2d. %-24s %8s  %.1f* (%d)  %-4s  %s  [%s]\n",
			i+1, r.Name, formatDistance(r.Distance), r.Rating.Average, r.Rating.Count,
			r.PriceRange, open, r.Address.Area)
	}
}
