package browse

import (
	"fmt"
	"math"
)

// RadiusPresets are the selectable search radii in kilometres.
var RadiusPresets = []float64{1, 2, 5, 10}

const DefaultRadiusKm = 2.0

// FormatDistance renders a distance in km as whole metres below 1 km and
// as kilometres with one decimal otherwise.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1f km", km)
}
