package restaurant

import (
	"fmt"
	"regexp"

	"nearby-restaurants/apperrors"
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

var (
	phonePattern = regexp.MustCompile(`^[0-9+\-\s()]{10,20}$`)
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// Validate checks every write-time invariant and reports all violations at once.
func (r *Restaurant) Validate() error {
	var fields []apperrors.FieldError
	add := func(field, format string, args ...interface{}) {
		fields = append(fields, apperrors.FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	switch {
	case r.Name == "":
		add("name", "Restaurant name is required")
	case len([]rune(r.Name)) > MaxNameLength:
		add("name", "Name cannot exceed %d characters", MaxNameLength)
	}

	switch {
	case r.Description == "":
		add("description", "Description is required")
	case len([]rune(r.Description)) > MaxDescriptionLength:
		add("description", "Description cannot exceed %d characters", MaxDescriptionLength)
	}

	if len(r.Cuisine) == 0 {
		add("cuisine", "At least one cuisine type is required")
	}
	for _, c := range r.Cuisine {
		if !c.IsValid() {
			add("cuisine", "`%s` is not a valid cuisine", c)
		}
	}

	if !validCoordinates(r.Location) {
		add("location.coordinates", "Invalid coordinates. Format: [longitude, latitude]")
	}

	if r.Address.Street == "" {
		add("address.street", "Street is required")
	}
	if r.Address.Area == "" {
		add("address.area", "Area is required")
	}
	if r.Address.City == "" {
		add("address.city", "City is required")
	}

	switch {
	case r.Phone == "":
		add("phone", "Phone number is required")
	case !phonePattern.MatchString(r.Phone):
		add("phone", "Please provide a valid phone number")
	}
	if r.Email != "" && !emailPattern.MatchString(r.Email) {
		add("email", "Please provide a valid email")
	}

	if r.Rating.Average < 0 || r.Rating.Average > 5 {
		add("rating.average", "Rating average must be between 0 and 5")
	}
	if r.Rating.Count < 0 {
		add("rating.count", "Rating count cannot be negative")
	}

	if !r.PriceRange.IsValid() {
		add("priceRange", "`%s` is not a valid price range", r.PriceRange)
	}

	for _, f := range r.Features {
		if !f.IsValid() {
			add("features", "`%s` is not a valid feature", f)
		}
	}

	if len(fields) > 0 {
		return apperrors.NewValidationError("Invalid input data", fields...)
	}
	return nil
}

func validCoordinates(p GeoPoint) bool {
	if p.Type != "Point" || len(p.Coordinates) != 2 {
		return false
	}
	lon, lat := p.Coordinates[0], p.Coordinates[1]
	return lon >= -180 && lon <= 180 && lat >= -90 && lat <= 90
}
