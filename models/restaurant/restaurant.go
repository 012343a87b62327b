package restaurant

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Restaurant is the persisted restaurant document.
type Restaurant struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id"`
	Name         string             `json:"name" bson:"name"`
	Description  string             `json:"description" bson:"description"`
	Cuisine      []Cuisine          `json:"cuisine" bson:"cuisine"`
	Location     GeoPoint           `json:"location" bson:"location"`
	Address      Address            `json:"address" bson:"address"`
	Phone        string             `json:"phone" bson:"phone"`
	Email        string             `json:"email,omitempty" bson:"email,omitempty"`
	Rating       Rating             `json:"rating" bson:"rating"`
	PriceRange   PriceRange         `json:"priceRange" bson:"priceRange"`
	OpeningHours OpeningHours       `json:"openingHours" bson:"openingHours"`
	Images       []string           `json:"images" bson:"images"`
	Features     []Feature          `json:"features" bson:"features"`
	IsActive     bool               `json:"isActive" bson:"isActive"`
	Verified     bool               `json:"verified" bson:"verified"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// GeoPoint is a GeoJSON point; coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// NewGeoPoint builds a GeoJSON point from latitude and longitude.
func NewGeoPoint(lat, lon float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lon, lat}}
}

func (p GeoPoint) Longitude() float64 {
	if len(p.Coordinates) < 1 {
		return 0
	}
	return p.Coordinates[0]
}

func (p GeoPoint) Latitude() float64 {
	if len(p.Coordinates) < 2 {
		return 0
	}
	return p.Coordinates[1]
}

type Address struct {
	Street  string `json:"street" bson:"street"`
	Area    string `json:"area" bson:"area"`
	City    string `json:"city" bson:"city"`
	ZipCode string `json:"zipCode,omitempty" bson:"zipCode,omitempty"`
}

type Rating struct {
	Average float64 `json:"average" bson:"average"`
	Count   int     `json:"count" bson:"count"`
}

// Result is a restaurant annotated for a nearby search.
type Result struct {
	Restaurant `bson:",inline"`
	Distance   float64 `json:"distance"`
	IsOpenNow  bool    `json:"isOpenNow"`
}

// Detail is a single restaurant annotated with its current open status.
type Detail struct {
	Restaurant `bson:",inline"`
	IsOpenNow  bool `json:"isOpenNow"`
}

// Normalize applies the write-time canonicalisation of user supplied strings.
func (r *Restaurant) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Location.Type == "" {
		r.Location.Type = "Point"
	}
}

func (r *Restaurant) String() string {
	return fmt.Sprintf("Restaurant(id=%s, name=%s, area=%s, lat=%f, lon=%f)",
		r.ID.Hex(), r.Name, r.Address.Area, r.Location.Latitude(), r.Location.Longitude())
}
