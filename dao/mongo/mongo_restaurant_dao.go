package mongo

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nearby-restaurants/apperrors"
	"nearby-restaurants/dao"
	"nearby-restaurants/logging"
	"nearby-restaurants/models"
	"nearby-restaurants/models/restaurant"
)

const RESTAURANTS_COLLECTION = "restaurants"

// MongoRestaurantDAO keeps restaurants in one collection with a 2dsphere
// index on location.
type MongoRestaurantDAO struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

var _ dao.RestaurantDAO = (*MongoRestaurantDAO)(nil)

func NewMongoRestaurantDAO(database *mongo.Database) *MongoRestaurantDAO {
	return &MongoRestaurantDAO{
		collection: database.Collection(RESTAURANTS_COLLECTION),
		logger:     logging.For("MongoRestaurantDAO"),
	}
}

// IndexModels lists the indexes the collection needs.
func IndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
		{Keys: bson.D{{Key: "rating.average", Value: -1}, {Key: "isActive", Value: 1}}},
		{Keys: bson.D{{Key: "cuisine", Value: 1}, {Key: "isActive", Value: 1}}},
		{Keys: bson.D{{Key: "priceRange", Value: 1}, {Key: "isActive", Value: 1}}},
	}
}

func (d *MongoRestaurantDAO) EnsureIndexes(ctx context.Context) error {
	names, err := d.collection.Indexes().CreateMany(ctx, IndexModels())
	if err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}
	d.logger.Info().Strs("indexes", names).Msg("indexes ready")
	return nil
}

func (d *MongoRestaurantDAO) Insert(ctx context.Context, r *restaurant.Restaurant) error {
	if _, err := d.collection.InsertOne(ctx, r); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.NewDuplicateError(r.ID.Hex())
		}
		return errors.Wrapf(err, "failed to insert restaurant %s", r.ID.Hex())
	}
	return nil
}

func (d *MongoRestaurantDAO) DeleteAll(ctx context.Context) error {
	res, err := d.collection.DeleteMany(ctx, bson.D{})
	if err != nil {
		return errors.Wrap(err, "failed to delete restaurants")
	}
	d.logger.Info().Int64("deleted", res.DeletedCount).Msg("cleared restaurants")
	return nil
}

// FacetFilter appends the active flag and facet conditions to filter.
func FacetFilter(filter bson.D, f restaurant.Facets) bson.D {
	filter = append(filter, bson.E{Key: "isActive", Value: true})
	if len(f.Cuisine) > 0 {
		filter = append(filter, bson.E{Key: "cuisine", Value: bson.D{{Key: "$in", Value: f.Cuisine}}})
	}
	if f.PriceRange != "" {
		filter = append(filter, bson.E{Key: "priceRange", Value: f.PriceRange})
	}
	if f.MinRating != nil {
		filter = append(filter, bson.E{Key: "rating.average", Value: bson.D{{Key: "$gte", Value: *f.MinRating}}})
	}
	return filter
}

// NearbyFilter builds the $near query; $near already sorts nearest first.
func NearbyFilter(q models.SearchQuery) bson.D {
	near := bson.D{{Key: "location", Value: bson.D{{Key: "$near", Value: bson.D{
		{Key: "$geometry", Value: bson.D{
			{Key: "type", Value: "Point"},
			{Key: "coordinates", Value: bson.A{q.Longitude, q.Latitude}},
		}},
		{Key: "$maxDistance", Value: q.RadiusKm * 1000},
	}}}}}
	return FacetFilter(near, q.Facets)
}

func (d *MongoRestaurantDAO) FindNearby(ctx context.Context, q models.SearchQuery) ([]restaurant.Restaurant, error) {
	opts := options.Find().SetSkip(int64(q.Skip)).SetLimit(int64(q.Limit))
	cursor, err := d.collection.Find(ctx, NearbyFilter(q), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query nearby restaurants")
	}
	return decodeAll(ctx, cursor)
}

func (d *MongoRestaurantDAO) FindByID(ctx context.Context, id primitive.ObjectID) (*restaurant.Restaurant, error) {
	var r restaurant.Restaurant
	err := d.collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewNotFoundError(dao.NotFoundMessage)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load restaurant %s", id.Hex())
	}
	return &r, nil
}

func (d *MongoRestaurantDAO) List(ctx context.Context, q models.ListQuery) ([]restaurant.Restaurant, int64, error) {
	filter := FacetFilter(bson.D{}, q.Facets)

	total, err := d.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count restaurants")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "rating.average", Value: -1}}).
		SetSkip(int64(q.Skip())).
		SetLimit(int64(q.Limit))
	cursor, err := d.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list restaurants")
	}
	items, err := decodeAll(ctx, cursor)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (d *MongoRestaurantDAO) DistinctCuisines(ctx context.Context) ([]restaurant.Cuisine, error) {
	values, err := d.collection.Distinct(ctx, "cuisine", bson.D{{Key: "isActive", Value: true}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cuisines")
	}
	return cuisinesFromDistinct(values), nil
}

func cuisinesFromDistinct(values []interface{}) []restaurant.Cuisine {
	cuisines := make([]restaurant.Cuisine, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			cuisines = append(cuisines, restaurant.Cuisine(s))
		}
	}
	sort.Slice(cuisines, func(i, j int) bool { return cuisines[i] < cuisines[j] })
	return cuisines
}

func decodeAll(ctx context.Context, cursor *mongo.Cursor) ([]restaurant.Restaurant, error) {
	defer cursor.Close(ctx)
	items := []restaurant.Restaurant{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, errors.Wrap(err, "failed to decode restaurants")
	}
	return items, nil
}
