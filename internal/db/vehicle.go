package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ukydev/car-maintenance/internal/models"
)

// MongoVehicleCollection implements VehicleCollection for MongoDB.
type MongoVehicleCollection struct {
	Collection *mongo.Collection
}

// InsertVehicle inserts a vehicle record into the collection.
func (c *MongoVehicleCollection) InsertVehicle(ctx context.Context, vehicle models.Vehicle) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	_, err := c.Collection.InsertOne(ctx, vehicle)
	return err
}

// FindVehicles returns all vehicle records in insertion order.
func (c *MongoVehicleCollection) FindVehicles(ctx context.Context) ([]models.Vehicle, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	cursor, err := c.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	vehicles := []models.Vehicle{}
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// FindVehicleByID finds a vehicle by its ID.
func (c *MongoVehicleCollection) FindVehicleByID(ctx context.Context, id string) (*models.Vehicle, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	var vehicle models.Vehicle
	err := c.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// UpdateVehicle updates a vehicle by its ID.
func (c *MongoVehicleCollection) UpdateVehicle(ctx context.Context, id string, vehicle models.Vehicle) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	vehicle.ID = id
	result, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": id}, vehicle)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
