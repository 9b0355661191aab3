package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ukydev/car-maintenance/internal/models"
)

// MongoTaskCollection implements TaskCollection for MongoDB.
type MongoTaskCollection struct {
	Collection *mongo.Collection
}

// InsertTask inserts a maintenance task into the collection.
func (c *MongoTaskCollection) InsertTask(ctx context.Context, task models.MaintenanceTask) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	_, err := c.Collection.InsertOne(ctx, task)
	return err
}

// FindTasks returns all maintenance tasks in insertion order.
func (c *MongoTaskCollection) FindTasks(ctx context.Context) ([]models.MaintenanceTask, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	cursor, err := c.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tasks := []models.MaintenanceTask{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindTaskByID finds a maintenance task by its ID.
func (c *MongoTaskCollection) FindTaskByID(ctx context.Context, id string) (*models.MaintenanceTask, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	var task models.MaintenanceTask
	err := c.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

// UpdateTask updates a maintenance task by its ID.
func (c *MongoTaskCollection) UpdateTask(ctx context.Context, id string, task models.MaintenanceTask) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	task.ID = id
	result, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": id}, task)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTask deletes a maintenance task by its ID.
func (c *MongoTaskCollection) DeleteTask(ctx context.Context, id string) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	result, err := c.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
