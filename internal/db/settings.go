package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ukydev/car-maintenance/internal/models"
)

// Preference record keys. These mirror the storage keys of earlier versions
// of the tracker so existing data keeps loading.
const (
	keyUserName = "cm_user"
	keyTheme    = "cm_theme"
	keyFontSize = "cm_font_size"
)

type settingDoc struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// MongoSettingsCollection implements SettingsCollection for MongoDB. Each
// preference is a single key/value document.
type MongoSettingsCollection struct {
	Collection *mongo.Collection
}

func (c *MongoSettingsCollection) loadValue(ctx context.Context, key, fallback string) (string, error) {
	if c.Collection == nil {
		return "", fmt.Errorf("mongo collection is nil")
	}
	var doc settingDoc
	err := c.Collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return fallback, nil
		}
		return "", err
	}
	return doc.Value, nil
}

func (c *MongoSettingsCollection) saveValue(ctx context.Context, key, value string) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	_, err := c.Collection.UpdateOne(
		ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": value}},
		options.Update().SetUpsert(true),
	)
	return err
}

// LoadUserName returns the stored user name, or empty when never set.
func (c *MongoSettingsCollection) LoadUserName(ctx context.Context) (string, error) {
	return c.loadValue(ctx, keyUserName, "")
}

// SaveUserName stores the user name.
func (c *MongoSettingsCollection) SaveUserName(ctx context.Context, name string) error {
	return c.saveValue(ctx, keyUserName, name)
}

// LoadSettings returns the stored display preferences, with defaults for
// anything never set or no longer valid.
func (c *MongoSettingsCollection) LoadSettings(ctx context.Context) (models.Settings, error) {
	defaults := models.DefaultSettings()
	theme, err := c.loadValue(ctx, keyTheme, string(defaults.Theme))
	if err != nil {
		return models.Settings{}, err
	}
	fontSize, err := c.loadValue(ctx, keyFontSize, string(defaults.FontSize))
	if err != nil {
		return models.Settings{}, err
	}
	settings := models.Settings{Theme: models.Theme(theme), FontSize: models.FontSize(fontSize)}
	if !models.IsValidTheme(settings.Theme) {
		settings.Theme = defaults.Theme
	}
	if !models.IsValidFontSize(settings.FontSize) {
		settings.FontSize = defaults.FontSize
	}
	return settings, nil
}

// SaveSettings stores the display preferences.
func (c *MongoSettingsCollection) SaveSettings(ctx context.Context, settings models.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := c.saveValue(ctx, keyTheme, string(settings.Theme)); err != nil {
		return err
	}
	return c.saveValue(ctx, keyFontSize, string(settings.FontSize))
}
