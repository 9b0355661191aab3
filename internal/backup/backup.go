// Package backup serializes the full application state to a single JSON
// document and restores it. The document is the only durable artifact the
// tracker produces, so it carries a schema version.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ukydev/car-maintenance/internal/models"
)

// Version is the current export document schema version.
const Version = 1

// FileName is the download name for exported documents.
const FileName = "car-maintenance-data.json"

// ErrMalformedInput is returned when an import document is not valid JSON
// or is not a JSON object.
var ErrMalformedInput = errors.New("malformed import document")

// Document is the export file shape. The "cars" key name is kept for
// compatibility with previously exported files.
type Document struct {
	Version  int                      `json:"version"`
	UserName string                   `json:"userName"`
	Cars     []models.Vehicle         `json:"cars"`
	Tasks    []models.MaintenanceTask `json:"tasks"`
}

// Export serializes the application state.
func Export(userName string, cars []models.Vehicle, tasks []models.MaintenanceTask) ([]byte, error) {
	if cars == nil {
		cars = []models.Vehicle{}
	}
	if tasks == nil {
		tasks = []models.MaintenanceTask{}
	}
	doc := Document{Version: Version, UserName: userName, Cars: cars, Tasks: tasks}
	return json.MarshalIndent(doc, "", "  ")
}

// Import parses an export document. Unparseable input fails with
// ErrMalformedInput before any state is touched; missing keys default to
// empty values so older exports load cleanly.
func Import(data []byte) (Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if raw == nil {
		return Document{}, ErrMalformedInput
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if doc.Cars == nil {
		doc.Cars = []models.Vehicle{}
	}
	if doc.Tasks == nil {
		doc.Tasks = []models.MaintenanceTask{}
	}
	return doc, nil
}
