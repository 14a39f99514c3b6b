package models

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// Resource is a server defined record whose shape the client does not know
// beyond its "id" field.
type Resource map[string]interface{}

type (
	Prescription = Resource
	Medication   = Resource
	Reminder     = Resource
)

const ResourceIDKey = "id"

// ID renders the record's identifier as a string so numeric and string ids
// compare alike. It is empty when the record has no id.
func (r Resource) ID() string {
	switch id := r[ResourceIDKey].(type) {
	case nil:
		return ""
	case string:
		return id
	case json.Number:
		return id.String()
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return fmt.Sprint(id)
	}
}

// WithoutID returns the records whose ID differs from id, keeping order.
func WithoutID(resources []Resource, id string) []Resource {
	kept := make([]Resource, 0, len(resources))
	for _, resource := range resources {
		if resource.ID() != id {
			kept = append(kept, resource)
		}
	}
	return kept
}
