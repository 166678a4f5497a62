// Package requesttype holds the request type catalog. A type gives a request
// its label, an advisory JSON schema for metadata, and a default SLA that is
// surfaced on reads but never enforced.
package requesttype

import (
	"encoding/json"
	"fmt"
	"time"

	"orgjet/internal/shared/biztime"
)

type RequestType struct {
	id                uint
	name              string
	schema            json.RawMessage
	defaultSLAMinutes *int
	createdAt         time.Time
	updatedAt         time.Time
}

func NewRequestType(name string, schema json.RawMessage, defaultSLAMinutes *int) (*RequestType, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(schema) > 0 && !json.Valid(schema) {
		return nil, fmt.Errorf("schema is not valid JSON")
	}
	if defaultSLAMinutes != nil && *defaultSLAMinutes <= 0 {
		return nil, fmt.Errorf("default SLA minutes must be positive")
	}

	now := biztime.NowUTC()
	return &RequestType{
		name:              name,
		schema:            schema,
		defaultSLAMinutes: defaultSLAMinutes,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

func ReconstructRequestType(
	id uint,
	name string,
	schema json.RawMessage,
	defaultSLAMinutes *int,
	createdAt, updatedAt time.Time,
) (*RequestType, error) {
	if id == 0 {
		return nil, fmt.Errorf("request type ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	return &RequestType{
		id:                id,
		name:              name,
		schema:            schema,
		defaultSLAMinutes: defaultSLAMinutes,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (t *RequestType) ID() uint { return t.id }
func (t *RequestType) Name() string { return t.name }
func (t *RequestType) Schema() json.RawMessage { return t.schema }
func (t *RequestType) DefaultSLAMinutes() *int { return t.defaultSLAMinutes }
func (t *RequestType) CreatedAt() time.Time { return t.createdAt }
func (t *RequestType) UpdatedAt() time.Time { return t.updatedAt }

func (t *RequestType) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("request type ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("request type ID cannot be zero")
	}
	t.id = id
	return nil
}

// HasSchema reports whether the type carries an advisory metadata schema.
func (t *RequestType) HasSchema() bool {
	return len(t.schema) > 0
}
