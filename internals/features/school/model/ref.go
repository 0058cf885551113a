package model

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"
)

// OptionalRef tells an absent JSON key apart from an explicit null, so a
// partial update can clear a reference without touching it by accident.
type OptionalRef struct {
	Set   bool
	Value *uuid.UUID
}

func (o *OptionalRef) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		o.Value = nil
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return err
	}
	o.Value = &id
	return nil
}

// Column is the value written to the reference column.
func (o OptionalRef) Column() any {
	if o.Value == nil {
		return nil
	}
	return *o.Value
}
