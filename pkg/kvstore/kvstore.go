// Package kvstore is the persistence port for StyleStore's domain state.
//
// All persisted state lives under three string keys holding JSON-encoded
// values: "user" (the registered profile), "cart" (the ordered line items)
// and "orders" (the append-only order history). Absence of a key means an
// empty collection or no session, never an error.
//
// The Store interface keeps the domain services testable against the memory
// driver and swappable for a real backend: file (one JSON document per key),
// database (GORM, any supported dialect) or redis.
package kvstore

import (
	"encoding/json"
	"fmt"
)

// Persisted-state keys.
const (
	KeyUser   = "user"
	KeyCart   = "cart"
	KeyOrders = "orders"
)

// Store is a string-keyed, JSON-valued persistence port.
type Store interface {
	// Get unmarshals the value stored at key into dest.
	// The boolean is false when the key is absent; err reports
	// transport or decode failures only.
	Get(key string, dest interface{}) (bool, error)

	// Put stores value at key, replacing any previous value.
	Put(key string, value interface{}) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string) error
}

func encode(key string, value interface{}) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("kvstore: encode %q: %w", key, err)
	}
	return data, nil
}

func decode(key string, data []byte, dest interface{}) error {
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("kvstore: decode %q: %w", key, err)
	}
	return nil
}
