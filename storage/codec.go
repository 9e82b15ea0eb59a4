package storage

import "encoding/json"

// Codec encodes and decodes values for a byte-oriented backend. This could be
// a JSON codec, a binary codec, or any other serialization format that makes
// sense for the values being stored.
type Codec[V any] interface {
	EncodeValue(V) ([]byte, error)
	DecodeValue([]byte) (V, error)
}

// Ensure JSONCodec implements Codec interface.
var _ Codec[any] = (*JSONCodec[any])(nil)

// JSONCodec encodes and decodes values using standard Go JSON serialization.
type JSONCodec[V any] struct{}

// EncodeValue encodes a value into a JSON byte slice for a storage backend.
func (c *JSONCodec[V]) EncodeValue(value V) ([]byte, error) {
	return json.Marshal(value)
}

// DecodeValue decodes a JSON byte slice into a value from a storage backend.
func (c *JSONCodec[V]) DecodeValue(data []byte) (V, error) {
	var value V
	if err := json.Unmarshal(data, &value); err != nil {
		return value, err
	}
	return value, nil
}
