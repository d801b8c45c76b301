package encryption

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Payload is an insertion-ordered set of JSON fields. The gateway decrypts
// whatever byte layout was encrypted, so serialization must be deterministic
// per call; plain Go maps are unordered and encoding/json sorts their keys,
// neither of which reproduces the documented wire layout.
type Payload struct {
	keys   []string
	values map[string]interface{}
}

func NewPayload() *Payload {
	return &Payload{
		values: make(map[string]interface{}),
	}
}

// Set stores value under key, keeping first-insertion order. Setting an
// existing key overwrites the value in place.
func (p *Payload) Set(key string, value interface{}) *Payload {
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

// SetNonEmpty stores a string field only when it carries a value, matching
// the gateway convention of omitting optional fields entirely.
func (p *Payload) SetNonEmpty(key, value string) *Payload {
	if value == "" {
		return p
	}
	return p.Set(key, value)
}

func (p *Payload) Get(key string) (interface{}, bool) {
	value, ok := p.values[key]
	return value, ok
}

func (p *Payload) Len() int {
	return len(p.keys)
}

// Keys returns the field names in insertion order.
func (p *Payload) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// MarshalJSON emits compact JSON with the fields in insertion order and no
// whitespace between tokens.
func (p *Payload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedKey)
		buf.WriteByte(':')
		encodedValue, err := json.Marshal(p.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(encodedValue)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
