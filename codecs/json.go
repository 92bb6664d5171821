package codecs

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/ravnholt/eventjournal"
)

func NewJSON() *JSON {
	return &JSON{
		payloads: make(map[string]reflect.Type),
	}
}

// JSON is a manifest keyed codec. All payload shapes are registered at
// startup; decoding an unregistered manifest is an explicit error, never a
// late type lookup.
type JSON struct {
	payloads map[string]reflect.Type
}

func (j *JSON) Encode(payload eventjournal.Payload) ([]byte, error) {
	return json.Marshal(payload)
}

func (j *JSON) Decode(manifest string, b []byte) (eventjournal.Payload, error) {
	tp, ok := j.payloads[manifest]
	if !ok {
		return nil, fmt.Errorf("unregistered manifest %q", manifest)
	}

	value := reflect.New(tp)
	err := json.Unmarshal(b, value.Interface())
	if err != nil {
		return nil, err
	}

	return value.Elem().Interface().(eventjournal.Payload), nil
}

// Register adds payload shapes to the codec. Registration is done once at
// startup, before the codec is read from; a manifest may only map to one
// shape.
func (j *JSON) Register(payloads ...eventjournal.Payload) error {
	for _, payload := range payloads {
		manifest := payload.Manifest()
		if existing, ok := j.payloads[manifest]; ok && existing != reflect.TypeOf(payload) {
			return fmt.Errorf("manifest %q already registered to %s", manifest, existing)
		}
		j.payloads[manifest] = reflect.TypeOf(payload)
	}

	return nil
}
