package codec

import gojson "github.com/goccy/go-json"

// GoJSON encodes custom attribute values with github.com/goccy/go-json.
// It is the default codec of archive registries. Values it writes decode with
// JSON and the other way round, so an archive record may name either codec.
type GoJSON struct{}

func (GoJSON) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

func (GoJSON) Name() string { return "go-json" }

// Append writes the encoding of v after dst. Archive records call it once per
// attribute value to fill the record payload in place; HTML characters are
// not escaped since payloads are never embedded in markup.
// On error dst is returned unchanged.
func (GoJSON) Append(dst []byte, v any) ([]byte, error) {
	b, err := gojson.MarshalNoEscape(v)
	if err != nil {
		return dst, err
	}
	return append(dst, b...), nil
}
