package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/devtoolkit/devtoolkit-go/internal/model"
)

var ErrInvalidJSON = errors.New("Invalid JSON string.")

const (
	prettyIndent = "    "

	// maxNestingDepth bounds recursion while building the value tree.
	maxNestingDepth = 10000
)

// JSONService re-indents JSON documents.
type JSONService struct{}

func NewJSONService() *JSONService {
	return &JSONService{}
}

// Prettify parses req.Content into a value tree and writes it back with four
// spaces per level. Object keys keep their first-seen position; a repeated key
// takes the last value. Number literals are written exactly as given.
func (s *JSONService) Prettify(req model.PrettifyRequest) (model.PrettifyResponse, error) {
	if err := req.Validate(); err != nil {
		return model.PrettifyResponse{}, err
	}

	dec := json.NewDecoder(strings.NewReader(*req.Content))
	dec.UseNumber()

	v, err := readValue(dec, 0)
	if err != nil {
		return model.PrettifyResponse{}, ErrInvalidJSON
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return model.PrettifyResponse{}, ErrInvalidJSON
	}

	var out bytes.Buffer
	if err := writeValue(&out, v, 0); err != nil {
		return model.PrettifyResponse{}, err
	}

	return model.PrettifyResponse{Prettified: out.String()}, nil
}

// orderedObject is a JSON object that remembers key insertion order.
type orderedObject struct {
	keys   []string
	values map[string]any
}

func (o *orderedObject) set(key string, v any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// readValue consumes one value from dec. Objects become *orderedObject,
// arrays []any, numbers json.Number.
func readValue(dec *json.Decoder, depth int) (any, error) {
	if depth > maxNestingDepth {
		return nil, ErrInvalidJSON
	}

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch tok {
	case json.Delim('{'):
		obj := &orderedObject{values: make(map[string]any)}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, ErrInvalidJSON
			}
			v, err := readValue(dec, depth+1)
			if err != nil {
				return nil, err
			}
			obj.set(key, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case json.Delim('['):
		arr := []any{}
		for dec.More() {
			v, err := readValue(dec, depth+1)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	case json.Delim('}'), json.Delim(']'):
		return nil, ErrInvalidJSON
	}

	return tok, nil
}

func writeValue(buf *bytes.Buffer, v any, depth int) error {
	switch v := v.(type) {
	case *orderedObject:
		if len(v.keys) == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteString("{\n")
		for i, key := range v.keys {
			writeIndent(buf, depth+1)
			if err := writeString(buf, key); err != nil {
				return err
			}
			buf.WriteString(": ")
			if err := writeValue(buf, v.values[key], depth+1); err != nil {
				return err
			}
			if i < len(v.keys)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		writeIndent(buf, depth)
		buf.WriteByte('}')
	case []any:
		if len(v) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteString("[\n")
		for i, elem := range v {
			writeIndent(buf, depth+1)
			if err := writeValue(buf, elem, depth+1); err != nil {
				return err
			}
			if i < len(v)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		writeIndent(buf, depth)
		buf.WriteByte(']')
	case string:
		return writeString(buf, v)
	case json.Number:
		buf.WriteString(v.String())
	case bool:
		if v {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case nil:
		buf.WriteString("null")
	default:
		return ErrInvalidJSON
	}
	return nil
}

// writeString writes s as a JSON string literal without HTML escaping.
func writeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode appends a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

func writeIndent(buf *bytes.Buffer, depth int) {
	for range depth {
		buf.WriteString(prettyIndent)
	}
}
