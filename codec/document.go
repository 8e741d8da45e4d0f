// Package codec maps typed records to and from generic, ordered documents.
package codec

import (
	"bytes"
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
)

// Field is one key/value pair of a Document
type Field struct {
	Key   string
	Value any
}

// Document is an ordered key/value mapping. It is the only shape that
// crosses the storage boundary; records never go to a store directly.
type Document []Field

func (d Document) Get(key string) (any, bool) {
	for _, f := range d {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Set replaces the value of key in place, or appends it.
func (d *Document) Set(key string, value any) {
	for i := range *d {
		if (*d)[i].Key == key {
			(*d)[i].Value = value
			return
		}
	}
	*d = append(*d, Field{Key: key, Value: value})
}

// MarshalJSON writes the fields in document order.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// BSON converts the document, recursively, into the driver's ordered form.
func (d Document) BSON() bson.D {
	out := make(bson.D, 0, len(d))
	for _, f := range d {
		out = append(out, bson.E{Key: f.Key, Value: toBSONValue(f.Value)})
	}
	return out
}

func toBSONValue(v any) any {
	switch val := v.(type) {
	case Document:
		return val.BSON()
	case []any:
		out := make(bson.A, len(val))
		for i, item := range val {
			out[i] = toBSONValue(item)
		}
		return out
	default:
		return v
	}
}

// FromBSON converts a driver document into a Document, turning nested
// documents and arrays into Document and []any.
func FromBSON(d bson.D) Document {
	out := make(Document, 0, len(d))
	for _, e := range d {
		out = append(out, Field{Key: e.Key, Value: fromBSONValue(e.Value)})
	}
	return out
}

func fromBSONValue(v any) any {
	switch val := v.(type) {
	case bson.D:
		return FromBSON(val)
	case bson.M:
		return fromBSONValue(mapToD(val))
	case bson.A:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = fromBSONValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = fromBSONValue(item)
		}
		return out
	default:
		return v
	}
}

func mapToD(m bson.M) bson.D {
	d := make(bson.D, 0, len(m))
	for k, v := range m {
		d = append(d, bson.E{Key: k, Value: v})
	}
	return d
}
