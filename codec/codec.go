package codec

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// IDField is the store's primary identifier key
	IDField = "_id"
	// PublicIDField replaces IDField in decoded documents
	PublicIDField = "id"
)

var ErrInvalidIdentifier = errors.New("invalid identifier")

// ParseID accepts only the store's native 24-hex ObjectID form.
func ParseID(s string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidIdentifier, s)
	}
	return oid, nil
}

// FormatTime renders a timestamp as an ISO-8601 string in UTC
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// Encode converts a typed record into a storable document. Fields are
// emitted in struct order; optional fields that are absent are omitted.
func Encode(record any) (Document, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", record, err)
	}
	var d bson.D
	if err := bson.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("encode %T: %w", record, err)
	}
	return FromBSON(d), nil
}

// Decode produces the external representation of a stored document:
// "_id" becomes "id" as a hex string and timestamps become ISO strings.
// Decoding an already decoded document returns it unchanged.
func Decode(doc Document) Document {
	out := make(Document, 0, len(doc))
	_, hasPublicID := doc.Get(PublicIDField)
	for _, f := range doc {
		if f.Key == IDField {
			if hasPublicID {
				continue
			}
			out = append(out, Field{Key: PublicIDField, Value: idString(f.Value)})
			continue
		}
		out = append(out, Field{Key: f.Key, Value: decodeValue(f.Value)})
	}
	return out
}

// EncodeDocument reverses the identifier rename done by Decode so a
// decoded document can be written back.
func EncodeDocument(doc Document) Document {
	out := make(Document, 0, len(doc))
	for _, f := range doc {
		if f.Key != PublicIDField {
			out = append(out, f)
			continue
		}
		value := f.Value
		if s, ok := value.(string); ok {
			if oid, err := primitive.ObjectIDFromHex(s); err == nil {
				value = oid
			}
		}
		out = append(out, Field{Key: IDField, Value: value})
	}
	return out
}

func idString(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}

func decodeValue(v any) any {
	switch val := v.(type) {
	case time.Time:
		return FormatTime(val)
	case *time.Time:
		if val == nil {
			return nil
		}
		return FormatTime(*val)
	case primitive.DateTime:
		return FormatTime(val.Time())
	case primitive.Timestamp:
		return FormatTime(time.Unix(int64(val.T), 0))
	case primitive.ObjectID:
		return val.Hex()
	case Document:
		out := make(Document, len(val))
		for i, f := range val {
			out[i] = Field{Key: f.Key, Value: decodeValue(f.Value)}
		}
		return out
	case bson.D:
		return decodeValue(FromBSON(val))
	case bson.A:
		return decodeValue(fromBSONValue(val))
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = decodeValue(item)
		}
		return out
	default:
		return v
	}
}
