package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDateTimeUnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{`"2025-06-01T10:00:00"`, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)},
		{`"2025-06-01T10:00:00.250"`, time.Date(2025, 6, 1, 10, 0, 0, 250e6, time.UTC)},
		{`"2025-06-01T10:00:00Z"`, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)},
		{`"2025-06-01T10:00:00+02:00"`, time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)},
		{`"2025-06-01 10:00:00"`, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)},
		{`"2025-06-01T10:00"`, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)},
		{`"2025-06-01"`, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		var d DateTime
		if err := json.Unmarshal([]byte(tt.in), &d); err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		if !d.Equal(tt.want) || d.Location() != time.UTC {
			t.Errorf("%s: got %v, want %v", tt.in, d.Time, tt.want)
		}
	}
}

func TestDateTimeRejectsGarbage(t *testing.T) {
	for _, in := range []string{`"tomorrow"`, `"2025-13-01T10:00:00"`, `42`} {
		var d DateTime
		err := json.Unmarshal([]byte(in), &d)
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Rule != "iso8601" {
			t.Errorf("%s: got %v", in, err)
		}
	}
}

func TestDateTimeEncodesAsBSONDatetime(t *testing.T) {
	at := DateTime{Time: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
	raw, err := bson.Marshal(struct {
		At *DateTime `bson:"at,omitempty"`
	}{At: &at})
	if err != nil {
		t.Fatal(err)
	}
	var out bson.M
	if err := bson.Unmarshal(raw, &out); err != nil {
		t.Fatal(err)
	}
	dt, ok := out["at"].(primitive.DateTime)
	if !ok || !dt.Time().Equal(at.Time) {
		t.Fatalf("at = %#v", out["at"])
	}

	js, _ := json.Marshal(at)
	if string(js) != `"2025-06-01T10:00:00Z"` {
		t.Fatalf("json = %s", js)
	}
}
