package store

import (
	"context"
	"fmt"
)

const maxListedCollections = 10

// Diagnostics is a best-effort report of store connectivity
type Diagnostics struct {
	Database         string   `json:"database"`
	DatabaseName     string   `json:"database_name,omitempty"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Diagnose never fails; every problem ends up in the report text.
func (g *Gateway) Diagnose(ctx context.Context) (d Diagnostics) {
	d = Diagnostics{
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}
	defer func() {
		if r := recover(); r != nil {
			d.Database = "❌ Error: " + Truncate(fmt.Sprint(r), 50)
		}
	}()

	if g.store == nil {
		return d
	}
	d.Database = "✅ Available"
	d.DatabaseName = g.store.Name()
	d.ConnectionStatus = "Connected"

	if err := g.store.Ping(ctx); err != nil {
		d.ConnectionStatus = "Not Connected"
		d.Database = "⚠️  Connected but Error: " + Truncate(err.Error(), 50)
		return d
	}
	names, err := g.store.CollectionNames(ctx)
	if err != nil {
		d.Database = "⚠️  Connected but Error: " + Truncate(err.Error(), 50)
		return d
	}
	if len(names) > maxListedCollections {
		names = names[:maxListedCollections]
	}
	if names != nil {
		d.Collections = names
	}
	d.Database = "✅ Connected & Working"
	return d
}

// Truncate shortens s to at most n runes
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
