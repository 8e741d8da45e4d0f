package store

import (
	"context"
	"strings"
)

// Open builds the process-wide store handle. An empty url yields a nil
// Store and no error: the service then runs without a database.
// "sqlite:" and "file:" urls, or ":memory:", select the embedded backend;
// anything else is treated as a MongoDB connection string.
func Open(ctx context.Context, url, dbName string) (Store, error) {
	if url == "" {
		return nil, nil
	}
	if dsn, ok := sqliteDSN(url); ok {
		s, err := OpenSQLite(dsn, dbName)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	s, err := OpenMongo(ctx, url, dbName)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func sqliteDSN(url string) (string, bool) {
	switch {
	case url == ":memory:", strings.HasPrefix(url, "file:"):
		return url, true
	case strings.HasPrefix(url, "sqlite://"):
		return strings.TrimPrefix(url, "sqlite://"), true
	case strings.HasPrefix(url, "sqlite:"):
		return strings.TrimPrefix(url, "sqlite:"), true
	}
	return "", false
}
