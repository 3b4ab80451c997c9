package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/brand-auditor/internal/db"
	"github.com/jonathan/brand-auditor/internal/fetch"
)

// cachedFetcherFromEnv builds a fetcher backed by the page cache when
// DATABASE_URL is configured, and a plain pass-through fetcher otherwise.
// The returned func releases the database connection.
func cachedFetcherFromEnv(ctx context.Context) (*fetch.CachedFetcher, func()) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fetch.NewCachedFetcher(nil, nil), func() {}
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: page cache unavailable: %v\n", err)
		return fetch.NewCachedFetcher(nil, nil), func() {}
	}

	return fetch.NewCachedFetcher(database, nil), database.Close
}

// connectDB connects to the database configured by DATABASE_URL.
func connectDB(ctx context.Context) (*db.DB, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	return db.Connect(ctx, databaseURL)
}
