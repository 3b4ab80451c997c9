package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunServe_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	err := runServe(nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL environment variable is required")
}
