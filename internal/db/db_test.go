package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFetchStatusFromHTTP(t *testing.T) {
	tests := []struct {
		status   int
		expected string
	}{
		{200, FetchStatusSuccess},
		{204, FetchStatusSuccess},
		{404, FetchStatusNotFound},
		{410, FetchStatusNotFound},
		{403, FetchStatusBlocked},
		{429, FetchStatusBlocked},
		{500, FetchStatusError},
		{0, FetchStatusError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FetchStatusFromHTTP(tt.status), "status %d", tt.status)
	}
}

func TestIsPermanentHTTPStatus(t *testing.T) {
	assert.True(t, IsPermanentHTTPStatus(404))
	assert.True(t, IsPermanentHTTPStatus(410))
	assert.True(t, IsPermanentHTTPStatus(451))
	assert.False(t, IsPermanentHTTPStatus(500))
	assert.False(t, IsPermanentHTTPStatus(429))
	assert.False(t, IsPermanentHTTPStatus(200))
}

func TestHashContent(t *testing.T) {
	hash1 := HashContent("hello world")
	hash2 := HashContent("hello world")
	assert.Equal(t, hash1, hash2, "same content should hash identically")

	hash3 := HashContent("different content")
	assert.NotEqual(t, hash1, hash3)

	// SHA-256 hex is 64 characters
	assert.Len(t, hash1, 64)
}

func TestFetchedPageFreshness(t *testing.T) {
	page := &FetchedPage{FetchedAt: time.Now().Add(-time.Hour)}
	assert.True(t, page.IsFresh(2*time.Hour))
	assert.False(t, page.IsFresh(30*time.Minute))

	assert.False(t, page.IsExpired(), "no expiry set means never expires")

	past := time.Now().Add(-time.Minute)
	page.ExpiresAt = &past
	assert.True(t, page.IsExpired())

	future := time.Now().Add(time.Minute)
	page.ExpiresAt = &future
	assert.False(t, page.IsExpired())
}

func TestAuditRunStatusConstants(t *testing.T) {
	for _, status := range []string{RunStatusRunning, RunStatusCompleted, RunStatusFailed} {
		assert.NotEmpty(t, status)
	}
}
