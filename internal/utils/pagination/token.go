package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeKeysetToken creates a base64 encoded token from the last row's creation time and ID.
// Lists are ordered by (created_at, id), so the pair identifies the page boundary.
func EncodeKeysetToken(createdAt time.Time, id string) string {
	tokenStr := fmt.Sprintf("%s|%s", createdAt.UTC().Format(timeFormat), id)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeKeysetToken parses a token produced by EncodeKeysetToken.
func DecodeKeysetToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}

	createdAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return createdAt, parts[1], nil
}

// NextToken returns the token for the page after items when the page is full, nil otherwise.
// key extracts the (created_at, id) pair of an item.
func NextToken[T any](items []T, limit int, key func(T) (time.Time, string)) *string {
	if limit <= 0 || len(items) < limit {
		return nil
	}
	createdAt, id := key(items[len(items)-1])
	token := EncodeKeysetToken(createdAt, id)
	return &token
}
