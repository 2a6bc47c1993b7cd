package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeToken creates an opaque token from the creation time and ID of the
// last row of a page. Lists are ordered by (created_at DESC, id DESC), so the
// pair identifies the resume point unambiguously.
func EncodeToken(createdAt time.Time, id string) string {
	tokenStr := fmt.Sprintf("%s|%s", createdAt.UTC().Format(timeFormat), id)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token produced by EncodeToken.
func DecodeToken(token string) (time.Time, string, error) {
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

// IsBefore reports whether the row (createdAt, id) sorts after the cursor in
// (created_at DESC, id DESC) order, i.e. belongs to the next page.
func IsBefore(createdAt time.Time, id string, cursorCreatedAt time.Time, cursorID string) bool {
	if createdAt.Equal(cursorCreatedAt) {
		return id < cursorID
	}
	return createdAt.Before(cursorCreatedAt)
}
