package services

import (
	"strings"

	"github.com/google/uuid"
)

// IsValidID reports whether id is a well-formed record ID.
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func uniqueIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// validIDs drops malformed IDs so they never reach a query.
func validIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if IsValidID(id) {
			out = append(out, id)
		}
	}
	return out
}

func missingIDs(ids []string, found map[string]bool) []string {
	var missing []string
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return missing
}
