package repository

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/zanzibar-explore/tours-backend/internal/domain"
)

// listLimit caps every list query. The API does not paginate.
const listLimit = 1000

// parseID validates an opaque identifier against the store's identity scheme.
// This is the only place in the codebase that knows ids are UUIDs.
func parseID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return parsed.String(), nil
}
