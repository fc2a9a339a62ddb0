package repository

import (
	"fmt"

	"github.com/google/uuid"
)

// newID synthesizes a record id. Ids are never caller-supplied; create
// paths overwrite whatever the caller sent.
func newID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString())
}

// stripProtected drops fields a shallow-merge update must never touch.
func stripProtected(fields map[string]any) {
	delete(fields, "id")
	delete(fields, "createdAt")
}
