package migrate

import (
	"errors"
	"fmt"
)

// DefinitionError reports a migration that lacks the operation required
// for the requested action. The applied-migrations table and version
// counter are untouched when this is returned.
type DefinitionError struct {
	// Name identifies the migration.
	Name string

	// Op is the missing operation: "apply" or "rollback".
	Op string
}

func (e *DefinitionError) Error() string {
	if e.Op == "rollback" {
		return fmt.Sprintf("migration %s cannot be reverted: no rollback operation", e.Name)
	}
	return fmt.Sprintf("migration %s has no %s operation", e.Name, e.Op)
}

// IsDefinitionError returns true if the error is a migration definition
// error. Uses errors.As to handle wrapped errors.
func IsDefinitionError(err error) bool {
	var de *DefinitionError
	return errors.As(err, &de)
}
