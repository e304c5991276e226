package dataset

import "fmt"

// InvalidColumnError indicates a column identifier outside the observation
// schema, or a column of the wrong kind for the requested operation.
type InvalidColumnError struct {
	Column Column
}

func (e *InvalidColumnError) Error() string {
	return fmt.Sprintf("invalid column %q: not part of the observation schema for this operation", string(e.Column))
}
