package llm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrEmptySelection is returned when a run selects neither a summarization
// prompt nor any extraction definitions.
var ErrEmptySelection = errors.New("no summarization prompt or extraction definitions selected")

// UnknownTemplateError names every selected id that failed to resolve.
// Composition aborts before any backend call or session row.
type UnknownTemplateError struct {
	IDs []uuid.UUID
}

func (e *UnknownTemplateError) Error() string {
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = id.String()
	}
	return fmt.Sprintf("unknown template id(s): %s", strings.Join(ids, ", "))
}
