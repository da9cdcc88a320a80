package domain

import "strings"

// ValidationError carries every problem found in a form, in display order.
type ValidationError struct {
	Mensagens []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Mensagens, " ")
}

func (e *ValidationError) Add(msg string) {
	e.Mensagens = append(e.Mensagens, msg)
}

// Err returns nil when nothing was added, so callers can `return v.Err()`.
func (e *ValidationError) Err() error {
	if len(e.Mensagens) == 0 {
		return nil
	}
	return e
}
