package availability

// ConflictError is returned when a requested date range collides with existing
// occupancy. It always carries the full conflict payload so callers can render
// the cause instead of a bare boolean.
type ConflictError struct {
	Message   string
	Conflicts Conflicts
}

func (e *ConflictError) Error() string {
	return e.Message
}
