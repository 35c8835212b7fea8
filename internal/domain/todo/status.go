package todo

// StatusFilter restricts a view by completion state.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusActive    StatusFilter = "active"
	StatusCompleted StatusFilter = "completed"
)

// IsValid returns true if the filter is one of the defined constants.
func (s StatusFilter) IsValid() bool {
	switch s {
	case StatusAll, StatusActive, StatusCompleted:
		return true
	default:
		return false
	}
}

// Matches reports whether t passes the filter. Unknown values pass
// everything, like StatusAll.
func (s StatusFilter) Matches(t *Todo) bool {
	switch s {
	case StatusActive:
		return !t.Completed
	case StatusCompleted:
		return t.Completed
	default:
		return true
	}
}

// String implements fmt.Stringer.
func (s StatusFilter) String() string {
	return string(s)
}
