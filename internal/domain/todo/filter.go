package todo

// Filter holds the active view restrictions.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	Status   StatusFilter
	Category string
}

// Matches reports whether t passes both the status and the category
// restriction. Category matching is exact and case-sensitive.
func (f Filter) Matches(t *Todo) bool {
	if !f.Status.Matches(t) {
		return false
	}
	return f.Category == "" || t.Category == f.Category
}
