package todo

// Filter holds optional filter criteria for listing todos.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	Completed *bool
}

// Matches reports whether t satisfies the filter.
func (f Filter) Matches(t *Todo) bool {
	if f.Completed != nil && t.Completed != *f.Completed {
		return false
	}
	return true
}
