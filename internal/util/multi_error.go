package util

// MultiError is a collection of errors.
type MultiError struct {
	Errors []error
}

// Collect adds the specified error to the collection, provided it is not nil.
func (m *MultiError) Collect(err error) {
	if err != nil {
		m.Errors = append(m.Errors, err)
	}
}

// Empty returns true if no errors were collected, false otherwise.
func (m MultiError) Empty() bool {
	return len(m.Errors) == 0
}
