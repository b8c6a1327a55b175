// Package usecase defines the application workflow interfaces and their
// input payloads. Handlers depend on these interfaces, implementations
// live in usecase/impl.
package usecase

// EntityRef is a reference to another entity carried inside an input
// payload. The ID pointer distinguishes an absent id from a zero one.
type EntityRef struct {
	ID *int64 `json:"id"`
}

// ResolvedID returns the referenced id, or false when the reference or
// its id is missing.
func (r *EntityRef) ResolvedID() (int64, bool) {
	if r == nil || r.ID == nil {
		return 0, false
	}

	return *r.ID, true
}
