package model

// Redirect represents a stored redirect mapping with owner information.
// The owner is recorded as-is and carries no access-control meaning.
type Redirect struct {
	ID        string
	TargetURL string
	Owner     string
}
