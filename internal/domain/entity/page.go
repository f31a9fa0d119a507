package entity

// Page is one slice of a paginated result set. Number is 1-indexed.
type Page[T any] struct {
	Items       []T
	TotalCount  int
	Number      int
	HasNext     bool
	HasPrevious bool
}
