package entity

// JobFilter is the value object describing a job listing request.
// Every setter except WithPage returns a copy with Page reset to 1, since a page
// number is only meaningful for the filter it was computed against.
type JobFilter struct {
	Search     string
	CategoryID *int64
	JobType    JobType
	Location   string
	MinSalary  *float64
	MaxSalary  *float64
	Experience *int
	Page       int
}

// NewJobFilter returns an empty filter on the first page.
func NewJobFilter() JobFilter {
	return JobFilter{Page: 1}
}

func (f JobFilter) firstPage() JobFilter {
	f.Page = 1

	return f
}

// WithSearch replaces the free-text search term.
func (f JobFilter) WithSearch(search string) JobFilter {
	f.Search = search

	return f.firstPage()
}

// WithCategory replaces the category constraint; nil removes it.
func (f JobFilter) WithCategory(categoryID *int64) JobFilter {
	f.CategoryID = categoryID

	return f.firstPage()
}

// WithJobType replaces the job type constraint; empty removes it.
func (f JobFilter) WithJobType(jobType JobType) JobFilter {
	f.JobType = jobType

	return f.firstPage()
}

// WithLocation replaces the location constraint.
func (f JobFilter) WithLocation(location string) JobFilter {
	f.Location = location

	return f.firstPage()
}

// WithSalaryRange replaces the salary bounds; nil removes a bound.
func (f JobFilter) WithSalaryRange(minSalary, maxSalary *float64) JobFilter {
	f.MinSalary = minSalary
	f.MaxSalary = maxSalary

	return f.firstPage()
}

// WithExperience replaces the maximum required experience in years.
func (f JobFilter) WithExperience(years *int) JobFilter {
	f.Experience = years

	return f.firstPage()
}

// WithPage moves to another page of the same result set.
func (f JobFilter) WithPage(page int) JobFilter {
	f.Page = page

	return f
}

// Reset clears every constraint and returns to the first page.
func (f JobFilter) Reset() JobFilter {
	return NewJobFilter()
}

// Merge applies the non-page fields of next onto f. The page resets to 1 when any of
// them differs from the current value, otherwise next.Page is honoured.
func (f JobFilter) Merge(next JobFilter) JobFilter {
	if f.sameConstraints(next) {
		return f.WithPage(next.Page)
	}
	next.Page = 1

	return next
}

func (f JobFilter) sameConstraints(o JobFilter) bool {
	return f.Search == o.Search &&
		f.JobType == o.JobType &&
		f.Location == o.Location &&
		equalPtr(f.CategoryID, o.CategoryID) &&
		equalPtr(f.MinSalary, o.MinSalary) &&
		equalPtr(f.MaxSalary, o.MaxSalary) &&
		equalPtr(f.Experience, o.Experience)
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
