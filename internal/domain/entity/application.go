package entity

import "time"

// ApplicationStatus is the workflow state of an Application.
type ApplicationStatus string

const (
	// StatusPending is the initial state set when an application is submitted.
	StatusPending ApplicationStatus = "pending"
	// StatusReviewed means the employer has looked at the application.
	StatusReviewed ApplicationStatus = "reviewed"
	// StatusShortlisted means the applicant is under final consideration.
	StatusShortlisted ApplicationStatus = "shortlisted"
	// StatusAccepted is terminal.
	StatusAccepted ApplicationStatus = "accepted"
	// StatusRejected is terminal and reachable from every non-terminal state.
	StatusRejected ApplicationStatus = "rejected"
)

// AllStatuses lists every state in workflow order.
var AllStatuses = []ApplicationStatus{
	StatusPending,
	StatusReviewed,
	StatusShortlisted,
	StatusAccepted,
	StatusRejected,
}

// forward holds the single forward edge out of each non-terminal state.
// Accepted is reachable only from shortlisted; rejected is handled separately.
var forward = map[ApplicationStatus]ApplicationStatus{
	StatusPending:     StatusReviewed,
	StatusReviewed:    StatusShortlisted,
	StatusShortlisted: StatusAccepted,
}

// IsValid checks if the status is a known state.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusShortlisted, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no transition leaves this state.
func (s ApplicationStatus) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	if !s.IsValid() || !next.IsValid() || s.IsTerminal() {
		return false
	}
	if next == StatusRejected {
		return true
	}

	return forward[s] == next
}

// NextStatuses returns the states reachable from s in one step.
func (s ApplicationStatus) NextStatuses() []ApplicationStatus {
	var next []ApplicationStatus
	for _, candidate := range AllStatuses {
		if s.CanTransitionTo(candidate) {
			next = append(next, candidate)
		}
	}

	return next
}

// Application is a job seeker's submission for one job. At most one exists per
// (JobID, ApplicantID) pair; only the employer owning the job moves its Status.
type Application struct {
	ID             int64
	JobID          int64
	JobTitle       string
	ApplicantID    int64
	ApplicantName  string
	ApplicantEmail string
	Status         ApplicationStatus
	CoverLetter    string
	ResumeRef      string
	AppliedAt      time.Time
	ReviewedAt     *time.Time
}

// StatusCounts is a projection of how many applications sit in each state.
type StatusCounts struct {
	All    int
	Counts map[ApplicationStatus]int
}

// Of returns the count for one state.
func (c StatusCounts) Of(status ApplicationStatus) int {
	return c.Counts[status]
}

// CountByStatus recomputes the per-state projection from a collection.
func CountByStatus(apps []*Application) StatusCounts {
	counts := StatusCounts{
		All:    len(apps),
		Counts: make(map[ApplicationStatus]int, len(AllStatuses)),
	}
	for _, status := range AllStatuses {
		counts.Counts[status] = 0
	}
	for _, app := range apps {
		counts.Counts[app.Status]++
	}

	return counts
}

// FilterByStatus keeps applications in the given state. An empty status keeps all.
func FilterByStatus(apps []*Application, status ApplicationStatus) []*Application {
	if status == "" {
		return apps
	}

	filtered := make([]*Application, 0, len(apps))
	for _, app := range apps {
		if app.Status == status {
			filtered = append(filtered, app)
		}
	}

	return filtered
}
