package entity

// RecentLimit is how many recent items a dashboard shows.
const RecentLimit = 5

// EmployerStats is derived from the employer's jobs and received applications.
type EmployerStats struct {
	TotalJobs           int
	ActiveJobs          int
	TotalApplications   int
	PendingApplications int
}

// EmployerDashboard is the joined view for an employer.
type EmployerDashboard struct {
	Stats              EmployerStats
	StatusCounts       StatusCounts
	RecentJobs         []*Job
	RecentApplications []*Application
}

// SeekerStats is derived from the job seeker's applications and saved jobs.
type SeekerStats struct {
	TotalApplications   int
	PendingApplications int
	SavedJobs           int
}

// SeekerDashboard is the joined view for a job seeker.
type SeekerDashboard struct {
	Stats              SeekerStats
	StatusCounts       StatusCounts
	RecentApplications []*Application
	RecentSavedJobs    []*SavedJob
}

// BuildEmployerDashboard recomputes every counter from the two collections.
func BuildEmployerDashboard(jobs []*Job, apps []*Application) *EmployerDashboard {
	counts := CountByStatus(apps)

	active := 0
	for _, job := range jobs {
		if job.IsActive {
			active++
		}
	}

	return &EmployerDashboard{
		Stats: EmployerStats{
			TotalJobs:           len(jobs),
			ActiveJobs:          active,
			TotalApplications:   counts.All,
			PendingApplications: counts.Of(StatusPending),
		},
		StatusCounts:       counts,
		RecentJobs:         firstN(jobs, RecentLimit),
		RecentApplications: firstN(apps, RecentLimit),
	}
}

// BuildSeekerDashboard recomputes every counter from the two collections.
func BuildSeekerDashboard(apps []*Application, saved []*SavedJob) *SeekerDashboard {
	counts := CountByStatus(apps)

	return &SeekerDashboard{
		Stats: SeekerStats{
			TotalApplications:   counts.All,
			PendingApplications: counts.Of(StatusPending),
			SavedJobs:           len(saved),
		},
		StatusCounts:       counts,
		RecentApplications: firstN(apps, RecentLimit),
		RecentSavedJobs:    firstN(saved, RecentLimit),
	}
}

func firstN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}

	return items[:n]
}
