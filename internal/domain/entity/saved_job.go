package entity

import "time"

// SavedJob is the membership of a job in a job seeker's saved list.
type SavedJob struct {
	JobID       int64
	ApplicantID int64
	Job         *Job
	SavedAt     time.Time
}

// ContainsJob reports whether jobID is among the saved jobs.
func ContainsJob(saved []*SavedJob, jobID int64) bool {
	for _, s := range saved {
		if s.JobID == jobID {
			return true
		}
	}

	return false
}
