package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildEmployerDashboard(t *testing.T) {
	jobs := []*Job{
		{ID: 1, IsActive: true},
		{ID: 2, IsActive: false},
		{ID: 3, IsActive: true},
	}
	apps := []*Application{
		{ID: 10, Status: StatusPending},
		{ID: 11, Status: StatusReviewed},
		{ID: 12, Status: StatusPending},
	}

	dash := BuildEmployerDashboard(jobs, apps)

	assert.Equal(t, EmployerStats{TotalJobs: 3, ActiveJobs: 2, TotalApplications: 3, PendingApplications: 2}, dash.Stats)
	assert.Len(t, dash.RecentJobs, 3)
	assert.Equal(t, 1, dash.StatusCounts.Of(StatusReviewed))
}

func TestBuildSeekerDashboard_TruncatesRecent(t *testing.T) {
	var apps []*Application
	for i := range 7 {
		apps = append(apps, &Application{ID: int64(i), Status: StatusPending})
	}
	saved := []*SavedJob{{JobID: 1}, {JobID: 2}}

	dash := BuildSeekerDashboard(apps, saved)

	assert.Equal(t, SeekerStats{TotalApplications: 7, PendingApplications: 7, SavedJobs: 2}, dash.Stats)
	assert.Len(t, dash.RecentApplications, RecentLimit)
	assert.Len(t, dash.RecentSavedJobs, 2)
}

func TestJob_AcceptsApplications(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.True(t, (&Job{IsActive: true}).AcceptsApplications(now))
	assert.True(t, (&Job{IsActive: true, Deadline: &today}).AcceptsApplications(now))
	assert.False(t, (&Job{IsActive: true, Deadline: &yesterday}).AcceptsApplications(now))
	assert.False(t, (&Job{IsActive: false}).AcceptsApplications(now))
}
