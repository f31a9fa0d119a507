package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatus_CanTransitionTo(t *testing.T) {
	allowed := map[[2]ApplicationStatus]bool{
		{StatusPending, StatusReviewed}:     true,
		{StatusReviewed, StatusShortlisted}: true,
		{StatusShortlisted, StatusAccepted}: true,
		{StatusPending, StatusRejected}:     true,
		{StatusReviewed, StatusRejected}:    true,
		{StatusShortlisted, StatusRejected}: true,
	}

	for _, from := range AllStatuses {
		for _, to := range AllStatuses {
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				assert.Equal(t, allowed[[2]ApplicationStatus{from, to}], from.CanTransitionTo(to))
			})
		}
	}
}

func TestApplicationStatus_TerminalStatesHaveNoExit(t *testing.T) {
	assert.Empty(t, StatusAccepted.NextStatuses())
	assert.Empty(t, StatusRejected.NextStatuses())
	assert.Equal(t, []ApplicationStatus{StatusReviewed, StatusRejected}, StatusPending.NextStatuses())
}

func TestApplicationStatus_UnknownValues(t *testing.T) {
	assert.False(t, ApplicationStatus("hired").IsValid())
	assert.False(t, StatusPending.CanTransitionTo("hired"))
	assert.False(t, ApplicationStatus("hired").CanTransitionTo(StatusRejected))
}

func TestCountByStatus(t *testing.T) {
	apps := []*Application{
		{ID: 1, Status: StatusPending},
		{ID: 2, Status: StatusPending},
		{ID: 3, Status: StatusRejected},
	}

	counts := CountByStatus(apps)

	assert.Equal(t, 3, counts.All)
	assert.Equal(t, 2, counts.Of(StatusPending))
	assert.Equal(t, 1, counts.Of(StatusRejected))
	assert.Equal(t, 0, counts.Of(StatusAccepted))
}

func TestFilterByStatus(t *testing.T) {
	apps := []*Application{
		{ID: 1, Status: StatusPending},
		{ID: 2, Status: StatusReviewed},
	}

	assert.Len(t, FilterByStatus(apps, ""), 2)

	filtered := FilterByStatus(apps, StatusReviewed)
	if assert.Len(t, filtered, 1) {
		assert.Equal(t, int64(2), filtered[0].ID)
	}
}
