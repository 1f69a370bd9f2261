package complaint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "fieldserve/internal/domain/complaint/valueobjects"
)

func entry(t *testing.T, id uint, old, new vo.Status) *HistoryEntry {
	t.Helper()

	e, err := ReconstructHistoryEntry(id, 1, old, new, 10, "dealer", "", time.Now().UTC())
	require.NoError(t, err)
	return e
}

func TestReplayStatus_FollowsTrail(t *testing.T) {
	trail := []*HistoryEntry{
		entry(t, 1, vo.StatusNew, vo.StatusNew),
		entry(t, 2, vo.StatusNew, vo.StatusAssigned),
		entry(t, 3, vo.StatusAssigned, vo.StatusAssigned), // reassignment, no edge
		entry(t, 4, vo.StatusAssigned, vo.StatusInProgress),
		entry(t, 5, vo.StatusInProgress, vo.StatusResolved),
	}

	status, ok := ReplayStatus(trail)
	require.True(t, ok)
	assert.Equal(t, vo.StatusResolved, status)
}

func TestReplayStatus_InitialEntryOnly(t *testing.T) {
	status, ok := ReplayStatus([]*HistoryEntry{entry(t, 1, vo.StatusNew, vo.StatusNew)})
	require.True(t, ok)
	assert.Equal(t, vo.StatusNew, status)
}

func TestReplayStatus_EmptyTrail(t *testing.T) {
	_, ok := ReplayStatus(nil)
	assert.False(t, ok)
}

func TestHistoryEntry_IsStatusChange(t *testing.T) {
	assert.False(t, entry(t, 1, vo.StatusNew, vo.StatusNew).IsStatusChange())
	assert.True(t, entry(t, 2, vo.StatusNew, vo.StatusAssigned).IsStatusChange())
}

func TestNewHistoryEntry_Validation(t *testing.T) {
	_, err := NewHistoryEntry(0, vo.StatusNew, vo.StatusNew, 10, "dealer", "")
	assert.Error(t, err)

	_, err = NewHistoryEntry(1, vo.StatusNew, vo.StatusNew, 0, "dealer", "")
	assert.Error(t, err)

	_, err = NewHistoryEntry(1, "open", vo.StatusNew, 10, "dealer", "")
	assert.Error(t, err)
}
