package history

import (
	"fmt"
	"testing"

	"github.com/jonathan/project-estimator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func project(n int) types.ProjectData {
	return types.ProjectData{
		ID:             fmt.Sprintf("project-%d", n),
		Name:           fmt.Sprintf("Project %d", n),
		ActualHours:    float64(100 + n),
		EstimatedHours: 100,
	}
}

func TestLedger_AppendBelowCapacity(t *testing.T) {
	l := NewLedger(5)
	for i := 0; i < 3; i++ {
		l.Append(project(i))
	}

	assert.Equal(t, 3, l.Len())
	snap := l.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "project-0", snap[0].ID)
	assert.Equal(t, "project-2", snap[2].ID)
}

func TestLedger_EvictsOldestFirst(t *testing.T) {
	l := NewLedger(3)
	for i := 0; i < 5; i++ {
		l.Append(project(i))
	}

	assert.Equal(t, 3, l.Len())
	snap := l.Snapshot()
	require.Len(t, snap, 3)
	// 0 and 1 evicted; 2, 3, 4 retained in insertion order
	assert.Equal(t, "project-2", snap[0].ID)
	assert.Equal(t, "project-3", snap[1].ID)
	assert.Equal(t, "project-4", snap[2].ID)
}

func TestLedger_CapAtOneHundred(t *testing.T) {
	l := NewLedger(DefaultCapacity)
	for i := 0; i < 105; i++ {
		l.Append(project(i))
	}

	assert.Equal(t, 100, l.Len())
	snap := l.Snapshot()
	require.Len(t, snap, 100)
	// The 100 most recently added entries survive
	assert.Equal(t, "project-5", snap[0].ID)
	assert.Equal(t, "project-104", snap[99].ID)
}

func TestLedger_SnapshotIsDefensiveCopy(t *testing.T) {
	l := NewLedger(5)
	l.Append(project(0))

	snap := l.Snapshot()
	snap[0].Name = "mutated"

	assert.Equal(t, "Project 0", l.Snapshot()[0].Name)
}

func TestNewLedger_NonPositiveCapacityUsesDefault(t *testing.T) {
	l := NewLedger(0)
	assert.Equal(t, DefaultCapacity, l.Capacity())
}
