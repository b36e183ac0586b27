package runs

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/reliability-atlas/pkg/models/domain"
)

// gatedAssessment blocks until released so tests can observe the running
// state and exercise cancellation deterministically.
type gatedAssessment struct {
	release chan struct{}
	report  *domain.Report
	err     error
}

func (f *gatedAssessment) Run(ctx context.Context, _ domain.Scope) (*domain.Report, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-f.release:
	}
	if f.err != nil {
		return nil, f.err
	}
	// Each run gets its own copy; the controller stamps its id into it.
	report := domain.Report{}
	if f.report != nil {
		report = *f.report
	}
	return &report, nil
}

func waitForStatus(t *testing.T, ctrl Controller, id string, want domain.RunStatus) domain.AssessmentRun {
	t.Helper()
	var run domain.AssessmentRun
	require.Eventually(t, func() bool {
		var err error
		run, err = ctrl.Get(context.Background(), id)
		require.NoError(t, err)
		return run.Status == want
	}, 2*time.Second, 10*time.Millisecond)
	return run
}

func TestController_StartMissingTenantFails(t *testing.T) {
	ctrl := NewController(&gatedAssessment{})

	_, err := ctrl.Start(context.Background(), domain.Scope{})
	assert.ErrorContains(t, err, "tenant id is required")
}

func TestController_RunSucceeds(t *testing.T) {
	fake := &gatedAssessment{
		release: make(chan struct{}),
		report:  &domain.Report{Run: domain.RunMetadata{RunID: "internal", TenantID: "t1"}},
	}
	ctrl := NewController(fake)

	id, err := ctrl.Start(context.Background(), domain.Scope{TenantID: "t1"})
	require.NoError(t, err)

	run, err := ctrl.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.RunStatusRunning, run.Status)
	assert.Nil(t, run.Report)

	close(fake.release)
	run = waitForStatus(t, ctrl, id, domain.RunStatusSucceeded)
	require.NotNil(t, run.Report)
	assert.Equal(t, id, run.Report.Run.RunID)
	require.NotNil(t, run.FinishedAt)
	assert.Empty(t, run.Error)
}

func TestController_RunFailureIsRecorded(t *testing.T) {
	fake := &gatedAssessment{release: make(chan struct{}), err: fmt.Errorf("graph unreachable")}
	ctrl := NewController(fake)

	id, err := ctrl.Start(context.Background(), domain.Scope{TenantID: "t1"})
	require.NoError(t, err)
	close(fake.release)

	run := waitForStatus(t, ctrl, id, domain.RunStatusFailed)
	assert.Equal(t, "graph unreachable", run.Error)
	assert.Nil(t, run.Report)
}

func TestController_CancelStopsRun(t *testing.T) {
	fake := &gatedAssessment{release: make(chan struct{})}
	ctrl := NewController(fake)

	id, err := ctrl.Start(context.Background(), domain.Scope{TenantID: "t1"})
	require.NoError(t, err)

	require.NoError(t, ctrl.Cancel(context.Background(), id))

	run, err := ctrl.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.RunStatusCanceled, run.Status)
}

func TestController_UnknownRun(t *testing.T) {
	ctrl := NewController(&gatedAssessment{})

	_, err := ctrl.Get(context.Background(), "nope")
	assert.ErrorContains(t, err, "run not found")
	assert.ErrorContains(t, ctrl.Cancel(context.Background(), "nope"), "run not found")
}

func TestController_ListOrderedByStart(t *testing.T) {
	fake := &gatedAssessment{release: make(chan struct{}), report: &domain.Report{}}
	ctrl := NewController(fake)

	first, err := ctrl.Start(context.Background(), domain.Scope{TenantID: "t1"})
	require.NoError(t, err)
	second, err := ctrl.Start(context.Background(), domain.Scope{TenantID: "t1"})
	require.NoError(t, err)

	runs := ctrl.List(context.Background())
	require.Len(t, runs, 2)
	got := []string{runs[0].RunID, runs[1].RunID}
	assert.ElementsMatch(t, []string{first, second}, got)

	close(fake.release)
	waitForStatus(t, ctrl, first, domain.RunStatusSucceeded)
	waitForStatus(t, ctrl, second, domain.RunStatusSucceeded)
}
