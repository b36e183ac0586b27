package runs

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/de-tools/reliability-atlas/pkg/models/domain"
	"github.com/de-tools/reliability-atlas/pkg/services/assessment"
)

var ErrNotFound = errors.New("run not found")

// Controller owns the lifecycle of assessment runs started through the web
// API. The assessment itself stays single-threaded; the controller only
// tracks one goroutine per started run.
type Controller interface {
	Start(ctx context.Context, scope domain.Scope) (string, error)
	Get(ctx context.Context, id string) (domain.AssessmentRun, error)
	List(ctx context.Context) []domain.AssessmentRun
	Cancel(ctx context.Context, id string) error
}

type runDescriptor struct {
	cancelFunc context.CancelFunc
	done       chan struct{}

	// run is guarded by the controller mutex.
	run domain.AssessmentRun
}

type DefaultController struct {
	assessment assessment.Service

	mu   sync.Mutex
	runs map[string]*runDescriptor
}

func NewController(svc assessment.Service) *DefaultController {
	return &DefaultController{
		assessment: svc,
		runs:       make(map[string]*runDescriptor),
	}
}

func (ctrl *DefaultController) Start(ctx context.Context, scope domain.Scope) (string, error) {
	if scope.TenantID == "" {
		return "", fmt.Errorf("tenant id is required")
	}

	// The run must outlive the request that started it; only the logger is
	// carried over from the caller's context.
	runCtx, cancel := context.WithCancel(zerolog.Ctx(ctx).WithContext(context.Background()))

	desc := &runDescriptor{
		cancelFunc: cancel,
		done:       make(chan struct{}),
		run: domain.AssessmentRun{
			RunID:     uuid.NewString(),
			Status:    domain.RunStatusRunning,
			StartedAt: time.Now().UTC(),
		},
	}

	ctrl.mu.Lock()
	ctrl.runs[desc.run.RunID] = desc
	ctrl.mu.Unlock()

	go ctrl.execute(runCtx, desc, scope)
	return desc.run.RunID, nil
}

func (ctrl *DefaultController) execute(ctx context.Context, desc *runDescriptor, scope domain.Scope) {
	defer close(desc.done)

	report, err := ctrl.assessment.Run(ctx, scope)
	finished := time.Now().UTC()

	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	desc.run.FinishedAt = &finished
	switch {
	case ctx.Err() != nil:
		desc.run.Status = domain.RunStatusCanceled
	case err != nil:
		desc.run.Status = domain.RunStatusFailed
		desc.run.Error = err.Error()
	default:
		// The id handed out by Start is the one callers poll with.
		report.Run.RunID = desc.run.RunID
		desc.run.Status = domain.RunStatusSucceeded
		desc.run.Report = report
	}
}

func (ctrl *DefaultController) Get(_ context.Context, id string) (domain.AssessmentRun, error) {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()

	desc, ok := ctrl.runs[id]
	if !ok {
		return domain.AssessmentRun{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return desc.run, nil
}

func (ctrl *DefaultController) List(_ context.Context) []domain.AssessmentRun {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()

	out := make([]domain.AssessmentRun, 0, len(ctrl.runs))
	for _, desc := range ctrl.runs {
		out = append(out, desc.run)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].RunID < out[j].RunID
		}
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out
}

func (ctrl *DefaultController) Cancel(_ context.Context, id string) error {
	ctrl.mu.Lock()
	desc, ok := ctrl.runs[id]
	ctrl.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	desc.cancelFunc()
	<-desc.done
	return nil
}
