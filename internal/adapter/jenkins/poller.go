package jenkins

import (
	"context"
	"strings"
	"sync"

	"linenotify/internal/domain/model"
	"linenotify/internal/domain/ports"
	"linenotify/internal/usecase"
)

// Poller watches Jenkins jobs and emits an event for every newly completed
// build it sees.
type Poller struct {
	client       *Client
	jobs         []string
	policies     ports.PolicyResolver
	handler      ports.BuildEventHandler
	logger       ports.Logger
	logTailLines int

	mu       sync.Mutex
	lastSeen map[string]int
}

// NewPoller constructs a Poller for jobs.
func NewPoller(client *Client, jobs []string, policies ports.PolicyResolver, handler ports.BuildEventHandler, logTailLines int, logger ports.Logger) *Poller {
	return &Poller{
		client:       client,
		jobs:         jobs,
		policies:     policies,
		handler:      handler,
		logger:       logger,
		logTailLines: logTailLines,
		lastSeen:     make(map[string]int),
	}
}

// Poll checks every job once. The first observation of a job only records
// its latest build number.
func (p *Poller) Poll(ctx context.Context) {
	for _, job := range p.jobs {
		if ctx.Err() != nil {
			return
		}
		p.pollJob(ctx, job)
	}
}

func (p *Poller) pollJob(ctx context.Context, job string) {
	build, err := p.client.LastCompletedBuild(ctx, job)
	if err != nil {
		p.logger.Error(ctx, "failed to read last completed build", "job", job, "error", err)
		return
	}
	if build == nil {
		// Nothing completed yet: the job's first build will count as new.
		p.markSeen(job, 0)
		return
	}

	last, seen := p.markSeen(job, build.Number)
	if !seen {
		p.logger.Info(ctx, "watching job", "job", job, "build", build.Number)
		return
	}
	if build.Number <= last {
		return
	}
	if skipped := build.Number - last - 1; skipped > 0 {
		p.logger.Warn(ctx, "builds completed between polls were not notified", "job", job, "skipped", skipped)
	}

	p.handler.Perform(ctx, p.event(ctx, job, build))
}

func (p *Poller) event(ctx context.Context, job string, build *Build) model.BuildEvent {
	outcome := model.BuildOutcome{
		Result:      build.ParseResult(),
		ProjectName: jobName(job),
		BuildNumber: build.Number,
		URL:         p.client.JobURL(job),
		LogTail:     usecase.ReadLogTail(ctx, p.client.Log(build.URL), p.logTailLines, p.logger),
	}

	return model.BuildEvent{
		Outcome:        outcome,
		PreviousResult: build.PreviousResult(),
		Policy:         p.policies.PolicyFor(job),
	}
}

func (p *Poller) markSeen(job string, number int) (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	last, ok := p.lastSeen[job]
	if !ok || number > last {
		p.lastSeen[job] = number
	}
	return last, ok
}

// jobName is the leaf name of a possibly foldered job path.
func jobName(job string) string {
	job = strings.Trim(job, "/")
	if i := strings.LastIndex(job, "/"); i >= 0 {
		return job[i+1:]
	}
	return job
}
