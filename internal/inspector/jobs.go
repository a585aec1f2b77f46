package inspector

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"trustlens/internal/interfaces"
	"trustlens/internal/model"
)

type JobEventType string

const (
	JobEventStatus JobEventType = "status"
	JobEventResult JobEventType = "result"
)

type JobEvent struct {
	JobID string       `json:"job_id"`
	Type  JobEventType `json:"type"`

	Status JobStatus `json:"status,omitempty"`
	Error  string    `json:"error,omitempty"`
}

type JobStatus string

const (
	JobPending  JobStatus = "pending"
	JobRunning  JobStatus = "running"
	JobDone     JobStatus = "done"
	JobFailed   JobStatus = "failed"
	JobCanceled JobStatus = "canceled"
)

// Job tracks one asynchronous inspection from submission to completion.
// Runner accessors hand out copies: the live record is mutated by the
// job goroutine under the runner's lock, so callers must never hold a
// pointer into it.
type Job struct {
	ID        string        `json:"id"`
	URL       string        `json:"url"`
	Status    JobStatus     `json:"status"`
	Error     string        `json:"error,omitempty"`
	StartedAt time.Time     `json:"started_at"`
	EndedAt   time.Time     `json:"ended_at"`
	Events    chan JobEvent `json:"-"`

	Report *model.InspectionReport `json:"report,omitempty"`
}

// Runner executes inspections as background jobs and tracks their state.
type Runner struct {
	inspector interfaces.Inspector
	logger    interfaces.Logger

	jobsMu     sync.Mutex
	jobs       map[string]*Job
	jobCancels map[string]context.CancelFunc
}

// NewRunner wraps an inspector with job bookkeeping.
func NewRunner(insp interfaces.Inspector, logger interfaces.Logger) *Runner {
	return &Runner{
		inspector:  insp,
		logger:     logger.With(interfaces.Field{Key: "component", Value: "runner"}),
		jobs:       make(map[string]*Job),
		jobCancels: make(map[string]context.CancelFunc),
	}
}

func (r *Runner) emitJobEvent(jobID string, ev JobEvent) {
	r.jobsMu.Lock()
	job, ok := r.jobs[jobID]
	r.jobsMu.Unlock()
	if !ok || job == nil || job.Events == nil {
		return
	}

	// Non-blocking send; drop if buffer is full.
	select {
	case job.Events <- ev:
	default:
	}
}

// cloneJob copies a job so it can be read or encoded outside the lock.
// The Events channel is shared; the report is copied so a late reader
// cannot observe it mid-assignment.
func cloneJob(j *Job) *Job {
	if j == nil {
		return nil
	}
	c := *j
	if j.Report != nil {
		rep := *j.Report
		c.Report = &rep
	}
	return &c
}

func (r *Runner) setStatus(jobID string, status JobStatus, errMsg string) {
	r.jobsMu.Lock()
	if j, ok := r.jobs[jobID]; ok {
		j.Status = status
		if errMsg != "" {
			j.Error = errMsg
		}
	}
	r.jobsMu.Unlock()
}

// Inspect runs an inspection synchronously, bypassing job tracking.
func (r *Runner) Inspect(ctx context.Context, pageURL string) *model.InspectionReport {
	return r.inspector.Inspect(ctx, pageURL)
}

// StartJob submits pageURL for inspection and returns immediately. The
// returned Job's Events channel closes once the job reaches a terminal
// status.
func (r *Runner) StartJob(ctx context.Context, pageURL string) *Job {
	jobID := uuid.New().String()

	job := &Job{
		ID:        jobID,
		URL:       pageURL,
		Status:    JobPending,
		StartedAt: time.Now().UTC(),
		Events:    make(chan JobEvent, 16),
	}

	jobCtx, cancel := context.WithCancel(ctx)

	r.jobsMu.Lock()
	r.jobs[jobID] = job
	r.jobCancels[jobID] = cancel
	r.jobsMu.Unlock()

	r.emitJobEvent(jobID, JobEvent{JobID: jobID, Type: JobEventStatus, Status: JobPending})

	go func() {
		defer func() {
			r.jobsMu.Lock()
			j := r.jobs[jobID]
			if j != nil {
				j.EndedAt = time.Now().UTC()
			}
			delete(r.jobCancels, jobID)
			r.jobsMu.Unlock()

			cancel()

			// Close events channel so websocket loops terminate cleanly.
			if j != nil && j.Events != nil {
				close(j.Events)
			}
		}()

		r.setStatus(jobID, JobRunning, "")
		r.emitJobEvent(jobID, JobEvent{JobID: jobID, Type: JobEventStatus, Status: JobRunning})

		report := r.inspector.Inspect(jobCtx, pageURL)

		select {
		case <-jobCtx.Done():
			r.setStatus(jobID, JobCanceled, jobCtx.Err().Error())
			r.emitJobEvent(jobID, JobEvent{
				JobID:  jobID,
				Type:   JobEventStatus,
				Status: JobCanceled,
				Error:  jobCtx.Err().Error(),
			})
			return
		default:
		}

		r.jobsMu.Lock()
		if j, ok := r.jobs[jobID]; ok {
			j.Report = report
			if report.Success {
				j.Status = JobDone
			} else {
				j.Status = JobFailed
				j.Error = report.Error
			}
		}
		r.jobsMu.Unlock()

		if report.Success {
			r.emitJobEvent(jobID, JobEvent{JobID: jobID, Type: JobEventResult, Status: JobDone})
		} else {
			r.emitJobEvent(jobID, JobEvent{
				JobID:  jobID,
				Type:   JobEventStatus,
				Status: JobFailed,
				Error:  report.Error,
			})
		}
	}()

	r.jobsMu.Lock()
	defer r.jobsMu.Unlock()
	return cloneJob(job)
}

// GetJob returns a copy of the tracked job, or nil when unknown.
func (r *Runner) GetJob(jobID string) *Job {
	r.jobsMu.Lock()
	defer r.jobsMu.Unlock()
	return cloneJob(r.jobs[jobID])
}

// ListJobs returns copies of all tracked jobs, newest first.
func (r *Runner) ListJobs() []*Job {
	r.jobsMu.Lock()
	defer r.jobsMu.Unlock()
	out := make([]*Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, cloneJob(j))
	}
	for i := 0; i < len(out); i++ {
		for k := i + 1; k < len(out); k++ {
			if out[k].StartedAt.After(out[i].StartedAt) {
				out[i], out[k] = out[k], out[i]
			}
		}
	}
	return out
}

// CancelJob cancels a running job. Unknown or finished jobs are a no-op.
func (r *Runner) CancelJob(jobID string) {
	r.jobsMu.Lock()
	cancel := r.jobCancels[jobID]
	r.jobsMu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Close cancels every in-flight job and closes the inspector.
func (r *Runner) Close() error {
	r.jobsMu.Lock()
	cancels := make([]context.CancelFunc, 0, len(r.jobCancels))
	for _, c := range r.jobCancels {
		cancels = append(cancels, c)
	}
	r.jobsMu.Unlock()
	for _, c := range cancels {
		c()
	}
	return r.inspector.Close()
}
