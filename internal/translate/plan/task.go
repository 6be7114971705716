// Package plan implements the Plan Executor (C8): the state machine that
// drives a RefactoringPlan's tasks to completion one at a time, per the
// original source's RefactoringPlan/apply_plan loop. Tasks are immutable
// value types; every state transition produces a new value rather than
// mutating in place, matching the design note on closure-captured
// immutable tasks (some runtimes in the reference source reject mutating a
// frozen task, and the port keeps that discipline even though Go structs
// are not frozen by default).
package plan

import (
	"time"

	"github.com/catherinevee/gcpmigrate/pkg/models"
)

// TaskStatus is a RefactoringTask's position in its state machine:
// pending -> in_progress -> completed | failed.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
	StatusFailed     TaskStatus = "failed"
)

// RefactoringTask is one file's migration instruction plus its current
// execution state. Every field is set at construction time except Status,
// Error, and CompletedAt, which change only through the With* methods.
type RefactoringTask struct {
	ID          string               `json:"id"`
	Description string               `json:"description"`
	FilePath    string               `json:"file_path"`
	Operation   models.OperationTag  `json:"operation"`
	ServiceTag  models.ServiceTag    `json:"service_tag"`
	Provider    models.CloudProvider `json:"provider"`
	Language    models.Language      `json:"language"`
	Status      TaskStatus           `json:"status"`
	Error       string               `json:"error,omitempty"`
	CompletedAt *time.Time           `json:"completed_at,omitempty"`
}

// NewTask builds a pending task for one file.
func NewTask(id, description, filePath string, operation models.OperationTag, serviceTag models.ServiceTag, provider models.CloudProvider, language models.Language) RefactoringTask {
	return RefactoringTask{
		ID:          id,
		Description: description,
		FilePath:    filePath,
		Operation:   operation,
		ServiceTag:  serviceTag,
		Provider:    provider,
		Language:    language,
		Status:      StatusPending,
	}
}

// WithStatus returns a copy of t with Status replaced.
func (t RefactoringTask) WithStatus(status TaskStatus) RefactoringTask {
	next := t
	next.Status = status
	return next
}

// WithCompleted returns a copy of t marked completed at the given time.
func (t RefactoringTask) WithCompleted(at time.Time) RefactoringTask {
	next := t
	next.Status = StatusCompleted
	next.Error = ""
	next.CompletedAt = &at
	return next
}

// WithFailed returns a copy of t marked failed with the given message.
func (t RefactoringTask) WithFailed(message string) RefactoringTask {
	next := t
	next.Status = StatusFailed
	next.Error = message
	return next
}

// IsNoOp reports whether this task performs no file edit (bookkeeping
// only) and should skip the pipeline entirely.
func (t RefactoringTask) IsNoOp() bool {
	return t.Operation == models.NoOp
}

// RefactoringPlan is an ordered, immutable list of tasks for one codebase.
type RefactoringPlan struct {
	ID          string            `json:"id"`
	Codebase    string            `json:"codebase"`
	CreatedAt   time.Time         `json:"created_at"`
	StartedAt   *time.Time        `json:"started_at,omitempty"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	Tasks       []RefactoringTask `json:"tasks"`
}

// NewPlan builds a plan with every task pending. metadata carries
// free-form tags such as the migration-type and source-language (§3); a
// nil map is normalized to empty so callers can always range over it.
func NewPlan(id, codebase string, tasks []RefactoringTask, metadata map[string]string) RefactoringPlan {
	if metadata == nil {
		metadata = map[string]string{}
	}
	return RefactoringPlan{ID: id, Codebase: codebase, CreatedAt: time.Now(), Metadata: metadata, Tasks: tasks}
}

// WithTask returns a copy of p with Tasks[index] replaced by task, updating
// StartedAt and CompletedAt to preserve §3's invariants (b) and (c):
// started is set the first time any task leaves pending, completed is set
// once every task has reached a terminal state.
func (p RefactoringPlan) WithTask(index int, task RefactoringTask) RefactoringPlan {
	next := p
	next.Tasks = make([]RefactoringTask, len(p.Tasks))
	copy(next.Tasks, p.Tasks)
	next.Tasks[index] = task

	if next.StartedAt == nil {
		for _, t := range next.Tasks {
			if t.Status != StatusPending {
				now := time.Now()
				next.StartedAt = &now
				break
			}
		}
	}
	if next.CompletedAt == nil && next.Done() {
		now := time.Now()
		next.CompletedAt = &now
	}
	return next
}

// Done reports whether every task has reached a terminal state.
func (p RefactoringPlan) Done() bool {
	for _, t := range p.Tasks {
		if t.Status != StatusCompleted && t.Status != StatusFailed {
			return false
		}
	}
	return true
}

// IsExecutable reports whether the plan can be executed: no task may be in
// the failed state (§3 invariant (d)), mirroring the original's
// RefactoringPlan.is_executable.
func (p RefactoringPlan) IsExecutable() bool {
	for _, t := range p.Tasks {
		if t.Status == StatusFailed {
			return false
		}
	}
	return true
}
