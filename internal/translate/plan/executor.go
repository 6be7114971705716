package plan

import (
	"context"
	"fmt"
	"time"

	"github.com/catherinevee/gcpmigrate/internal/observability/logger"
	"github.com/catherinevee/gcpmigrate/internal/translate"
	"github.com/catherinevee/gcpmigrate/internal/translate/lang"
	"github.com/catherinevee/gcpmigrate/internal/translate/pipeline"
	"github.com/catherinevee/gcpmigrate/pkg/models"
)

var log = logger.New("plan")

// FileRepository is the executor's sole filesystem collaborator; no other
// component in this module touches the filesystem (§5).
type FileRepository interface {
	Read(path string) (string, error)
	Write(path, text string) error
	CreateBackup(path string) (string, error)
}

// PlanStore persists a RefactoringPlan after every state transition,
// matching the copy-on-write re-persist rule in §4.8. Load lets a caller
// resume an in-flight plan; the executor itself only calls Save.
type PlanStore interface {
	Save(ctx context.Context, p RefactoringPlan) error
	Load(id string) (RefactoringPlan, error)
}

// TestRunner invokes the post-migration test suite against the translated
// codebase. Opaque beyond the success flag (§6).
type TestRunner interface {
	Run(ctx context.Context, codebase string) (bool, error)
}

// Translator is the subset of pipeline.Pipeline the executor depends on.
type Translator interface {
	Translate(ctx context.Context, sourceText string, recipe lang.TransformationRecipe) pipeline.Result
}

// Result is the aggregate outcome of executing one plan (spec.md §3's
// RefactoringResult): a success flag, a human-facing message, the count of
// files actually rewritten, per-service success/failure tallies, and the
// cumulative rename map merged across every task.
type Result struct {
	Success          bool
	Message          string
	TransformedFiles int
	Errors           []string
	Warnings         []string
	ServiceSuccesses map[models.ServiceTag]int
	ServiceFailures  map[models.ServiceTag]int
	Renames          lang.VariableRenameMap
}

// Executor drives a RefactoringPlan to completion, single-threaded,
// sequential, one task at a time (§5: no two tasks from the same plan
// execute concurrently).
type Executor struct {
	files      FileRepository
	plans      PlanStore
	tests      TestRunner
	translator Translator
	backup     bool
}

// NewExecutor builds an Executor. plans and tests may be nil: a nil
// PlanStore skips re-persisting between transitions, a nil TestRunner
// skips the post-plan test run entirely.
func NewExecutor(files FileRepository, plans PlanStore, tests TestRunner, translator Translator, backupBeforeWrite bool) *Executor {
	return &Executor{files: files, plans: plans, tests: tests, translator: translator, backup: backupBeforeWrite}
}

// Execute drives every task in p to a terminal state, re-persisting the
// plan after each transition, then invokes the post-plan test runner.
// Failures do not abort the plan: every task is attempted independently.
// It refuses to run a plan that is not executable (§3 invariant (d), a
// task already in the failed state), returning translate.ErrPlanNotExecutable.
func (e *Executor) Execute(ctx context.Context, p RefactoringPlan) (RefactoringPlan, Result, error) {
	if !p.IsExecutable() {
		return p, Result{}, translate.ErrPlanNotExecutable
	}

	renames := lang.VariableRenameMap{}
	var warnings, errs []string
	transformedFiles := 0
	serviceSuccesses := map[models.ServiceTag]int{}
	serviceFailures := map[models.ServiceTag]int{}

	for i, task := range p.Tasks {
		if task.IsNoOp() {
			p = p.WithTask(i, task.WithCompleted(time.Now()))
			e.persist(ctx, p)
			continue
		}

		p = p.WithTask(i, task.WithStatus(StatusInProgress))
		e.persist(ctx, p)

		if e.backup {
			if _, err := e.files.CreateBackup(task.FilePath); err != nil {
				log.WithError(err).Warn("failed to create backup, continuing without one", logger.String("path", task.FilePath))
			}
		}

		taskRenames, warning, err := runTask(ctx, e.files, e.translator, task.FilePath, task.Language, task.ServiceTag, task.Provider, task.Operation)
		if err != nil {
			p = p.WithTask(i, task.WithFailed(err.Error()))
			errs = append(errs, fmt.Sprintf("%s: %v", task.FilePath, err))
			serviceFailures[task.ServiceTag]++
			e.persist(ctx, p)
			continue
		}

		renames = renames.Merge(taskRenames)
		if warning != "" {
			warnings = append(warnings, fmt.Sprintf("%s: %s", task.FilePath, warning))
		}
		transformedFiles++
		serviceSuccesses[task.ServiceTag]++
		p = p.WithTask(i, task.WithCompleted(time.Now()))
		e.persist(ctx, p)
	}

	success := len(errs) == 0
	if e.tests != nil {
		ok, err := e.tests.Run(ctx, p.Codebase)
		if err != nil {
			errs = append(errs, fmt.Sprintf("test runner error: %v", err))
			success = false
		} else if !ok {
			errs = append(errs, "post-migration test runner reported failure")
			success = false
		}
	}

	message := fmt.Sprintf("transformed %d of %d task(s)", transformedFiles, len(p.Tasks))
	failedTasks := 0
	for _, n := range serviceFailures {
		failedTasks += n
	}
	if failedTasks > 0 {
		message = fmt.Sprintf("%s; %d task(s) failed", message, failedTasks)
	}

	return p, Result{
		Success:          success,
		Message:          message,
		TransformedFiles: transformedFiles,
		Errors:           errs,
		Warnings:         warnings,
		ServiceSuccesses: serviceSuccesses,
		ServiceFailures:  serviceFailures,
		Renames:          renames,
	}, nil
}

func (e *Executor) persist(ctx context.Context, p RefactoringPlan) {
	if e.plans == nil {
		return
	}
	if err := e.plans.Save(ctx, p); err != nil {
		log.WithError(err).Warn("failed to persist plan after task transition", logger.String("plan_id", p.ID))
	}
}

// runTask is the free-standing function the isolation rule in §9 requires:
// it accepts only primitive values extracted from a task, never the task
// object itself, so a closure built from a stale task cannot leak into a
// retry or a different dispatcher.
func runTask(ctx context.Context, files FileRepository, translator Translator, filePath string, language models.Language, serviceTag models.ServiceTag, provider models.CloudProvider, operation models.OperationTag) (lang.VariableRenameMap, string, error) {
	sourceText, err := files.Read(filePath)
	if err != nil {
		return nil, "", fmt.Errorf("read file: %w", err)
	}

	recipe := lang.TransformationRecipe{
		Operation:  operation,
		ServiceTag: serviceTag,
		Provider:   provider,
		Language:   language,
	}

	result := translator.Translate(ctx, sourceText, recipe)

	if err := files.Write(filePath, result.FinalText); err != nil {
		return nil, "", fmt.Errorf("write file: %w", err)
	}

	return result.Renames, result.Warning, nil
}
