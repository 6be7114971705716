package plan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/catherinevee/gcpmigrate/internal/translate"
	"github.com/catherinevee/gcpmigrate/internal/translate/lang"
	"github.com/catherinevee/gcpmigrate/internal/translate/pipeline"
	"github.com/catherinevee/gcpmigrate/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memFiles struct {
	files    map[string]string
	backups  []string
	readErrs map[string]error
}

func newMemFiles(seed map[string]string) *memFiles {
	return &memFiles{files: seed}
}

func (m *memFiles) Read(path string) (string, error) {
	if err := m.readErrs[path]; err != nil {
		return "", err
	}
	return m.files[path], nil
}
func (m *memFiles) Write(path, text string) error {
	m.files[path] = text
	return nil
}
func (m *memFiles) CreateBackup(path string) (string, error) {
	backup := path + ".bak"
	m.backups = append(m.backups, backup)
	return backup, nil
}

type stubTranslator struct {
	result pipeline.Result
}

func (s stubTranslator) Translate(ctx context.Context, sourceText string, recipe lang.TransformationRecipe) pipeline.Result {
	return s.result
}

type failingTranslator struct{}

func (failingTranslator) Translate(ctx context.Context, sourceText string, recipe lang.TransformationRecipe) pipeline.Result {
	return pipeline.Result{FinalText: sourceText}
}

type memPlanStore struct {
	saves []RefactoringPlan
}

func (s *memPlanStore) Save(ctx context.Context, p RefactoringPlan) error {
	s.saves = append(s.saves, p)
	return nil
}

func (s *memPlanStore) Load(id string) (RefactoringPlan, error) {
	for _, p := range s.saves {
		if p.ID == id {
			return p, nil
		}
	}
	return RefactoringPlan{}, nil
}

type stubTestRunner struct {
	success bool
}

func (s stubTestRunner) Run(ctx context.Context, codebase string) (bool, error) { return s.success, nil }

func TestExecute_CompletesTaskAndWritesOutput(t *testing.T) {
	files := newMemFiles(map[string]string{"a.py": "import boto3\n"})
	translator := stubTranslator{result: pipeline.Result{FinalText: "from google.cloud import storage\n", Renames: lang.VariableRenameMap{"s3_client": "storage_client"}}}
	store := &memPlanStore{}
	executor := NewExecutor(files, store, stubTestRunner{success: true}, translator, false)

	p := NewPlan("plan-1", "codebase-1", []RefactoringTask{
		NewTask("t1", "migrate a.py", "a.py", models.MigrateOperation(models.GCPCloudStorage), models.AWSS3, models.ProviderAWS, models.LanguagePython),
	}, nil)

	finalPlan, result, err := executor.Execute(context.Background(), p)

	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, finalPlan.Tasks[0].Status)
	assert.Equal(t, "from google.cloud import storage\n", files.files["a.py"])
	assert.Equal(t, "storage_client", result.Renames["s3_client"])
	assert.True(t, result.Success)
	assert.Empty(t, result.Errors)
	assert.NotEmpty(t, store.saves)
	assert.Equal(t, 1, result.TransformedFiles)
	assert.Equal(t, 1, result.ServiceSuccesses[models.AWSS3])
	assert.NotNil(t, finalPlan.StartedAt)
	assert.NotNil(t, finalPlan.CompletedAt)
}

func TestExecute_NoOpTaskSkipsPipelineAndFileWrite(t *testing.T) {
	files := newMemFiles(map[string]string{})
	executor := NewExecutor(files, nil, nil, failingTranslator{}, false)

	p := NewPlan("plan-1", "codebase-1", []RefactoringTask{
		NewTask("t1", "bookkeeping only", "", models.NoOp, "", models.ProviderAWS, models.LanguagePython),
	}, nil)

	finalPlan, result, err := executor.Execute(context.Background(), p)

	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, finalPlan.Tasks[0].Status)
	assert.NotNil(t, finalPlan.Tasks[0].CompletedAt)
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.TransformedFiles)
}

func TestExecute_FailedReadMarksTaskFailedWithoutAbortingPlan(t *testing.T) {
	files := newMemFiles(map[string]string{"a.py": "code-a", "b.py": "code-b"})
	files.readErrs = map[string]error{"a.py": errors.New("permission denied")}
	translator := stubTranslator{result: pipeline.Result{FinalText: "translated"}}
	executor := NewExecutor(files, nil, nil, translator, false)

	p := NewPlan("plan-1", "codebase-1", []RefactoringTask{
		NewTask("t1", "migrate a.py", "a.py", models.MigrateOperation(models.GCPCloudStorage), models.AWSS3, models.ProviderAWS, models.LanguagePython),
		NewTask("t2", "migrate b.py", "b.py", models.MigrateOperation(models.GCPCloudStorage), models.AWSS3, models.ProviderAWS, models.LanguagePython),
	}, nil)

	finalPlan, result, err := executor.Execute(context.Background(), p)

	require.NoError(t, err)
	assert.Equal(t, StatusFailed, finalPlan.Tasks[0].Status)
	assert.Equal(t, StatusCompleted, finalPlan.Tasks[1].Status)
	assert.False(t, result.Success)
	assert.Equal(t, 1, result.TransformedFiles)
}

func TestExecute_TestRunnerFailureMarksOverallUnsuccessful(t *testing.T) {
	files := newMemFiles(map[string]string{"a.py": "code"})
	translator := stubTranslator{result: pipeline.Result{FinalText: "translated"}}
	executor := NewExecutor(files, nil, stubTestRunner{success: false}, translator, false)

	p := NewPlan("plan-1", "codebase-1", []RefactoringTask{
		NewTask("t1", "migrate a.py", "a.py", models.MigrateOperation(models.GCPCloudStorage), models.AWSS3, models.ProviderAWS, models.LanguagePython),
	}, nil)

	_, result, err := executor.Execute(context.Background(), p)

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Errors, "post-migration test runner reported failure")
}

func TestExecute_BackupCreatedWhenEnabled(t *testing.T) {
	files := newMemFiles(map[string]string{"a.py": "code"})
	translator := stubTranslator{result: pipeline.Result{FinalText: "translated"}}
	executor := NewExecutor(files, nil, nil, translator, true)

	p := NewPlan("plan-1", "codebase-1", []RefactoringTask{
		NewTask("t1", "migrate a.py", "a.py", models.MigrateOperation(models.GCPCloudStorage), models.AWSS3, models.ProviderAWS, models.LanguagePython),
	}, nil)

	_, _, err := executor.Execute(context.Background(), p)

	require.NoError(t, err)
	assert.Contains(t, files.backups, "a.py.bak")
}

func TestExecute_RefusesPlanWithFailedTask(t *testing.T) {
	files := newMemFiles(map[string]string{"a.py": "code"})
	translator := stubTranslator{result: pipeline.Result{FinalText: "translated"}}
	executor := NewExecutor(files, nil, nil, translator, false)

	p := NewPlan("plan-1", "codebase-1", []RefactoringTask{
		NewTask("t1", "migrate a.py", "a.py", models.MigrateOperation(models.GCPCloudStorage), models.AWSS3, models.ProviderAWS, models.LanguagePython).WithFailed("boom"),
	}, nil)
	require.False(t, p.IsExecutable())

	_, _, err := executor.Execute(context.Background(), p)

	assert.ErrorIs(t, err, translate.ErrPlanNotExecutable)
}

func TestRefactoringTask_WithMethodsDoNotMutateOriginal(t *testing.T) {
	original := NewTask("t1", "migrate a.py", "a.py", models.MigrateOperation(models.GCPCloudStorage), models.AWSS3, models.ProviderAWS, models.LanguagePython)
	completed := original.WithCompleted(time.Now())

	assert.Equal(t, StatusPending, original.Status)
	assert.Equal(t, StatusCompleted, completed.Status)
}

func TestRefactoringPlan_WithTaskDoesNotMutateOriginal(t *testing.T) {
	original := NewPlan("plan-1", "codebase-1", []RefactoringTask{
		NewTask("t1", "migrate a.py", "a.py", models.MigrateOperation(models.GCPCloudStorage), models.AWSS3, models.ProviderAWS, models.LanguagePython),
	}, nil)

	updated := original.WithTask(0, original.Tasks[0].WithStatus(StatusInProgress))

	assert.Equal(t, StatusPending, original.Tasks[0].Status)
	assert.Equal(t, StatusInProgress, updated.Tasks[0].Status)
	assert.Nil(t, original.StartedAt)
	assert.NotNil(t, updated.StartedAt)
}

func TestRefactoringPlan_DoneReportsTrueOnlyWhenAllTasksTerminal(t *testing.T) {
	p := NewPlan("plan-1", "codebase-1", []RefactoringTask{
		NewTask("t1", "migrate a.py", "a.py", models.MigrateOperation(models.GCPCloudStorage), models.AWSS3, models.ProviderAWS, models.LanguagePython),
	}, nil)
	require.False(t, p.Done())
	assert.Nil(t, p.CompletedAt)

	p = p.WithTask(0, p.Tasks[0].WithCompleted(time.Now()))
	assert.True(t, p.Done())
	assert.NotNil(t, p.CompletedAt)
}

func TestRefactoringPlan_IsExecutableFalseWhenAnyTaskFailed(t *testing.T) {
	p := NewPlan("plan-1", "codebase-1", []RefactoringTask{
		NewTask("t1", "migrate a.py", "a.py", models.MigrateOperation(models.GCPCloudStorage), models.AWSS3, models.ProviderAWS, models.LanguagePython),
	}, nil)
	assert.True(t, p.IsExecutable())

	p = p.WithTask(0, p.Tasks[0].WithFailed("boom"))
	assert.False(t, p.IsExecutable())
}
