package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/catherinevee/gcpmigrate/internal/translate"
	"github.com/catherinevee/gcpmigrate/internal/translate/plan"
	"github.com/catherinevee/gcpmigrate/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanStore_SaveThenLoadRoundTripsTaskStatusAndError(t *testing.T) {
	s, err := NewPlanStore(t.TempDir())
	require.NoError(t, err)

	now := time.Now().Truncate(time.Second)
	p := plan.NewPlan("plan-1", "codebase-1", []plan.RefactoringTask{
		plan.NewTask("t1", "migrate a.py", "a.py", models.MigrateOperation(models.GCPCloudStorage), models.AWSS3, models.ProviderAWS, models.LanguagePython).WithCompleted(now),
		plan.NewTask("t2", "migrate b.py", "b.py", models.MigrateOperation(models.GCPCloudStorage), models.AWSS3, models.ProviderAWS, models.LanguagePython).WithFailed("read error"),
	}, map[string]string{"source_language": "python", "migration_type": "aws_to_gcp"})

	require.NoError(t, s.Save(context.Background(), p))

	loaded, err := s.Load("plan-1")
	require.NoError(t, err)
	assert.Equal(t, plan.StatusCompleted, loaded.Tasks[0].Status)
	require.NotNil(t, loaded.Tasks[0].CompletedAt)
	assert.True(t, now.Equal(*loaded.Tasks[0].CompletedAt))
	assert.Equal(t, plan.StatusFailed, loaded.Tasks[1].Status)
	assert.Equal(t, "read error", loaded.Tasks[1].Error)
	assert.Equal(t, "aws_to_gcp", loaded.Metadata["migration_type"])
}

func TestPlanStore_LoadUnknownIDReturnsNotFound(t *testing.T) {
	s, err := NewPlanStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Load("missing")
	assert.True(t, errors.Is(err, translate.ErrPlanNotFound))
}

func TestPlanStore_SaveIsRepeatableAcrossTransitions(t *testing.T) {
	s, err := NewPlanStore(t.TempDir())
	require.NoError(t, err)

	p := plan.NewPlan("plan-1", "codebase-1", []plan.RefactoringTask{
		plan.NewTask("t1", "migrate a.py", "a.py", models.MigrateOperation(models.GCPCloudStorage), models.AWSS3, models.ProviderAWS, models.LanguagePython),
	}, nil)

	require.NoError(t, s.Save(context.Background(), p))
	p = p.WithTask(0, p.Tasks[0].WithStatus(plan.StatusInProgress))
	require.NoError(t, s.Save(context.Background(), p))
	p = p.WithTask(0, p.Tasks[0].WithCompleted(time.Now()))
	require.NoError(t, s.Save(context.Background(), p))

	loaded, err := s.Load("plan-1")
	require.NoError(t, err)
	assert.Equal(t, plan.StatusCompleted, loaded.Tasks[0].Status)
}
