package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/catherinevee/gcpmigrate/internal/translate"
	"github.com/catherinevee/gcpmigrate/internal/translate/plan"
)

// PlanStore persists RefactoringPlan aggregates as one JSON file per id,
// overwritten on every Save -- the executor's copy-on-write re-persist
// after each task transition (§4.8) means every Save is a full rewrite.
// Implements plan.PlanStore.
type PlanStore struct {
	dir string
}

// NewPlanStore builds a store rooted at dir, creating it if absent.
func NewPlanStore(dir string) (*PlanStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create plan store dir: %w", err)
	}
	return &PlanStore{dir: dir}, nil
}

func (s *PlanStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Save writes p to disk, satisfying plan.PlanStore.
func (s *PlanStore) Save(ctx context.Context, p plan.RefactoringPlan) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal plan %s: %w", p.ID, err)
	}
	if err := os.WriteFile(s.path(p.ID), data, 0o600); err != nil {
		return fmt.Errorf("write plan %s: %w", p.ID, err)
	}
	return nil
}

// Load reads the plan record for id, round-tripping every task's status,
// optional error, and completed_at.
func (s *PlanStore) Load(id string) (plan.RefactoringPlan, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return plan.RefactoringPlan{}, translate.ErrPlanNotFound
		}
		return plan.RefactoringPlan{}, fmt.Errorf("read plan %s: %w", id, err)
	}
	var p plan.RefactoringPlan
	if err := json.Unmarshal(data, &p); err != nil {
		return plan.RefactoringPlan{}, fmt.Errorf("unmarshal plan %s: %w", id, err)
	}
	return p, nil
}
