package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/catherinevee/gcpmigrate/internal/translate/detect"
	plantask "github.com/catherinevee/gcpmigrate/internal/translate/plan"
	"github.com/catherinevee/gcpmigrate/internal/translate/store"
	"github.com/catherinevee/gcpmigrate/pkg/models"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	planProvider string
	planBackup   bool
	planStateDir string
)

// PlanCmd builds a RefactoringPlan over every recognized source file under
// a directory, then executes it.
var PlanCmd = &cobra.Command{
	Use:   "plan <dir>",
	Short: "Build and execute a migration plan over a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlan,
}

func init() {
	PlanCmd.Flags().StringVar(&planProvider, "provider", "", "source provider (aws|azure); auto-detected per file if omitted")
	PlanCmd.Flags().BoolVar(&planBackup, "backup", true, "write a timestamped backup before overwriting each file")
	PlanCmd.Flags().StringVar(&planStateDir, "state-dir", defaultStateDir(), "directory for plan/codebase JSON persistence")
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".gcpmigrate", "state")
}

func runPlan(cmd *cobra.Command, args []string) error {
	root := args[0]

	pipe, cat, err := buildPipeline(cmd.Context())
	if err != nil {
		return err
	}
	detector := detect.New(cat)

	var files []string
	err = filepath.Walk(root, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if info.IsDir() {
			return nil
		}
		if _, ok := languageFromExtension(path); ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk %s: %w", root, err)
	}

	var tasks []plantask.RefactoringTask
	var dependencies []string
	var codebaseLanguage models.Language
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		language, _ := languageFromExtension(path)
		if codebaseLanguage == "" {
			codebaseLanguage = language
		}

		provider := models.CloudProvider(planProvider)
		serviceTag, found := detector.PrimaryService(string(data), provider)
		if !found {
			for _, candidate := range []models.CloudProvider{models.ProviderAWS, models.ProviderAzure} {
				if tag, ok := detector.PrimaryService(string(data), candidate); ok {
					provider, serviceTag, found = candidate, tag, true
					break
				}
			}
		}
		if !found {
			tasks = append(tasks, plantask.NewTask(uuid.NewString(), "no recognized AWS/Azure service usage detected", path, models.NoOp, "", "", language))
			continue
		}

		mapping, ok := cat.Get(provider, serviceTag)
		if !ok {
			tasks = append(tasks, plantask.NewTask(uuid.NewString(), fmt.Sprintf("no catalog mapping for service %s", serviceTag), path, models.NoOp, "", "", language))
			continue
		}

		description := fmt.Sprintf("migrate %s (%s) to %s", filepath.Base(path), serviceTag, mapping.TargetService)
		tasks = append(tasks, plantask.NewTask(uuid.NewString(), description, path, models.MigrateOperation(mapping.TargetService), serviceTag, provider, language))
		dependencies = append(dependencies, string(serviceTag))
	}

	codebaseStore, err := store.NewCodebaseStore(filepath.Join(planStateDir, "codebases"))
	if err != nil {
		return err
	}
	planStore, err := store.NewPlanStore(filepath.Join(planStateDir, "plans"))
	if err != nil {
		return err
	}

	codebaseID := uuid.NewString()
	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = root
	}
	codebase := store.Codebase{
		ID:           codebaseID,
		Path:         absRoot,
		Language:     codebaseLanguage,
		Files:        files,
		Dependencies: dependencySet(dependencies),
		CreatedAt:    time.Now(),
		Metadata:     map[string]string{},
	}
	if err := codebaseStore.Save(codebase); err != nil {
		return fmt.Errorf("save codebase record: %w", err)
	}

	metadata := map[string]string{
		"source_language": string(codebaseLanguage),
		"migration_type":  migrationTypeTag(tasks),
	}
	refactoringPlan := plantask.NewPlan(uuid.NewString(), codebaseID, tasks, metadata)

	executor := plantask.NewExecutor(store.NewFileRepository(), planStore, nil, pipe, planBackup)
	finalPlan, result, err := executor.Execute(cmd.Context(), refactoringPlan)
	if err != nil {
		return fmt.Errorf("execute plan %s: %w", refactoringPlan.ID, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "plan %s: %s, success=%v\n", finalPlan.ID, result.Message, result.Success)
	for _, w := range result.Warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
	}
	for _, e := range result.Errors {
		fmt.Fprintln(cmd.ErrOrStderr(), "error:", e)
	}
	if !result.Success {
		return fmt.Errorf("plan %s completed with errors", finalPlan.ID)
	}
	return nil
}

func dependencySet(serviceTags []string) map[string]string {
	out := make(map[string]string, len(serviceTags))
	for _, tag := range serviceTags {
		out[tag] = "detected"
	}
	return out
}

// migrationTypeTag derives the plan's migration-type metadata tag (§3) from
// the source providers its tasks actually reference.
func migrationTypeTag(tasks []plantask.RefactoringTask) string {
	providers := map[models.CloudProvider]bool{}
	for _, t := range tasks {
		if t.Provider != "" {
			providers[t.Provider] = true
		}
	}
	switch {
	case providers[models.ProviderAWS] && providers[models.ProviderAzure]:
		return "mixed_to_gcp"
	case providers[models.ProviderAzure]:
		return "azure_to_gcp"
	default:
		return "aws_to_gcp"
	}
}
