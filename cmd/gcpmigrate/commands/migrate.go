package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/catherinevee/gcpmigrate/internal/translate"
	"github.com/catherinevee/gcpmigrate/internal/translate/detect"
	"github.com/catherinevee/gcpmigrate/internal/translate/lang"
	"github.com/catherinevee/gcpmigrate/internal/translate/residue"
	"github.com/catherinevee/gcpmigrate/pkg/models"
	"github.com/spf13/cobra"
)

var migrateOutput string
var migrateProvider string
var migrateStrict bool

// MigrateCmd runs the translation pipeline on a single file and prints or
// writes the result.
var MigrateCmd = &cobra.Command{
	Use:   "migrate <file>",
	Short: "Translate one source file from AWS/Azure to GCP",
	Args:  cobra.ExactArgs(1),
	RunE:  runMigrate,
}

func init() {
	MigrateCmd.Flags().StringVarP(&migrateOutput, "output", "o", "", "write translated output here instead of stdout")
	MigrateCmd.Flags().StringVar(&migrateProvider, "provider", "", "source provider (aws|azure); auto-detected if omitted")
	MigrateCmd.Flags().BoolVar(&migrateStrict, "strict", false, "run the stricter residue consistency check and print every finding")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	language, ok := languageFromExtension(path)
	if !ok {
		return fmt.Errorf("unrecognized source language for %s", path)
	}

	pipe, cat, err := buildPipeline(cmd.Context())
	if err != nil {
		return err
	}

	provider := models.CloudProvider(migrateProvider)
	detector := detect.New(cat)
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
		return fmt.Errorf("no recognized AWS or Azure service usage found in %s", path)
	}

	mapping, ok := cat.Get(provider, serviceTag)
	if !ok {
		return fmt.Errorf("no catalog mapping for service %s: %w", serviceTag, translate.ErrUnknownService)
	}

	recipe := lang.TransformationRecipe{
		Operation:  models.MigrateOperation(mapping.TargetService),
		ServiceTag: serviceTag,
		Provider:   provider,
		Language:   language,
	}

	result := pipe.Translate(cmd.Context(), string(data), recipe)

	if migrateOutput == "" {
		fmt.Fprint(cmd.OutOrStdout(), result.FinalText)
	} else if err := os.WriteFile(migrateOutput, []byte(result.FinalText), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", migrateOutput, err)
	}

	if result.Warning != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", result.Warning)
	}

	if migrateStrict {
		for _, finding := range residue.StrictScan(result.FinalText, language) {
			fmt.Fprintf(cmd.ErrOrStderr(), "strict: line %d: %s matched %q\n", finding.Line, finding.Pattern, finding.Text)
		}
	}

	return nil
}

func languageFromExtension(path string) (models.Language, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".py":
		return models.LanguagePython, true
	case ".java":
		return models.LanguageJava, true
	case ".go":
		return models.LanguageGo, true
	case ".cs":
		return models.LanguageCSharp, true
	default:
		return "", false
	}
}
