// Package golang implements the Go source-language transformer: a regex
// skeleton pass over import paths only; client-construction code is left
// as it is. Per §4.7, Go source is "harder to rewrite with regex alone" than
// Python — the pipeline treats this transformer's output as a skeleton that
// the LLM Refinement Adapter is expected to carry the rest of the way, so
// this package intentionally does less per-service work than the Python
// transformer and leans on the shared catalog entries rather than
// maintaining its own per-service rewrite table.
package golang

import (
	"regexp"

	"github.com/catherinevee/gcpmigrate/internal/translate/catalog"
	"github.com/catherinevee/gcpmigrate/internal/translate/lang"
)

// Transformer applies the Go skeleton rewrite over the closed catalog.
type Transformer struct {
	catalog *catalog.Catalog
}

// New builds a Go Transformer over the given catalog.
func New(c *catalog.Catalog) *Transformer {
	return &Transformer{catalog: c}
}

var importLine = regexp.MustCompile(`(?m)^\s*"([^"]+)"\s*$`)

// Transform rewrites import paths that match the catalog's import patterns
// to the corresponding Go target import, and leaves everything else
// untouched for C4 to refine.
func (t *Transformer) Transform(sourceText string, recipe lang.TransformationRecipe) (string, lang.VariableRenameMap) {
	mapping, ok := t.catalog.Get(recipe.Provider, recipe.ServiceTag)
	if !ok {
		return sourceText, lang.VariableRenameMap{}
	}

	code := sourceText
	for _, pattern := range mapping.ImportPatterns {
		if !pattern.MatchString(code) {
			continue
		}
		target := goImport(mapping.TargetImports)
		if target == "" {
			continue
		}
		code = importLine.ReplaceAllStringFunc(code, func(m string) string {
			if pattern.MatchString(m) {
				return `	"` + target + `"`
			}
			return m
		})
	}

	return code, lang.VariableRenameMap{}
}

func goImport(targets []string) string {
	for _, target := range targets {
		if len(target) > 5 && target[:5] == "cloud" {
			return target
		}
	}
	return ""
}
