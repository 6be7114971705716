// Package python implements the Python language transformer: the
// nine-step ordered rewrite pipeline from the Service Catalog entry down to
// a transformed source string plus a variable rename map. Grounded in
// ExtendedPythonTransformer.transform and its per-service _migrate_* helpers
// in the original Python source (extended_semantic_engine.py); the heavy
// per-service regex choreography (e.g. _migrate_s3_to_gcs's balanced-paren
// scanning) is re-expressed here as a smaller, catalog-driven set of
// substitutions in Go idiom rather than transliterated line for line.
package python

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/catherinevee/gcpmigrate/internal/translate/catalog"
	"github.com/catherinevee/gcpmigrate/internal/translate/lang"
	"github.com/catherinevee/gcpmigrate/pkg/models"
)

// Transformer applies the Python rewrite pipeline against the closed
// service catalog.
type Transformer struct {
	catalog *catalog.Catalog
}

// New builds a Python Transformer over the given catalog.
func New(c *catalog.Catalog) *Transformer {
	return &Transformer{catalog: c}
}

// Transform runs the nine ordered steps (§4.3) for recipe.ServiceTag against
// sourceText. A step that does not match is a silent no-op; transform never
// raises.
func (t *Transformer) Transform(sourceText string, recipe lang.TransformationRecipe) (string, lang.VariableRenameMap) {
	mapping, ok := t.catalog.Get(recipe.Provider, recipe.ServiceTag)
	if !ok {
		return sourceText, lang.VariableRenameMap{}
	}

	code := sourceText
	renames := lang.VariableRenameMap{}

	// Step 1: cleanup of known wreckage.
	code = flattenMultilineCalls(code)

	// Step 2: import rewrite. DynamoDB migration scripts keep reading from
	// DynamoDB, so boto3 stays alongside the added Firestore import instead
	// of being deleted by the generic catalog-driven rewrite.
	if recipe.ServiceTag == models.AWSDynamoDB && isDynamoMigrationScript(code) {
		code = ensureMigrationScriptImports(code)
	} else {
		code = rewriteImports(code, mapping)
	}

	// Step 3: client construction rewrite (records renames).
	handler, hasHandler := serviceHandlers[recipe.ServiceTag]
	if hasHandler {
		code, renames = handler.constructClient(code)
	}

	// Step 4: identifier rename pass, skipping strings/comments.
	code = applyRenames(code, renames)

	// Step 5: API call rewrite.
	if hasHandler {
		code = handler.rewriteAPICalls(code)
	}

	// Step 6: environment-variable rewrite.
	code = rewriteEnvVars(code, mapping)

	// Step 7: event-handler shape rewrite.
	if hasHandler && handler.rewriteHandlerShape != nil {
		code = handler.rewriteHandlerShape(code)
	}

	// Step 8: exception taxonomy rewrite.
	code = rewriteExceptions(code)

	// Step 9: region/locale rewrite.
	code = rewriteRegions(code)

	return code, renames
}

// AggressiveCleanup is the idempotent cleanup pass the pipeline runs once
// before and once after the structured transform (and again between LLM
// retries): it forcibly replaces any residual source constructors with
// target constructors, rewrites remaining source identifiers through the
// accumulated rename map, and replaces source-SDK import lines with the
// target import. A target import is added only in place of a source import
// line it finds; text with no source import line gets no import added. Safe to
// call repeatedly on already-clean text — every step is a no-op if its
// pattern doesn't match.
func (t *Transformer) AggressiveCleanup(code string, recipe lang.TransformationRecipe, renames lang.VariableRenameMap) (string, lang.VariableRenameMap) {
	mapping, ok := t.catalog.Get(recipe.Provider, recipe.ServiceTag)
	if !ok {
		return code, renames
	}
	if renames == nil {
		renames = lang.VariableRenameMap{}
	}

	if recipe.ServiceTag == models.AWSDynamoDB && isDynamoMigrationScript(code) {
		code = ensureMigrationScriptImports(code)
	} else {
		code = rewriteImports(code, mapping)
	}

	if handler, hasHandler := serviceHandlers[recipe.ServiceTag]; hasHandler {
		var newRenames lang.VariableRenameMap
		code, newRenames = handler.constructClient(code)
		renames = renames.Merge(newRenames)
		code = handler.rewriteAPICalls(code)
	}

	code = applyRenames(code, renames)
	code = rewriteEnvVars(code, mapping)
	code = rewriteExceptions(code)
	code = rewriteRegions(code)

	return code, renames
}

var multilineCallFlatten = regexp.MustCompile(`\(\s*\n\s*`)

// flattenMultilineCalls removes the line break (and surrounding whitespace)
// that directly follows an opening parenthesis in any call, so the first
// argument sits on the same line as the call name and later regex steps
// see a predictable token shape; later line breaks inside the call remain. Mirrors the original's note that
// "BlobServiceClient(" calls with embedded comments across lines" must be
// canonicalized before any other rewrite runs.
func flattenMultilineCalls(code string) string {
	lines := strings.Split(code, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			out = append(out, line)
			continue
		}
		out = append(out, line)
	}
	flattened := strings.Join(out, "\n")
	return multilineCallFlatten.ReplaceAllString(flattened, "(")
}

func rewriteImports(code string, mapping *catalog.ServiceMapping) string {
	for _, pattern := range mapping.ImportPatterns {
		if !pattern.MatchString(code) {
			continue
		}
		for _, target := range mapping.TargetImports {
			if !isPythonImport(target) {
				continue
			}
			if strings.Contains(code, target) {
				continue
			}
			code = insertImportAfterExisting(code, target)
		}
		code = pattern.ReplaceAllString(code, "")
	}
	return stripBlankImportLines(code)
}

func isPythonImport(target string) bool {
	return strings.HasPrefix(target, "from ") || strings.HasPrefix(target, "import ")
}

func insertImportAfterExisting(code, importLine string) string {
	lines := strings.Split(code, "\n")
	insertAt := 0
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "import ") || strings.HasPrefix(trimmed, "from ") {
			insertAt = i + 1
			continue
		}
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			break
		}
	}
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:insertAt]...)
	out = append(out, importLine)
	out = append(out, lines[insertAt:]...)
	return strings.Join(out, "\n")
}

func stripBlankImportLines(code string) string {
	lines := strings.Split(code, "\n")
	out := make([]string, 0, len(lines))
	prevBlank := false
	for _, line := range lines {
		blank := strings.TrimSpace(line) == ""
		if blank && prevBlank {
			continue
		}
		out = append(out, line)
		prevBlank = blank
	}
	return strings.Join(out, "\n")
}

func rewriteEnvVars(code string, mapping *catalog.ServiceMapping) string {
	for source, target := range mapping.AuthEnvMap {
		code = regexp.MustCompile(`\b`+regexp.QuoteMeta(source)+`\b`).ReplaceAllString(code, target)
	}
	return code
}

var exceptionTaxonomy = []struct {
	source *regexp.Regexp
	target string
}{
	{regexp.MustCompile(`botocore\.exceptions\.ClientError`), "google.api_core.exceptions.GoogleAPIError"},
	{regexp.MustCompile(`botocore\.exceptions\.NoCredentialsError`), "google.auth.exceptions.DefaultCredentialsError"},
	{regexp.MustCompile(`\bNoCredentialsError\b`), "DefaultCredentialsError"},
	{regexp.MustCompile(`storage_client\.exceptions\.NoSuchKey`), "google.cloud.exceptions.NotFound"},
	{regexp.MustCompile(`\bClientError\b`), "GoogleAPIError"},
	{regexp.MustCompile(`azure\.core\.exceptions\.ResourceNotFoundError`), "google.cloud.exceptions.NotFound"},
	{regexp.MustCompile(`azure\.core\.exceptions\.HttpResponseError`), "google.api_core.exceptions.GoogleAPIError"},
}

func rewriteExceptions(code string) string {
	for _, rule := range exceptionTaxonomy {
		code = rule.source.ReplaceAllString(code, rule.target)
	}
	return code
}

var regionArgPattern = regexp.MustCompile(`(region_name|region)\s*=\s*['"]([\w-]+)['"]`)

func rewriteRegions(code string) string {
	return regionArgPattern.ReplaceAllStringFunc(code, func(match string) string {
		groups := regionArgPattern.FindStringSubmatch(match)
		source := groups[2]
		gcp, ok := catalog.RegionMap[source]
		if !ok {
			return match + "  # TODO: no closest-match GCP region known for " + source
		}
		return fmt.Sprintf(`location='%s'`, gcp)
	})
}

// applyRenames performs a single whole-word substitution pass, skipping
// lines whose quote count is odd (approximate "inside a string literal"
// heuristic, matching the Residue Oracle's own approximation — see
// package residue and spec design note on string/comment detection).
func applyRenames(code string, renames lang.VariableRenameMap) string {
	if len(renames) == 0 {
		return code
	}

	lines := strings.Split(code, "\n")
	for i, line := range lines {
		commentIdx := strings.Index(line, "#")
		codePart := line
		commentPart := ""
		if commentIdx >= 0 {
			codePart = line[:commentIdx]
			commentPart = line[commentIdx:]
		}
		if isInsideStringLiteral(codePart) {
			continue
		}
		for old, new := range renames {
			codePart = regexp.MustCompile(`\b`+regexp.QuoteMeta(old)+`\b`).ReplaceAllString(codePart, new)
		}
		lines[i] = codePart + commentPart
	}
	return strings.Join(lines, "\n")
}

func isInsideStringLiteral(line string) bool {
	singles := strings.Count(line, "'")
	doubles := strings.Count(line, `"`)
	return singles%2 != 0 || doubles%2 != 0
}
