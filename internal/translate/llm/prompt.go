package llm

import (
	"fmt"
	"strings"

	"github.com/catherinevee/gcpmigrate/internal/translate/catalog"
	"github.com/catherinevee/gcpmigrate/pkg/models"
)

// forbiddenIdentifiers lists source-SDK identifiers that must not appear
// in the refined output, regardless of which service triggered the call.
var forbiddenIdentifiers = []string{
	"boto3", "botocore",
	"s3_client", "dynamodb_client", "sqs_client", "sns_client",
	"blob_service_client", "cosmos_client",
	"QueueUrl", "TopicArn", "Subject",
	"BlobServiceClient", "CosmosClient",
}

// forbiddenImports lists source-SDK import paths that must not appear in
// the refined output.
var forbiddenImports = []string{
	"boto3", "botocore",
	"azure.storage.blob", "azure.cosmos",
	"github.com/aws/aws-sdk-go",
	"com.amazonaws",
}

// BuildPrompt builds the fixed-template prompt for one refinement call:
// the per-service rewrite rule (drawn from the shared catalog, so every
// cataloged service gets a rule, not just the handful with dedicated
// transformer code), the forbidden-identifier/import lists, and the
// input embedded verbatim in a fenced block.
func BuildPrompt(sourceText string, serviceTag models.ServiceTag, targetProvider models.CloudProvider, retryHint bool, cat *catalog.Catalog) string {
	var b strings.Builder

	b.WriteString("You are an expert code refactoring assistant. Transform the following cloud SDK code to its ")
	b.WriteString(string(targetProvider))
	b.WriteString(" equivalent.\n\n")

	b.WriteString("CRITICAL REQUIREMENTS:\n")
	b.WriteString("1. Zero source-provider code in the output.\n")
	b.WriteString("2. Every source API call must be replaced with its target equivalent.\n")
	b.WriteString("3. Output must be syntactically valid code in the same language as the input.\n")
	b.WriteString("4. Include all necessary target SDK imports.\n\n")

	if mapping, ok := findMapping(cat, serviceTag); ok {
		b.WriteString("SERVICE REWRITE RULE:\n")
		fmt.Fprintf(&b, "- Source service: %s -> target service: %s\n", mapping.SourceService, mapping.TargetService)
		if len(mapping.TargetImports) > 0 {
			fmt.Fprintf(&b, "- Required target imports: %s\n", strings.Join(mapping.TargetImports, ", "))
		}
		if len(mapping.TargetAPIHints) > 0 {
			hints := make([]string, 0, len(mapping.TargetAPIHints))
			for _, h := range mapping.TargetAPIHints {
				hints = append(hints, h.String())
			}
			fmt.Fprintf(&b, "- Target API idiom: %s\n", strings.Join(hints, "; "))
		}
		for sourceEnv, targetEnv := range mapping.AuthEnvMap {
			fmt.Fprintf(&b, "- Environment variable %s -> %s\n", sourceEnv, targetEnv)
		}
		b.WriteString("\n")
	}

	b.WriteString("FORBIDDEN IDENTIFIERS (must not appear in the output, except inside comments explaining the migration):\n")
	b.WriteString(strings.Join(forbiddenIdentifiers, ", "))
	b.WriteString("\n\n")

	b.WriteString("FORBIDDEN IMPORTS:\n")
	b.WriteString(strings.Join(forbiddenImports, ", "))
	b.WriteString("\n\n")

	if retryHint {
		b.WriteString("THIS IS A RETRY -- the previous attempt still contained source-provider patterns. Be exhaustive this time.\n\n")
	}

	b.WriteString("Return only the transformed code, with no surrounding explanation. Input:\n")
	b.WriteString("```\n")
	b.WriteString(sourceText)
	b.WriteString("\n```\n")

	return b.String()
}

func findMapping(cat *catalog.Catalog, serviceTag models.ServiceTag) (*catalog.ServiceMapping, bool) {
	if cat == nil {
		return nil, false
	}
	for _, provider := range []models.CloudProvider{models.ProviderAWS, models.ProviderAzure} {
		if m, ok := cat.Get(provider, serviceTag); ok {
			return m, true
		}
	}
	return nil, false
}
