// Package lang defines the shared contract every language transformer
// (python, java, golang, csharp) implements, mirroring the uniform
// transform(code, recipe) -> (code, variable_mapping) signature shared by
// ExtendedPythonTransformer / ExtendedJavaTransformer in the original
// Python source's BaseExtendedTransformer.
package lang

import "github.com/catherinevee/gcpmigrate/pkg/models"

// TransformationRecipe is the per-task control structure handed to a
// language transformer: which operation to perform, against which service,
// plus optional LLM guidance text and service-specific parameters.
type TransformationRecipe struct {
	Operation     models.OperationTag
	ServiceTag    models.ServiceTag
	Provider      models.CloudProvider
	Language      models.Language
	LLMGuidance   string
	ServiceParams map[string]string
}

// VariableRenameMap records original identifier -> rewritten identifier
// substitutions performed by a transformer's client-construction step, so
// downstream consumers can apply the same renames elsewhere in a codebase.
type VariableRenameMap map[string]string

// Merge copies every entry of other into m, returning m for chaining.
func (m VariableRenameMap) Merge(other VariableRenameMap) VariableRenameMap {
	for k, v := range other {
		m[k] = v
	}
	return m
}

// Transformer is implemented once per source language.
type Transformer interface {
	Transform(sourceText string, recipe TransformationRecipe) (string, VariableRenameMap)
}
