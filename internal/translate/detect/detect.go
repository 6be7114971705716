// Package detect implements service-usage detection over source text: for
// each catalog entry, it searches for API call patterns and reports every
// match location. Ported from ExtendedCodeAnalyzer.identify_aws_services_usage
// / identify_azure_services_usage in the original Python source, which ran
// each service's api_patterns through re.findall with re.IGNORECASE.
package detect

import (
	"sort"

	"github.com/catherinevee/gcpmigrate/internal/translate/catalog"
	"github.com/catherinevee/gcpmigrate/pkg/models"
)

// Detector searches source text for known cloud-service usage patterns.
type Detector struct {
	catalog *catalog.Catalog
}

// New builds a Detector over the given catalog.
func New(c *catalog.Catalog) *Detector {
	return &Detector{catalog: c}
}

// DetectServices scans sourceText for every service registered under
// provider and returns the match locations found, keyed by service tag.
// Deterministic and side-effect-free: the same input always produces the
// same output, with matches ordered by position within each service's list.
func (d *Detector) DetectServices(sourceText string, provider models.CloudProvider) map[models.ServiceTag][]models.MatchRegion {
	found := make(map[models.ServiceTag][]models.MatchRegion)

	for _, mapping := range d.catalog.AllForProvider(provider) {
		var regions []models.MatchRegion
		for _, pattern := range mapping.APIPatterns {
			for _, loc := range pattern.FindAllStringIndex(sourceText, -1) {
				regions = append(regions, models.MatchRegion{
					Pattern: pattern.String(),
					Start:   loc[0],
					End:     loc[1],
					Text:    sourceText[loc[0]:loc[1]],
				})
			}
		}
		if len(regions) > 0 {
			sort.Slice(regions, func(i, j int) bool { return regions[i].Start < regions[j].Start })
			found[mapping.SourceService] = regions
		}
	}

	return found
}

// DetectAll scans sourceText against both AWS and Azure catalog entries,
// matching ExtendedCodeAnalyzer.identify_all_cloud_services_usage's combined
// view across providers.
func (d *Detector) DetectAll(sourceText string) map[models.ServiceTag][]models.MatchRegion {
	combined := make(map[models.ServiceTag][]models.MatchRegion)
	for tag, regions := range d.DetectServices(sourceText, models.ProviderAWS) {
		combined[tag] = regions
	}
	for tag, regions := range d.DetectServices(sourceText, models.ProviderAzure) {
		combined[tag] = regions
	}
	return combined
}

// PrimaryService returns the service tag with the most match occurrences in
// sourceText, breaking ties by service tag for determinism. Used by the
// pipeline to pick a single transformation recipe when a file touches more
// than one recognized service.
func (d *Detector) PrimaryService(sourceText string, provider models.CloudProvider) (models.ServiceTag, bool) {
	found := d.DetectServices(sourceText, provider)
	if len(found) == 0 {
		return "", false
	}

	tags := make([]models.ServiceTag, 0, len(found))
	for tag := range found {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if len(found[tags[i]]) != len(found[tags[j]]) {
			return len(found[tags[i]]) > len(found[tags[j]])
		}
		return tags[i] < tags[j]
	})

	return tags[0], true
}
