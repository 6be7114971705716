// Package catalog implements the closed, read-only set of ServiceMapping
// records keyed by (source provider, source service tag), ported from the
// original Python ServiceMapper / AzureServiceMapper.
package catalog

import (
	"regexp"

	"github.com/catherinevee/gcpmigrate/pkg/models"
)

// ServiceMapping is an immutable catalog record describing how one source
// service maps onto its GCP counterpart.
type ServiceMapping struct {
	SourceProvider  models.CloudProvider
	SourceService   models.ServiceTag
	TargetService   models.TargetServiceTag
	ImportPatterns  []*regexp.Regexp
	TargetImports   []string
	APIPatterns     []*regexp.Regexp
	TargetAPIHints  []*regexp.Regexp
	AuthEnvMap      map[string]string
	ConfigKeyMap    map[string]string
}

// mustCompile compiles a list of regex literals, panicking when New builds
// the catalog on a malformed pattern — acceptable because the catalog is a closed,
// hand-authored set, never user input.
func mustCompile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile("(?i)"+p))
	}
	return out
}

// Catalog is the closed, read-only registry of ServiceMapping records.
// Never mutated after New(): all construction happens inside New().
type Catalog struct {
	byKey map[key]*ServiceMapping
}

type key struct {
	provider models.CloudProvider
	service  models.ServiceTag
}

// New builds the catalog from the built-in AWS and Azure entries. Callers
// load it once at startup; it is never mutated afterward.
func New() *Catalog {
	c := &Catalog{byKey: make(map[key]*ServiceMapping)}
	for _, m := range awsMappings() {
		c.add(m)
	}
	for _, m := range azureMappings() {
		c.add(m)
	}
	return c
}

func (c *Catalog) add(m *ServiceMapping) {
	c.byKey[key{m.SourceProvider, m.SourceService}] = m
}

// Get returns the mapping for (provider, serviceTag), or (nil, false) if
// the catalog has no entry — never fails.
func (c *Catalog) Get(provider models.CloudProvider, serviceTag models.ServiceTag) (*ServiceMapping, bool) {
	m, ok := c.byKey[key{provider, serviceTag}]
	return m, ok
}

// AllForProvider returns every mapping registered for the given provider,
// in a deterministic order (sorted by service tag) so callers that iterate
// it get reproducible results.
func (c *Catalog) AllForProvider(provider models.CloudProvider) []*ServiceMapping {
	out := make([]*ServiceMapping, 0)
	for k, m := range c.byKey {
		if k.provider == provider {
			out = append(out, m)
		}
	}
	sortMappings(out)
	return out
}

// All returns every mapping in the catalog, AWS then Azure, each sorted by
// service tag.
func (c *Catalog) All() []*ServiceMapping {
	out := make([]*ServiceMapping, 0, len(c.byKey))
	out = append(out, c.AllForProvider(models.ProviderAWS)...)
	out = append(out, c.AllForProvider(models.ProviderAzure)...)
	return out
}

func sortMappings(m []*ServiceMapping) {
	for i := 1; i < len(m); i++ {
		for j := i; j > 0 && m[j].SourceService < m[j-1].SourceService; j-- {
			m[j], m[j-1] = m[j-1], m[j]
		}
	}
}
