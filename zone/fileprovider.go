// SPDX-License-Identifier: MIT
// Package: epochal/zone
//
// fileprovider.go — a Provider backed by a YAML document, for tooling and
// tests. Rule contents are carried verbatim; the framework never interprets
// them (offset-transition logic is out of scope).

package zone

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileRuleSet is the rule data one YAML entry carries. Opaque to the
// framework; tools may render it.
type fileRuleSet struct {
	zone string

	// StandardOffset is the zone's standard UTC offset, e.g. "+01:00".
	StandardOffset string `yaml:"standard-offset"`

	// Abbreviation is the display abbreviation, e.g. "CET".
	Abbreviation string `yaml:"abbreviation"`
}

// Zone implements RuleSet.
func (r *fileRuleSet) Zone() string { return r.zone }

// String renders the rule data for tooling output.
func (r *fileRuleSet) String() string {
	return fmt.Sprintf("%s standard-offset=%s abbreviation=%s", r.zone, r.StandardOffset, r.Abbreviation)
}

// fileDocument is the YAML schema:
//
//	zones:
//	  Europe/Prague:
//	    standard-offset: "+01:00"
//	    abbreviation: CET
type fileDocument struct {
	Zones map[string]*fileRuleSet `yaml:"zones"`
}

// FileProvider serves rule sets parsed once from a YAML document.
// Immutable after construction; safe for concurrent lookups.
type FileProvider struct {
	zones map[string]*fileRuleSet
}

// NewFileProvider loads a YAML rules document from path.
//
// Errors:
//   - ErrRulesUnavailable (wrapped) on read or parse failure.
func NewFileProvider(path string) (*FileProvider, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrRulesUnavailable, path, err)
	}

	return ParseRules(raw)
}

// ParseRules builds a FileProvider from YAML bytes.
//
// Errors:
//   - ErrRulesUnavailable (wrapped) on parse failure or an empty document.
func ParseRules(raw []byte) (*FileProvider, error) {
	var doc fileDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse rules: %v", ErrRulesUnavailable, err)
	}
	if len(doc.Zones) == 0 {
		return nil, fmt.Errorf("%w: document defines no zones", ErrRulesUnavailable)
	}

	for id, rs := range doc.Zones {
		if err := checkSyntax(id); err != nil {
			return nil, err
		}
		rs.zone = id
	}

	return &FileProvider{zones: doc.Zones}, nil
}

// Rules implements Provider.
func (p *FileProvider) Rules(id string) (RuleSet, error) {
	rs, ok := p.zones[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownZoneID, id)
	}

	return rs, nil
}

// IsValid implements Provider.
func (p *FileProvider) IsValid(id string) bool {
	_, ok := p.zones[id]

	return ok
}

// ZoneIDs returns every identifier the provider knows, in unspecified order.
func (p *FileProvider) ZoneIDs() []string {
	out := make([]string, 0, len(p.zones))
	for id := range p.zones {
		out = append(out, id)
	}

	return out
}
