// Package ruleyaml loads zone rule tables from a YAML document. It is
// the hand-written counterpart to the compiled TZif source in the
// tzif package, meant for tests and for environments that inject
// their own transition data.
//
// The document maps zone identifiers to either a fixed offset or an
// ordered transition list:
//
//	zones:
//	  UTC+04:
//	    fixed: "+04:00"
//	  Europe/Paris:
//	    transitions:
//	      - at: 2024-03-31T01:00:00Z
//	        before: "+01:00"
//	        after: "+02:00"
//	      - at: 2024-10-27T01:00:00Z
//	        before: "+02:00"
//	        after: "+01:00"
package ruleyaml

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	chrono "github.com/ngrash/go-chrono"
	"github.com/ngrash/go-chrono/tz"
)

type document struct {
	Zones map[string]zoneDoc `yaml:"zones"`
}

type zoneDoc struct {
	Fixed       string          `yaml:"fixed"`
	Transitions []transitionDoc `yaml:"transitions"`
}

type transitionDoc struct {
	At     string `yaml:"at"`
	Before string `yaml:"before"`
	After  string `yaml:"after"`
}

// Provider serves the zones of one parsed document. It implements
// tz.Provider.
type Provider struct {
	zones map[string]*tz.Zone
}

// Load parses a YAML rule document. Every zone in the document is
// built eagerly so malformed data surfaces here, with the zone name
// and field in the error, rather than at first lookup.
func Load(r io.Reader) (*Provider, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding rule document: %w", err)
	}
	p := &Provider{zones: make(map[string]*tz.Zone, len(doc.Zones))}
	for name, zd := range doc.Zones {
		z, err := buildZone(name, zd)
		if err != nil {
			return nil, err
		}
		p.zones[name] = z
	}
	return p, nil
}

// LoadBytes is Load for in-memory documents.
func LoadBytes(b []byte) (*Provider, error) {
	return Load(bytes.NewReader(b))
}

func buildZone(name string, zd zoneDoc) (*tz.Zone, error) {
	if zd.Fixed != "" && len(zd.Transitions) > 0 {
		return nil, fmt.Errorf("zone %s: fixed and transitions are mutually exclusive", name)
	}
	if zd.Fixed != "" {
		off, err := chrono.ParseOffset(zd.Fixed)
		if err != nil {
			return nil, fmt.Errorf("zone %s: fixed: %w", name, err)
		}
		return tz.FixedZone(name, off), nil
	}
	if len(zd.Transitions) == 0 {
		return nil, fmt.Errorf("zone %s: needs either fixed or transitions", name)
	}
	trans := make([]tz.Transition, len(zd.Transitions))
	for i, td := range zd.Transitions {
		at, err := chrono.ParseInstant(td.At)
		if err != nil {
			return nil, fmt.Errorf("zone %s: transition %d: at: %w", name, i, err)
		}
		before, err := chrono.ParseOffset(td.Before)
		if err != nil {
			return nil, fmt.Errorf("zone %s: transition %d: before: %w", name, i, err)
		}
		after, err := chrono.ParseOffset(td.After)
		if err != nil {
			return nil, fmt.Errorf("zone %s: transition %d: after: %w", name, i, err)
		}
		trans[i] = tz.Transition{At: at, Before: before, After: after}
	}
	return tz.NewZone(name, trans)
}

// LoadZone implements tz.Provider.
func (p *Provider) LoadZone(name string) (*tz.Zone, error) {
	z, ok := p.zones[name]
	if !ok {
		return nil, &tz.NotFoundError{Name: name}
	}
	return z, nil
}

// Names returns the identifiers the provider knows.
func (p *Provider) Names() []string {
	names := make([]string, 0, len(p.zones))
	for name := range p.zones {
		names = append(names, name)
	}
	return names
}
