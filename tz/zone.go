// Package tz resolves local date-times and instants to UTC offsets
// under rule-based time zones, and provides the zone-aware
// ZonedDateTime value type.
//
// A Zone is either a fixed offset with no rules, or a rule-based zone
// backed by an ordered list of transitions. Zones are loaded from an
// injected Provider (see the tzif and ruleyaml subpackages) through a
// DB, which caches parsed zones for the life of the process.
package tz

import (
	"fmt"
	"sort"

	chrono "github.com/ngrash/go-chrono"
)

// Transition is a point at which a zone's offset changes: at the
// instant At, the offset switches from Before to After. If After is
// greater than Before, local clocks jumped forward and a gap of local
// times was skipped; if After is less than Before, clocks fell back
// and a range of local times repeats.
type Transition struct {
	At     chrono.Instant
	Before chrono.Offset
	After  chrono.Offset
}

// Zone is a time zone: a named mapping from instants to UTC offsets.
// A Zone is immutable once constructed and safe for concurrent use.
type Zone struct {
	name string

	// fixed offset zones have no transitions.
	fixed  bool
	offset chrono.Offset

	trans []Transition

	// localBounds holds, for every transition, the pair of local
	// epoch seconds bounding the skipped or repeated window, in
	// ascending order: localBounds[2i] is the window start and
	// localBounds[2i+1] the window end of transition i. Precomputed
	// so Resolve is a binary search.
	localBounds []int64
}

// FixedZone returns a rule-free zone with a constant offset. The name
// is only informational; "+02:00" style names are conventional.
func FixedZone(name string, offset chrono.Offset) *Zone {
	return &Zone{name: name, fixed: true, offset: offset}
}

// NewZone returns a rule-based zone backed by the given transitions,
// which must be in strictly ascending instant order with each
// transition's Before matching the previous transition's After.
func NewZone(name string, transitions []Transition) (*Zone, error) {
	if len(transitions) == 0 {
		return nil, fmt.Errorf("zone %s: no transitions; use FixedZone for rule-free zones", name)
	}
	for i, t := range transitions {
		if i == 0 {
			continue
		}
		prev := transitions[i-1]
		if !prev.At.Before(t.At) {
			return nil, fmt.Errorf("zone %s: transition %d at %v is not after transition %d at %v", name, i, t.At, i-1, prev.At)
		}
		if t.Before != prev.After {
			return nil, fmt.Errorf("zone %s: transition %d offset before (%v) does not continue transition %d offset after (%v)", name, i, t.Before, i-1, prev.After)
		}
	}
	z := &Zone{name: name, trans: append([]Transition(nil), transitions...)}
	z.localBounds = make([]int64, 0, 2*len(z.trans))
	for i, t := range z.trans {
		lo := t.At.EpochSecond() + int64(t.Before.TotalSeconds())
		hi := t.At.EpochSecond() + int64(t.After.TotalSeconds())
		if lo > hi {
			lo, hi = hi, lo
		}
		// Resolve binary-searches localBounds, so the windows must not
		// overlap: each must start at or after the previous one ends.
		if n := len(z.localBounds); n > 0 && lo < z.localBounds[n-1] {
			return nil, fmt.Errorf("zone %s: transition %d at %v is closer to transition %d than their offset changes; the local windows overlap", name, i, t.At, i-1)
		}
		z.localBounds = append(z.localBounds, lo, hi)
	}
	return z, nil
}

// Name returns the zone identifier, e.g. "Europe/Paris".
func (z *Zone) Name() string { return z.name }

// IsFixed reports whether the zone is a fixed offset with no rules.
func (z *Zone) IsFixed() bool { return z.fixed }

// Transitions returns a copy of the zone's transition list. It is
// empty for fixed zones.
func (z *Zone) Transitions() []Transition {
	return append([]Transition(nil), z.trans...)
}

// OffsetAt returns the UTC offset in effect at the given instant.
// Instants are zone-free, so the answer is always unambiguous: it is
// the offset after the most recent transition at or before i, or the
// offset before the first transition for earlier instants.
func (z *Zone) OffsetAt(i chrono.Instant) chrono.Offset {
	if z.fixed {
		return z.offset
	}
	// First transition strictly after i.
	idx := sort.Search(len(z.trans), func(n int) bool {
		return z.trans[n].At.After(i)
	})
	if idx == 0 {
		return z.trans[0].Before
	}
	return z.trans[idx-1].After
}

// ResolutionKind discriminates the three possible outcomes of
// resolving a local date-time against zone rules.
type ResolutionKind int

const (
	// ResolutionNormal means exactly one offset is valid for the
	// local date-time.
	ResolutionNormal ResolutionKind = iota
	// ResolutionGap means the local date-time was skipped by a
	// forward transition and corresponds to no instant.
	ResolutionGap
	// ResolutionOverlap means the local date-time was repeated by a
	// backward transition and corresponds to two instants.
	ResolutionOverlap
)

func (k ResolutionKind) String() string {
	switch k {
	case ResolutionNormal:
		return "Normal"
	case ResolutionGap:
		return "Gap"
	case ResolutionOverlap:
		return "Overlap"
	default:
		return "<UNDEFINED>"
	}
}

// Resolution is the result of resolving a local date-time against a
// zone's rules. It is a tagged value: check Kind to learn whether the
// local time was unambiguous, skipped (gap) or repeated (overlap),
// and query the offsets accordingly. Gap and overlap are defined
// outcomes, not errors.
type Resolution struct {
	kind    ResolutionKind
	local   chrono.DateTime
	earlier chrono.Offset
	later   chrono.Offset
	gap     chrono.Duration
}

// Kind returns the resolution variant.
func (r Resolution) Kind() ResolutionKind { return r.kind }

// Offset returns the offset chosen by the default policy: the single
// valid offset for a normal resolution, the post-transition offset
// for a gap, and the pre-transition (earlier) offset for an overlap.
func (r Resolution) Offset() chrono.Offset {
	if r.kind == ResolutionOverlap {
		return r.earlier
	}
	return r.later
}

// EarlierOffset returns the offset valid before the transition. For a
// normal resolution it equals LaterOffset.
func (r Resolution) EarlierOffset() chrono.Offset { return r.earlier }

// LaterOffset returns the offset valid after the transition. For a
// normal resolution it equals EarlierOffset.
func (r Resolution) LaterOffset() chrono.Offset { return r.later }

// GapLength returns the length of the skipped window for a gap
// resolution and zero otherwise.
func (r Resolution) GapLength() chrono.Duration { return r.gap }

// LocalDateTime returns the local date-time the resolution settles
// on. For a gap this is the input pushed forward by the gap length,
// strictly after the skipped window; otherwise it is the input
// unchanged.
func (r Resolution) LocalDateTime() chrono.DateTime {
	if r.kind != ResolutionGap {
		return r.local
	}
	adj, err := r.local.AddSeconds(r.gap.Seconds())
	if err != nil {
		// A real gap is at most a few hours; the addition can only
		// overflow at the very edge of the supported year range.
		return r.local
	}
	return adj
}

// Instant returns the instant the resolution settles on, combining
// LocalDateTime and Offset.
func (r Resolution) Instant() chrono.Instant {
	return r.LocalDateTime().InstantAt(r.Offset())
}

// Resolve maps a local date-time to its valid offsets under the
// zone's rules. For a fixed zone the resolution is always normal. For
// a fixed rule table, Resolve is a pure function of its inputs.
func (z *Zone) Resolve(local chrono.DateTime) Resolution {
	if z.fixed {
		return Resolution{kind: ResolutionNormal, local: local, earlier: z.offset, later: z.offset}
	}
	localSec := local.Date().EpochDay()*86400 + local.Time().NanoOfDay()/1_000_000_000

	// Count window bounds at or before localSec. An even count means
	// localSec sits between transition windows; an odd count means it
	// sits inside the window of transition idx/2.
	idx := sort.Search(len(z.localBounds), func(n int) bool {
		return z.localBounds[n] > localSec
	})
	if idx%2 == 1 {
		t := z.trans[idx/2]
		if t.After.TotalSeconds() > t.Before.TotalSeconds() {
			gap := chrono.DurationOfSeconds(int64(t.After.TotalSeconds() - t.Before.TotalSeconds()))
			return Resolution{kind: ResolutionGap, local: local, earlier: t.Before, later: t.After, gap: gap}
		}
		return Resolution{kind: ResolutionOverlap, local: local, earlier: t.Before, later: t.After}
	}
	var off chrono.Offset
	if idx == 0 {
		off = z.trans[0].Before
	} else {
		off = z.trans[idx/2-1].After
	}
	return Resolution{kind: ResolutionNormal, local: local, earlier: off, later: off}
}
