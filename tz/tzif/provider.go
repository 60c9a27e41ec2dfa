package tzif

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	chrono "github.com/ngrash/go-chrono"
	"github.com/ngrash/go-chrono/tz"
)

// Zone converts a decoded TZif file into a tz.Zone named name. Files
// without transitions become fixed zones at the offset of their first
// local time type. Transitions after the last record are not
// extrapolated from the footer TZ string: the last recorded offset
// stays in effect.
func Zone(name string, f File) (*tz.Zone, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("zone %s: %w", name, err)
	}
	b := f.Block
	if len(b.TransitionTimes) == 0 {
		off, err := chrono.OffsetOfSeconds(int(initialType(b).Utoff))
		if err != nil {
			return nil, fmt.Errorf("zone %s: %w", name, err)
		}
		return tz.FixedZone(name, off), nil
	}

	trans := make([]tz.Transition, 0, len(b.TransitionTimes))
	prev := initialType(b).Utoff
	for i, at := range b.TransitionTimes {
		next := b.LocalTimeTypes[b.TransitionTypes[i]].Utoff
		if next == prev {
			// Offset-neutral transitions (designation or DST flag
			// changes only) do not affect resolution.
			continue
		}
		before, err := chrono.OffsetOfSeconds(int(prev))
		if err != nil {
			return nil, fmt.Errorf("zone %s: transition %d: %w", name, i, err)
		}
		after, err := chrono.OffsetOfSeconds(int(next))
		if err != nil {
			return nil, fmt.Errorf("zone %s: transition %d: %w", name, i, err)
		}
		trans = append(trans, tz.Transition{
			At:     chrono.InstantOfEpochSecond(at),
			Before: before,
			After:  after,
		})
		prev = next
	}
	if len(trans) == 0 {
		off, err := chrono.OffsetOfSeconds(int(prev))
		if err != nil {
			return nil, fmt.Errorf("zone %s: %w", name, err)
		}
		return tz.FixedZone(name, off), nil
	}
	return tz.NewZone(name, trans)
}

// initialType picks the local time type in effect before the first
// transition: the first type by convention, except that a DST type in
// slot zero yields to the first standard time type, per RFC 8536
// section 3.2.
func initialType(b DataBlock) LocalTimeType {
	first := b.LocalTimeTypes[0]
	if !first.Dst {
		return first
	}
	for _, tt := range b.LocalTimeTypes[1:] {
		if !tt.Dst {
			return tt
		}
	}
	return first
}

// Provider serves zones from a directory of TZif files laid out like
// the system zoneinfo database, where the identifier "Europe/Paris"
// names the file Europe/Paris below the root.
type Provider struct {
	// FS is the file system to read from. If nil, the provider reads
	// the host's zoneinfo directory (/usr/share/zoneinfo).
	FS fs.FS
}

// defaultZoneinfoDir is where the host zoneinfo database usually
// lives on Linux and the BSDs.
const defaultZoneinfoDir = "/usr/share/zoneinfo"

func (p Provider) fsys() fs.FS {
	if p.FS == nil {
		return os.DirFS(defaultZoneinfoDir)
	}
	return p.FS
}

// LoadZone implements tz.Provider. Identifiers that escape the root
// or name no file resolve to a *tz.NotFoundError.
func (p Provider) LoadZone(name string) (*tz.Zone, error) {
	if !validName(name) {
		return nil, &tz.NotFoundError{Name: name}
	}
	raw, err := fs.ReadFile(p.fsys(), filepath.ToSlash(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &tz.NotFoundError{Name: name}
		}
		return nil, fmt.Errorf("zone %s: %w", name, err)
	}
	f, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("zone %s: %w", name, err)
	}
	return Zone(name, f)
}

// validName rejects identifiers that are empty, absolute or contain
// a "." or ".." path component, mirroring what the tzdata spec allows
// for zone names.
func validName(name string) bool {
	if name == "" || strings.HasPrefix(name, "/") {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == "" || part == "." || part == ".." {
			return false
		}
	}
	return true
}

// NewDB returns a tz.DB serving the host's zoneinfo database. It is
// the out-of-the-box way to look up real zones:
//
//	db := tzif.NewDB()
//	paris, err := db.Zone("Europe/Paris")
func NewDB() *tz.DB {
	return tz.NewDB(Provider{})
}
