// Package tzif reads and writes the TZif binary format specified by
// RFC 8536 (https://datatracker.ietf.org/doc/html/rfc8536) and turns
// decoded data into tz.Zone transition tables. It is the compiled
// zone-rule source of this module: operating systems ship TZif files
// under /usr/share/zoneinfo, and Provider serves zones straight from
// such a directory.
//
// Only the parts of the format the zone engine needs are modeled:
// transition times, local time type records and designations. Leap
// second records and the standard/wall and UT/local indicators are
// decoded and preserved but not interpreted; the footer TZ string is
// carried verbatim and not expanded into future transitions.
package tzif

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// All multi-octet integer values are stored in network octet order
// (big-endian) with signed values in two's complement.
var order = binary.BigEndian

// magic is the four-octet sequence "TZif" that identifies the file
// format.
var magic = [4]byte{'T', 'Z', 'i', 'f'}

// Version identifies the version octet of a TZif file. In V1, time
// values are four octets; from V2 on they are eight octets and the
// file carries both a V1 and a V2+ block plus a footer.
type Version byte

const (
	V1 Version = 0x00
	V2 Version = '2'
	V3 Version = '3'
	V4 Version = '4'
)

func (v Version) String() string {
	switch v {
	case V1:
		return "V1"
	case V2:
		return "V2"
	case V3:
		return "V3"
	case V4:
		return "V4"
	default:
		return fmt.Sprintf("<undefined version (%d)>", byte(v))
	}
}

// Header is the fixed-size header preceding each data block.
// Field names follow the RFC:
//
//	+---------------+---+
//	|  magic    (4) |ver|
//	+---------------+---+---------------------------------------+
//	|           [unused - reserved for future use] (15)         |
//	+---------------+---------------+---------------+-----------+
//	|  isutcnt  (4) |  isstdcnt (4) |  leapcnt  (4) |
//	+---------------+---------------+---------------+
//	|  timecnt  (4) |  typecnt  (4) |  charcnt  (4) |
//	+---------------+---------------+---------------+
type Header struct {
	Version  Version
	Reserved [15]byte

	// Isutcnt is the number of UT/local indicators; zero or equal to
	// Typecnt.
	Isutcnt uint32
	// Isstdcnt is the number of standard/wall indicators; zero or
	// equal to Typecnt.
	Isstdcnt uint32
	// Leapcnt is the number of leap-second records.
	Leapcnt uint32
	// Timecnt is the number of transition times.
	Timecnt uint32
	// Typecnt is the number of local time type records; never zero
	// in a valid file.
	Typecnt uint32
	// Charcnt is the total length of the NUL-terminated designation
	// strings, including the final NUL.
	Charcnt uint32
}

func (h Header) write(w io.Writer) error {
	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	return binary.Write(w, order, h)
}

func readHeader(r io.Reader) (Header, error) {
	var h Header
	got := make([]byte, len(magic))
	if _, err := io.ReadFull(r, got); err != nil {
		return h, fmt.Errorf("reading magic: %w", err)
	}
	if !bytes.Equal(got, magic[:]) {
		return h, fmt.Errorf("invalid magic: %v", got)
	}
	err := binary.Read(r, order, &h)
	return h, err
}

// LocalTimeType is a six-octet local time type record.
type LocalTimeType struct {
	// Utoff is the number of seconds to add to UT to get local time;
	// never -2**31.
	Utoff int32
	// Dst indicates whether the local time type is daylight saving
	// time.
	Dst bool
	// Desigidx is the index into the designation strings of the
	// abbreviation for this type, e.g. "CEST".
	Desigidx uint8
}

// LeapSecond is a leap-second record: the correction value Corr in
// effect on or after the occurrence time Occur.
type LeapSecond struct {
	Occur int64
	Corr  int32
}

// DataBlock holds the variable-size portion of a TZif file. V1 blocks
// store 32-bit transition and leap occurrence times on the wire; the
// decoder widens them so both block versions share one in-memory
// shape.
type DataBlock struct {
	// TransitionTimes is a series of UNIX leap-time values in
	// strictly ascending order at which the rules for computing
	// local time change.
	TransitionTimes []int64
	// TransitionTypes holds, per transition, a zero-based index into
	// LocalTimeTypes identifying the type in effect after it.
	TransitionTypes []uint8
	// LocalTimeTypes are the local time type records.
	LocalTimeTypes []LocalTimeType
	// Designations is the concatenation of the NUL-terminated time
	// zone designation strings.
	Designations []byte
	// LeapSeconds are the leap-second records in ascending
	// occurrence order.
	LeapSeconds []LeapSecond
	// StandardWall and UTLocal are the standard/wall and UT/local
	// indicators; each is either empty or has one entry per local
	// time type.
	StandardWall []bool
	UTLocal      []bool
}

// timeSize is the width of time values on the wire: 4 octets for V1
// blocks, 8 octets for V2+ blocks.
func timeSize(v Version) int {
	if v == V1 {
		return 4
	}
	return 8
}

func readDataBlock(r io.Reader, h Header, size int) (DataBlock, error) {
	var b DataBlock
	if h.Timecnt > 0 {
		b.TransitionTimes = make([]int64, h.Timecnt)
		if err := readTimes(r, b.TransitionTimes, size); err != nil {
			return b, fmt.Errorf("reading transition times: %w", err)
		}
		b.TransitionTypes = make([]uint8, h.Timecnt)
		if err := binary.Read(r, order, &b.TransitionTypes); err != nil {
			return b, fmt.Errorf("reading transition types: %w", err)
		}
	}
	if h.Typecnt > 0 {
		b.LocalTimeTypes = make([]LocalTimeType, h.Typecnt)
		for i := range b.LocalTimeTypes {
			if err := binary.Read(r, order, &b.LocalTimeTypes[i]); err != nil {
				return b, fmt.Errorf("reading local time type %d: %w", i, err)
			}
		}
	}
	if h.Charcnt > 0 {
		b.Designations = make([]byte, h.Charcnt)
		if _, err := io.ReadFull(r, b.Designations); err != nil {
			return b, fmt.Errorf("reading designations: %w", err)
		}
	}
	if h.Leapcnt > 0 {
		b.LeapSeconds = make([]LeapSecond, h.Leapcnt)
		for i := range b.LeapSeconds {
			occur := make([]int64, 1)
			if err := readTimes(r, occur, size); err != nil {
				return b, fmt.Errorf("reading leap second %d: %w", i, err)
			}
			b.LeapSeconds[i].Occur = occur[0]
			if err := binary.Read(r, order, &b.LeapSeconds[i].Corr); err != nil {
				return b, fmt.Errorf("reading leap second %d: %w", i, err)
			}
		}
	}
	if h.Isstdcnt > 0 {
		b.StandardWall = make([]bool, h.Isstdcnt)
		if err := binary.Read(r, order, &b.StandardWall); err != nil {
			return b, fmt.Errorf("reading standard/wall indicators: %w", err)
		}
	}
	if h.Isutcnt > 0 {
		b.UTLocal = make([]bool, h.Isutcnt)
		if err := binary.Read(r, order, &b.UTLocal); err != nil {
			return b, fmt.Errorf("reading UT/local indicators: %w", err)
		}
	}
	return b, nil
}

// readTimes reads len(dst) big-endian signed integers of the given
// octet width, sign-extending 32-bit values.
func readTimes(r io.Reader, dst []int64, size int) error {
	if size == 8 {
		return binary.Read(r, order, &dst)
	}
	narrow := make([]int32, len(dst))
	if err := binary.Read(r, order, &narrow); err != nil {
		return err
	}
	for i, v := range narrow {
		dst[i] = int64(v)
	}
	return nil
}

func (b DataBlock) write(w io.Writer, size int) error {
	if err := writeTimes(w, b.TransitionTimes, size); err != nil {
		return err
	}
	if err := binary.Write(w, order, b.TransitionTypes); err != nil {
		return err
	}
	for _, t := range b.LocalTimeTypes {
		if err := binary.Write(w, order, t); err != nil {
			return err
		}
	}
	if _, err := w.Write(b.Designations); err != nil {
		return err
	}
	for _, l := range b.LeapSeconds {
		if err := writeTimes(w, []int64{l.Occur}, size); err != nil {
			return err
		}
		if err := binary.Write(w, order, l.Corr); err != nil {
			return err
		}
	}
	if err := binary.Write(w, order, b.StandardWall); err != nil {
		return err
	}
	return binary.Write(w, order, b.UTLocal)
}

func writeTimes(w io.Writer, times []int64, size int) error {
	if size == 8 {
		return binary.Write(w, order, times)
	}
	narrow := make([]int32, len(times))
	for i, v := range times {
		narrow[i] = int32(v)
	}
	return binary.Write(w, order, narrow)
}

// Footer is the footer of a V2+ file: a TZ environment variable style
// string describing how local time behaves after the last transition,
// between NL octets.
type Footer struct {
	TZString string
}

func (f Footer) write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\n%s\n", f.TZString)
	return err
}

func readFooter(r io.Reader) (Footer, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Footer{}, err
	}
	if len(raw) < 2 || raw[0] != '\n' || raw[len(raw)-1] != '\n' {
		return Footer{}, fmt.Errorf("footer not enclosed in NL octets: %q", raw)
	}
	return Footer{TZString: string(raw[1 : len(raw)-1])}, nil
}

// File is a decoded TZif file. For V2+ files, Block holds the 64-bit
// V2 data and the V1 block is discarded after reading; for V1 files,
// Block holds the widened V1 data and Footer is empty.
type File struct {
	Version Version
	Block   DataBlock
	Footer  Footer
}

// Decode reads a TZif file.
func Decode(r io.Reader) (File, error) {
	var f File
	h1, err := readHeader(r)
	if err != nil {
		return f, fmt.Errorf("read v1 header: %w", err)
	}
	f.Version = h1.Version

	b1, err := readDataBlock(r, h1, timeSize(V1))
	if err != nil {
		return f, fmt.Errorf("read v1 data block: %w", err)
	}
	if f.Version == V1 {
		f.Block = b1
		return f, nil
	}

	h2, err := readHeader(r)
	if err != nil {
		return f, fmt.Errorf("read v2 header: %w", err)
	}
	if h2.Version != h1.Version {
		return f, fmt.Errorf("inconsistent version: v1 header = %v, v2 header = %v", h1.Version, h2.Version)
	}
	f.Block, err = readDataBlock(r, h2, timeSize(h2.Version))
	if err != nil {
		return f, fmt.Errorf("read v2 data block: %w", err)
	}
	f.Footer, err = readFooter(r)
	if err != nil {
		return f, fmt.Errorf("read footer: %w", err)
	}
	return f, nil
}

// Encode writes the file. V1 files write a single block; V2+ files
// write a minimal, empty V1 block first, then the 64-bit block and
// the footer, which is all this module needs to produce fixtures and
// re-emit zones.
func (f File) Encode(w io.Writer) error {
	if f.Version == V1 {
		if err := f.header(V1).write(w); err != nil {
			return fmt.Errorf("write v1 header: %w", err)
		}
		if err := f.Block.write(w, timeSize(V1)); err != nil {
			return fmt.Errorf("write v1 data block: %w", err)
		}
		return nil
	}

	// Empty V1 compatibility block. Typecnt and Charcnt must not be
	// zero, so emit one UTC type.
	v1 := File{Version: f.Version, Block: DataBlock{
		LocalTimeTypes: []LocalTimeType{{Utoff: 0, Dst: false, Desigidx: 0}},
		Designations:   []byte("UTC\x00"),
	}}
	if err := v1.header(f.Version).write(w); err != nil {
		return fmt.Errorf("write v1 header: %w", err)
	}
	if err := v1.Block.write(w, timeSize(V1)); err != nil {
		return fmt.Errorf("write v1 data block: %w", err)
	}
	if err := f.header(f.Version).write(w); err != nil {
		return fmt.Errorf("write v2 header: %w", err)
	}
	if err := f.Block.write(w, timeSize(f.Version)); err != nil {
		return fmt.Errorf("write v2 data block: %w", err)
	}
	if err := f.Footer.write(w); err != nil {
		return fmt.Errorf("write footer: %w", err)
	}
	return nil
}

// header derives a consistent header from the block contents.
func (f File) header(v Version) Header {
	return Header{
		Version:  v,
		Isutcnt:  uint32(len(f.Block.UTLocal)),
		Isstdcnt: uint32(len(f.Block.StandardWall)),
		Leapcnt:  uint32(len(f.Block.LeapSeconds)),
		Timecnt:  uint32(len(f.Block.TransitionTimes)),
		Typecnt:  uint32(len(f.Block.LocalTimeTypes)),
		Charcnt:  uint32(len(f.Block.Designations)),
	}
}

// Validate checks the cross-field invariants RFC 8536 states for a
// decoded block.
func (f File) Validate() error {
	b := f.Block
	if len(b.LocalTimeTypes) == 0 {
		return fmt.Errorf("typecnt must not be zero")
	}
	if len(b.TransitionTimes) != len(b.TransitionTypes) {
		return fmt.Errorf("inconsistent transitions: %d times, %d types", len(b.TransitionTimes), len(b.TransitionTypes))
	}
	for i, idx := range b.TransitionTypes {
		if int(idx) >= len(b.LocalTimeTypes) {
			return fmt.Errorf("transition %d references undefined local time type %d", i, idx)
		}
	}
	for i := 1; i < len(b.TransitionTimes); i++ {
		if b.TransitionTimes[i] <= b.TransitionTimes[i-1] {
			return fmt.Errorf("transition times not strictly ascending at index %d", i)
		}
	}
	if n := len(b.StandardWall); n != 0 && n != len(b.LocalTimeTypes) {
		return fmt.Errorf("invalid isstdcnt %d: must be 0 or typecnt (%d)", n, len(b.LocalTimeTypes))
	}
	if n := len(b.UTLocal); n != 0 && n != len(b.LocalTimeTypes) {
		return fmt.Errorf("invalid isutcnt %d: must be 0 or typecnt (%d)", n, len(b.LocalTimeTypes))
	}
	for i, t := range b.LocalTimeTypes {
		if int(t.Desigidx) >= len(b.Designations) {
			return fmt.Errorf("local time type %d references designation index %d outside designations (%d octets)", i, t.Desigidx, len(b.Designations))
		}
	}
	return nil
}

// Designation returns the NUL-terminated designation string starting
// at the given index, e.g. "CEST".
func (b DataBlock) Designation(idx uint8) string {
	raw := b.Designations[idx:]
	for i, c := range raw {
		if c == 0 {
			return string(raw[:i])
		}
	}
	return string(raw)
}
