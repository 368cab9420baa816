package core

import (
	"encoding/binary"
	"errors"
	"time"
)

// MaxRecordSize is the upper bound for one encoded record on the daemon
// socket. It matches the bounded message buffer, so any record built by the
// facility fits after the fixed header and short tag/file strings.
const MaxRecordSize = 8 * 1024

var errWireTruncated = errors.New("core: truncated wire record")

// EncodedLen returns the number of bytes AppendWire will produce for r.
func (r *Record) EncodedLen() int {
	n := 8 + 4 // timestamp secs + nanos
	n += 1     // level
	n += 4 + len(r.Tag)
	n += 4 + len(r.File)
	n += 4 // line
	n += 4 // tgid
	n += 4 // tid
	n += 4 + len(r.Message)
	return n
}

// AppendWire appends the wire encoding of r to dst and returns the extended
// slice. The layout is big-endian: timestamp (secs u64, nanos u32), level
// u8, then length-prefixed tag, length-prefixed file (zero length means
// unknown), line u32, tgid u32, tid u32 and the length-prefixed message.
func (r *Record) AppendWire(dst []byte) []byte {
	secs := uint64(0)
	nanos := uint32(0)
	if !r.Time.IsZero() {
		secs = uint64(r.Time.Unix())
		nanos = uint32(r.Time.Nanosecond())
	}
	dst = binary.BigEndian.AppendUint64(dst, secs)
	dst = binary.BigEndian.AppendUint32(dst, nanos)

	dst = append(dst, byte(r.Level))

	dst = binary.BigEndian.AppendUint32(dst, uint32(len(r.Tag)))
	dst = append(dst, r.Tag...)

	dst = binary.BigEndian.AppendUint32(dst, uint32(len(r.File)))
	dst = append(dst, r.File...)

	line := r.Line
	if line < 0 {
		line = 0
	}
	dst = binary.BigEndian.AppendUint32(dst, uint32(line))
	dst = binary.BigEndian.AppendUint32(dst, r.Tgid)
	dst = binary.BigEndian.AppendUint32(dst, r.Tid)

	dst = binary.BigEndian.AppendUint32(dst, uint32(len(r.Message)))
	dst = append(dst, r.Message...)
	return dst
}

// DecodeWire decodes one record from buf. It is the inverse of AppendWire
// and is used by the logd daemon, which receives exactly one record per
// datagram or per length-delimited stream frame.
func DecodeWire(buf []byte) (Record, error) {
	var r Record
	d := wireDecoder{buf: buf}

	secs, err := d.u64()
	if err != nil {
		return r, err
	}
	nanos, err := d.u32()
	if err != nil {
		return r, err
	}
	r.Time = time.Unix(int64(secs), int64(nanos))

	lv, err := d.u8()
	if err != nil {
		return r, err
	}
	r.Level = Level(lv)
	if !r.Level.Valid() {
		return r, errors.New("core: invalid level in wire record")
	}

	if r.Tag, err = d.str(); err != nil {
		return r, err
	}
	if r.File, err = d.str(); err != nil {
		return r, err
	}

	line, err := d.u32()
	if err != nil {
		return r, err
	}
	r.Line = int(line)

	if r.Tgid, err = d.u32(); err != nil {
		return r, err
	}
	if r.Tid, err = d.u32(); err != nil {
		return r, err
	}
	if r.Message, err = d.str(); err != nil {
		return r, err
	}
	return r, nil
}

type wireDecoder struct {
	buf []byte
	off int
}

func (d *wireDecoder) take(n int) ([]byte, error) {
	if d.off+n > len(d.buf) {
		return nil, errWireTruncated
	}
	b := d.buf[d.off : d.off+n]
	d.off += n
	return b, nil
}

func (d *wireDecoder) u8() (byte, error) {
	b, err := d.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *wireDecoder) u32() (uint32, error) {
	b, err := d.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (d *wireDecoder) u64() (uint64, error) {
	b, err := d.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (d *wireDecoder) str() (string, error) {
	n, err := d.u32()
	if err != nil {
		return "", err
	}
	if int(n) > len(d.buf)-d.off {
		return "", errWireTruncated
	}
	b, err := d.take(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
