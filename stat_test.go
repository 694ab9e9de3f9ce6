package ninep

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func buildStatBody(q Qid, mode, atime, mtime uint32, length uint64) []byte {
	// record is the stat structure after its own inner size[2] field,
	// which is prepended below (distinct from the outer n[2] prefix an
	// Rstat message carries ahead of the whole stat).
	var record []byte
	record = appendUint16(record, 0) // type
	record = appendUint32(record, 0) // dev
	record = append(record, encodeQidForTest(q)...)
	record = appendUint32(record, mode)
	record = appendUint32(record, atime)
	record = appendUint32(record, mtime)
	record = append(record, make([]byte, 8)...) // length, filled below
	putUint64LE(record[len(record)-8:], length)
	record = appendString(record, "name")
	record = appendString(record, "uid")
	record = appendString(record, "gid")
	record = appendString(record, "muid")

	// size counts every byte of the record that follows the size
	// field itself.
	stat := appendUint16(nil, uint16(len(record)))
	stat = append(stat, record...)

	// n counts the whole stat[n] blob, size field included.
	body := appendUint16(nil, uint16(len(stat)))
	return append(body, stat...)
}

func putUint64LE(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * uint(i)))
	}
}

func TestStatParsesAndSkipsUserFields(t *testing.T) {
	c := qt.New(t)
	s, tr := newTestSessionWithFid(5, 0)

	q := Qid{Type: QTDIR, Version: 3, Path: 7}
	body := buildStatBody(q, DMDIR|DMREAD, 100, 200, 4096)

	tr.onWrite = func(req []byte) {
		tag := req[5:7]
		for i := range tr.replies {
			copy(tr.replies[i][5:7], tag)
		}
	}
	tr.replies = [][]byte{buildMsg(msgRstat, 0, body)}

	st, err := s.Stat(Fid{num: 5})
	c.Assert(err, qt.IsNil)
	c.Assert(st.Qid, qt.Equals, q)
	c.Assert(st.IsDir(), qt.IsTrue)
	c.Assert(st.Atime, qt.Equals, uint32(100))
	c.Assert(st.Mtime, qt.Equals, uint32(200))
	c.Assert(st.Length, qt.Equals, uint64(4096))
}

func TestStatBadFid(t *testing.T) {
	c := qt.New(t)
	s, _ := newTestSessionWithFid(5, 0)
	_, err := s.Stat(Fid{num: 42})
	c.Assert(err, qt.Not(qt.IsNil))
	c.Assert(IsKind(err, KindBadFid), qt.IsTrue)
}
