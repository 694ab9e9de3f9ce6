package ninep

import (
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
)

func newTestSession() (*Session, *scriptedTransport) {
	tr := &scriptedTransport{}
	s := &Session{
		r: tr, w: tr,
		buf:       make([]byte, DefaultMsize),
		msize:     DefaultMsize,
		fids:      newFidTable(maxFidsDefault, newTestRand()),
		rng:       newTestRand(),
		versioned: true,
	}
	return s, tr
}

func TestAttachAllocatesRootFid(t *testing.T) {
	c := qt.New(t)
	s, tr := newTestSession()

	tr.onWrite = func(req []byte) {
		tag := req[5:7]
		for i := range tr.replies {
			copy(tr.replies[i][5:7], tag)
		}
	}
	q := Qid{Type: QTDIR, Path: 1}
	tr.replies = [][]byte{buildMsg(msgRattach, 0, encodeQidForTest(q))}

	f, err := s.Attach("glenda", "")
	c.Assert(err, qt.IsNil)
	c.Assert(f.Num(), qt.Equals, RootFid)

	rec, ok := s.fids.get(RootFid)
	c.Assert(ok, qt.IsTrue)
	c.Assert(rec.qid, qt.Equals, q)
}

func TestAttachRequiresVersionFirst(t *testing.T) {
	c := qt.New(t)
	s, _ := newTestSession()
	s.versioned = false

	_, err := s.Attach("glenda", "")
	c.Assert(err, qt.Not(qt.IsNil))
	c.Assert(IsKind(err, KindUnsupported), qt.IsTrue)
}

func TestAttachRejectsOverlongUname(t *testing.T) {
	c := qt.New(t)
	s, _ := newTestSession()

	_, err := s.Attach(strings.Repeat("x", MaxUnameLen+1), "")
	c.Assert(err, qt.Not(qt.IsNil))
	c.Assert(IsKind(err, KindNameTooLong), qt.IsTrue)
}
