package ninep

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func newTestSessionWithFid(num uint32, iounit uint32) (*Session, *scriptedTransport) {
	tr := &scriptedTransport{}
	s := &Session{
		r: tr, w: tr,
		buf:       make([]byte, DefaultMsize),
		msize:     DefaultMsize,
		fids:      newFidTable(maxFidsDefault, newTestRand()),
		rng:       newTestRand(),
		versioned: true,
	}
	f, _ := s.fids.add(num)
	f.iounit = iounit
	return s, tr
}

func rreadBody(data []byte) []byte {
	b := appendUint32(nil, uint32(len(data)))
	return append(b, data...)
}

func TestReadStopsOnShortReply(t *testing.T) {
	c := qt.New(t)
	s, tr := newTestSessionWithFid(5, 0)

	tr.onWrite = func(req []byte) {
		tag := req[5:7]
		for i := range tr.replies {
			copy(tr.replies[i][5:7], tag)
		}
	}
	tr.replies = [][]byte{buildMsg(msgRread, 0, rreadBody([]byte("hi")))}

	buf := make([]byte, 10)
	n, err := s.Read(Fid{num: 5}, buf)
	c.Assert(err, qt.IsNil)
	c.Assert(n, qt.Equals, 2)
	c.Assert(string(buf[:n]), qt.Equals, "hi")
}

func TestReadFragmentsAcrossIounit(t *testing.T) {
	c := qt.New(t)
	s, tr := newTestSessionWithFid(5, 4) // tiny iounit forces two round trips

	tr.onWrite = func(req []byte) {
		tag := req[5:7]
		for i := range tr.replies {
			copy(tr.replies[i][5:7], tag)
		}
	}
	tr.replies = [][]byte{
		buildMsg(msgRread, 0, rreadBody([]byte("abcd"))),
		buildMsg(msgRread, 0, rreadBody([]byte("ef"))),
	}

	buf := make([]byte, 6)
	n, err := s.Read(Fid{num: 5}, buf)
	c.Assert(err, qt.IsNil)
	c.Assert(n, qt.Equals, 6)
	c.Assert(string(buf), qt.Equals, "abcdef")
}

func TestReadZeroLengthBufIsNoop(t *testing.T) {
	c := qt.New(t)
	s, tr := newTestSessionWithFid(5, 0)
	n, err := s.Read(Fid{num: 5}, nil)
	c.Assert(err, qt.IsNil)
	c.Assert(n, qt.Equals, 0)
	c.Assert(tr.sent, qt.HasLen, 0)
}

func TestWriteStopsOnShortReply(t *testing.T) {
	c := qt.New(t)
	s, tr := newTestSessionWithFid(5, 0)

	tr.onWrite = func(req []byte) {
		tag := req[5:7]
		for i := range tr.replies {
			copy(tr.replies[i][5:7], tag)
		}
	}
	tr.replies = [][]byte{buildMsg(msgRwrite, 0, appendUint32(nil, 3))}

	n, err := s.Write(Fid{num: 5}, []byte("hello"))
	c.Assert(err, qt.IsNil)
	c.Assert(n, qt.Equals, 3)
}

func TestReadBadFid(t *testing.T) {
	c := qt.New(t)
	s, _ := newTestSessionWithFid(5, 0)
	_, err := s.Read(Fid{num: 99}, make([]byte, 1))
	c.Assert(err, qt.Not(qt.IsNil))
	c.Assert(IsKind(err, KindBadFid), qt.IsTrue)
}
