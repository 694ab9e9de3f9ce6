package ninep

import (
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestSplitWalkPath(t *testing.T) {
	c := qt.New(t)

	cases := []struct {
		path string
		want []string
	}{
		{"", nil},
		{"/", nil},
		{"a", []string{"a"}},
		{"a/b", []string{"a", "b"}},
		{"/a/b", []string{"a", "b"}},
		{"/a/b/", []string{"a", "b"}},
		{"a/b/", []string{"a", "b"}},
	}
	for _, tc := range cases {
		got, err := splitWalkPath(tc.path)
		c.Assert(err, qt.IsNil, qt.Commentf("path %q", tc.path))
		c.Assert(got, qt.DeepEquals, tc.want, qt.Commentf("path %q", tc.path))
	}
}

func TestSplitWalkPathRejectsDoubleSlash(t *testing.T) {
	c := qt.New(t)
	_, err := splitWalkPath("a//b")
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestSplitWalkPathRejectsTooManyElements(t *testing.T) {
	c := qt.New(t)
	path := strings.Repeat("a/", MaxWalkElem+1)
	_, err := splitWalkPath(path)
	c.Assert(err, qt.Not(qt.IsNil))
	c.Assert(IsKind(err, KindNameTooLong), qt.IsTrue)
}

func TestWalkRejectsPartialResult(t *testing.T) {
	c := qt.New(t)

	s := &Session{
		buf:       make([]byte, DefaultMsize),
		msize:     DefaultMsize,
		fids:      newFidTable(maxFidsDefault, newTestRand()),
		rng:       newTestRand(),
		versioned: true,
	}
	root, err := s.fids.add(RootFid)
	c.Assert(err, qt.IsNil)
	root.qid = Qid{Type: QTDIR}

	// Requesting two elements but the server only resolves one: this
	// must be treated as a failure, with the new fid rolled back.
	body := make([]byte, 0, 32)
	body = appendUint16(body, 1)
	body = append(body, encodeQidForTest(Qid{Path: 1})...)

	tr := &scriptedTransport{}
	s.r, s.w = tr, tr
	tr.replies = [][]byte{buildMsg(msgRwalk, 0, body)}
	// transact() picks a random tag; patch the scripted reply's tag to
	// match after we know what transact chose by intercepting Write.
	tr.onWrite = func(req []byte) {
		tag := req[5:7]
		copy(tr.replies[0][5:7], tag)
	}

	_, err = s.Walk("a/b")
	c.Assert(err, qt.Not(qt.IsNil))
	c.Assert(IsKind(err, KindMalformedMessage), qt.IsTrue)

	c.Assert(s.fids.slots, qt.HasLen, maxFidsDefault)
	live := 0
	for _, f := range s.fids.slots {
		if f.num != 0 {
			live++
		}
	}
	c.Assert(live, qt.Equals, 1) // only RootFid remains
}
