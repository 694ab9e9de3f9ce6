package ninep

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	mathrand "math/rand"
)

// A Session is a single 9P2000 connection to a server. It owns the
// shared message buffer, the negotiated msize, the transport
// callbacks, the fid table, and the tag/fid PRNG.
//
// A Session allows exactly one transaction in flight at a time: every
// verb method sends one T-message and waits for its R-message reply
// before returning. Callers that want to issue verbs concurrently from
// multiple goroutines must serialize access to a Session themselves
// (for instance with a mutex); nothing in this package does so.
type Session struct {
	r io.Reader
	w io.Writer

	buf   []byte // shared scratch buffer, len(buf) == offered msize
	msize uint32 // negotiated message size; equals len(buf) until Version succeeds, then the server's choice

	fids *fidTable
	rng  *mathrand.Rand

	versioned bool
}

// New returns a Session that communicates over r and w using the
// default offered message size and fid table capacity. r and w are
// typically the two halves of the same net.Conn.
func New(r io.Reader, w io.Writer) *Session {
	return NewSize(r, w, DefaultMsize, maxFidsDefault)
}

// NewSize returns a Session like New, but lets the caller choose the
// msize it offers during version negotiation and the capacity of its
// fid table. msize is raised to MinMsize if smaller; maxFids is
// replaced with a default if zero or negative.
func NewSize(r io.Reader, w io.Writer, msize uint32, maxFids int) *Session {
	if msize < MinMsize {
		msize = MinMsize
	}
	if maxFids < 1 {
		maxFids = maxFidsDefault
	}
	rng := mathrand.New(mathrand.NewSource(seedFromEntropy()))
	return &Session{
		r:     r,
		w:     w,
		buf:   make([]byte, msize),
		msize: msize,
		fids:  newFidTable(maxFids, rng),
		rng:   rng,
	}
}

// seedFromEntropy draws a 64-bit seed from the platform's entropy
// source for a non-cryptographic PRNG used only to pick tags and fid
// numbers that are hard for a server to predict or collide with
// across reconnects. If the platform source is unavailable, a fixed
// seed is used instead: predictable tags are a minor degradation, not
// a correctness bug, in a client that only ever has one request in
// flight.
func seedFromEntropy() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 1
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// Msize returns the negotiated maximum message size. Before Version
// succeeds, it returns the size the client will offer.
func (s *Session) Msize() uint32 { return s.msize }

// newOutgoing returns a packet positioned at the start of the body
// region of the session buffer, for the caller to encode a T-message
// body into.
func (s *Session) newOutgoing() *packet {
	return &packet{b: s.buf[headerSize:]}
}

// transact sends the T-message staged in pkt (whose b field must
// alias a suffix of s.buf[headerSize:]) as a message of type mtype,
// fills in the header, performs one write/read round trip, and
// returns a packet positioned over the body of the reply along with
// its type. mtype must be an even (T-message) type.
func (s *Session) transact(op string, mtype msgType, pkt *packet) (*packet, msgType, error) {
	bodyLen := len(s.buf) - headerSize - len(pkt.b)
	size := uint32(headerSize + bodyLen)

	tag := uint16(s.rng.Intn(0x10000))
	if mtype == msgTversion {
		tag = NoTag
	}

	binary.LittleEndian.PutUint32(s.buf[0:4], size)
	s.buf[4] = uint8(mtype)
	binary.LittleEndian.PutUint16(s.buf[5:7], tag)

	if _, err := s.w.Write(s.buf[:size]); err != nil {
		return nil, 0, newError(op, KindTransport, err)
	}

	n, err := s.r.Read(s.buf)
	if err != nil {
		return nil, 0, newError(op, KindTransport, err)
	}

	return s.decodeReply(op, mtype, tag, n)
}

// decodeReply validates the 7-byte header of a reply just read into
// s.buf[:n] against the type and tag of the request it answers. An
// Rerror reply is parsed and returned as a KindServer *Error
// regardless of reqType.
func (s *Session) decodeReply(op string, reqType msgType, reqTag uint16, n int) (*packet, msgType, error) {
	if n < headerSize {
		return nil, 0, newError(op, KindMalformedMessage, errTooSmall)
	}
	size := binary.LittleEndian.Uint32(s.buf[0:4])
	if int(size) != n || size < headerSize {
		return nil, 0, newError(op, KindMalformedMessage, errSizeMismatch)
	}

	rtype := msgType(s.buf[4])
	if rtype < msgTversion || rtype >= msgTmax {
		return nil, 0, newError(op, KindMalformedMessage, errInvalidType)
	}
	if uint8(rtype)%2 == 0 {
		return nil, 0, newError(op, KindUnsupported, errEvenType)
	}

	tag := binary.LittleEndian.Uint16(s.buf[5:7])
	body := &packet{b: s.buf[headerSize:n]}

	if rtype == msgRerror {
		if tag != reqTag {
			return nil, 0, newError(op, KindMalformedMessage, errTagMismatch)
		}
		ename, err := body.getString(MaxErrorLen)
		if err != nil {
			return nil, 0, newError(op, KindMalformedMessage, err)
		}
		return nil, 0, newError(op, KindServer, ServerError(ename))
	}

	if tag != reqTag {
		return nil, 0, newError(op, KindMalformedMessage, errTagMismatch)
	}
	if rtype != reqType+1 {
		return nil, 0, newError(op, KindMalformedMessage, errTypeMismatch)
	}
	if min, ok := minRBodyLen[rtype]; ok && body.remaining() < min {
		return nil, 0, newError(op, KindMalformedMessage, errShortBuffer)
	}

	return body, rtype, nil
}

// Version performs the Tversion/Rversion negotiation that must be the
// first transaction on a Session. It offers the msize this Session was
// constructed with and the literal version string "9P2000". If the
// server replies with the version string "unknown", Version fails with
// KindUnsupportedProtocol. Version may only be called once per
// Session; to renegotiate, the caller must start a new Session over a
// new transport.
func (s *Session) Version() error {
	const op = "version"

	pkt := s.newOutgoing()
	if err := pkt.putUint32(uint32(len(s.buf))); err != nil {
		return newError(op, KindOverflow, err)
	}
	if err := pkt.putString(version); err != nil {
		return newError(op, KindOverflow, err)
	}

	body, _, err := s.transact(op, msgTversion, pkt)
	if err != nil {
		return err
	}

	msize, err := body.getUint32()
	if err != nil {
		return newError(op, KindMalformedMessage, err)
	}
	srvVersion, err := body.getString(MaxVersionLen)
	if err != nil {
		return newError(op, KindMalformedMessage, err)
	}

	if msize > uint32(len(s.buf)) {
		return newError(op, KindMessageTooLarge, nil)
	}
	if msize < MinMsize {
		return newError(op, KindMalformedMessage, nil)
	}
	if srvVersion == "unknown" {
		return newError(op, KindUnsupportedProtocol, nil)
	}

	s.msize = msize
	s.versioned = true
	return nil
}
