package ninep

// Open prepares fid, previously returned by Attach or Walk, for I/O in
// the given mode (one of OREAD, OWRITE, ORDWR, OEXEC, optionally
// or'ed with OTRUNC). On success, fid's qid is refreshed and its
// iounit is set from the server's reply, defaulting to msize minus the
// Tread/Twrite header overhead when the server reports zero, and its
// byte offset is reset to 0.
func (s *Session) Open(f Fid, mode uint8) error {
	return s.openOrCreate("open", msgTopen, f, "", mode)
}

// Create asks the server to create a file named name in the directory
// named by fid, then opens it in the given mode exactly as Open does.
// On success, fid is repurposed in place to refer to the newly created
// file rather than the directory that contained it, matching walk(5)'s
// description of Tcreate's effect on its fid.
func (s *Session) Create(f Fid, name string, perm uint32, mode uint8) error {
	if len(name) > MaxFilenameLen {
		return newError("create", KindNameTooLong, nil)
	}
	return s.openOrCreate("create", msgTcreate, f, name, mode, perm)
}

// openOrCreate implements both Open and Create: the two requests carry
// almost identical bodies and parse an identical qid+iounit reply. For
// Tcreate, perm must be provided as exactly one extra uint32 argument
// ordered before mode on the wire (name, perm, mode); for Topen, extra
// is omitted entirely.
func (s *Session) openOrCreate(op string, mtype msgType, f Fid, name string, mode uint8, extra ...uint32) error {
	rec, ok := s.fids.get(f.num)
	if !ok {
		return newError(op, KindBadFid, nil)
	}

	pkt := s.newOutgoing()
	if err := pkt.putUint32(f.num); err != nil {
		return newError(op, KindOverflow, err)
	}
	if mtype == msgTcreate {
		if err := pkt.putString(name); err != nil {
			return newError(op, KindOverflow, err)
		}
		if err := pkt.putUint32(extra[0]); err != nil {
			return newError(op, KindOverflow, err)
		}
	}
	if err := pkt.putUint8(mode); err != nil {
		return newError(op, KindOverflow, err)
	}

	body, _, err := s.transact(op, mtype, pkt)
	if err != nil {
		return err
	}

	qid, err := body.getQid()
	if err != nil {
		return newError(op, KindMalformedMessage, err)
	}
	iounit, err := body.getUint32()
	if err != nil {
		return newError(op, KindMalformedMessage, err)
	}
	if iounit == 0 {
		iounit = s.msize - ioHeaderSize
	}

	rec.qid = qid
	rec.iounit = iounit
	rec.off = 0
	return nil
}
