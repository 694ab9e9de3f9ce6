package ninep

// Attach establishes a new session with the server, identifying the
// client as uname and requesting access to the file tree named aname
// (the empty string selects the server's default tree). It must be
// called exactly once, after Version succeeds and before any other
// verb, and always allocates RootFid for the resulting root of the
// attached tree.
//
// There is no Tauth support in this client: afid is always sent as
// NoFid, so a server that requires authentication will fail the
// attach with Rerror.
func (s *Session) Attach(uname, aname string) (Fid, error) {
	const op = "attach"

	if !s.versioned {
		return Fid{}, newError(op, KindUnsupported, nil)
	}
	if len(uname) > MaxUnameLen {
		return Fid{}, newError(op, KindNameTooLong, nil)
	}
	if len(aname) > MaxAnameLen {
		return Fid{}, newError(op, KindNameTooLong, nil)
	}

	f, err := s.fids.add(RootFid)
	if err != nil {
		return Fid{}, newError(op, KindTableFull, err)
	}

	// Rollback below clears the slot directly rather than going
	// through fids.del, which unconditionally refuses RootFid.

	pkt := s.newOutgoing()
	if err := pkt.putUint32(RootFid); err != nil {
		s.fids.clearRoot()
		return Fid{}, newError(op, KindOverflow, err)
	}
	if err := pkt.putUint32(NoFid); err != nil {
		s.fids.clearRoot()
		return Fid{}, newError(op, KindOverflow, err)
	}
	if err := pkt.putString(uname); err != nil {
		s.fids.clearRoot()
		return Fid{}, newError(op, KindOverflow, err)
	}
	if err := pkt.putString(aname); err != nil {
		s.fids.clearRoot()
		return Fid{}, newError(op, KindOverflow, err)
	}

	body, _, err := s.transact(op, msgTattach, pkt)
	if err != nil {
		s.fids.clearRoot()
		return Fid{}, err
	}

	qid, err := body.getQid()
	if err != nil {
		s.fids.clearRoot()
		return Fid{}, newError(op, KindMalformedMessage, err)
	}

	f.qid = qid
	return Fid{num: RootFid}, nil
}
