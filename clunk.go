package ninep

// Clunk releases fid, telling the server this client is done with it
// and freeing its local table slot. Like the reference client this is
// grounded on, Clunk refuses to release RootFid: the root fid lives
// for the lifetime of the Session and is only released when the
// transport itself is closed.
func (s *Session) Clunk(f Fid) error {
	return s.clunkOrRemove("clunk", msgTclunk, f)
}

// Remove asks the server to delete the file named by fid, then
// releases fid exactly as Clunk does. The local fid is freed even if
// the server reports an error removing the file, since a Tremove
// (like Tclunk) always retires the fid on the server's side too,
// whether or not the removal itself succeeded.
func (s *Session) Remove(f Fid) error {
	return s.clunkOrRemove("remove", msgTremove, f)
}

func (s *Session) clunkOrRemove(op string, mtype msgType, f Fid) error {
	if f.num == RootFid {
		return newError(op, KindBadFid, nil)
	}
	if _, ok := s.fids.get(f.num); !ok {
		return newError(op, KindBadFid, nil)
	}

	pkt := s.newOutgoing()
	if err := pkt.putUint32(f.num); err != nil {
		return newError(op, KindOverflow, err)
	}

	_, _, txErr := s.transact(op, mtype, pkt)

	// The fid is retired locally regardless of the transaction's
	// outcome: a Tclunk/Tremove always consumes the fid on the
	// server's side once sent, even when the reply is Rerror or never
	// arrives intact.
	s.fids.del(f.num)

	return txErr
}
