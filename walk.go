package ninep

import "strings"

// splitWalkPath normalizes a slash-separated path into the element
// list a Twalk message carries. Exactly one leading and one trailing
// slash are trimmed before splitting, so "a/b", "/a/b", "/a/b/" and
// "a/b/" all produce the same two elements; an empty path or a path
// that is only "/" produces zero elements (a walk to the root itself).
// A doubled slash anywhere else in the path produces an empty element,
// which is rejected: 9P has no notion of "." as a path element, and
// the reference client this walk is grounded on treats this as caller
// error rather than silently collapsing it.
func splitWalkPath(path string) ([]string, error) {
	path = strings.TrimPrefix(path, "/")
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return nil, nil
	}
	elems := strings.Split(path, "/")
	for _, e := range elems {
		if e == "" {
			return nil, newError("walk", KindMalformedMessage, errEmptyPathElem)
		}
		if len(e) > MaxFilenameLen {
			return nil, newError("walk", KindNameTooLong, nil)
		}
	}
	if len(elems) > MaxWalkElem {
		return nil, newError("walk", KindNameTooLong, nil)
	}
	return elems, nil
}

// Walk resolves path, always interpreted relative to RootFid, into a
// new Fid. path is split on "/" as described by splitWalkPath; a path
// of "" or "/" walks zero elements and returns a fresh fid aliasing
// the root itself. There is no form of Walk that starts from a fid
// other than the root: the reference client this is grounded on always
// encodes RootFid as the walk's starting fid on the wire, never a
// caller-supplied one.
//
// Unlike a bare 9P walk, this client treats anything short of a full
// walk (the server's Rwalk naming fewer qids than elements requested)
// as a failure: there is no partial result for the caller to inspect,
// and no fid is left behind on the server or in the local table.
func (s *Session) Walk(path string) (Fid, error) {
	const op = "walk"

	elems, err := splitWalkPath(path)
	if err != nil {
		return Fid{}, err
	}

	rootRec, ok := s.fids.get(RootFid)
	if !ok {
		return Fid{}, newError(op, KindBadFid, nil)
	}

	newf, err := s.fids.newFid()
	if err != nil {
		return Fid{}, newError(op, KindTableFull, err)
	}
	newNum := newf.num

	pkt := s.newOutgoing()
	if err := pkt.putUint32(RootFid); err != nil {
		s.fids.del(newNum)
		return Fid{}, newError(op, KindOverflow, err)
	}
	if err := pkt.putUint32(newNum); err != nil {
		s.fids.del(newNum)
		return Fid{}, newError(op, KindOverflow, err)
	}
	if err := pkt.putUint16(uint16(len(elems))); err != nil {
		s.fids.del(newNum)
		return Fid{}, newError(op, KindOverflow, err)
	}
	for _, e := range elems {
		if err := pkt.putString(e); err != nil {
			s.fids.del(newNum)
			return Fid{}, newError(op, KindOverflow, err)
		}
	}

	body, _, err := s.transact(op, msgTwalk, pkt)
	if err != nil {
		s.fids.del(newNum)
		return Fid{}, err
	}

	nwqid, err := body.getUint16()
	if err != nil {
		s.fids.del(newNum)
		return Fid{}, newError(op, KindMalformedMessage, err)
	}
	if int(nwqid) != len(elems) {
		s.fids.del(newNum)
		return Fid{}, newError(op, KindMalformedMessage, errPartialWalk)
	}

	last := rootRec.qid
	for i := 0; i < int(nwqid); i++ {
		q, err := body.getQid()
		if err != nil {
			s.fids.del(newNum)
			return Fid{}, newError(op, KindMalformedMessage, err)
		}
		last = q
	}

	newf.qid = last
	return Fid{num: newNum}, nil
}
