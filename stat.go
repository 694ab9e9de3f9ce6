package ninep

// minStatLen is the minimum encoded length, in bytes, of a 9P stat
// structure, not counting the 2-byte outer length prefix that
// precedes it inside an Rstat message: size[2] type[2] dev[4] qid[13]
// mode[4] atime[4] mtime[4] length[8] plus four empty string[s]
// fields (name, uid, gid, muid), each contributing its 2-byte length
// prefix even when empty.
const minStatLen = 2 + 2 + 4 + qidSize + 4 + 4 + 4 + 8 + 4*2

// A Stat holds the metadata of a file as returned by the Stat verb.
// The name, uid, gid and muid fields of the wire stat structure are
// parsed only far enough to skip over them correctly; this client has
// no use for user or group names and does not expose them.
type Stat struct {
	Qid    Qid
	Mode   uint32 // DMDIR and friends occupy the high byte; low bits are DMREAD/DMWRITE/DMEXEC and owner/group/other permission bits
	Atime  uint32 // last access time, seconds since the epoch
	Mtime  uint32 // last modification time, seconds since the epoch
	Length uint64 // length in bytes, or number of directory entries for a directory
}

// Stat retrieves the metadata of the file named by fid.
func (s *Session) Stat(f Fid) (Stat, error) {
	const op = "stat"

	if _, ok := s.fids.get(f.num); !ok {
		return Stat{}, newError(op, KindBadFid, nil)
	}

	pkt := s.newOutgoing()
	if err := pkt.putUint32(f.num); err != nil {
		return Stat{}, newError(op, KindOverflow, err)
	}

	body, _, err := s.transact(op, msgTstat, pkt)
	if err != nil {
		return Stat{}, err
	}

	// n[2] is the length of the stat structure that follows; this
	// client parses every field of a well-formed stat, so n is
	// checked for sanity but not otherwise consulted.
	n, err := body.getUint16()
	if err != nil {
		return Stat{}, newError(op, KindMalformedMessage, err)
	}
	if int(n) > body.remaining() {
		return Stat{}, newError(op, KindMalformedMessage, errShortBuffer)
	}

	// size[2]: the inner length field of the stat structure itself,
	// distinct from the outer n[2] already consumed above. Normally
	// equal to n, but it is a real field on the wire and must be read
	// as one, not assumed to coincide with n.
	if _, err := body.getUint16(); err != nil {
		return Stat{}, newError(op, KindMalformedMessage, err)
	}

	// type[2] dev[4]: kernel device/version fields, irrelevant to a
	// client and not surfaced.
	if _, err := body.getUint16(); err != nil {
		return Stat{}, newError(op, KindMalformedMessage, err)
	}
	if _, err := body.getUint32(); err != nil {
		return Stat{}, newError(op, KindMalformedMessage, err)
	}

	qid, err := body.getQid()
	if err != nil {
		return Stat{}, newError(op, KindMalformedMessage, err)
	}
	mode, err := body.getUint32()
	if err != nil {
		return Stat{}, newError(op, KindMalformedMessage, err)
	}
	atime, err := body.getUint32()
	if err != nil {
		return Stat{}, newError(op, KindMalformedMessage, err)
	}
	mtime, err := body.getUint32()
	if err != nil {
		return Stat{}, newError(op, KindMalformedMessage, err)
	}
	length, err := body.getUint64()
	if err != nil {
		return Stat{}, newError(op, KindMalformedMessage, err)
	}

	if err := body.skipString(MaxFilenameLen); err != nil { // name
		return Stat{}, newError(op, KindMalformedMessage, err)
	}
	if err := body.skipString(MaxStatUserLen); err != nil { // uid
		return Stat{}, newError(op, KindMalformedMessage, err)
	}
	if err := body.skipString(MaxStatUserLen); err != nil { // gid
		return Stat{}, newError(op, KindMalformedMessage, err)
	}
	if err := body.skipString(MaxStatUserLen); err != nil { // muid
		return Stat{}, newError(op, KindMalformedMessage, err)
	}

	return Stat{Qid: qid, Mode: mode, Atime: atime, Mtime: mtime, Length: length}, nil
}

// IsDir reports whether st describes a directory.
func (st Stat) IsDir() bool { return st.Mode&DMDIR != 0 }
