package ninep

// Read fills buf with bytes from fid starting at its current offset,
// advancing the offset by the number of bytes actually read, and
// returns that count. Read fragments the request across as many
// Tread transactions as needed, each capped by fid's iounit and by
// the session's msize, and stops early — returning a short count with
// a nil error — the first time the server returns fewer bytes than
// were asked for, exactly as a server signals end-of-file. A zero-
// length buf performs no transaction and returns (0, nil).
func (s *Session) Read(f Fid, buf []byte) (int, error) {
	const op = "read"

	rec, ok := s.fids.get(f.num)
	if !ok {
		return 0, newError(op, KindBadFid, nil)
	}

	total := 0
	for total < len(buf) {
		chunk := len(buf) - total
		if max := s.ioChunkMax(rec.iounit); chunk > max {
			chunk = max
		}

		pkt := s.newOutgoing()
		if err := pkt.putUint32(f.num); err != nil {
			return total, newError(op, KindOverflow, err)
		}
		if err := pkt.putUint64(rec.off); err != nil {
			return total, newError(op, KindOverflow, err)
		}
		if err := pkt.putUint32(uint32(chunk)); err != nil {
			return total, newError(op, KindOverflow, err)
		}

		body, _, err := s.transact(op, msgTread, pkt)
		if err != nil {
			return total, err
		}

		count, err := body.getUint32()
		if err != nil {
			return total, newError(op, KindMalformedMessage, err)
		}
		if int(count) > body.remaining() || int(count) > chunk {
			return total, newError(op, KindMalformedMessage, errShortIO)
		}

		data, err := body.getBytes(int(count))
		if err != nil {
			return total, newError(op, KindMalformedMessage, err)
		}
		copy(buf[total:], data)

		total += int(count)
		rec.off += uint64(count)

		if count == 0 || int(count) < chunk {
			break
		}
	}

	return total, nil
}

// Write sends the bytes of buf to fid starting at its current offset,
// advancing the offset by the number of bytes the server reports
// having written, and returns that count. Write fragments the request
// exactly as Read does, and stops early — without error — the first
// time the server reports writing fewer bytes than were sent. A
// zero-length buf performs no transaction and returns (0, nil).
func (s *Session) Write(f Fid, buf []byte) (int, error) {
	const op = "write"

	rec, ok := s.fids.get(f.num)
	if !ok {
		return 0, newError(op, KindBadFid, nil)
	}

	total := 0
	for total < len(buf) {
		chunk := len(buf) - total
		if max := s.ioChunkMax(rec.iounit); chunk > max {
			chunk = max
		}

		pkt := s.newOutgoing()
		if err := pkt.putUint32(f.num); err != nil {
			return total, newError(op, KindOverflow, err)
		}
		if err := pkt.putUint64(rec.off); err != nil {
			return total, newError(op, KindOverflow, err)
		}
		if err := pkt.putUint32(uint32(chunk)); err != nil {
			return total, newError(op, KindOverflow, err)
		}
		if err := pkt.putBytes(buf[total : total+chunk]); err != nil {
			return total, newError(op, KindOverflow, err)
		}

		body, _, err := s.transact(op, msgTwrite, pkt)
		if err != nil {
			return total, err
		}

		count, err := body.getUint32()
		if err != nil {
			return total, newError(op, KindMalformedMessage, err)
		}
		if int(count) > chunk {
			return total, newError(op, KindMalformedMessage, errShortIO)
		}

		total += int(count)
		rec.off += uint64(count)

		if int(count) < chunk {
			break
		}
	}

	return total, nil
}

// ioChunkMax returns the largest payload, in bytes, a single
// Tread/Twrite may request: the smaller of the fid's negotiated
// iounit (if any) and the headroom left in the session's msize once
// the fixed Tread/Twrite header is accounted for.
func (s *Session) ioChunkMax(iounit uint32) int {
	max := int(s.msize) - ioHeaderSize
	if iounit != 0 && int(iounit) < max {
		max = int(iounit)
	}
	if max < 0 {
		max = 0
	}
	return max
}
