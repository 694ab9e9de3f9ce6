package ninep

import "encoding/binary"

// A packet is a cursor into a slice of a Session's shared message
// buffer. Encoding consumes the cursor from the front as it writes
// fields; decoding consumes it the same way as it reads them. Because
// a Session allows exactly one transaction in flight at a time (see
// transact in session.go), a packet never outlives the call that
// creates it, and two packets are never alive for the same Session at
// once — the single borrow is what makes sharing one buffer across
// requests safe without a lock.
//
// b always holds the bytes remaining to be produced (encode) or
// consumed (decode); it shrinks from the front as each field is
// written or read.
type packet struct {
	b []byte
}

func (p *packet) remaining() int { return len(p.b) }

// --- encoding ---

func (p *packet) putUint8(v uint8) error {
	if len(p.b) < 1 {
		return errOverflow
	}
	p.b[0] = v
	p.b = p.b[1:]
	return nil
}

func (p *packet) putUint16(v uint16) error {
	if len(p.b) < 2 {
		return errOverflow
	}
	binary.LittleEndian.PutUint16(p.b, v)
	p.b = p.b[2:]
	return nil
}

func (p *packet) putUint32(v uint32) error {
	if len(p.b) < 4 {
		return errOverflow
	}
	binary.LittleEndian.PutUint32(p.b, v)
	p.b = p.b[4:]
	return nil
}

func (p *packet) putUint64(v uint64) error {
	if len(p.b) < 8 {
		return errOverflow
	}
	binary.LittleEndian.PutUint64(p.b, v)
	p.b = p.b[8:]
	return nil
}

// putString writes s as a 9P string[s]: a 2-byte length followed by
// the raw bytes of s, with no terminator.
func (p *packet) putString(s string) error {
	if len(s) > 0xFFFF {
		return errOverflow
	}
	if err := p.putUint16(uint16(len(s))); err != nil {
		return err
	}
	if len(p.b) < len(s) {
		return errOverflow
	}
	copy(p.b, s)
	p.b = p.b[len(s):]
	return nil
}

func (p *packet) putQid(q Qid) error {
	if len(p.b) < qidSize {
		return errOverflow
	}
	if err := p.putUint8(uint8(q.Type)); err != nil {
		return err
	}
	if err := p.putUint32(q.Version); err != nil {
		return err
	}
	return p.putUint64(q.Path)
}

// putBytes copies raw data into the packet with no length prefix; the
// caller is responsible for having already written any count field.
func (p *packet) putBytes(data []byte) error {
	if len(p.b) < len(data) {
		return errOverflow
	}
	copy(p.b, data)
	p.b = p.b[len(data):]
	return nil
}

// --- decoding ---

func (p *packet) getUint8() (uint8, error) {
	if len(p.b) < 1 {
		return 0, errShortBuffer
	}
	v := p.b[0]
	p.b = p.b[1:]
	return v, nil
}

func (p *packet) getUint16() (uint16, error) {
	if len(p.b) < 2 {
		return 0, errShortBuffer
	}
	v := binary.LittleEndian.Uint16(p.b)
	p.b = p.b[2:]
	return v, nil
}

func (p *packet) getUint32() (uint32, error) {
	if len(p.b) < 4 {
		return 0, errShortBuffer
	}
	v := binary.LittleEndian.Uint32(p.b)
	p.b = p.b[4:]
	return v, nil
}

func (p *packet) getUint64() (uint64, error) {
	if len(p.b) < 8 {
		return 0, errShortBuffer
	}
	v := binary.LittleEndian.Uint64(p.b)
	p.b = p.b[8:]
	return v, nil
}

// getString reads a 9P string[s], failing if the declared length
// exceeds either the remaining packet length or maxLen. The returned
// string is a copy and stays valid after the session buffer is reused.
func (p *packet) getString(maxLen int) (string, error) {
	n, err := p.getUint16()
	if err != nil {
		return "", err
	}
	if int(n) > len(p.b) || int(n) > maxLen {
		return "", errStringTooLong
	}
	s := string(p.b[:n])
	p.b = p.b[n:]
	return s, nil
}

// skipString reads past a 9P string[s] without retaining its bytes,
// applying the same bounds checks as getString. Used for fields a
// caller never needs but must still parse for length-correctness
// (e.g. the name/uid/gid/muid tail of a stat structure).
func (p *packet) skipString(maxLen int) error {
	_, err := p.getString(maxLen)
	return err
}

func (p *packet) getQid() (Qid, error) {
	if len(p.b) < qidSize {
		return Qid{}, errShortBuffer
	}
	typ, _ := p.getUint8()
	ver, _ := p.getUint32()
	path, _ := p.getUint64()
	return Qid{Type: QidType(typ), Version: ver, Path: path}, nil
}

// getBytes returns the next n bytes of the packet with no length
// prefix, advancing the cursor past them. The returned slice aliases
// the session buffer.
func (p *packet) getBytes(n int) ([]byte, error) {
	if len(p.b) < n {
		return nil, errShortBuffer
	}
	b := p.b[:n]
	p.b = p.b[n:]
	return b, nil
}
