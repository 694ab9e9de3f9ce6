package ninep

import "fmt"

// A Qid is the server's unique identification for a file: two files on
// the same server hierarchy are the same file if and only if their
// qids are equal. The server's replies to Attach, Walk, Open and Create
// carry qids, which this client keeps in its fid table; the only qid
// exposed to callers is the one embedded in the result of Stat.
type Qid struct {
	// Type holds bits describing what kind of file this is
	// (directory, append-only, ...). It mirrors the high byte of the
	// file's mode word.
	Type QidType

	// Version is a version number for the file; it is typically
	// incremented every time the file is modified.
	Version uint32

	// Path is an integer unique among all files in the server's
	// hierarchy. A file that is removed and recreated with the same
	// name is guaranteed a different Path.
	Path uint64
}

func (q Qid) String() string {
	return fmt.Sprintf("type=%v version=%d path=%x", q.Type, q.Version, q.Path)
}

// QidType is a bit vector describing the type of a file, taken from
// the high 8 bits of the file's mode word.
type QidType uint8

const (
	QTDIR    QidType = 0x80 // directory
	QTAPPEND QidType = 0x40 // append only file
	QTEXCL   QidType = 0x20 // exclusive use file
	QTMOUNT  QidType = 0x10 // mounted channel
	QTAUTH   QidType = 0x08 // authentication file (afid)
	QTTMP    QidType = 0x04 // non-backed-up file
	QTFILE   QidType = 0x00 // plain file
)

func (t QidType) String() string {
	switch {
	case t&QTDIR != 0:
		return "dir"
	case t&QTAPPEND != 0:
		return "append"
	case t&QTEXCL != 0:
		return "excl"
	case t&QTMOUNT != 0:
		return "mount"
	case t&QTAUTH != 0:
		return "auth"
	case t&QTTMP != 0:
		return "tmp"
	}
	return "file"
}
