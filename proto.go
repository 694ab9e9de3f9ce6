package ninep

// Wire-level constants for the 9P2000 protocol. Names follow
// intro(5)/version(5)/open(5)/stat(5); numeric values are copied from
// the Plan 9 source tree (sys/include/fcall.h, sys/include/libc.h).

// msgType identifies the kind of a 9P message. Even values are
// T-messages (client to server), odd values are their R-message
// replies. Since this is a client-only implementation, it only ever
// sends even types and expects to receive their corresponding odd
// type back.
type msgType uint8

const (
	msgTversion msgType = 100
	msgRversion msgType = 101
	msgTauth    msgType = 102
	msgRauth    msgType = 103
	msgTattach  msgType = 104
	msgRattach  msgType = 105
	msgTerror   msgType = 106 // illegal; never sent or received
	msgRerror   msgType = 107
	msgTflush   msgType = 108
	msgRflush   msgType = 109
	msgTwalk    msgType = 110
	msgRwalk    msgType = 111
	msgTopen    msgType = 112
	msgRopen    msgType = 113
	msgTcreate  msgType = 114
	msgRcreate  msgType = 115
	msgTread    msgType = 116
	msgRread    msgType = 117
	msgTwrite   msgType = 118
	msgRwrite   msgType = 119
	msgTclunk   msgType = 120
	msgRclunk   msgType = 121
	msgTremove  msgType = 122
	msgRremove  msgType = 123
	msgTstat    msgType = 124
	msgRstat    msgType = 125
	msgTwstat   msgType = 126
	msgRwstat   msgType = 127
	msgTmax     msgType = 128
)

func (t msgType) String() string {
	switch t {
	case msgTversion:
		return "Tversion"
	case msgRversion:
		return "Rversion"
	case msgTattach:
		return "Tattach"
	case msgRattach:
		return "Rattach"
	case msgRerror:
		return "Rerror"
	case msgTwalk:
		return "Twalk"
	case msgRwalk:
		return "Rwalk"
	case msgTopen:
		return "Topen"
	case msgRopen:
		return "Ropen"
	case msgTcreate:
		return "Tcreate"
	case msgRcreate:
		return "Rcreate"
	case msgTread:
		return "Tread"
	case msgRread:
		return "Rread"
	case msgTwrite:
		return "Twrite"
	case msgRwrite:
		return "Rwrite"
	case msgTclunk:
		return "Tclunk"
	case msgRclunk:
		return "Rclunk"
	case msgTremove:
		return "Tremove"
	case msgRremove:
		return "Rremove"
	case msgTstat:
		return "Tstat"
	case msgRstat:
		return "Rstat"
	}
	return "unknown"
}

const (
	// headerSize is the size, in bytes, of the fixed portion of every
	// 9P message: size[4] type[1] tag[2].
	headerSize = 4 + 1 + 2

	// qidSize is the wire size of a qid: type[1] version[4] path[8].
	qidSize = 1 + 4 + 8

	// ioHeaderSize is the reserved overhead for Tread/Rread/Twrite/Rwrite
	// replies, copied from Plan 9's sys/include/fcall.h.
	ioHeaderSize = 24

	// NoTag is used as the tag of a Tversion request, the only message
	// exempt from normal tag matching.
	NoTag uint16 = 0xFFFF

	// NoFid indicates the absence of an auth fid in a Tattach request.
	NoFid uint32 = 0xFFFFFFFF

	// RootFid is the fid this client always uses for the result of
	// Attach.
	RootFid uint32 = 1

	// MaxWalkElem is the maximum number of path elements a single
	// Twalk message may carry, per walk(5).
	MaxWalkElem = 16

	// MinMsize is the smallest msize this client will accept from a
	// server during version negotiation.
	MinMsize = 64

	// DefaultMsize is the msize this client offers during version
	// negotiation unless told otherwise.
	DefaultMsize = 8192

	// version is the only protocol version this client speaks.
	version = "9P2000"

	// maxFidsDefault is the default capacity of a Session's fid table.
	maxFidsDefault = 32
)

// Open/create mode bits, from open(5).
const (
	OREAD  uint8 = 0    // open for read
	OWRITE uint8 = 1    // open for write
	ORDWR  uint8 = 2    // open for read and write
	OEXEC  uint8 = 3    // open for execute
	OTRUNC uint8 = 0x10 // or'ed in: truncate file first
)

// File mode bits, from stat(5) and intro(5). The DM type bits occupy
// the high byte of a stat's Mode field and are mirrored in a Qid's
// Type; DMREAD, DMWRITE and DMEXEC are low permission bits.
const (
	DMDIR    uint32 = 0x80000000 // directory
	DMAPPEND uint32 = 0x40000000 // append only
	DMEXCL   uint32 = 0x20000000 // exclusive use
	DMMOUNT  uint32 = 0x10000000 // mounted channel
	DMAUTH   uint32 = 0x08000000 // authentication file
	DMTMP    uint32 = 0x04000000 // non-backed-up file

	DMREAD  uint32 = 0x4 // mode bit for read permission
	DMWRITE uint32 = 0x2 // mode bit for write permission
	DMEXEC  uint32 = 0x1 // mode bit for execute permission
)

// Minimum body length (not counting the 7-byte header) of each
// R-message this client parses, used to bounds-check before reading
// fixed fields. Variable-length messages (Rversion, Rwalk, Rstat) are
// checked incrementally as their variable parts are parsed.
var minRBodyLen = map[msgType]int{
	msgRversion: 4 + 2,        // msize[4] version[s] (version may be empty)
	msgRattach:  qidSize,      // qid[13]
	msgRerror:   2,            // ename[s]
	msgRwalk:    2,            // nwqid[2]
	msgRopen:    qidSize + 4,  // qid[13] iounit[4]
	msgRcreate:  qidSize + 4,  // qid[13] iounit[4]
	msgRread:    4,            // count[4]
	msgRwrite:   4,            // count[4]
	msgRclunk:   0,            // empty
	msgRremove:  0,            // empty
	msgRstat:    2 + minStatLen, // n[2] stat[minStatLen...]
}
