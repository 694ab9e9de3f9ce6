package ninep

// Field-length limits enforced by this client, mirroring the limits
// the reference 9P codec this client's wire layer is grounded on
// places on its own variable-length fields, so that a single bad or
// hostile size field can never force an unbounded allocation.

// MaxVersionLen is the maximum length, in bytes, of a version string
// accepted in an Rversion reply.
const MaxVersionLen = 32

// MaxUnameLen is the maximum length, in bytes, of the uname field of
// an Attach request.
const MaxUnameLen = 45

// MaxAnameLen is the maximum length, in bytes, of the aname field of
// an Attach request.
const MaxAnameLen = 255

// MaxFilenameLen is the maximum length, in bytes, of a single path
// element in a Walk request, and of a file name passed to Create.
const MaxFilenameLen = 512

// MaxErrorLen is the maximum length, in bytes, of the error text in an
// Rerror reply.
const MaxErrorLen = 512

// MaxStatUserLen is the maximum length, in bytes, of each of the
// uid/gid/muid fields skipped over while parsing an Rstat reply.
const MaxStatUserLen = 64
