/*
Package ninep implements a client for the 9P2000 network file-service
protocol used by Plan 9.

A Session attaches to a 9P server over a caller-supplied transport (any
io.Reader/io.Writer pair, typically wrapping a TCP connection) and
exposes the file-oriented verbs of 9P2000: Attach, Walk, Open, Create,
Read, Write, Stat, Clunk and Remove. The wire format is described in
Plan 9's intro(5), version(5), attach(5), walk(5), open(5), read(5),
stat(5), clunk(5) and remove(5).

This package implements the client side only; it does not implement a
9P server, authentication (Tauth), Twstat, or any of the 9P2000.u or
9P2000.L extensions. A Session only ever has one request in flight at
a time: callers that need to issue requests from multiple goroutines
must serialize access to a Session themselves.
*/
package ninep
