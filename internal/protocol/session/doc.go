// Package session binds the packet codec to a peer connection.
//
// Ownership boundary:
// - request/response correlation by request id
// - stream framing of whole packets over a caller-supplied reader/writer
// - desynchronization reporting (any decode failure ends the session)
//
// Transport setup, retries and socket lifetime stay with the caller.
package session
