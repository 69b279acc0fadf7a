// Package packet owns the envelope exchanged between peers: a fixed 32-byte
// header followed by a stream of top-level TLV nodes, the whole buffer
// XOR-obfuscated with a per-packet key.
//
// Wire layout before obfuscation:
//
//	offset 0   len 4   obfuscation key placeholder (zero)
//	offset 4   len 16  session id
//	offset 20  len 4   encryption flag (0 = none; anything else is rejected)
//	offset 24  len 4   body length = encoded TLV length + 8
//	offset 28  len 4   packet kind
//	offset 32  ...     encoded TLV nodes
//
// The obfuscation only scrambles bytes on the wire. It provides no
// confidentiality or integrity.
package packet
