// Package protocol owns the wire contract shared by the ghostwire codec packages.
//
// Ownership boundary:
// - error taxonomy for encode/decode paths
// - wire: big-endian cursor reader and append writer
// - tlv: field taxonomy and the recursive node tree
// - packet: obfuscated envelope, request/response correlation
// - frame: stream framing of whole packets
// - schema: envelope invariants
package protocol
