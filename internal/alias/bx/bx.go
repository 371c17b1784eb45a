// stand for bytes helper
package bx

import "encoding/binary"

var BE = binary.BigEndian

// --- BE (used for wire length prefixes) ---
func U32BE(b []byte) uint32       { return BE.Uint32(b) }
func PutU32BE(b []byte, v uint32) { BE.PutUint32(b, v) }
