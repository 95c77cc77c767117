// Package archive persists attribute stores and point sets.
//
// # Format
//
// An archive starts with a header followed by a body:
//
//	Magic        uint32  "MKAR"
//	Version      string  semantic version of the container format
//	Content      uint8   store or point set
//	Compression  uint8   none, lz4 or zstd
//	Checksum     uint32  CRC32 (IEEE) of the stored body
//	RawLength    uint64  body length before compression
//	StoredLength uint64  body length as stored
//	Body         [StoredLength]byte
//
// The body of a store archive holds the element count and one record per
// persistent attribute, sorted by name:
//
//	Name     string
//	Type     string  value type tag
//	Encoding string  "binary" or the codec name for codec-backed types
//	Kind     uint8
//	Schema   uint8   SchemaVersion of the record payload
//	Payload  []byte
//
// A point set body prefixes the store body with the collection identifier
// and representation name.
//
// Value types are resolved through an explicit Registry. Records of
// unregistered types are skipped with a warning, or rejected in strict mode.
// Computed and non-persistent attributes are not written.
package archive
