// Package bytebuf provides bounds-checked byte buffers with lossless
// transcoding between raw bytes and seven text encodings.
//
// # Architecture Overview
//
//	bytebuf/             Root package with the Storage interface and Heap storage
//	├── buffer/          Buffer views, codec table, compare/search, fill, swap, atob/btoa
//	├── native/          Byte-level codec primitives (slice/write, memcmp, memmem, swap)
//	├── memory/          wazero linear memory as Storage
//	├── host/            wazero host module exposing buffer operations to guests
//	├── errors/          Structured error types
//	└── cmd/bufconv/     Command line transcoder
//
// # Quick Start
//
//	b, err := buffer.FromString("hello", buffer.UTF8)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s, _ := b.Slice(buffer.Base64, buffer.Unset, buffer.Unset)
//	fmt.Println(s) // "aGVsbG8="
//
// # Encodings
//
// ascii, latin1 (binary), utf8, utf16le (ucs2), hex, base64 and base64url.
// Names are case-insensitive.
//
// # Thread Safety
//
// Buffers perform no locking. Views over the same Storage alias each other,
// and concurrent writers to one Storage must be serialized by the caller.
// Reads of distinct buffers are safe to run concurrently.
package bytebuf
