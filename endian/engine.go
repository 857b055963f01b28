// Package endian provides byte order utilities for binary encoding and
// decoding.
//
// It extends the standard encoding/binary package by combining ByteOrder and
// AppendByteOrder into a single EndianEngine interface. The row codec's
// payload encoding (package fixedwidth) is always big-endian, since
// order-preserving comparison depends on it, so this package only exposes
// the big-endian engine:
//
//	engine := endian.GetBigEndianEngine()
//	engine.PutUint64(dst, v)
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine. The row codec's
// fixed-width payloads are always big-endian, since order-preserving byte
// comparison depends on it.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
