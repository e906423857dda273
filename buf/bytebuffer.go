package buf

import (
	"bytes"
	"encoding/binary"
	"errors"
)

var errShortBuffer = errors.New("short buffer")

// ByteBuffer the buffer reads&writes fixed size integers in the specified byte order
type ByteBuffer struct {
	*bytes.Buffer
	endian binary.ByteOrder
	b      [8]byte
}

// WrapBytes wraps the bytes for reading
func WrapBytes(endian binary.ByteOrder, bs []byte) *ByteBuffer {
	return &ByteBuffer{
		endian: endian,
		Buffer: bytes.NewBuffer(bs),
	}
}

// NewByteBufferWithSize new byte buffer with the initial capacity
func NewByteBufferWithSize(endian binary.ByteOrder, size int) *ByteBuffer {
	return &ByteBuffer{
		Buffer: bytes.NewBuffer(make([]byte, 0, size)),
		endian: endian,
	}
}

// PutBytes put bytes
func (bb *ByteBuffer) PutBytes(v []byte) {
	bb.Write(v)
}

// GetBytes get n bytes, returns error if less than n bytes remain
func (bb *ByteBuffer) GetBytes(n int) ([]byte, error) {
	if n < 0 || bb.Len() < n {
		return nil, errShortBuffer
	}
	return bb.Next(n), nil
}

// PutInt8 put int8
func (bb *ByteBuffer) PutInt8(v int8) {
	bb.WriteByte(byte(v))
}

// GetInt8 get int8
func (bb *ByteBuffer) GetInt8() (int8, error) {
	v, err := bb.ReadByte()
	return int8(v), err
}

// PutInt16 put int16
func (bb *ByteBuffer) PutInt16(v int16) {
	bs := bb.b[:2]
	bb.endian.PutUint16(bs, uint16(v))
	bb.Write(bs)
}

// GetInt16 get int16
func (bb *ByteBuffer) GetInt16() (int16, error) {
	bs, err := bb.GetBytes(2)
	if err != nil {
		return 0, err
	}
	return int16(bb.endian.Uint16(bs)), nil
}

// PutInt32 put int32
func (bb *ByteBuffer) PutInt32(v int32) {
	bs := bb.b[:4]
	bb.endian.PutUint32(bs, uint32(v))
	bb.Write(bs)
}

// GetInt32 get int32
func (bb *ByteBuffer) GetInt32() (int32, error) {
	bs, err := bb.GetBytes(4)
	if err != nil {
		return 0, err
	}
	return int32(bb.endian.Uint32(bs)), nil
}
