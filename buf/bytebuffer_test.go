package buf

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteBuffer(t *testing.T) {
	bb := NewByteBufferWithSize(binary.BigEndian, 16)

	bb.PutBytes([]byte("byte"))
	bb.PutInt8(int8(-8))
	bb.PutInt16(int16(16))
	bb.PutInt32(int32(-32))

	bs, err := bb.GetBytes(4)
	assert.Nil(t, err)
	assert.Equal(t, []byte("byte"), bs)

	i8, err := bb.GetInt8()
	assert.Nil(t, err)
	assert.Equal(t, int8(-8), i8)

	i16, err := bb.GetInt16()
	assert.Nil(t, err)
	assert.Equal(t, int16(16), i16)

	i32, err := bb.GetInt32()
	assert.Nil(t, err)
	assert.Equal(t, int32(-32), i32)

	_, err = bb.GetInt32()
	assert.NotNil(t, err)
}

func TestWrapBytes(t *testing.T) {
	bb := WrapBytes(binary.LittleEndian, []byte{1, 0, 2})
	i16, err := bb.GetInt16()
	assert.Nil(t, err)
	assert.Equal(t, int16(1), i16)

	_, err = bb.GetBytes(2)
	assert.Equal(t, errShortBuffer, err)
}
