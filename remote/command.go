package remote

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"sort"
	"sync/atomic"

	"github.com/klauspost/compress/zlib"

	"github.com/zjykzk/sparkml-client-go/buf"
)

const (
	// ProtoJSON json header codec
	ProtoJSON = iota
	// ProtoBinary binary header codec
	ProtoBinary
)

const (
	responseType   = 1
	compressedFlag = 1 << 1
	commandVersion = 1

	maxPacketSize = 64 << 20
)

var (
	errHeaderLength = errors.New("header length error")
	errPacketSize   = errors.New("packet too large")
	errNoResponse   = errors.New("no response")
)

var opaque int32

// Command remoting command
type Command struct {
	Code      Code              `json:"code"`
	Language  LanguageCode      `json:"language"`
	Version   int16             `json:"version"`
	Opaque    int32             `json:"opaque"`
	Flag      int32             `json:"flag"`
	Remark    string            `json:"remark"`
	ExtFields map[string]string `json:"extFields"`
	Body      []byte            `json:"-"`
}

// HeaderOfMapper converts header to map
type HeaderOfMapper interface {
	ToMap() map[string]string
}

func nextOpaque() int32 {
	return atomic.AddInt32(&opaque, 1)
}

// ID returns the request ID
func (cmd *Command) ID() int64 {
	return int64(cmd.Opaque)
}

// IsResponseType returns true if the command is the response of some request
func (cmd *Command) IsResponseType() bool {
	return cmd.Flag&responseType == responseType
}

func (cmd *Command) markResponseType() {
	cmd.Flag |= responseType
}

// IsCompressed returns true if the body is compressed
func (cmd *Command) IsCompressed() bool {
	return cmd.Flag&compressedFlag == compressedFlag
}

// NewCommand create command with empty body
func NewCommand(code Code, header HeaderOfMapper) *Command {
	return NewCommandWithBody(code, header, nil)
}

// NewCommandWithBody with body
func NewCommandWithBody(code Code, header HeaderOfMapper, body []byte) *Command {
	cmd := &Command{
		Code:     code,
		Opaque:   nextOpaque(),
		Language: gO,
		Version:  commandVersion,
		Body:     body,
	}

	if header != nil {
		cmd.ExtFields = header.ToMap()
	}
	return cmd
}

// NewResponse create the response of the request
func NewResponse(req *Command, code Code, remark string, body []byte) *Command {
	cmd := &Command{
		Code:     code,
		Opaque:   req.Opaque,
		Language: req.Language,
		Version:  req.Version,
		Remark:   remark,
		Body:     body,
	}
	cmd.markResponseType()
	return cmd
}

func (cmd *Command) String() string {
	return fmt.Sprintf("code=%d,language=%s,opaque=%d,flag=%d,remark=%s,extFields=%v,body=%s",
		cmd.Code, cmd.Language, cmd.Opaque, cmd.Flag, cmd.Remark, cmd.ExtFields, cmd.Body)
}

// compress the body with zlib if it is longer than the threshold
func (cmd *Command) compress(threshold int) error {
	if threshold <= 0 || len(cmd.Body) <= threshold || cmd.IsCompressed() {
		return nil
	}

	var b bytes.Buffer
	w := zlib.NewWriter(&b)
	if _, err := w.Write(cmd.Body); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	cmd.Body = b.Bytes()
	cmd.Flag |= compressedFlag
	return nil
}

func (cmd *Command) uncompress() error {
	if !cmd.IsCompressed() {
		return nil
	}

	z, err := zlib.NewReader(bytes.NewReader(cmd.Body))
	if err != nil {
		return err
	}
	defer z.Close()

	body, err := ioutil.ReadAll(z)
	if err != nil {
		return err
	}

	cmd.Body = body
	cmd.Flag &^= compressedFlag
	return nil
}

// Encode encode the command in the binary header protocol
func Encode(cmd *Command) ([]byte, error) {
	extFieldsBytes := serializeExtFields(cmd.ExtFields)
	remarkBytes := []byte(cmd.Remark)

	sz := 4 + 4 + 2 + 1 + 2 + 4 + 4 + 4 + len(remarkBytes) + 4 + len(extFieldsBytes) + len(cmd.Body)
	bb := buf.NewByteBufferWithSize(binary.BigEndian, sz)
	bb.PutInt32(int32(0)) // total length
	bb.PutInt32(int32(0)) // header length
	bb.PutInt16(cmd.Code.ToInt16())
	bb.PutInt8(cmd.Language.ToInt8())
	bb.PutInt16(cmd.Version)
	bb.PutInt32(cmd.Opaque)
	bb.PutInt32(cmd.Flag)
	bb.PutInt32(int32(len(remarkBytes)))
	bb.PutBytes(remarkBytes)
	bb.PutInt32(int32(len(extFieldsBytes)))
	bb.PutBytes(extFieldsBytes)

	headerLen := bb.Len() - 8 // 4 total len + 4 header len
	bb.PutBytes(cmd.Body)

	ret := bb.Bytes()
	binary.BigEndian.PutUint32(ret, uint32(len(ret)-4))
	binary.BigEndian.PutUint32(ret[4:], uint32(headerLen&0xFFFFFF|(ProtoBinary<<24))) // proto[1 byte]|header len[3 bytes]
	return ret, nil
}

// ReadPacket read one packet without the total length
func ReadPacket(r io.Reader) ([]byte, error) {
	var totalLen int32
	err := binary.Read(r, binary.BigEndian, &totalLen)
	if err != nil {
		return nil, err
	}

	if totalLen < 4 || totalLen > maxPacketSize {
		return nil, errPacketSize
	}

	buf := make([]byte, totalLen)
	_, err = io.ReadFull(r, buf)
	if err != nil {
		return nil, err
	}

	return buf, nil
}

// Decode decode the packet read by ReadPacket, the compressed body is uncompressed
func Decode(packet []byte) (*Command, error) {
	if len(packet) < 4 {
		return nil, errHeaderLength
	}

	totalLen, headerLen := int32(len(packet)), int32(binary.BigEndian.Uint32(packet))
	proto := headerLen >> 24
	headerLen = headerLen & 0xFFFFFF

	if totalLen < headerLen+4 {
		return nil, errHeaderLength
	}

	var (
		cmd *Command
		err error
	)
	switch proto {
	case ProtoJSON:
		cmd, err = fromJSONProto(packet[4 : headerLen+4])
	case ProtoBinary:
		cmd, err = fromBinaryProto(packet[4 : headerLen+4])
	default:
		return nil, fmt.Errorf("unknown protocol type:%d", proto)
	}
	if err != nil {
		return nil, err
	}

	if body := packet[headerLen+4:]; len(body) > 0 {
		cmd.Body = body
	}
	if err = cmd.uncompress(); err != nil {
		return nil, err
	}
	return cmd, nil
}

func fromJSONProto(header []byte) (*Command, error) {
	cmd := &Command{}
	err := json.Unmarshal(header, cmd)
	return cmd, err
}

func fromBinaryProto(header []byte) (*Command, error) {
	bb := buf.WrapBytes(binary.BigEndian, header)
	cmd := &Command{}

	code, err := bb.GetInt16()
	if err != nil {
		return nil, err
	}
	cmd.Code = Int16ToCode(code)

	lc, err := bb.GetInt8()
	if err != nil {
		return nil, err
	}
	cmd.Language = int8ToLanguageCode(lc)

	if cmd.Version, err = bb.GetInt16(); err != nil {
		return nil, err
	}
	if cmd.Opaque, err = bb.GetInt32(); err != nil {
		return nil, err
	}
	if cmd.Flag, err = bb.GetInt32(); err != nil {
		return nil, err
	}

	remark, err := getSizedBytes(bb)
	if err != nil {
		return nil, err
	}
	cmd.Remark = string(remark)

	extFields, err := getSizedBytes(bb)
	if err != nil {
		return nil, err
	}
	if cmd.ExtFields, err = deserializeExtFields(extFields); err != nil {
		return nil, err
	}
	return cmd, nil
}

func getSizedBytes(bb *buf.ByteBuffer) ([]byte, error) {
	l, err := bb.GetInt32()
	if err != nil {
		return nil, err
	}
	if l < 0 {
		return nil, errHeaderLength
	}
	return bb.GetBytes(int(l))
}

// keys are sorted, so the same fields always encode to the same bytes
func serializeExtFields(extFields map[string]string) []byte {
	if len(extFields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(extFields))
	sz := 0
	for k, v := range extFields {
		keys = append(keys, k)
		sz += 2 + len(k) + 4 + len(v)
	}
	sort.Strings(keys)

	bb := buf.NewByteBufferWithSize(binary.BigEndian, sz)
	for _, k := range keys {
		v := extFields[k]
		bb.PutInt16(int16(len(k)))
		bb.PutBytes([]byte(k))
		bb.PutInt32(int32(len(v)))
		bb.PutBytes([]byte(v))
	}
	return bb.Bytes()
}

func deserializeExtFields(data []byte) (map[string]string, error) {
	if len(data) == 0 {
		return nil, nil
	}

	fields := make(map[string]string)
	bb := buf.WrapBytes(binary.BigEndian, data)
	for bb.Len() > 0 {
		kl, err := bb.GetInt16()
		if err != nil {
			return nil, err
		}
		k, err := bb.GetBytes(int(kl))
		if err != nil {
			return nil, err
		}
		v, err := getSizedBytes(bb)
		if err != nil {
			return nil, err
		}
		fields[string(k)] = string(v)
	}
	return fields, nil
}
