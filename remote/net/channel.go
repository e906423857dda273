package net

import (
	"bufio"
	"io"
	"net"
	"sync/atomic"
	"time"

	"github.com/zjykzk/sparkml-client-go/log"
)

const defaultReadBufferSize = 64 * 1024

const (
	// StateDisconnected disconnected status
	StateDisconnected int32 = iota
	// StateConnected connected status
	StateConnected
	// StateClosing closing status
	StateClosing
)

// Handler event handler
type Handler interface {
	OnActive(ctx *ChannelContext)
	OnDeactive(ctx *ChannelContext)
	OnClose(ctx *ChannelContext)
	OnError(ctx *ChannelContext, err error)
	OnMessage(ctx *ChannelContext, m interface{})
}

// Config contains channel's configuration
type Config struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	DialTimeout  time.Duration
}

// ChannelContext channel's context
type ChannelContext struct {
	Address string
	Conn    net.Conn
}

func (ctx *ChannelContext) String() string {
	if ctx == nil || ctx.Conn == nil {
		return "[nil]"
	}
	return "[" + ctx.Conn.LocalAddr().String() + "->" + ctx.Conn.RemoteAddr().String() + "]"
}

type channel struct {
	*Config
	Encoder
	Decoder
	Handler
	PacketReader

	exitChan chan struct{}

	ctx ChannelContext

	state int32

	logger log.Logger
}

func newChannel(addr string,
	encoder Encoder,
	packetReader PacketReader,
	decoder Decoder,
	handler Handler,
	config *Config,
	logger log.Logger,
) (*channel, error) {
	if encoder == nil || decoder == nil || handler == nil || packetReader == nil {
		return nil, errBadParams
	}

	conn, err := net.DialTimeout("tcp", addr, config.DialTimeout)
	if err != nil {
		return nil, err
	}

	ch := &channel{
		Config:       config,
		Encoder:      encoder,
		Decoder:      decoder,
		Handler:      handler,
		PacketReader: packetReader,

		exitChan: make(chan struct{}),

		ctx:   ChannelContext{Address: addr, Conn: conn},
		state: StateConnected,

		logger: logger,
	}
	ch.OnActive(&ch.ctx)
	go ch.ioloop()
	return ch, nil
}

func (c *channel) ioloop() {
	var (
		zeroTime time.Time
		err      error
		d        []byte
		o        interface{}
	)
	r := bufio.NewReaderSize(c.ctx.Conn, defaultReadBufferSize)
	for {
		if atomic.LoadInt32(&c.state) != StateConnected {
			break
		}

		if c.ReadTimeout > 0 {
			c.ctx.Conn.SetReadDeadline(time.Now().Add(c.ReadTimeout))
		} else {
			c.ctx.Conn.SetReadDeadline(zeroTime)
		}

		d, err = c.Read(r)
		if err == ErrNeedContent {
			c.logger.Warnf("read not enough content:%s", err)
			continue
		}

		if err != nil {
			c.logger.Errorf("read error:%s exit loop", err)
			break
		}

		// responses only complete futures, no need to hand them off to another goroutine
		o, err = c.Decode(d)
		if err != nil {
			c.logger.Errorf("decode error:%s exit loop", err)
			break
		}
		c.OnMessage(&c.ctx, o)
	}

	if !c.close() { // closed by others
		return
	}

	if err == io.EOF {
		c.OnDeactive(&c.ctx)
	} else {
		c.OnError(&c.ctx, err)
	}
}

// SendSync send data sync
func (c *channel) SendSync(data interface{}) error {
	bs, err := c.Encode(data)
	if err != nil {
		return err
	}

	if c.WriteTimeout > 0 {
		c.ctx.Conn.SetWriteDeadline(time.Now().Add(c.WriteTimeout))
	} else {
		c.ctx.Conn.SetWriteDeadline(time.Time{})
	}

	if _, err := c.ctx.Conn.Write(bs); err != nil {
		c.logger.Errorf("SendSync write error:%v", err)
		if c.close() {
			c.OnError(&c.ctx, err)
		}
		return err
	}
	return nil
}

func (c *channel) getState() int32 {
	return atomic.LoadInt32(&c.state)
}

// close returns true if this call closes the connection
func (c *channel) close() bool {
	if !atomic.CompareAndSwapInt32(&c.state, StateConnected, StateClosing) {
		return false
	}

	c.ctx.Conn.Close()
	close(c.exitChan)
	return true
}
