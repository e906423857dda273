package net

import (
	"sync"
	"time"

	"github.com/zjykzk/sparkml-client-go/log"
)

const timeoutScanInterval = 100 * time.Millisecond

// Request request data
type Request interface {
	ID() int64
}

// Response response data
type Response interface {
	ID() int64
}

// Client exchange the message with server
type Client struct {
	// the processor for the message which is not a response of any request
	// returns true if the message is processed
	RequestProcessor func(*ChannelContext, Response) bool

	chanLocker sync.RWMutex
	channels   map[string]*channel // key: addr

	futureLocker    sync.RWMutex
	responseFutures map[int64]*responseFuture

	decoder      Decoder
	encoder      Encoder
	packetReader PacketReader

	conf *Config

	exitChan chan struct{}
	wg       sync.WaitGroup

	logger log.Logger
}

// NewClient create the client
func NewClient(
	encoder Encoder, packetReader PacketReader, decoder Decoder, conf *Config, logger log.Logger,
) *Client {
	return &Client{
		channels:        make(map[string]*channel),
		responseFutures: make(map[int64]*responseFuture),
		encoder:         encoder,
		decoder:         decoder,
		packetReader:    packetReader,
		conf:            conf,
		logger:          logger,
	}
}

func (c *Client) getChannel(addr string) (*channel, error) {
	c.chanLocker.RLock()
	ch, ok := c.channels[addr]
	c.chanLocker.RUnlock()

	if ok && ch.getState() == StateConnected {
		return ch, nil
	}

	c.chanLocker.Lock()
	defer c.chanLocker.Unlock()

	ch, ok = c.channels[addr]
	if ok && ch.getState() == StateConnected {
		return ch, nil
	}

	c.logger.Infof("new channel to %s", addr)
	ch, err := newChannel(addr, c.encoder, c.packetReader, c.decoder, c, c.conf, c.logger)
	if err != nil {
		return nil, &DialError{Addr: addr, Err: err}
	}
	c.channels[addr] = ch
	return ch, nil
}

// RequestSync sends the request and waits for the response until timeout
func (c *Client) RequestSync(addr string, req Request, timeout time.Duration) (Response, error) {
	if c.exitChan == nil {
		return nil, errNotStarted
	}

	ch, err := c.getChannel(addr)
	if err != nil {
		return nil, err
	}

	id := req.ID()
	future := c.putFuture(timeout, id, &ch.ctx)
	if err := ch.SendSync(req); err != nil {
		c.logger.Errorf("send message [%d] sync error:%v", id, err)
		c.removeFuture(id)
		return nil, err
	}
	c.logger.Debugf("send message [%d] ok, %s", id, addr)
	return future.get()
}

func (c *Client) putFuture(timeout time.Duration, id int64, ctx *ChannelContext) *responseFuture {
	f := newFuture(timeout, id, ctx)
	c.futureLocker.Lock()
	c.responseFutures[id] = f
	c.futureLocker.Unlock()
	return f
}

func (c *Client) removeFuture(id int64) (*responseFuture, bool) {
	c.futureLocker.Lock()
	f, ok := c.responseFutures[id]
	if ok {
		delete(c.responseFutures, id)
	}
	c.futureLocker.Unlock()
	return f, ok
}

// OnActive callback when connected
func (c *Client) OnActive(ctx *ChannelContext) {
	c.logger.Infof("channel active:%s", ctx)
}

// OnDeactive callback when disconnected
func (c *Client) OnDeactive(ctx *ChannelContext) {
	c.logger.Infof("channel deactive:%s", ctx)
	c.clearChan(ctx, errConnDeactive)
}

// OnError callback when errors occurs
func (c *Client) OnError(ctx *ChannelContext, err error) {
	c.logger.Errorf("channel error:%s %s", ctx, err)
	c.clearChan(ctx, err)
}

// OnClose callback when closed
func (c *Client) OnClose(ctx *ChannelContext) {
	c.logger.Info("channel closed " + ctx.String())
	c.clearChan(ctx, errConnClosed)
}

func (c *Client) clearChan(ctx *ChannelContext, err error) {
	c.chanLocker.Lock()
	ch, ok := c.channels[ctx.Address]
	if ok && &ch.ctx == ctx {
		delete(c.channels, ctx.Address)
	}
	c.chanLocker.Unlock()

	removedFutures := c.getFutures(func(f *responseFuture) bool { return f.ctx == ctx })
	c.removeFuturesOnError(removedFutures, err)
}

// OnMessage callback when received message
func (c *Client) OnMessage(ctx *ChannelContext, o interface{}) {
	resp := o.(Response)
	id := resp.ID()
	c.logger.Debugf("receive message [%d] of connection %s", id, ctx)
	if c.RequestProcessor != nil && c.RequestProcessor(ctx, resp) {
		c.logger.Debugf("[%d] processed by the request processor", id)
		return
	}

	f, ok := c.removeFuture(id)
	if !ok {
		c.logger.Errorf("message [%d] LOST: %v", id, o)
		return
	}
	f.put(resp)
}

// Start starts the timeout checker
func (c *Client) Start() {
	c.exitChan = make(chan struct{})
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		ticker := time.NewTicker(timeoutScanInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				removedFutures := c.getFutures(
					func(f *responseFuture) bool { return time.Since(f.startTime) > f.timeout },
				)
				c.removeFuturesOnError(removedFutures, errTimeout)
			case <-c.exitChan:
				return
			}
		}
	}()
}

// thread-safe
func (c *Client) getFutures(filter func(*responseFuture) bool) []*responseFuture {
	var removedFutures []*responseFuture
	c.futureLocker.RLock()
	for _, f := range c.responseFutures {
		if filter(f) {
			removedFutures = append(removedFutures, f)
		}
	}
	c.futureLocker.RUnlock()
	return removedFutures
}

// thread-safe
func (c *Client) removeFuturesOnError(futures []*responseFuture, err error) {
	for _, f := range futures {
		if _, ok := c.removeFuture(f.id); !ok {
			continue
		}

		c.logger.Errorf(
			"message [%d], start %s, now %s, timeout:%s, error:%s",
			f.id, f.startTime, time.Now(), f.timeout, err,
		)
		f.fail(err)
	}
}

// Shutdown closes all the channels, the pending requests fail with connection closed error
func (c *Client) Shutdown() {
	c.logger.Info("shutdown net client")
	if c.exitChan != nil {
		close(c.exitChan)
	}

	c.chanLocker.RLock()
	channels := make([]*channel, 0, len(c.channels))
	for _, ch := range c.channels {
		channels = append(channels, ch)
	}
	c.chanLocker.RUnlock()

	for _, ch := range channels {
		ch.close()
		c.OnClose(&ch.ctx)
	}
	c.wg.Wait()
	c.logger.Info("shutdown net client END")
}
