package remote

import (
	"time"

	"github.com/zjykzk/sparkml-client-go/log"
	"github.com/zjykzk/sparkml-client-go/remote/net"
)

// Client exchange the command with the kernel
type Client interface {
	RequestSync(addr string, cmd *Command, timeout time.Duration) (*Command, error)
	Start() error
	Shutdown()
}

// ClientConfig the configuration of the client
type ClientConfig struct {
	net.Config
	// the body longer than it is compressed, no compression if it is not positive
	CompressThreshold int
}

type client struct {
	client            *net.Client
	compressThreshold int
	logger            log.Logger
}

// NewClient create the client
func NewClient(conf ClientConfig, logger log.Logger) Client {
	c := &client{compressThreshold: conf.CompressThreshold, logger: logger}
	netConf := conf.Config
	c.client = net.NewClient(
		net.EncoderFunc(encodeCommand),
		net.PacketReaderFunc(ReadPacket),
		net.DecoderFunc(decodeCommand),
		&netConf,
		logger,
	)
	c.client.RequestProcessor = c.processRequest
	return c
}

func encodeCommand(o interface{}) ([]byte, error) {
	return Encode(o.(*Command))
}

func decodeCommand(d []byte) (interface{}, error) {
	cmd, err := Decode(d)
	if err != nil {
		return nil, err
	}
	return cmd, nil
}

// RequestSync request the command sync
func (c *client) RequestSync(addr string, cmd *Command, timeout time.Duration) (
	*Command, error,
) {
	if err := cmd.compress(c.compressThreshold); err != nil {
		return nil, err
	}

	resp, err := c.client.RequestSync(addr, cmd, timeout)
	if err != nil {
		return nil, err
	}
	r, ok := resp.(*Command)
	if !ok || r == nil {
		return nil, errNoResponse
	}
	return r, nil
}

// the kernel does not push requests, drop them
func (c *client) processRequest(ctx *net.ChannelContext, resp net.Response) bool {
	cmd := resp.(*Command)
	if cmd.IsResponseType() {
		return false
	}
	c.logger.Warnf("drop the request from the kernel %s: %s", ctx, cmd)
	return true
}

// Start start the client
func (c *client) Start() error {
	c.client.Start()
	return nil
}

// Shutdown shutdown the client
func (c *client) Shutdown() {
	c.client.Shutdown()
}
