package kernel

import (
	"time"

	"github.com/zjykzk/sparkml-client-go"
)

// Config the configuration of the session
type Config struct {
	// the address of the kernel, host:port
	Addr string
	// the max duration of waiting for the kernel's reply
	RequestTimeout time.Duration
	DialTimeout    time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	// the statement longer than it is compressed, negative disables the compression
	CompressThreshold int
	// generates the reference id for every submitted statement
	RefGenerator RefGenerator
}

func (c *Config) fillDefaults() {
	if c.Addr == "" {
		c.Addr = sparkml.DefaultKernelAddr
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = sparkml.DefaultRequestTimeout
	}
	if c.DialTimeout <= 0 {
		c.DialTimeout = sparkml.DefaultDialTimeout
	}
	if c.CompressThreshold == 0 {
		c.CompressThreshold = sparkml.DefaultCompressThreshold
	}
	if c.RefGenerator == nil {
		c.RefGenerator = UUIDRefs()
	}
}
