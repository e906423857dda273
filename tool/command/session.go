package command

import (
	"flag"
	"os"
	"time"

	"github.com/zjykzk/sparkml-client-go"
	"github.com/zjykzk/sparkml-client-go/kernel"
	"github.com/zjykzk/sparkml-client-go/log"
)

// SessionFlags the flags connecting to the kernel, shared by the commands
type SessionFlags struct {
	Addr     string
	Timeout  time.Duration
	LogLevel string
}

// Register registers the flags in the flag set
func (f *SessionFlags) Register(flags *flag.FlagSet) {
	flags.StringVar(&f.Addr, "k", sparkml.DefaultKernelAddr, "kernel address")
	flags.DurationVar(&f.Timeout, "timeout", sparkml.DefaultRequestTimeout, "request timeout")
	flags.StringVar(&f.LogLevel, "l", "warn", "log level")
}

// StartSession creates and starts the session, the caller shutdowns it
func (f *SessionFlags) StartSession() (*kernel.Session, error) {
	s := kernel.NewSession(kernel.Config{
		Addr:           f.Addr,
		RequestTimeout: f.Timeout,
	}, log.New(os.Stderr, f.LogLevel))

	if err := s.Start(); err != nil {
		return nil, err
	}
	return s, nil
}
