package kernel

import (
	"flag"
	"fmt"
	"time"

	"github.com/zjykzk/sparkml-client-go/tool/command"
)

func init() {
	cmd := &ping{}
	flags := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.session.Register(flags)
	flags.IntVar(&cmd.count, "c", 1, "the count of ping")

	cmd.flags = flags

	command.RegisterCommand(cmd)
}

type ping struct {
	session command.SessionFlags
	count   int

	flags *flag.FlagSet
}

func (p *ping) Name() string {
	return "ping"
}

func (p *ping) Desc() string {
	return "check the kernel is alive"
}

func (p *ping) Run(args []string) {
	if err := p.flags.Parse(args); err != nil {
		return
	}

	if len(p.session.Addr) == 0 {
		fmt.Println("empty kernel: [" + p.session.Addr + "]")
		p.Usage()
		return
	}

	if p.count <= 0 {
		p.count = 1
	}

	s, err := p.session.StartSession()
	if err != nil {
		fmt.Printf("Error:%v\n", err)
		return
	}
	defer s.Shutdown()

	for i := 0; i < p.count; i++ {
		start := time.Now()
		err := s.Ping()
		fmt.Printf("ping %s, cost:%s, err:%v\n", s.Addr(), time.Since(start), err)
	}
}

func (p *ping) Usage() {
	p.flags.Usage()
}
