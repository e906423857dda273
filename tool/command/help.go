package command

type helper struct{}

func (h *helper) Name() string {
	return "help"
}

func (h *helper) Desc() string {
	return "print the usage of the command"
}

func (h *helper) Run(args []string) {
	if len(args) == 0 {
		printUsage()
		return
	}

	cmd := commands[args[0]]
	if cmd == nil {
		printUsage()
		return
	}
	cmd.Usage()
}

func (h *helper) Usage() {}

func init() {
	RegisterCommand(&helper{})
}
