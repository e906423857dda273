package command

import (
	"fmt"
	"sort"

	"github.com/zjykzk/sparkml-client-go/log"
)

type command interface {
	Name() string
	Desc() string
	Run(args []string)
	Usage()
}

var (
	commands = make(map[string]command, 8)
)

// RegisterCommand register the command in the tool
func RegisterCommand(cmd command) {
	name := cmd.Name()
	old := commands[name]
	if old != nil {
		log.Std.Warnf("%s exist, %v", name, old)
	}

	commands[name] = cmd
}

func printUsage() {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)

	fmt.Println("usage: sparkml <command> [flags]")
	for _, n := range names {
		fmt.Printf("  %-12s %s\n", n, commands[n].Desc())
	}
}

// Run run the command
func Run(args []string) {
	if len(args) < 1 {
		printUsage()
		return
	}
	cmdName := args[0]
	cmd := commands[cmdName]
	if cmd == nil {
		printUsage()
		return
	}

	cmd.Run(args[1:])
}
