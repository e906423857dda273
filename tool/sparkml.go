package main

import (
	"os"

	"github.com/zjykzk/sparkml-client-go/tool/command"

	_ "github.com/zjykzk/sparkml-client-go/tool/kernel"
	_ "github.com/zjykzk/sparkml-client-go/tool/regression"
)

func main() {
	command.Run(os.Args[1:])
}
