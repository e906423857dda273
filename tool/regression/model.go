package regression

import (
	"flag"
	"fmt"

	"github.com/zjykzk/sparkml-client-go"
	"github.com/zjykzk/sparkml-client-go/mllib/regression"
	"github.com/zjykzk/sparkml-client-go/spark"
	"github.com/zjykzk/sparkml-client-go/tool/command"
)

func init() {
	cmd := &loadModel{}
	flags := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.session.Register(flags)
	flags.StringVar(&cmd.master, "m", sparkml.DefaultMaster, "spark master")
	flags.StringVar(&cmd.appName, "a", sparkml.DefaultAppName, "application name")
	flags.StringVar(&cmd.path, "p", "", "path of the saved model")
	flags.StringVar(&cmd.features, "x", "", "features to predict, separated by comma")
	flags.BoolVar(&cmd.json, "json", false, "print the model in json")

	cmd.flags = flags

	command.RegisterCommand(cmd)
}

type loadModel struct {
	session  command.SessionFlags
	master   string
	appName  string
	path     string
	features string
	json     bool

	flags *flag.FlagSet
}

func (c *loadModel) Name() string {
	return "model"
}

func (c *loadModel) Desc() string {
	return "load the saved isotonic regression model"
}

func (c *loadModel) Run(args []string) {
	if err := c.flags.Parse(args); err != nil {
		return
	}

	if len(c.path) == 0 {
		fmt.Println("empty path: [" + c.path + "]")
		c.Usage()
		return
	}

	features, err := parseFeatures(c.features)
	if err != nil {
		fmt.Printf("bad features:%v\n", err)
		c.Usage()
		return
	}

	s, err := c.session.StartSession()
	if err != nil {
		fmt.Printf("Error:%v\n", err)
		return
	}
	defer s.Shutdown()

	sc, err := spark.NewContext(s, c.master, c.appName)
	if err != nil {
		fmt.Printf("Error:%v\n", err)
		return
	}
	defer sc.Stop()

	model, err := regression.LoadModel(sc, c.path)
	if err != nil {
		fmt.Printf("Error:%v\n", err)
		return
	}

	if c.json {
		js, err := model.JSON()
		fmt.Printf("%s, err:%v\n", js, err)
	} else {
		printModel(model)
	}

	for _, x := range features {
		y, err := model.PredictValue(x)
		fmt.Printf("predict(%g)=%g, err:%v\n", x, y, err)
	}
}

func (c *loadModel) Usage() {
	c.flags.Usage()
}
