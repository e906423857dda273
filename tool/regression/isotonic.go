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
	cmd := &isotonic{}
	flags := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.session.Register(flags)
	flags.StringVar(&cmd.master, "m", sparkml.DefaultMaster, "spark master")
	flags.StringVar(&cmd.appName, "a", sparkml.DefaultAppName, "application name")
	flags.StringVar(&cmd.data, "d", "", "training tuples: label,feature[,weight];...")
	flags.BoolVar(&cmd.antitonic, "antitonic", false, "fit the decreasing sequence")
	flags.StringVar(&cmd.features, "x", "", "features to predict, separated by comma")
	flags.StringVar(&cmd.savePath, "o", "", "path saving the model")

	cmd.flags = flags

	command.RegisterCommand(cmd)
}

type isotonic struct {
	session   command.SessionFlags
	master    string
	appName   string
	data      string
	antitonic bool
	features  string
	savePath  string

	flags *flag.FlagSet
}

func (c *isotonic) Name() string {
	return "isotonic"
}

func (c *isotonic) Desc() string {
	return "train the isotonic regression model"
}

func (c *isotonic) Run(args []string) {
	if err := c.flags.Parse(args); err != nil {
		return
	}

	tuples, err := parseTuples(c.data)
	if err != nil {
		fmt.Printf("bad data:%v\n", err)
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

	input, err := sc.Parallelize(tuples)
	if err != nil {
		fmt.Printf("Error:%v\n", err)
		return
	}

	r, err := regression.New(s)
	if err != nil {
		fmt.Printf("Error:%v\n", err)
		return
	}

	if c.antitonic {
		if r, err = r.SetIsotonic(false); err != nil {
			fmt.Printf("Error:%v\n", err)
			return
		}
	}

	model, err := r.Run(input)
	if err != nil {
		fmt.Printf("Error:%v\n", err)
		return
	}

	printModel(model)

	for _, x := range features {
		y, err := model.PredictValue(x)
		fmt.Printf("predict(%g)=%g, err:%v\n", x, y, err)
	}

	if c.savePath != "" {
		err = model.Save(sc, c.savePath)
		fmt.Printf("save model to %s, err:%v\n", c.savePath, err)
	}
}

func (c *isotonic) Usage() {
	c.flags.Usage()
}

func printModel(model *regression.IsotonicRegressionModel) {
	fmt.Printf("model:%s\n", model.RefID())

	iso, err := model.Isotonic()
	fmt.Printf("isotonic:%t, err:%v\n", iso, err)

	boundaries, err := model.Boundaries()
	fmt.Printf("boundaries:%v, err:%v\n", boundaries, err)

	predictions, err := model.Predictions()
	fmt.Printf("predictions:%v, err:%v\n", predictions, err)
}
