// Package spark contains the proxy of the spark context living in the kernel.
package spark

import (
	"github.com/zjykzk/sparkml-client-go/kernel"
	"github.com/zjykzk/sparkml-client-go/rdd"
)

// Context the handle of the SparkContext in the kernel, it creates the datasets
type Context struct {
	session *kernel.Session
	ref     kernel.RefID
}

// NewContext creates the spark context in the kernel
func NewContext(s *kernel.Session, master, appName string) (*Context, error) {
	ref, err := s.Assign(kernel.NewInstance("SparkContext", master, appName))
	if err != nil {
		return nil, err
	}
	return WrapContext(s, ref), nil
}

// WrapContext wraps the reference without talking to the kernel
func WrapContext(s *kernel.Session, ref kernel.RefID) *Context {
	return &Context{session: s, ref: ref}
}

// RefID returns the reference of the context
func (c *Context) RefID() kernel.RefID {
	return c.ref
}

// Session returns the session holding the context
func (c *Context) Session() *kernel.Session {
	return c.session
}

// Parallelize distributes the values as a dataset, values is a slice of json values
func (c *Context) Parallelize(values interface{}) (*rdd.RDD, error) {
	ref, err := c.session.Assign(kernel.Call(c, "parallelize", values))
	if err != nil {
		return nil, err
	}
	return rdd.Wrap(c.session, ref), nil
}

// TextFile reads the text file as a dataset of lines
func (c *Context) TextFile(path string) (*rdd.RDD, error) {
	ref, err := c.session.Assign(kernel.Call(c, "textFile", path))
	if err != nil {
		return nil, err
	}
	return rdd.Wrap(c.session, ref), nil
}

// Stop stops the context
func (c *Context) Stop() error {
	return c.session.Exec(kernel.Call(c, "stop"))
}
