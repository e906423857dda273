// Package rdd contains the proxy of the resilient distributed dataset living in the kernel.
package rdd

import (
	"github.com/zjykzk/sparkml-client-go/kernel"
)

// RDD the handle of the distributed dataset in the kernel
type RDD struct {
	session *kernel.Session
	ref     kernel.RefID
}

// Wrap wraps the reference without talking to the kernel
func Wrap(s *kernel.Session, ref kernel.RefID) *RDD {
	return &RDD{session: s, ref: ref}
}

// RefID returns the reference of the dataset
func (r *RDD) RefID() kernel.RefID {
	return r.ref
}

// Session returns the session holding the dataset
func (r *RDD) Session() *kernel.Session {
	return r.session
}

// Count returns the count of the elements
func (r *RDD) Count() (int64, error) {
	var n int64
	err := r.eval("count", &n)
	return n, err
}

// Collect decodes all the elements into v, v must be a pointer to a slice
func (r *RDD) Collect(v interface{}) error {
	return r.eval("collect", v)
}

// Cache persists the dataset in memory, returns the new handle
func (r *RDD) Cache() (*RDD, error) {
	ref, err := r.session.Assign(kernel.Call(r, "cache"))
	if err != nil {
		return nil, err
	}
	return Wrap(r.session, ref), nil
}

func (r *RDD) eval(method string, v interface{}) error {
	return r.session.EvalInto(kernel.Call(r, method), v)
}
