package net

import (
	"fmt"
	"time"
)

// responseFuture waitable response
type responseFuture struct {
	response  chan Response
	err       error
	startTime time.Time
	timeout   time.Duration
	id        int64
	ctx       *ChannelContext
}

// get blocks until the response is put or the future fails
func (f *responseFuture) get() (Response, error) {
	r := <-f.response
	return r, f.err
}

func (f *responseFuture) put(resp Response) {
	f.response <- resp
}

func (f *responseFuture) fail(err error) {
	f.err = err
	f.response <- nil
}

func (f *responseFuture) String() string {
	return fmt.Sprintf("id:%d, start:%s, timeout:%s, ctx:%s", f.id, f.startTime, f.timeout, f.ctx)
}

func newFuture(timeout time.Duration, id int64, ctx *ChannelContext) *responseFuture {
	return &responseFuture{
		response:  make(chan Response, 1),
		timeout:   timeout,
		id:        id,
		startTime: time.Now(),
		ctx:       ctx,
	}
}
