package kernel

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// RefID identifies a value living in the kernel, it is the name of the kernel variable
// holding the value
type RefID string

// RefID returns itself, so a bare reference can be embedded like a proxy
func (id RefID) RefID() RefID {
	return id
}

func (id RefID) String() string {
	return string(id)
}

// Referencer is implemented by everything standing for a value in the kernel
type Referencer interface {
	RefID() RefID
}

// RefGenerator generates a fresh reference id for every call
type RefGenerator func() RefID

// UUIDRefs generates the references like "ref_7d444840a7b9444e8b81e2bd4bd68c2a"
func UUIDRefs() RefGenerator {
	return func() RefID {
		return RefID("ref_" + strings.Replace(uuid.New().String(), "-", "", -1))
	}
}

// SequentialRefs generates the references prefix1, prefix2, ...
func SequentialRefs(prefix string) RefGenerator {
	var n int64
	return func() RefID {
		return RefID(prefix + strconv.FormatInt(atomic.AddInt64(&n, 1), 10))
	}
}
