package sparkml

import "time"

// predefined const
const (
	DefaultKernelAddr = "localhost:8788"
	DefaultMaster     = "local[*]"
	DefaultAppName    = "sparkml-client-go"

	DefaultRequestTimeout    = 30 * time.Second
	DefaultDialTimeout       = 3 * time.Second
	DefaultCompressThreshold = 4 * 1024
)
