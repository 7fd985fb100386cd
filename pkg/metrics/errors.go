package metrics

import (
	"errors"
)

// ErrServerFailed metrics HTTP 服务异常退出
var ErrServerFailed = errors.New("metrics server failed")
