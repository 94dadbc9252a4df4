package xparallel

import "errors"

var (
	// ErrNilFunc 表示任务函数为 nil。
	ErrNilFunc = errors.New("xparallel: task func is required")
)
