package xsingleton

import "errors"

var (
	// ErrNilConstructor 表示 GetOrCreate 收到 nil 构造函数。
	ErrNilConstructor = errors.New("xsingleton: constructor is required")
)
