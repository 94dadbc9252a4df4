package xarchive

import "errors"

var (
	// ErrEmptyPath 表示必需的路径参数为空。
	ErrEmptyPath = errors.New("xarchive: path is required")

	// ErrEmptyArcName 表示 zip 归档内条目名为空。
	ErrEmptyArcName = errors.New("xarchive: archive entry name is required")
)
