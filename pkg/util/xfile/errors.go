package xfile

import "errors"

var (
	// ErrEmptyPath 表示必需的路径参数为空。
	ErrEmptyPath = errors.New("xfile: path is required")

	// ErrNilWriteFunc 表示 AtomicWriteFile 的写入回调为 nil。
	ErrNilWriteFunc = errors.New("xfile: write func is required")

	// ErrNotDirectory 表示路径存在但不是目录（与已有文件冲突）。
	ErrNotDirectory = errors.New("xfile: path exists but is not a directory")
)
