package xcsv

import "errors"

var (
	// ErrNilDestination 表示写入目标为 nil。
	ErrNilDestination = errors.New("xcsv: destination is required")

	// ErrEmptyFilename 表示路径目标的文件名为空。
	ErrEmptyFilename = errors.New("xcsv: filename is required")

	// ErrNilStream 表示流目标的底层流为 nil。
	ErrNilStream = errors.New("xcsv: stream is required")
)
