package xfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DefaultFilePerm 默认文件权限（所有者读写，组只读）。
const DefaultFilePerm = 0640

// AtomicWriteFile 以原子替换方式写入 path。
//
// 流程：在 path 所在目录内创建带唯一后缀的临时文件，调用 write 写入内容，
// 关闭后 rename 到 path。rename 在同一文件系统上是原子的，因此并发读者
// 要么看到旧内容（或无文件），要么看到完整的新内容，永远不会看到半成品。
//
// 任一步骤失败时临时文件会被清理，path 保持原样。
//
// 本函数不创建 path 的父目录，目录不存在时错误原样传播；需要时调用方应
// 先调用 [CreateDir]。
func AtomicWriteFile(path string, write func(w io.Writer) error) error {
	if path == "" {
		return ErrEmptyPath
	}
	if write == nil {
		return ErrNilWriteFunc
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)
	// 临时文件名带 uuid 后缀，避免并发写同一目标时互相覆盖。
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.NewString()))

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, DefaultFilePerm)
	if err != nil {
		return err
	}

	if err := write(f); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
