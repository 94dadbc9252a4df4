package xarchive

import (
	"archive/zip"
	"io"
	"os"

	"github.com/snptools/snpkit/pkg/util/xfile"
)

// ZipFile 把 src 文件打包为单条目 zip 归档写入 dest，条目名为 arcname。
//
// 通过原子替换落盘：dest 要么是完整归档，要么保持原样。成功时返回 dest。
// 不创建 dest 的父目录。
func ZipFile(src, dest, arcname string) (string, error) {
	if src == "" || dest == "" {
		return "", ErrEmptyPath
	}
	if arcname == "" {
		return "", ErrEmptyArcName
	}

	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	err = xfile.AtomicWriteFile(dest, func(w io.Writer) error {
		zw := zip.NewWriter(w)
		entry, err := zw.Create(arcname)
		if err != nil {
			return err
		}
		if _, err := io.Copy(entry, in); err != nil {
			return err
		}
		// Close 写出 central directory，必须在 rename 之前完成。
		return zw.Close()
	})
	if err != nil {
		return "", err
	}
	return dest, nil
}
