package xarchive

import (
	"compress/gzip"
	"io"
	"os"

	"github.com/snptools/snpkit/pkg/util/xfile"
)

// GzipFile 把 src 文件的字节流压缩为 gzip 容器写入 dest。
//
// 流式拷贝，不把源文件整体读入内存。通过原子替换落盘：dest 要么是完整的
// gzip 流，要么保持原样。成功时返回 dest。不创建 dest 的父目录。
func GzipFile(src, dest string) (string, error) {
	if src == "" || dest == "" {
		return "", ErrEmptyPath
	}

	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	err = xfile.AtomicWriteFile(dest, func(w io.Writer) error {
		gw := gzip.NewWriter(w)
		if _, err := io.Copy(gw, in); err != nil {
			return err
		}
		// Close 写出 gzip footer（CRC32 与长度），必须在 rename 之前完成。
		return gw.Close()
	})
	if err != nil {
		return "", err
	}
	return dest, nil
}
