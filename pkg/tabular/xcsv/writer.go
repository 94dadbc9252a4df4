package xcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/snptools/snpkit/internal/buildinfo"
	"github.com/snptools/snpkit/pkg/util/xfile"
	"github.com/snptools/snpkit/pkg/util/xtime"
)

// Write 把数据集序列化到目标。
//
// 成功时返回解析后的目标标识（见 [Destination]）。数据集为空或 nil 时
// 记一条警告日志并返回 ("", nil)——空字符串哨兵，不产生任何文件系统效果，
// 调用方应检查该哨兵。其余失败返回错误，不重试：
//
//   - 路径目标：目录不存在时自动创建（创建失败时错误传播）；默认原子替换
//     落盘，目标路径上永远不会出现写了一半的文件
//   - 流目标：写完后把流定位到起始位置，流不会被关闭
func Write(t *Table, dst Destination, opts ...Option) (string, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}

	if t.Empty() {
		o.logger.Warn("xcsv: no data to save")
		return "", nil
	}

	switch d := dst.(type) {
	case pathDestination:
		return writePath(t, d, &o)
	case streamDestination:
		return writeStream(t, d, &o)
	default:
		return "", ErrNilDestination
	}
}

// header 组装注释头：可选的两行溯源注释 + 调用方注释行。
func header(o *options) string {
	var sb strings.Builder
	if o.prependInfo {
		fmt.Fprintf(&sb, "# Generated by %s v%s, %s\n",
			buildinfo.Name, buildinfo.Version, buildinfo.URL)
		fmt.Fprintf(&sb, "# Generated at %s UTC\n", xtime.FormatUTC(xtime.UTCNow()))
	}
	for _, line := range o.comment {
		sb.WriteString(line)
		if !strings.HasSuffix(line, "\n") {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// writeBody 写出表头行和数据行。参差行的缺失尾部单元格按 NA 表示渲染。
func writeBody(w io.Writer, t *Table, o *options) error {
	cw := csv.NewWriter(w)
	cw.Comma = o.delimiter

	if err := cw.Write(t.Columns); err != nil {
		return err
	}

	record := make([]string, 0, len(t.Columns))
	for _, row := range t.Rows {
		record = record[:0]
		for _, cell := range row {
			if cell.Valid {
				record = append(record, cell.Str)
			} else {
				record = append(record, o.naRep)
			}
		}
		for len(record) < len(t.Columns) {
			record = append(record, o.naRep)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeAll(w io.Writer, t *Table, o *options) error {
	if _, err := io.WriteString(w, header(o)); err != nil {
		return err
	}
	return writeBody(w, t, o)
}

func writePath(t *Table, d pathDestination, o *options) (string, error) {
	if d.filename == "" {
		return "", ErrEmptyFilename
	}

	if _, err := xfile.CreateDir(dirOrDot(d.dir)); err != nil {
		return "", err
	}

	dest := d.String()
	o.logger.Info("xcsv: saving file", slog.String("path", relPath(dest)))

	if o.atomic {
		if err := xfile.AtomicWriteFile(dest, func(w io.Writer) error {
			return writeAll(w, t, o)
		}); err != nil {
			return "", err
		}
		return dest, nil
	}

	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, xfile.DefaultFilePerm)
	if err != nil {
		return "", err
	}
	if err := writeAll(f, t, o); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return dest, nil
}

func writeStream(t *Table, d streamDestination, o *options) (string, error) {
	if d.w == nil {
		return "", ErrNilStream
	}

	if err := writeAll(d.w, t, o); err != nil {
		return "", err
	}
	// 写完重新定位到起始位置，方便调用方直接读取；流不关闭。
	if _, err := d.w.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return d.String(), nil
}

// dirOrDot 空目录归一化为当前工作目录。
func dirOrDot(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}

// relPath 尽力把路径转换为相对当前工作目录的形式（仅用于日志），
// 转换失败时原样返回。
func relPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, abs)
	if err != nil {
		return path
	}
	return rel
}
