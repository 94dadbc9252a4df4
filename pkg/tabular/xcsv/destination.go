package xcsv

import (
	"io"
	"path/filepath"
)

// Destination 是写入目标的带标签变体，只有 [Path] 和 [Stream] 两种实现
// （接口被密封，包外不可实现）。
type Destination interface {
	// String 返回解析后的目标标识：路径目标为拼接路径，流目标为 "<stream>"。
	String() string

	sealed()
}

// =============================================================================
// 路径目标
// =============================================================================

type pathDestination struct {
	dir      string
	filename string
}

// Path 构造路径目标：文件写入 dir 下的 filename。
// dir 为空表示当前工作目录。目录不存在时由 [Write] 创建。
func Path(dir, filename string) Destination {
	return pathDestination{dir: dir, filename: filename}
}

func (d pathDestination) String() string {
	return filepath.Join(d.dir, d.filename)
}

func (pathDestination) sealed() {}

// =============================================================================
// 流目标
// =============================================================================

// streamIdentifier 流目标的固定标识。流目标没有路径概念，
// Write 的返回值用此常量与空字符串哨兵区分"写入成功"与"空输入跳过"。
const streamIdentifier = "<stream>"

type streamDestination struct {
	w io.WriteSeeker
}

// Stream 构造流目标：内容写入 w 后把 w 重新定位到起始位置。
// w 由调用方持有并负责关闭，本包永远不会关闭它。
func Stream(w io.WriteSeeker) Destination {
	return streamDestination{w: w}
}

func (streamDestination) String() string {
	return streamIdentifier
}

func (streamDestination) sealed() {}

// 编译期接口检查。
var (
	_ Destination = pathDestination{}
	_ Destination = streamDestination{}
)
