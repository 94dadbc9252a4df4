package xfile

import (
	"fmt"
	"os"
)

// DefaultDirPerm 默认目录权限
//
// 0750 权限说明：
//   - 所有者：读写执行 (7)
//   - 组：读执行 (5)
//   - 其他：无权限 (0)
//
// 符合 gosec G301 安全建议
const DefaultDirPerm = 0750

// CreateDir 创建 path 指定的目录（含缺失的父目录）。
//
// 幂等：目录已存在时静默成功。返回值报告调用结束后目录是否存在，
// 供调用方在继续写文件前做存在性判断。
//
// 底层文件系统错误（权限不足、path 与已有普通文件冲突等）原样传播，
// 此时第一个返回值为 false。
func CreateDir(path string) (bool, error) {
	return CreateDirWithPerm(path, DefaultDirPerm)
}

// CreateDirWithPerm 创建目录，使用指定权限。
//
// 参数：
//   - path: 目录路径，不能为空
//   - perm: 目录权限，必须包含所有者执行位（0100），否则目录无法遍历
//
// 目录已存在时不会修改其权限。
func CreateDirWithPerm(path string, perm os.FileMode) (bool, error) {
	if path == "" {
		return false, ErrEmptyPath
	}
	// 目录必须包含所有者执行位（0100），否则无法进入和遍历
	if perm&0100 == 0 {
		return false, fmt.Errorf("xfile: directory permission %04o missing owner execute bit", perm)
	}

	if err := os.MkdirAll(path, perm); err != nil {
		return false, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}
	return true, nil
}
