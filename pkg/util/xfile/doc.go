// Package xfile 提供通用文件系统操作工具。
//
// 本包提供两类能力：
//
//   - 目录创建：CreateDir / CreateDirWithPerm 幂等地创建目录（含缺失的父目录），
//     并报告调用后目录是否存在。目录已存在不视为错误。
//   - 原子写入：AtomicWriteFile 先写入同目录下的临时文件，成功后再 rename 到
//     目标路径。其他进程要么看到完整的新文件，要么看到原文件（或无文件），
//     永远不会看到写了一半的文件。
//
// 原子写入是本模块内各写文件组件（pkg/tabular/xcsv、pkg/util/xarchive）共享的
// 约定：rename 在同一文件系统上是原子操作，因此临时文件必须创建在目标路径所在
// 目录内，而不是系统临时目录。
//
// # 错误处理
//
// 预定义错误变量支持 [errors.Is] 判断：
//
//	ok, err := xfile.CreateDir("")
//	if errors.Is(err, xfile.ErrEmptyPath) {
//	    // 处理空路径
//	}
//
// 底层文件系统错误（权限不足、路径与已有文件冲突、磁盘满等）原样向上传播，
// 本包不重试也不吞掉。
package xfile
