// Package xarchive 提供单文件压缩工具。
//
// 两个入口，语义对称：
//
//   - [ZipFile]: 把源文件打包为只含一个条目的 zip 归档，条目名由调用方指定，
//     与源文件磁盘名无关。
//   - [GzipFile]: 把源文件的字节流压缩为 gzip 容器。
//
// 两者都通过原子替换（写临时文件再 rename，见 pkg/util/xfile）落盘：并发读者
// 永远不会看到写了一半的归档。
//
// 本包不创建目标目录——目标目录不存在属于调用方错误，底层文件系统错误原样
// 传播。源文件不可读、目标不可写同样原样传播，不重试。
package xarchive
