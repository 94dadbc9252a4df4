// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xarchive: 单文件 zip/gzip 压缩，原子替换落盘
//   - xfile: 文件系统工具，目录创建、原子写入
//   - xparallel: 可选并行的任务分发器，顺序惰性 / 有界并发两种策略
//   - xsingleton: 进程级单例注册表，按类型标识先写者胜
//   - xstr: 字符串清洗，任意字符串改写为合法标识符
//   - xtime: UTC 时间获取与统一格式化
//
// 设计原则：
//   - 每个子包独立成件，互不依赖（唯一例外：写文件组件共享 xfile 的
//     原子替换约定）
//   - 失败原样传播，不重试不吞错
//   - 跨平台兼容
package util
