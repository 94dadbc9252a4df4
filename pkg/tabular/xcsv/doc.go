// Package xcsv 把内存中的表格数据集序列化为带注释头的分隔文本。
//
// 输出格式：零或多行注释（以 "#" 开头，调用方负责加注释标记），可选的两行
// 自动生成的溯源注释（生成者与版本、UTC 生成时间），然后是带表头行的标准
// 分隔表格体。缺失值默认渲染为字面量 "--"。
//
//	# Generated by snpkit v0.1.0, https://github.com/snptools/snpkit
//	# Generated at 2024-03-15 08:30:00 UTC
//	# 调用方自定义注释
//	rsid,chromosome,genotype
//	rs123,1,AA
//	rs456,2,--
//
// # 目标
//
// 写入目标是显式的带标签变体：
//
//   - [Path]: 目录 + 文件名。目录不存在时自动创建；默认原子替换落盘
//     （写临时文件再 rename，见 pkg/util/xfile），可用 [WithAtomic] 关闭
//     （非原子模式写到一半崩溃会留下截断文件，属接受的折衷）。
//   - [Stream]: 调用方持有的已打开流。写完后把流重新定位到起始位置，
//     本包永远不会关闭调用方的流。
//
// # 返回值约定
//
// [Write] 成功时返回解析后的目标标识（路径目标为拼接路径，流目标为
// 固定标识 "<stream>"）；数据集为空或 nil 时记一条警告日志并返回空字符串
// 哨兵（不算错误，不产生任何文件系统效果），调用方应检查该哨兵。
// 其余失败一律返回错误，不重试。
package xcsv
