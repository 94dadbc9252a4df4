// Package tabular 提供表格数据序列化相关的子包。
//
// 子包列表：
//   - xcsv: 表格数据的分隔文本写入器，支持注释头、溯源信息、原子替换落盘
//
// 设计原则：
//   - 数据集按引用传入，本包只读不改
//   - 目标建模为显式的带标签变体（路径 / 流），不做运行时类型探测
//   - 写文件遵循模块统一的原子替换约定（见 pkg/util/xfile）
package tabular
