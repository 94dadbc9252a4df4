// Package xstr 提供字符串清洗工具。
//
// [CleanVarName] 将任意字符串改写为可用作变量名的形式：所有非单词字符
// （除字母、数字、下划线以外的字符）以及处于首位的数字都被替换为下划线。
//
// 这是一个全函数：任何输入都有确定输出，不做 I/O，永不失败。典型用途是把
// 基因型数据源中的列名、样本 ID 等外部字符串变成安全的标识符：
//
//	xstr.CleanVarName("1st place!") // "_st_place_"
//	xstr.CleanVarName("rsid#1")     // "rsid_1"
package xstr
