package xstr

import "regexp"

// nonWordOrLeadingDigit 匹配非单词字符，或处于字符串首位的数字。
// \W 等价于 [^0-9A-Za-z_]，因此替换结果只含字母、数字、下划线。
var nonWordOrLeadingDigit = regexp.MustCompile(`\W|^\d`)

// CleanVarName 将 s 清洗为可用作变量名的字符串。
//
// 规则：
//   - 每个非单词字符替换为 "_"
//   - 首字符若为数字，同样替换为 "_"
//
// 逐字节替换，输出与输入长度相同（按 rune 计）。纯函数，永不失败。
func CleanVarName(s string) string {
	return nonWordOrLeadingDigit.ReplaceAllString(s, "_")
}
