package xstr

import (
	"testing"
	"unicode/utf8"
)

// =============================================================================
// 模糊测试（Fuzz）
//
// 运行方式：go test -fuzz=FuzzCleanVarName -fuzztime=30s
// =============================================================================

// FuzzCleanVarName 验证清洗结果的不变量：
//   - 任意输入不会 panic
//   - 输出只含单词字符（字母、数字、下划线）
//   - 输出首字符不是数字
//   - rune 数量保持不变
func FuzzCleanVarName(f *testing.F) {
	f.Add("1st place!")
	f.Add("")
	f.Add("_")
	f.Add("0")
	f.Add("rs12345")
	f.Add("sample id\t#1")
	f.Add("基因型数据")
	f.Add("\x00\xff")
	f.Add("a b c d e f")
	f.Add("9999999999")

	f.Fuzz(func(t *testing.T, input string) {
		got := CleanVarName(input)

		for i, r := range got {
			isWord := r == '_' ||
				(r >= '0' && r <= '9') ||
				(r >= 'a' && r <= 'z') ||
				(r >= 'A' && r <= 'Z')
			if !isWord {
				t.Errorf("输出含非单词字符 %q (位置 %d)，输入 %q", r, i, input)
			}
			if i == 0 && r >= '0' && r <= '9' {
				t.Errorf("输出以数字开头: %q，输入 %q", got, input)
			}
		}

		if utf8.ValidString(input) && utf8.RuneCountInString(got) != utf8.RuneCountInString(input) {
			t.Errorf("rune 数量改变: %d -> %d，输入 %q",
				utf8.RuneCountInString(input), utf8.RuneCountInString(got), input)
		}
	})
}
