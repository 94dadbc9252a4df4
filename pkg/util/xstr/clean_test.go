package xstr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanVarName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "首位数字被替换",
			input: "1st place!",
			want:  "_st_place_",
		},
		{
			name:  "已经合法的标识符原样返回",
			input: "valid_name_42",
			want:  "valid_name_42",
		},
		{
			name:  "空字符串",
			input: "",
			want:  "",
		},
		{
			name:  "空格和标点",
			input: "chromosome 1 (GRCh37)",
			want:  "chromosome_1__GRCh37_",
		},
		{
			name:  "非首位数字保留",
			input: "rs12345",
			want:  "rs12345",
		},
		{
			name:  "连字符和点",
			input: "sample-01.vcf",
			want:  "sample_01_vcf",
		},
		{
			name:  "全部非法字符",
			input: "!@#$",
			want:  "____",
		},
		{
			name:  "只有一个数字",
			input: "7",
			want:  "_",
		},
		{
			name:  "下划线开头的数字保留",
			input: "_1abc",
			want:  "_1abc",
		},
		{
			name:  "非 ASCII 字符被替换",
			input: "基因x",
			want:  "__x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanVarName(tt.input))
		})
	}
}

func TestCleanVarNameDeterministic(t *testing.T) {
	// 纯函数：同一输入重复调用结果一致
	in := "Genotype File #2 (23andMe)"
	first := CleanVarName(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, CleanVarName(in))
	}
}
