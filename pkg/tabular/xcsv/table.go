package xcsv

// Value 是表格中的一个单元格。
// 零值表示缺失（写出时渲染为 NA 表示，默认 "--"），与空字符串值区分：
// 空字符串是 Valid 为 true、Str 为 "" 的合法值。
type Value struct {
	Str   string
	Valid bool
}

// String 构造一个有效的单元格值。
func String(s string) Value {
	return Value{Str: s, Valid: true}
}

// Table 是内存中的表格数据集：命名列 + 有序行。
// 本包只读取 Table，不拥有也不修改它。
//
// 行允许参差不齐：比列数短的行，缺失的尾部单元格按缺失值渲染。
type Table struct {
	Columns []string
	Rows    [][]Value
}

// AppendRow 追加一行，返回 Table 自身便于链式调用。
func (t *Table) AppendRow(cells ...Value) *Table {
	t.Rows = append(t.Rows, cells)
	return t
}

// Empty 报告数据集是否为空：nil Table、无列或无行都视为空。
// 空数据集是 [Write] 的合法输入（记警告并返回空字符串哨兵）。
func (t *Table) Empty() bool {
	return t == nil || len(t.Columns) == 0 || len(t.Rows) == 0
}
