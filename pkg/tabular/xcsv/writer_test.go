package xcsv

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seekableBuffer 是测试用的内存 io.WriteSeeker。
type seekableBuffer struct {
	data []byte
	pos  int64
}

func (b *seekableBuffer) Write(p []byte) (int, error) {
	// 测试中只做顺序写 + 回绕，直接追加即可
	if b.pos != int64(len(b.data)) {
		return 0, fmt.Errorf("unexpected write at pos %d", b.pos)
	}
	b.data = append(b.data, p...)
	b.pos += int64(len(p))
	return len(p), nil
}

func (b *seekableBuffer) Seek(offset int64, whence int) (int64, error) {
	if whence != io.SeekStart {
		return 0, errors.New("unsupported whence")
	}
	b.pos = offset
	return offset, nil
}

func sampleTable() *Table {
	return &Table{
		Columns: []string{"rsid", "chromosome", "genotype"},
		Rows: [][]Value{
			{String("rs123"), String("1"), String("AA")},
			{String("rs456"), String("2"), {}},
		},
	}
}

// =============================================================================
// 空输入哨兵
// =============================================================================

func TestWriteEmptyTableSentinel(t *testing.T) {
	tests := []struct {
		name  string
		table *Table
	}{
		{name: "nil Table", table: nil},
		{name: "无行", table: &Table{Columns: []string{"a"}}},
		{name: "无列", table: &Table{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			var logBuf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logBuf, nil))

			got, err := Write(tt.table, Path(dir, "out.csv"), WithLogger(logger))
			require.NoError(t, err, "空输入不是错误")
			assert.Empty(t, got, "必须返回空字符串哨兵")
			assert.Contains(t, logBuf.String(), "no data to save", "必须记警告日志")

			// 不产生任何文件系统效果
			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

// =============================================================================
// 路径目标
// =============================================================================

func TestWritePathAtomic(t *testing.T) {
	dir := t.TempDir()

	got, err := Write(sampleTable(), Path(dir, "report.csv"),
		WithComment("# assembly GRCh37"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report.csv"), got)

	data, err := os.ReadFile(got)
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")

	require.GreaterOrEqual(t, len(lines), 6)
	assert.True(t, strings.HasPrefix(lines[0], "# Generated by snpkit v"), "溯源行: %q", lines[0])
	assert.Contains(t, lines[0], "https://github.com/snptools/snpkit")
	assert.True(t, strings.HasPrefix(lines[1], "# Generated at "), "时间行: %q", lines[1])
	assert.True(t, strings.HasSuffix(lines[1], " UTC"), "时间行以 UTC 结尾: %q", lines[1])
	assert.Equal(t, "# assembly GRCh37", lines[2])
	assert.Equal(t, "rsid,chromosome,genotype", lines[3])
	assert.Equal(t, "rs123,1,AA", lines[4])
	assert.Equal(t, "rs456,2,--", lines[5], "缺失值渲染为 --")

	// 原子写不残留临时文件
	entries, _ := os.ReadDir(dir)
	require.Len(t, entries, 1)
}

func TestWritePathNonAtomic(t *testing.T) {
	dir := t.TempDir()

	got, err := Write(sampleTable(), Path(dir, "plain.csv"), WithAtomic(false))
	require.NoError(t, err)

	data, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rs123,1,AA")
}

func TestWritePathCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")

	got, err := Write(sampleTable(), Path(dir, "report.csv"))
	require.NoError(t, err)

	_, err = os.Stat(got)
	assert.NoError(t, err, "目录应被自动创建")
}

func TestWritePathDirCollidesWithFile(t *testing.T) {
	// 目录路径与已有普通文件冲突：错误传播，而不是空哨兵
	tmp := t.TempDir()
	occupied := filepath.Join(tmp, "occupied")
	require.NoError(t, os.WriteFile(occupied, []byte("x"), 0600))

	got, err := Write(sampleTable(), Path(occupied, "report.csv"))
	assert.Error(t, err)
	assert.Empty(t, got)
}

func TestWritePathEmptyFilename(t *testing.T) {
	_, err := Write(sampleTable(), Path(t.TempDir(), ""))
	assert.ErrorIs(t, err, ErrEmptyFilename)
}

func TestWritePathNoPrependInfo(t *testing.T) {
	dir := t.TempDir()

	got, err := Write(sampleTable(), Path(dir, "bare.csv"), WithPrependInfo(false))
	require.NoError(t, err)

	data, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "rsid,chromosome,genotype\n"),
		"关闭 prepend-info 后直接以表头行开始")
	assert.NotContains(t, string(data), "Generated")
}

func TestWritePathCustomOptions(t *testing.T) {
	dir := t.TempDir()

	got, err := Write(sampleTable(), Path(dir, "custom.tsv"),
		WithPrependInfo(false),
		WithDelimiter('\t'),
		WithNARep("NA"))
	require.NoError(t, err)

	data, err := os.ReadFile(got)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Equal(t, "rsid\tchromosome\tgenotype", lines[0])
	assert.Equal(t, "rs456\t2\tNA", lines[2])
}

func TestWritePathRaggedRows(t *testing.T) {
	dir := t.TempDir()
	tbl := &Table{
		Columns: []string{"a", "b", "c"},
		Rows:    [][]Value{{String("1")}},
	}

	got, err := Write(tbl, Path(dir, "ragged.csv"), WithPrependInfo(false))
	require.NoError(t, err)

	data, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1,--,--", "短行的尾部单元格补缺失值")
}

// =============================================================================
// 流目标
// =============================================================================

func TestWriteStream(t *testing.T) {
	buf := &seekableBuffer{}

	got, err := Write(sampleTable(), Stream(buf),
		WithComment("# from stream"))
	require.NoError(t, err)
	assert.Equal(t, "<stream>", got)

	// 写完后流重新定位到起始位置
	assert.Equal(t, int64(0), buf.pos)

	content := string(buf.data)
	assert.Contains(t, content, "# from stream\n")
	assert.Contains(t, content, "rsid,chromosome,genotype\n")
	assert.Contains(t, content, "rs456,2,--\n")
}

func TestWriteStreamFile(t *testing.T) {
	// 真实文件作为流：Write 之后可直接从头读取，且流未被关闭
	f, err := os.CreateTemp(t.TempDir(), "stream-*.csv")
	require.NoError(t, err)
	defer f.Close()

	got, err := Write(sampleTable(), Stream(f), WithPrependInfo(false))
	require.NoError(t, err)
	assert.Equal(t, "<stream>", got)

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "rsid,chromosome,genotype\n"))

	// 流未被关闭：继续写入不报错
	_, err = f.Write([]byte("#"))
	assert.NoError(t, err)
}

func TestWriteStreamNil(t *testing.T) {
	_, err := Write(sampleTable(), Stream(nil))
	assert.ErrorIs(t, err, ErrNilStream)
}

func TestWriteNilDestination(t *testing.T) {
	_, err := Write(sampleTable(), nil)
	assert.ErrorIs(t, err, ErrNilDestination)
}
