package xcsv

import "log/slog"

// DefaultNARep 缺失值的默认渲染形式。
const DefaultNARep = "--"

// Option 定义 Write 可选配置。
type Option func(*options)

type options struct {
	comment     []string
	prependInfo bool
	atomic      bool
	naRep       string
	delimiter   rune
	logger      *slog.Logger
}

func defaultOptions() options {
	return options{
		prependInfo: true,
		atomic:      true,
		naRep:       DefaultNARep,
		delimiter:   ',',
		logger:      slog.Default(),
	}
}

// WithComment 设置注释头行。每行以独立的一行写出，注释标记（如 "#"）
// 由调用方自行包含在行内。
func WithComment(lines ...string) Option {
	return func(o *options) {
		o.comment = lines
	}
}

// WithPrependInfo 控制是否在注释头前自动加两行溯源注释
// （生成者与版本、UTC 生成时间）。默认开启。
func WithPrependInfo(enabled bool) Option {
	return func(o *options) {
		o.prependInfo = enabled
	}
}

// WithAtomic 控制路径目标是否原子替换落盘。默认开启。
// 关闭后直接写目标路径，写到一半崩溃会留下截断文件（接受的折衷）。
// 对流目标无意义，静默忽略。
func WithAtomic(enabled bool) Option {
	return func(o *options) {
		o.atomic = enabled
	}
}

// WithNARep 设置缺失值的渲染形式。默认 "--"。
func WithNARep(s string) Option {
	return func(o *options) {
		o.naRep = s
	}
}

// WithDelimiter 设置字段分隔符。默认 ','。
// r 为零值时回落到默认分隔符。
func WithDelimiter(r rune) Option {
	// 在闭包外归一化，避免闭包写捕获变量导致并发复用时的数据竞争。
	if r == 0 {
		r = ','
	}
	return func(o *options) {
		o.delimiter = r
	}
}

// WithLogger 设置日志器。默认 slog.Default()。
// logger 为 nil 时保持默认值。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger == nil {
			return
		}
		o.logger = logger
	}
}
