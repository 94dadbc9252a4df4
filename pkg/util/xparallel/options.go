package xparallel

import "runtime"

// Option 定义 Dispatcher 可选配置。
type Option func(*options)

type options struct {
	parallel bool
	workers  int
}

func defaultOptions() options {
	return options{
		parallel: false,
		workers:  runtime.NumCPU(),
	}
}

// WithParallel 启用并行执行（默认关闭，即顺序惰性执行）。
func WithParallel() Option {
	return func(o *options) {
		o.parallel = true
	}
}

// WithWorkers 设置并行模式下的 worker 数量。
// n <= 0 时回落到可用 CPU 数（默认值）。仅在并行模式下生效。
func WithWorkers(n int) Option {
	// 在闭包外归一化，避免闭包写捕获变量导致并发复用时的数据竞争。
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return func(o *options) {
		o.workers = n
	}
}
