package xparallel

import (
	"context"
	"iter"
)

// Dispatcher 按配置选定的策略分发任务。
// 通过 [New] 或 [NewWithStrategy] 创建；零值不可用。
// Dispatcher 自身无可变状态，可被多个 goroutine 并发使用。
type Dispatcher[T, R any] struct {
	strategy Strategy[T, R]
}

// New 创建 Dispatcher。
//
// 默认顺序惰性执行；[WithParallel] 切换到有界并发急切执行，
// worker 数量由 [WithWorkers] 控制（默认为可用 CPU 数）。
func New[T, R any](opts ...Option) *Dispatcher[T, R] {
	o := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}

	var s Strategy[T, R]
	if o.parallel {
		s = Pooled[T, R](o.workers)
	} else {
		s = Sequential[T, R]()
	}
	return &Dispatcher[T, R]{strategy: s}
}

// NewWithStrategy 使用显式策略创建 Dispatcher。
// strategy 为 nil 时回落到顺序惰性策略。
func NewWithStrategy[T, R any](strategy Strategy[T, R]) *Dispatcher[T, R] {
	if strategy == nil {
		strategy = Sequential[T, R]()
	}
	return &Dispatcher[T, R]{strategy: strategy}
}

// Map 将 fn 应用到 tasks，返回 (结果, 错误) 对的迭代器。
// 输出顺序等于输入顺序，与策略无关。nil ctx 归一化为 context.Background()。
func (d *Dispatcher[T, R]) Map(ctx context.Context, fn Func[T, R], tasks []T) iter.Seq2[R, error] {
	if ctx == nil {
		ctx = context.Background()
	}
	return d.strategy.Map(ctx, fn, tasks)
}

// Collect 执行全部任务并物化结果切片，遇到首个错误时返回 (nil, err)。
// 没有部分结果恢复：任一任务失败则整个调用失败。
func (d *Dispatcher[T, R]) Collect(ctx context.Context, fn Func[T, R], tasks []T) ([]R, error) {
	out := make([]R, 0, len(tasks))
	for r, err := range d.Map(ctx, fn, tasks) {
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
