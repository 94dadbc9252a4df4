package xparallel

import (
	"context"
	"iter"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Func 是分发器执行的任务函数。
// 并行模式下会被多个 goroutine 同时调用，不得依赖共享可变状态。
type Func[T, R any] func(ctx context.Context, task T) (R, error)

// Strategy 是任务执行策略。两个实现：[Sequential]（顺序惰性）和
// [Pooled]（有界并发急切），调用方依赖统一的迭代器契约。
type Strategy[T, R any] interface {
	// Map 将 fn 依次应用到 tasks，产出 (结果, 错误) 对的迭代器。
	// 输出顺序等于输入顺序。产出错误对后迭代终止。
	Map(ctx context.Context, fn Func[T, R], tasks []T) iter.Seq2[R, error]
}

// =============================================================================
// 顺序惰性策略
// =============================================================================

type sequential[T, R any] struct{}

// Sequential 返回顺序惰性策略：结果在迭代时按需计算，最多计算一次，
// 按输入顺序，不并发。提前终止迭代时剩余任务不会执行。
func Sequential[T, R any]() Strategy[T, R] {
	return sequential[T, R]{}
}

func (sequential[T, R]) Map(ctx context.Context, fn Func[T, R], tasks []T) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		var zero R
		if fn == nil {
			yield(zero, ErrNilFunc)
			return
		}
		for _, task := range tasks {
			r, err := fn(ctx, task)
			if !yield(r, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}

// =============================================================================
// 有界并发急切策略
// =============================================================================

type pooled[T, R any] struct {
	workers int
}

// Pooled 返回有界并发急切策略：最多 workers 个并发 worker 执行任务，
// 全部完成后按输入顺序回放结果。workers <= 0 时使用可用 CPU 数。
//
// 首个错误会取消尚未开始的任务（已在执行的任务跑完后丢弃结果），
// Map 此时只产出一个 (零值, err) 对。所有 worker 在迭代器产出任何
// 结果之前都已退出。
func Pooled[T, R any](workers int) Strategy[T, R] {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return pooled[T, R]{workers: workers}
}

func (p pooled[T, R]) Map(ctx context.Context, fn Func[T, R], tasks []T) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		var zero R
		if fn == nil {
			yield(zero, ErrNilFunc)
			return
		}

		results := make([]R, len(tasks))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(p.workers)

		for i, task := range tasks {
			g.Go(func() error {
				// 首个错误出现后，尚未开始的任务直接跳过。
				if err := gctx.Err(); err != nil {
					return err
				}
				r, err := fn(gctx, task)
				if err != nil {
					return err
				}
				results[i] = r
				return nil
			})
		}

		// Wait 返回前所有 worker goroutine 均已退出，池的生命周期
		// 严格限定在本次调用内。
		if err := g.Wait(); err != nil {
			yield(zero, err)
			return
		}

		for _, r := range results {
			if !yield(r, nil) {
				return
			}
		}
	}
}

// 编译期接口检查。
var (
	_ Strategy[int, int] = sequential[int, int]{}
	_ Strategy[int, int] = pooled[int, int]{}
)
