// Package xparallel 提供可选并行的任务分发器。
//
// 分发器把一个一元函数应用到一组有序任务上，产出与输入同序的结果序列。
// 两种执行策略实现同一个 [Strategy] 接口，调用方不感知模式差异：
//
//   - [Sequential]: 顺序惰性执行。结果在迭代时按需计算，最多计算一次，
//     不并发。适合结果可能被提前截断的场景。
//   - [Pooled]: 有界并发急切执行。任务分发到最多 workers 个并发 worker，
//     全部完成（或首个错误出现）后按输入顺序回放结果。worker 的生命周期
//     限定在单次 Map 调用内：迭代器开始产出结果前所有 goroutine 均已退出，
//     不会泄漏。
//
// 两种模式下输出顺序都等于输入顺序。任务间不得共享可变状态——并行模式下
// fn 会被多个 goroutine 同时调用。
//
// 错误语义：不重试。顺序模式在产出错误对后停止迭代；并行模式首个错误
// 取消其余未开始的任务，Map 只产出一个 (零值, err) 对，已完成的部分结果
// 被丢弃。
//
// 典型用法：
//
//	d := xparallel.New[Task, Result](xparallel.WithParallel(), xparallel.WithWorkers(8))
//	results, err := d.Collect(ctx, processTask, tasks)
package xparallel
