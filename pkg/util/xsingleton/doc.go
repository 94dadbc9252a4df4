// Package xsingleton 提供进程级单例注册表。
//
// 注册表以类型标识为键：同一类型在一个 [Registry] 内最多存在一个实例。
// 首次请求某类型时调用构造函数并缓存结果，之后的请求（无论构造参数如何）
// 都返回同一个实例。注册表不提供淘汰和重置操作，生命周期与进程相同。
//
// 与隐式的构造拦截（某些语言的元类钩子）不同，本包要求调用方通过显式的
// 工厂调用获取单例：
//
//	cfg, err := xsingleton.GetOrCreate(xsingleton.Default(), func() (*ResourceCfg, error) {
//	    return loadResourceCfg()
//	})
//
// # 并发语义
//
// 严格的同步先写者胜：并发首次构造同一类型时，构造在分片互斥锁内串行执行，
// 先完成者的实例被缓存，后来者直接获得该实例（自己的构造函数不会执行）。
// 构造函数返回错误时不缓存任何内容，后续调用会重新尝试构造。
//
// 约束：构造函数内不得再请求同一 Registry 的单例，否则可能在同一分片上
// 自我死锁。
//
// # 测试隔离
//
// 包级 [Default] 注册表与进程同生命周期。测试应使用 [NewRegistry] 创建
// 独立实例，避免跨测试的状态泄漏。
package xsingleton
