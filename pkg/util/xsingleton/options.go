package xsingleton

const (
	defaultShardCount = 32
	maxShardCount     = 1 << 16 // 65536
)

// Option 定义 Registry 可选配置。
type Option func(*options)

type options struct {
	shardCount int
}

func defaultOptions() options {
	return options{
		shardCount: defaultShardCount,
	}
}

// WithShardCount 设置分片数量。
// 更多分片减少不同类型首次构造时的锁争用。
// n 必须为正整数且为 2 的幂，上限 65536，否则回落到默认值 32。
//
// 单例注册表的读写频率通常很低，默认值适用于绝大多数场景。
func WithShardCount(n int) Option {
	// 在闭包外归一化，避免闭包写捕获变量导致并发复用时的数据竞争。
	if n <= 0 || n > maxShardCount || n&(n-1) != 0 {
		n = defaultShardCount
	}
	return func(o *options) {
		o.shardCount = n
	}
}
