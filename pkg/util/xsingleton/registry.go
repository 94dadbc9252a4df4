package xsingleton

import (
	"reflect"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Registry 是以类型标识为键的进程级单例注册表。
// 必须通过 [NewRegistry] 创建，零值不可用。
// 所有方法并发安全。
type Registry struct {
	shards []shard
	mask   uint64
}

type shard struct {
	mu      sync.Mutex
	entries map[reflect.Type]any
}

// NewRegistry 创建空的注册表。
func NewRegistry(opts ...Option) *Registry {
	o := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}

	shards := make([]shard, o.shardCount)
	for i := range shards {
		shards[i].entries = make(map[reflect.Type]any)
	}
	// shardCount 已验证为 2 的幂，int → uint64 为安全宽化。
	return &Registry{
		shards: shards,
		mask:   uint64(o.shardCount - 1),
	}
}

// defaultRegistry 进程级默认注册表，生命周期与进程相同，无淘汰无重置。
var defaultRegistry = NewRegistry()

// Default 返回进程级默认注册表。
func Default() *Registry {
	return defaultRegistry
}

func (r *Registry) getShard(t reflect.Type) *shard {
	h := xxhash.Sum64String(t.String())
	return &r.shards[h&r.mask]
}

// Len 返回已缓存的单例数量。
func (r *Registry) Len() int {
	n := 0
	for i := range r.shards {
		s := &r.shards[i]
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return n
}

// Keys 返回已缓存单例的类型名列表，顺序不确定。
func (r *Registry) Keys() []string {
	keys := make([]string, 0, r.Len())
	for i := range r.shards {
		s := &r.shards[i]
		s.mu.Lock()
		for t := range s.entries {
			keys = append(keys, t.String())
		}
		s.mu.Unlock()
	}
	return keys
}

// GetOrCreate 返回类型 T 的单例；不存在时调用 ctor 构造并缓存。
//
// 先写者胜：并发首次构造同一类型时，构造在分片锁内串行执行，只有第一个
// 完成的实例会被缓存，后来者的 ctor 不会执行。缓存命中时 ctor 同样不执行，
// 因此不同调用点传入不同的构造参数不影响返回的实例。
//
// ctor 返回错误时不缓存，错误传播给调用方，后续调用会重新尝试构造。
//
// 注意：ctor 在分片锁内执行，不得在其中再请求同一 Registry 的单例。
func GetOrCreate[T any](r *Registry, ctor func() (T, error)) (T, error) {
	var zero T
	if ctor == nil {
		return zero, ErrNilConstructor
	}

	key := reflect.TypeFor[T]()
	s := r.getShard(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.entries[key]; ok {
		return v.(T), nil
	}

	v, err := ctor()
	if err != nil {
		return zero, err
	}
	s.entries[key] = v
	return v, nil
}

// Get 返回类型 T 已缓存的单例。未缓存时返回零值和 false，不触发构造。
func Get[T any](r *Registry) (T, bool) {
	key := reflect.TypeFor[T]()
	s := r.getShard(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.entries[key]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}
