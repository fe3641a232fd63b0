package xmemo

import (
	"log/slog"
	"time"

	"github.com/omeyang/memokit/pkg/util/xlru"
)

// entry 是一条缓存记录。创建后不可变：覆盖写入会构造全新的 entry。
// 字段导出并带 json 标签，同时服务于快照编码。
type entry[K comparable, V any] struct {
	Key       K         `json:"key"`
	Value     V         `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// expired 判断条目在 now 时刻是否已过期（now >= ExpiresAt）。
func (e entry[K, V]) expired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}

// Cache 是带条目数上限和写入时效的记忆化缓存。
// 必须通过 [New] 或 [LoadFromDisk] 创建，零值不可用。
//
// Cache 不做内部加锁，假定单一逻辑持有者；多 goroutine 并发访问时，
// 嵌入方必须用一把互斥锁覆盖每个公开操作（见包文档）。
type Cache[K comparable, V any] struct {
	store    *xlru.Cache[K, entry[K, V]]
	index    map[K]struct{}
	lifetime time.Duration
	clock    func() time.Time
	logger   *slog.Logger
}

// New 创建缓存。
//
// cfg 的零值字段取默认值：EntryLifetime 0 → 12 小时，MaxEntries 0 → 50。
// EntryLifetime 为负表示条目写入即过期（用于"全部立即失效"的测试场景）。
// MaxEntries 为负返回 ErrInvalidMaxEntries。
func New[K comparable, V any](cfg Config, opts ...Option) (*Cache[K, V], error) {
	if cfg.MaxEntries < 0 {
		return nil, ErrInvalidMaxEntries
	}
	if cfg.MaxEntries == 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	if cfg.EntryLifetime == 0 {
		cfg.EntryLifetime = DefaultEntryLifetime
	}

	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	c := &Cache[K, V]{
		index:    make(map[K]struct{}),
		lifetime: cfg.EntryLifetime,
		clock:    o.clock,
		logger:   o.logger,
	}

	// 条目离开后备存储的所有路径（容量淘汰、Delete、Clear）都经由这一个
	// 回调同步清理索引；回调只改本地 map，不得回调 store 自身的方法。
	store, err := xlru.New[K, entry[K, V]](
		xlru.Config{Size: cfg.MaxEntries},
		xlru.WithOnEvicted(func(key K, _ entry[K, V]) {
			delete(c.index, key)
		}),
	)
	if err != nil {
		return nil, err
	}
	c.store = store

	return c, nil
}

// Set 写入一个值。key 已存在时覆盖（构造新条目，过期时间重新起算）。
// 写入新 key 且缓存已满时，最久未访问的条目被淘汰，其索引项在本方法
// 返回前被同步清理。本方法不会失败。
func (c *Cache[K, V]) Set(key K, value V) {
	now := c.clock()
	e := entry[K, V]{
		Key:       key,
		Value:     value,
		CreatedAt: now,
		ExpiresAt: now.Add(c.lifetime),
	}
	c.store.Set(key, e)
	c.index[key] = struct{}{}
}

// Get 读取一个值。
// key 不存在返回零值和 false；条目已过期时惰性删除（同步清理索引）并
// 返回零值和 false。过期条目只在被访问时发现，不做后台清扫。
func (c *Cache[K, V]) Get(key K) (V, bool) {
	var zero V
	e, ok := c.store.Get(key)
	if !ok {
		return zero, false
	}
	if e.expired(c.clock()) {
		c.store.Delete(key)
		return zero, false
	}
	return e.Value, true
}

// Delete 删除一个 key，索引经后备存储的删除通知同步清理。
// key 不存在时是无操作。
func (c *Cache[K, V]) Delete(key K) {
	c.store.Delete(key)
}

// Clear 逐个删除索引中的全部 key，结果是空缓存。
// 对空缓存调用是安全的无操作。
func (c *Cache[K, V]) Clear() {
	for _, key := range c.indexKeys() {
		c.store.Delete(key)
	}
}

// Values 返回当前所有未过期条目的值。
// 对索引快照逐 key 执行 Get，过期条目在此过程中被惰性删除。
// 返回顺序没有语义，调用方不得依赖。
func (c *Cache[K, V]) Values() []V {
	keys := c.indexKeys()
	out := make([]V, 0, len(keys))
	for _, key := range keys {
		if v, ok := c.Get(key); ok {
			out = append(out, v)
		}
	}
	return out
}

// Keys 返回索引中的全部 key，顺序没有语义。
// 可能包含已过期但尚未被访问到的条目的 key。
func (c *Cache[K, V]) Keys() []K {
	return c.indexKeys()
}

// Len 返回当前条目数。
// 可能把已过期但尚未被访问到的条目计算在内。
func (c *Cache[K, V]) Len() int {
	return c.store.Len()
}

// indexKeys 返回索引的快照切片。
// 遍历期间的删除会改动 index 本身，必须先拷贝再操作。
func (c *Cache[K, V]) indexKeys() []K {
	keys := make([]K, 0, len(c.index))
	for key := range c.index {
		keys = append(keys, key)
	}
	return keys
}
