package xlru

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// maxSize 缓存最大条目数上限。
const maxSize = 1 << 24 // 16,777,216

// Config 定义缓存配置。
type Config struct {
	// Size 缓存最大条目数。
	// 必须大于 0 且不超过 16,777,216。
	Size int
}

// Option 定义缓存可选配置函数类型。
type Option[K comparable, V any] func(*options[K, V])

// options 内部可选配置。
type options[K comparable, V any] struct {
	onEvicted func(key K, value V)
}

// WithOnEvicted 设置条目被移除时的回调函数。
//
// 回调在以下路径同步触发，且在触发它的方法返回前完成：
//   - Set 写入新 key 导致容量淘汰（携带被淘汰的最久未访问条目）
//   - Delete 显式删除（携带被删除的条目）
//   - Clear 清空（对每个条目各触发一次）
//
// 覆盖已有 key 的 Set 不触发回调。
//
// 设计决策: 回调在底层库的互斥锁内执行。调用方必须遵守以下约束：
//   - 严禁在回调中调用 Cache 自身的任何方法（Get/Set/Delete 等），否则会死锁
//   - 应避免耗时操作（如网络 I/O），以免阻塞其他并发操作
func WithOnEvicted[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(o *options[K, V]) {
		o.onEvicted = fn
	}
}

// Cache 是容量受限的 LRU 缓存。
// 必须通过 [New] 函数创建，零值不可用（方法调用会 panic）。
// 所有方法都是并发安全的。
type Cache[K comparable, V any] struct {
	lru *lru.Cache[K, V]
}

// New 创建新的 LRU 缓存。
// 如果 cfg.Size <= 0，返回 ErrInvalidSize。
// 如果 cfg.Size > maxSize (16,777,216)，返回 ErrSizeExceedsMax。
func New[K comparable, V any](cfg Config, opts ...Option[K, V]) (*Cache[K, V], error) {
	if cfg.Size <= 0 {
		return nil, ErrInvalidSize
	}
	if cfg.Size > maxSize {
		return nil, ErrSizeExceedsMax
	}

	// 应用可选配置
	o := &options[K, V]{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	c, err := lru.NewWithEvict(cfg.Size, o.onEvicted)
	if err != nil {
		return nil, err
	}

	return &Cache[K, V]{
		lru: c,
	}, nil
}

// Get 获取缓存值，并将该 key 标记为最近访问。
// 如果键不存在，返回零值和 false。
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	return c.lru.Get(key)
}

// Set 设置缓存值。返回值表示是否触发了 LRU 淘汰（eviction），而非操作是否成功。
//
//   - 如果 key 已存在，更新值并刷新访问顺序，不触发淘汰，返回 false
//   - 如果 key 不存在且缓存已满，淘汰最久未访问的条目，返回 true
//
// 淘汰回调（WithOnEvicted）在本方法返回前同步执行。
func (c *Cache[K, V]) Set(key K, value V) bool {
	return c.lru.Add(key, value)
}

// Delete 删除缓存条目。
// 返回 true 表示键存在并被删除；删除会同步触发淘汰回调。
// 删除不存在的键是无操作，返回 false，不触发回调。
func (c *Cache[K, V]) Delete(key K) bool {
	return c.lru.Remove(key)
}

// Clear 清空所有缓存条目，对每个条目同步触发淘汰回调。
func (c *Cache[K, V]) Clear() {
	c.lru.Purge()
}

// Len 返回当前缓存条目数。
func (c *Cache[K, V]) Len() int {
	return c.lru.Len()
}

// Contains 检查键是否存在（不更新访问顺序）。
func (c *Cache[K, V]) Contains(key K) bool {
	return c.lru.Contains(key)
}

// Peek 获取缓存值但不更新 LRU 顺序。
// 适用于检查缓存状态而不影响淘汰策略的场景。
func (c *Cache[K, V]) Peek(key K) (value V, ok bool) {
	return c.lru.Peek(key)
}

// Keys 返回所有键的切片，按从最旧到最新的访问顺序排列。
// 每次调用都会分配新切片。
func (c *Cache[K, V]) Keys() []K {
	return c.lru.Keys()
}
