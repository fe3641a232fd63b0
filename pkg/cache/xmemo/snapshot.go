package xmemo

import (
	"encoding/json"
	"fmt"

	"github.com/omeyang/memokit/pkg/storage/xsecure"
)

// SaveToDisk 把缓存当前内容加密保存为 <dir>/<name>.cache。
//
// dir 为空时使用默认快照目录（见 [xsecure.DefaultDir]）。
// K 和 V 必须可被 encoding/json 序列化；内存操作没有这个约束。
//
// 快照包含索引可达的全部条目，含已过期但尚未被访问到的条目——
// 它们携带原始时间戳落盘，重新加载后照旧惰性过期。
//
// 错误：编码失败，或 xsecure 的 ErrInvalidName / ErrEmptyPassword / ErrIO。
// 本方法做同步文件 I/O，可能耗时较长；对响应时间敏感的调用方应在
// 主执行流之外调用。
func (c *Cache[K, V]) SaveToDisk(name, dir, password string) error {
	data, err := c.encodeSnapshot()
	if err != nil {
		return err
	}
	if err := xsecure.Write(name, dir, password, data); err != nil {
		return err
	}
	c.logger.Debug("snapshot saved", "name", name, "entries", c.Len())
	return nil
}

// LoadFromDisk 读取并解密 <dir>/<name>.cache，返回据其重建的新缓存。
//
// cfg 和 opts 的含义与 [New] 相同，约束新缓存此后的容量和条目时效。
// 条目按快照中的原始 CreatedAt/ExpiresAt 恢复，不经过 Set 重新计时，
// 因此保存时已过期的条目加载后依旧过期，读取时被惰性删除。
// 快照条目数超过 cfg.MaxEntries 时，超出部分按 LRU 规则在恢复过程中被淘汰。
//
// 错误：
//   - xsecure.ErrNotFound：该名称下没有快照
//   - xsecure.ErrDecrypt：口令错误或文件损坏
//   - ErrDecode：解密后的字节不是合法的条目集合
//   - xsecure.ErrIO / xsecure.ErrInvalidName / xsecure.ErrEmptyPassword
func LoadFromDisk[K comparable, V any](name, dir, password string, cfg Config, opts ...Option) (*Cache[K, V], error) {
	c, err := New[K, V](cfg, opts...)
	if err != nil {
		return nil, err
	}

	data, err := xsecure.Read(name, dir, password)
	if err != nil {
		return nil, err
	}

	entries, err := decodeSnapshot[K, V](data)
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		c.restore(e)
	}

	c.logger.Debug("snapshot loaded", "name", name, "entries", c.Len())
	return c, nil
}

// encodeSnapshot 把索引可达的条目编码为 JSON 数组。
// 使用 Peek 读取后备存储，编码过程不扰动 LRU 访问顺序。
func (c *Cache[K, V]) encodeSnapshot() ([]byte, error) {
	entries := make([]entry[K, V], 0, len(c.index))
	for _, key := range c.indexKeys() {
		if e, ok := c.store.Peek(key); ok {
			entries = append(entries, e)
		}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("xmemo: encode snapshot: %w", err)
	}
	return data, nil
}

// decodeSnapshot 解析 encodeSnapshot 的输出。
// 输入不是合法的条目数组时返回 ErrDecode。
func decodeSnapshot[K comparable, V any](data []byte) ([]entry[K, V], error) {
	var entries []entry[K, V]
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return entries, nil
}

// restore 以原始时间戳写回一个条目。
// 刻意绕过 Set：Set 会以当前时钟重新计算过期时间，使过期条目复活。
func (c *Cache[K, V]) restore(e entry[K, V]) {
	c.store.Set(e.Key, e)
	c.index[e.Key] = struct{}{}
}
