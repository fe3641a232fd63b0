// Package xmemo 提供进程内记忆化缓存：条目数有上限、按写入时间过期，
// 并支持用口令加密的磁盘快照跨进程重启恢复。
//
// # 核心特性
//
//   - 泛型支持：任意 comparable 的键类型和任意值类型
//   - 容量上限：超出 MaxEntries 时按 LRU 淘汰最久未访问的条目
//   - 时效过期：条目写入 EntryLifetime 后过期，读取时惰性删除
//   - 可注入时钟：过期判断全部经由 WithClock 注入的时钟，测试可确定性推进时间
//   - 加密快照：SaveToDisk / LoadFromDisk 走 xsecure 的口令加密文件
//
// # 两种过期机制
//
// 容量淘汰和时效过期彼此独立：
//
//   - 容量淘汰是同步的。写入新 key 导致淘汰时，被淘汰 key 的索引项在
//     Set 返回之前就已清理完毕，没有轮询窗口。
//   - 时效过期是惰性的。过期条目留在存储里，直到下一次 Get/Values
//     访问到它才被发现并删除；没有后台清扫 goroutine。因此 Len/Keys
//     可能把已过期但尚未被访问的条目计算在内。
//
// # 快照
//
// SaveToDisk 把索引可达的条目序列化为 JSON、经 AES-256-GCM 加密后写入
// <dir>/<name>.cache；LoadFromDisk 逆向执行并返回重建的新缓存。条目带
// 原始时间戳落盘和恢复，保存时已过期的条目加载后依旧过期。错误口令在
// 解密阶段确定性失败（xsecure.ErrDecrypt），不会得到一个"悄悄变空"的缓存。
//
// 持久化要求 K、V 可被 encoding/json 序列化；纯内存使用没有这个约束。
//
// # 并发
//
// Cache 假定单一逻辑持有者，不做内部加锁。多 goroutine 共享一个实例时，
// 嵌入方必须用一把互斥锁把每个公开操作整体包住；SaveToDisk/LoadFromDisk
// 做同步文件 I/O，需要响应性的场景应移出主执行流。
//
// # 错误语义
//
// 内存操作（Set/Get/Delete/Clear/Values）永不返回错误，缺失以
// (零值, false) 或空切片表达。持久化操作的失败全部上抛：
// xsecure.ErrNotFound / xsecure.ErrDecrypt / ErrDecode / xsecure.ErrIO。
// 本包不做重试，由调用方决定。
package xmemo
