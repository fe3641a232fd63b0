// Package xlru 提供容量受限的 LRU 缓存实现。
//
// xlru 基于 github.com/hashicorp/golang-lru/v2 封装，
// 提供简洁的泛型 API 和同步的淘汰通知，适合作为上层缓存的有界后备存储。
//
// # 核心特性
//
//   - 泛型支持：支持任意 comparable 的键类型和任意值类型
//   - LRU 淘汰：缓存满时自动淘汰最久未访问的条目
//   - 同步淘汰通知：容量淘汰、Delete、Clear 都会在调用返回前触发回调
//   - 并发安全：所有操作都是线程安全的
//
// # 配置选项
//
// Config 结构体提供必需的配置：
//   - Size：缓存最大条目数，必须 > 0 且 ≤ 16,777,216
//
// 可选配置通过 Option 函数提供：
//   - WithOnEvicted：设置条目被移除时的回调函数
//
// # 淘汰通知语义
//
// 上层如果维护与缓存内容同步的辅助索引（如 key 集合），可以完全依赖
// WithOnEvicted 回调：任何条目离开缓存的路径（容量淘汰、Delete、Clear）
// 都会携带该条目同步通知一次；覆盖已有 key 的 Set 不触发回调。
// 回调在触发它的写操作返回之前完成，没有轮询窗口。
//
// # 设计决策
//
// xlru 是对 hashicorp/golang-lru/v2 的轻量封装，不提供接口抽象层：
//   - 保持 API 简洁，避免过度抽象
//   - 底层库稳定成熟，替换需求极低
//
// 本包不处理时间过期。需要按写入时间过期的调用方应自带时间戳并在读取
// 时判断，这样可以注入自定义时钟；底层库的 expirable 变体绑定系统时钟，
// 无法满足确定性测试的需求。
//
// # 注意事项
//
//   - Get 会更新访问顺序，Peek/Contains 不会
//   - Size 是条目数量，不是内存大小
//   - 淘汰回调在锁内执行，严禁在回调中调用 Cache 自身方法（会死锁）
package xlru
