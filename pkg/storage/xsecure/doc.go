// Package xsecure 提供基于口令的加密文件存储，按名称保存和读取字节块。
//
// 每个名称对应一个文件：<dir>/<name>.cache，内容为
// salt(16) || nonce(12) || AES-256-GCM 密文。密钥由
// PBKDF2-HMAC-SHA256(口令, salt, 600k 次迭代) 派生，盐和 nonce
// 每次写入重新随机生成。文件没有版本头，也没有 GCM 认证标签之外的校验。
//
// # 核心操作
//
//   - Write：加密并原子写入（临时文件 + rename，覆盖同名文件）
//   - Read：读取并解密
//   - Remove：删除（幂等）
//
// # 错误语义
//
//   - 文件不存在 → ErrNotFound
//   - 口令错误、文件截断、内容篡改 → ErrDecrypt
//   - 其余读写失败 → ErrIO（包装底层原因）
//
// 设计决策: 选用 GCM 而非 CBC，错误口令在认证阶段确定性失败，
// 不会产生"结构合法的垃圾明文"。调用方永远不需要从解密成功的
// 数据里猜测口令是否正确。代价是文件任何一个字节损坏都表现为
// ErrDecrypt，与口令错误不可区分。
//
// # 注意事项
//
//   - name 必须是裸文件名（不含路径分隔符），dir 视为调用方可信输入
//   - Write 成功返回即数据已落盘到最终路径；写入中途崩溃不会破坏旧快照
//   - 本包不做重试，I/O 失败直接上抛，由调用方决定
package xsecure
