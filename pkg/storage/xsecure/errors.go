package xsecure

import "errors"

var (
	// ErrNotFound 表示指定名称下不存在快照文件。
	ErrNotFound = errors.New("xsecure: snapshot not found")

	// ErrDecrypt 表示解密失败：口令错误、文件被截断或内容被篡改。
	// AES-GCM 自带认证，三种情况无法区分，统一硬失败。
	ErrDecrypt = errors.New("xsecure: decrypt failed")

	// ErrInvalidName 表示快照名称无效（为空、含路径分隔符或 ".." 段等）。
	ErrInvalidName = errors.New("xsecure: invalid snapshot name")

	// ErrEmptyPassword 表示口令为空。
	// 空口令在技术上可以派生密钥，但几乎总是调用错误，在入口处 fail-fast。
	ErrEmptyPassword = errors.New("xsecure: empty password")

	// ErrIO 表示与加解密无关的文件读写失败（权限不足、磁盘已满等）。
	// 底层原因通过 errors.Unwrap 链暴露。
	ErrIO = errors.New("xsecure: io failure")
)
