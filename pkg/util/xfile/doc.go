// Package xfile 提供文件路径的格式净化和目录准备工具。
//
// # 核心功能
//
//   - SanitizePath：路径格式检查（空路径、空字节、".." 穿越、目录路径）
//   - EnsureDir / EnsureDirWithPerm：确保文件的父目录存在
//
// # 安全边界
//
// SanitizePath 只做格式净化，不做目录隔离：它阻止相对路径穿越，
// 但接受绝对路径。调用方如需把文件限制在固定目录内，应自行拒绝
// 含分隔符的文件名后再与基准目录拼接。
//
// EnsureDir 底层使用 os.MkdirAll，会跟随符号链接；不可信输入应先经
// SanitizePath 校验。
package xfile
