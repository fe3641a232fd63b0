package xmemo

import "errors"

var (
	// ErrInvalidMaxEntries 表示 MaxEntries 配置为负值。
	ErrInvalidMaxEntries = errors.New("xmemo: max entries must not be negative")

	// ErrDecode 表示解密后的字节不是合法的快照条目集合。
	ErrDecode = errors.New("xmemo: decode snapshot failed")
)

// 配置加载相关错误。
var (
	// ErrUnsupportedFormat 表示不支持的配置格式。
	ErrUnsupportedFormat = errors.New("xmemo: unsupported config format")

	// ErrParseFailed 表示配置解析失败。
	ErrParseFailed = errors.New("xmemo: failed to parse config")

	// ErrUnmarshalFailed 表示配置反序列化失败。
	ErrUnmarshalFailed = errors.New("xmemo: failed to unmarshal config")
)
