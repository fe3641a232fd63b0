package xmemo

import (
	"log/slog"
	"time"
)

const (
	// DefaultEntryLifetime 条目默认存活时长。
	DefaultEntryLifetime = 12 * time.Hour

	// DefaultMaxEntries 默认最大条目数。
	DefaultMaxEntries = 50
)

// Config 定义缓存配置。零值字段取默认值。
type Config struct {
	// EntryLifetime 条目从写入到过期的时长。
	// 0 表示使用默认值 12 小时；负值表示条目写入即过期。
	EntryLifetime time.Duration `koanf:"entry_lifetime"`

	// MaxEntries 缓存最大条目数，超出时按 LRU 淘汰。
	// 0 表示使用默认值 50；负值非法。
	MaxEntries int `koanf:"max_entries"`
}

// Option 定义缓存可选配置函数类型。
type Option func(*options)

// options 内部可选配置。
type options struct {
	clock  func() time.Time
	logger *slog.Logger
}

// defaultOptions 返回默认可选配置。
func defaultOptions() *options {
	return &options{
		clock:  time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithClock 注入时钟函数，默认为 time.Now。
// 过期判断全部经由该时钟，测试中注入假时钟即可确定性地推进时间。
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithLogger 注入日志器，默认丢弃所有日志。
// 仅快照的保存/加载路径产生日志（Debug 级别），内存操作不记日志。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
