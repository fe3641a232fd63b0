package xsecure

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/omeyang/memokit/pkg/util/xfile"
)

// FileExt 快照文件扩展名。
const FileExt = ".cache"

// defaultSubdir 默认快照目录在用户缓存目录下的子目录名。
const defaultSubdir = "memokit"

// Write 加密 data 并写入 <dir>/<name>.cache，覆盖同名文件。
//
// dir 为空时使用默认快照目录（见 [DefaultDir]）。
// 写入先落到同目录下的临时文件再 rename，避免写一半的文件顶替掉
// 上一份完整快照；进程在 rename 之前崩溃时，旧快照保持完好。
//
// 错误：
//   - ErrInvalidName：name 为空、含路径分隔符或其他非法格式
//   - ErrEmptyPassword：password 为空
//   - ErrIO：目录创建或文件写入失败（包装底层原因）
func Write(name, dir, password string, data []byte) error {
	path, err := snapshotPath(name, dir)
	if err != nil {
		return err
	}
	if password == "" {
		return ErrEmptyPassword
	}

	blob, err := seal(password, data)
	if err != nil {
		return err
	}

	if err := xfile.EnsureDir(path); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// Read 读取 <dir>/<name>.cache 并解密，返回明文。
//
// dir 为空时使用默认快照目录（见 [DefaultDir]）。
//
// 错误：
//   - ErrInvalidName / ErrEmptyPassword：参数非法
//   - ErrNotFound：文件不存在
//   - ErrDecrypt：口令错误、文件被截断或内容被篡改
//   - ErrIO：其他读取失败（包装底层原因）
func Read(name, dir, password string) ([]byte, error) {
	path, err := snapshotPath(name, dir)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}

	blob, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return open(password, blob)
}

// Remove 删除 <dir>/<name>.cache。
// 文件不存在时是无操作，返回 nil（幂等）。
func Remove(name, dir string) error {
	path, err := snapshotPath(name, dir)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// DefaultDir 返回默认快照目录：<用户缓存目录>/memokit。
// 用户缓存目录不可用时返回 ErrIO。
func DefaultDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	return filepath.Join(base, defaultSubdir), nil
}

// snapshotPath 校验 name 并拼出快照文件的完整路径。
//
// name 是唯一的不可信输入：必须是裸文件名，不得携带路径分隔符，
// 否则调用方可以把快照写到 dir 之外。dir 由调用方自己提供，视为可信。
func snapshotPath(name, dir string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: name contains path separator: %q", ErrInvalidName, name)
	}
	clean, err := xfile.SanitizePath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidName, err)
	}

	if dir == "" {
		dir, err = DefaultDir()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(dir, clean+FileExt), nil
}
