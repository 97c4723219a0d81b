//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 确保 Android 上的设置目录存在并可写
// gdata 以 /data/data/{package}/ 为根目录，但不会创建子目录，
// 需要在打开 gdata 之前调用。
func EnsureStorageDir() error {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return fmt.Errorf("failed to detect Android app: %w", err)
	}
	pkg, err := packageFromCmdline(data)
	if err != nil {
		return fmt.Errorf("failed to detect Android app: %w", err)
	}
	return ensureWritableDir(SettingsDir(filepath.Join("/data/data", pkg)))
}
