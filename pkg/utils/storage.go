package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// SettingsDirName gdata 设置对象所在的子目录，与 SettingsManager 的对象名一致
const SettingsDirName = "settings"

// SettingsDir 返回数据根目录下的设置目录
func SettingsDir(root string) string {
	return filepath.Join(root, SettingsDirName)
}

// ensureWritableDir 创建目录并确认可写
func ensureWritableDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory %s: %w", dir, err)
	}
	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, []byte("test"), 0644); err != nil {
		return fmt.Errorf("settings directory %s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}

// packageFromCmdline 从 /proc/self/cmdline 内容中取出进程名（第一个参数）
// Android 应用进程名即包名
func packageFromCmdline(data []byte) (string, error) {
	name, _, _ := bytes.Cut(data, []byte{0})
	name = bytes.TrimSpace(name)
	if len(name) == 0 {
		return "", fmt.Errorf("got empty process name from cmdline")
	}
	return string(name), nil
}
