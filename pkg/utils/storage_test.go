package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSettingsDir(t *testing.T) {
	got := SettingsDir(filepath.Join("data", "app"))
	if want := filepath.Join("data", "app", "settings"); got != want {
		t.Errorf("SettingsDir() = %q, want %q", got, want)
	}
}

func TestEnsureWritableDir(t *testing.T) {
	dir := SettingsDir(filepath.Join(t.TempDir(), "com.example.garden"))

	if err := ensureWritableDir(dir); err != nil {
		t.Fatalf("ensureWritableDir() error = %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("directory not created: %v", err)
	}
	// 写入测试文件应被清理
	if _, err := os.Stat(filepath.Join(dir, ".write_test")); !os.IsNotExist(err) {
		t.Error("write test file should be removed")
	}
	// 已存在时再次调用不报错
	if err := ensureWritableDir(dir); err != nil {
		t.Errorf("second call error = %v", err)
	}
}

func TestEnsureWritableDirBlockedByFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "occupied")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := ensureWritableDir(filepath.Join(file, "settings")); err == nil {
		t.Error("expected error when parent is a file")
	}
}

func TestPackageFromCmdline(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    string
		wantErr bool
	}{
		{"单个参数", "com.example.garden\x00", "com.example.garden", false},
		{"多个参数只取第一个", "com.example.garden\x00--flag\x00", "com.example.garden", false},
		{"带换行", "com.example.garden\n\x00", "com.example.garden", false},
		{"空内容", "", "", true},
		{"只有分隔符", "\x00\x00", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := packageFromCmdline([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("packageFromCmdline() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("packageFromCmdline() = %q, want %q", got, tt.want)
			}
		})
	}
}
