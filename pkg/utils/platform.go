//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 桌面端模拟移动模式的环境变量
const MobileEmulateEnv = "GARDEN_MOBILE_EMULATE"

// IsMobile 是否运行在移动设备上
// 桌面端返回 false，设置 GARDEN_MOBILE_EMULATE=1 可强制启用移动模式（本地调试用）
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
