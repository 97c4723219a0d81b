//go:build !mobile

// 桌面构建时的占位文件，移动端入口见 mobile.go（需要 -tags mobile）
package mobile

// Dummy 让包在桌面构建时也可以被引用
func Dummy() {}
