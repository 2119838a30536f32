package game

import "log"

// ThemeManager 主题信号
//
// 持有当前明暗状态，状态变化时按注册顺序通知监听者。
// 重复设置相同状态不触发通知。
type ThemeManager struct {
	dark      bool
	listeners []func(dark bool)
}

// NewThemeManager 创建主题信号
func NewThemeManager(initialDark bool) *ThemeManager {
	return &ThemeManager{dark: initialDark}
}

// IsDark 返回当前是否为暗色主题
func (tm *ThemeManager) IsDark() bool {
	return tm.dark
}

// SetDark 设置主题状态，仅在变化时通知监听者
func (tm *ThemeManager) SetDark(dark bool) {
	if tm.dark == dark {
		return
	}
	tm.dark = dark
	log.Printf("[ThemeManager] dark=%v", dark)
	for _, listener := range tm.listeners {
		listener(dark)
	}
}

// Toggle 切换主题状态
func (tm *ThemeManager) Toggle() {
	tm.SetDark(!tm.dark)
}

// OnChange 注册主题变化监听者
func (tm *ThemeManager) OnChange(listener func(dark bool)) {
	tm.listeners = append(tm.listeners, listener)
}
