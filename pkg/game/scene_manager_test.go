package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// fakeScene 测试用场景，记录生命周期调用
type fakeScene struct {
	updates  int
	draws    int
	disposed bool
	resized  [2]int
}

func (f *fakeScene) Update(deltaTime float64)  { f.updates++ }
func (f *fakeScene) Draw(screen *ebiten.Image) { f.draws++ }
func (f *fakeScene) Dispose()                  { f.disposed = true }
func (f *fakeScene) Resize(width, height int)  { f.resized = [2]int{width, height} }

// TestSwitchTo 测试场景切换
func TestSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	scene := &fakeScene{}

	sm.SwitchTo(scene)

	if sm.GetCurrentScene() != scene {
		t.Error("SwitchTo 后 GetCurrentScene 应返回新场景")
	}
}

// TestSwitchToDisposesOldScene 测试切换时释放旧场景
func TestSwitchToDisposesOldScene(t *testing.T) {
	sm := NewSceneManager()
	old := &fakeScene{}
	sm.SwitchTo(old)

	sm.SwitchTo(&fakeScene{})

	if !old.disposed {
		t.Error("被替换的场景应被 Dispose")
	}
}

// TestUpdateAndDrawForwarding 测试更新与绘制转发
func TestUpdateAndDrawForwarding(t *testing.T) {
	sm := NewSceneManager()

	// 无场景时不应崩溃
	sm.Update(0.016)
	sm.Draw(nil)

	scene := &fakeScene{}
	sm.SwitchTo(scene)
	sm.Update(0.016)
	sm.Draw(nil)

	if scene.updates != 1 {
		t.Errorf("Update 转发次数 = %d, 期望 1", scene.updates)
	}
	if scene.draws != 1 {
		t.Errorf("Draw 转发次数 = %d, 期望 1", scene.draws)
	}
}

// TestResizeForwarding 测试尺寸变化转发
func TestResizeForwarding(t *testing.T) {
	sm := NewSceneManager()
	scene := &fakeScene{}
	sm.SwitchTo(scene)

	sm.Resize(800, 600)

	if scene.resized != [2]int{800, 600} {
		t.Errorf("Resize 转发 = %v, 期望 [800 600]", scene.resized)
	}
}
