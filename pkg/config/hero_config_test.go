package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultHeroConfig 测试默认配置的关键字段与可校验性
func TestDefaultHeroConfig(t *testing.T) {
	cfg := DefaultHeroConfig()

	if cfg.Network.NumPoints != 72 {
		t.Errorf("NumPoints = %d, 期望 72", cfg.Network.NumPoints)
	}
	if cfg.Network.MaxActiveLines != 4 {
		t.Errorf("MaxActiveLines = %d, 期望 4", cfg.Network.MaxActiveLines)
	}
	if cfg.Network.CometTailLength != 0.35 {
		t.Errorf("CometTailLength = %v, 期望 0.35", cfg.Network.CometTailLength)
	}
	if cfg.Letters.Title != "GONEWX" {
		t.Errorf("Title = %q, 期望 GONEWX", cfg.Letters.Title)
	}
	if cfg.Letters.DelayScale != 0.3 || cfg.Letters.ProgressDivisor != 2.4 {
		t.Errorf("下落映射常量 = (%v, %v), 期望 (0.3, 2.4)",
			cfg.Letters.DelayScale, cfg.Letters.ProgressDivisor)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("默认配置应通过校验: %v", err)
	}
}

// TestValidateClampsInvalidValues 测试越界值被修正
func TestValidateClampsInvalidValues(t *testing.T) {
	cfg := DefaultHeroConfig()
	cfg.Network.NumPoints = -5
	cfg.Network.ConnectDistance = 0
	cfg.Network.SpawnInterval = -1
	cfg.Letters.ProgressDivisor = 0
	cfg.Scroll.RegionLength = -100

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate 失败: %v", err)
	}

	def := DefaultHeroConfig()
	if cfg.Network.NumPoints != def.Network.NumPoints {
		t.Errorf("负的 NumPoints 应恢复默认值: got %d", cfg.Network.NumPoints)
	}
	if cfg.Network.ConnectDistance != def.Network.ConnectDistance {
		t.Errorf("零 ConnectDistance 应恢复默认值: got %v", cfg.Network.ConnectDistance)
	}
	if cfg.Network.SpawnInterval != def.Network.SpawnInterval {
		t.Errorf("负的 SpawnInterval 应恢复默认值: got %v", cfg.Network.SpawnInterval)
	}
	if cfg.Letters.ProgressDivisor != def.Letters.ProgressDivisor {
		t.Errorf("零 ProgressDivisor 应恢复默认值: got %v", cfg.Letters.ProgressDivisor)
	}
	if cfg.Scroll.RegionLength != def.Scroll.RegionLength {
		t.Errorf("负的 RegionLength 应恢复默认值: got %v", cfg.Scroll.RegionLength)
	}
}

// TestValidateCapsNumPoints 测试点云密度硬上限
func TestValidateCapsNumPoints(t *testing.T) {
	cfg := DefaultHeroConfig()
	cfg.Network.NumPoints = 999999

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate 失败: %v", err)
	}
	if cfg.Network.NumPoints != MaxNumPoints {
		t.Errorf("NumPoints = %d, 应被钳制到 %d", cfg.Network.NumPoints, MaxNumPoints)
	}
}

// TestLoadHeroConfig 测试从 yaml 文件加载并与默认值合并
func TestLoadHeroConfig(t *testing.T) {
	yamlContent := `
network:
  numPoints: 48
  maxActiveLines: 2
letters:
  title: "HELLO"
theme:
  darkBackground: "#000000"
`
	path := filepath.Join(t.TempDir(), "hero.yaml")
	if err := os.WriteFile(path, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("写入测试配置失败: %v", err)
	}

	cfg, err := LoadHeroConfig(path)
	if err != nil {
		t.Fatalf("LoadHeroConfig 失败: %v", err)
	}

	if cfg.Network.NumPoints != 48 {
		t.Errorf("NumPoints = %d, 期望 48", cfg.Network.NumPoints)
	}
	if cfg.Network.MaxActiveLines != 2 {
		t.Errorf("MaxActiveLines = %d, 期望 2", cfg.Network.MaxActiveLines)
	}
	if cfg.Letters.Title != "HELLO" {
		t.Errorf("Title = %q, 期望 HELLO", cfg.Letters.Title)
	}

	// 未指定的字段保持默认值
	if cfg.Network.ConnectDistance != 190 {
		t.Errorf("未指定字段应保持默认值: ConnectDistance = %v", cfg.Network.ConnectDistance)
	}

	// 覆盖的主题颜色被解析
	bg := cfg.Theme.Background(true)
	if bg.R != 0 || bg.G != 0 || bg.B != 0 {
		t.Errorf("darkBackground 应解析为纯黑: %v", bg)
	}
}

// TestLoadHeroConfigMissingFile 测试文件不存在返回错误
func TestLoadHeroConfigMissingFile(t *testing.T) {
	if _, err := LoadHeroConfig("/nonexistent/hero.yaml"); err == nil {
		t.Error("不存在的配置文件应返回错误")
	}
}

// TestLoadHeroConfigInvalidYaml 测试格式错误返回错误
func TestLoadHeroConfigInvalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("network: [unclosed"), 0644); err != nil {
		t.Fatalf("写入测试配置失败: %v", err)
	}

	if _, err := LoadHeroConfig(path); err == nil {
		t.Error("格式错误的配置文件应返回错误")
	}
}

// TestThemePalettes 测试明暗两套调色板的访问器
func TestThemePalettes(t *testing.T) {
	cfg := DefaultHeroConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate 失败: %v", err)
	}

	light := cfg.Theme.Palette(false)
	dark := cfg.Theme.Palette(true)
	if len(light) != 4 || len(dark) != 4 {
		t.Fatalf("调色板长度 = (%d, %d), 期望 (4, 4)", len(light), len(dark))
	}
	if light[0] == dark[0] {
		t.Error("明暗调色板首色不应相同")
	}

	if cfg.Theme.Background(false) == cfg.Theme.Background(true) {
		t.Error("明暗背景色不应相同")
	}
	if cfg.Theme.LetterColor(false) == cfg.Theme.LetterColor(true) {
		t.Error("明暗字母颜色不应相同")
	}
}
