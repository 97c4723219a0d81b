package game

import (
	"encoding/binary"
	"fmt"
	"log"
	"math"

	"github.com/decker502/pixelgarden/pkg/sfx"
	"github.com/decker502/pixelgarden/pkg/types"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 图形版的放置提示音管理器
// 职责：
//   - 把 sfx 生成的提示音渲染为 PCM 并缓存（每种物品类型一份）
//   - 从 SettingsManager 读取开关和音量
//
// 终端版直接使用 sfx.Player，两端音色一致。
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager
	pcm             map[types.ItemType][]byte
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - sm: SettingsManager 实例（可为 nil，视为默认设置）
func NewAudioManager(sm *SettingsManager) *AudioManager {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(int(sfx.SampleRate))
	}
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		pcm:             make(map[types.ItemType][]byte),
	}
}

// PlayChirp 播放物品放置提示音
//
// 返回：
//   - bool: 是否实际播放
func (am *AudioManager) PlayChirp(itemType types.ItemType) bool {
	if am == nil || am.context == nil {
		return false
	}
	settings := am.settings()
	if !settings.SoundEnabled || settings.SoundVolume <= 0 {
		return false
	}

	data, err := am.chirpPCM(itemType)
	if err != nil {
		log.Printf("[AudioManager] Warning: %v", err)
		return false
	}
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(settings.SoundVolume)
	player.Play()
	return true
}

func (am *AudioManager) settings() *GameSettings {
	if am.settingsManager == nil {
		return DefaultSettings()
	}
	return am.settingsManager.GetSettings()
}

func (am *AudioManager) chirpPCM(itemType types.ItemType) ([]byte, error) {
	if data, ok := am.pcm[itemType]; ok {
		return data, nil
	}
	streamer, err := sfx.Chirp(sfx.SampleRate, itemType, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to build chirp for %s: %w", itemType, err)
	}
	data, err := RenderPCM(streamer)
	if err != nil {
		return nil, err
	}
	am.pcm[itemType] = data
	return data, nil
}

// RenderPCM 把有限长度的 streamer 渲染为 16 位小端立体声 PCM
// （ebiten audio 的字节格式）
func RenderPCM(s beep.Streamer) ([]byte, error) {
	buf := make([][2]float64, 512)
	var out []byte
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(sample[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(sample[1])))
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to render pcm: %w", err)
	}
	return out, nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
