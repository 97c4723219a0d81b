// Package sfx 生成终端版放置物品时的提示音
package sfx

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/decker502/pixelgarden/pkg/types"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// SampleRate 输出采样率
const SampleRate = beep.SampleRate(44100)

// ChirpDuration 单次提示音时长
const ChirpDuration = 60 * time.Millisecond

// 各物品类型的音高（Hz）
var chirpFrequency = map[types.ItemType]float64{
	types.ItemTree:   523.25, // C5
	types.ItemFlower: 783.99, // G5
	types.ItemPond:   392.00, // G4
	types.ItemRock:   261.63, // C4
}

// Chirp 返回指定物品类型的提示音
//
// 参数：
//   - sr: 采样率
//   - itemType: 物品类型，未知类型使用 A5
//   - volume: 线性音量 0.0 ~ 1.0
func Chirp(sr beep.SampleRate, itemType types.ItemType, volume float64) (beep.Streamer, error) {
	freq, ok := chirpFrequency[itemType]
	if !ok {
		freq = 880
	}
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("failed to create tone: %w", err)
	}

	return &effects.Volume{
		Streamer: beep.Take(sr.N(ChirpDuration), sine),
		Base:     2,
		Volume:   math.Log2(math.Max(volume, 1e-6)),
		Silent:   volume <= 0,
	}, nil
}

// Player 提示音播放器
// 音频设备初始化失败时降级为静音，不影响程序运行
type Player struct {
	ready   bool
	enabled bool
	volume  float64
}

// NewPlayer 初始化扬声器并创建播放器
//
// 返回的 Player 总是可用；error 仅用于记录初始化失败的原因。
func NewPlayer(enabled bool, volume float64) (*Player, error) {
	p := &Player{enabled: enabled, volume: volume}
	if !enabled {
		return p, nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return p, fmt.Errorf("audio initialization failed: %w", err)
	}
	p.ready = true
	log.Printf("[Sfx] Speaker ready at %d Hz", SampleRate)
	return p, nil
}

// Enabled 是否会实际发声
func (p *Player) Enabled() bool {
	return p != nil && p.ready && p.enabled
}

// Play 播放物品放置提示音
func (p *Player) Play(itemType types.ItemType) {
	if !p.Enabled() {
		return
	}
	chirp, err := Chirp(SampleRate, itemType, p.volume)
	if err != nil {
		log.Printf("[Sfx] %v", err)
		return
	}
	speaker.Play(chirp)
}

// Close 关闭扬声器
func (p *Player) Close() {
	if p != nil && p.ready {
		speaker.Close()
		p.ready = false
	}
}
