package game

import (
	"encoding/binary"
	"testing"

	"github.com/decker502/pixelgarden/pkg/sfx"
	"github.com/decker502/pixelgarden/pkg/types"
)

func TestRenderPCM(t *testing.T) {
	tests := []struct {
		name     string
		itemType types.ItemType
	}{
		{"树", types.ItemTree},
		{"花", types.ItemFlower},
		{"池塘", types.ItemPond},
		{"石头", types.ItemRock},
	}

	frames := sfx.SampleRate.N(sfx.ChirpDuration)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := sfx.Chirp(sfx.SampleRate, tt.itemType, 1)
			if err != nil {
				t.Fatalf("Chirp() error = %v", err)
			}
			data, err := RenderPCM(s)
			if err != nil {
				t.Fatalf("RenderPCM() error = %v", err)
			}
			if len(data) != frames*4 {
				t.Fatalf("len = %d, want %d", len(data), frames*4)
			}

			// 正弦波应有非零采样，且左右声道一致
			nonZero := false
			for i := 0; i+4 <= len(data); i += 4 {
				l := binary.LittleEndian.Uint16(data[i:])
				r := binary.LittleEndian.Uint16(data[i+2:])
				if l != r {
					t.Fatalf("frame %d: left %d != right %d", i/4, l, r)
				}
				if l != 0 {
					nonZero = true
				}
			}
			if !nonZero {
				t.Error("PCM 全为静音")
			}
		})
	}
}

func TestToInt16Clamp(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int16
	}{
		{"零", 0, 0},
		{"上限", 1, 32767},
		{"超出上限", 2, 32767},
		{"超出下限", -2, -32767},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toInt16(tt.in); got != tt.want {
				t.Errorf("toInt16(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestAudioManagerNilSafe(t *testing.T) {
	var am *AudioManager
	if am.PlayChirp(types.ItemTree) {
		t.Error("nil AudioManager 不应播放")
	}
}
