package engine

import (
	"math"

	"github.com/iburimskiy/sound-orbit/internal/config"
)

// Params are the per-tick render parameters. They are recomputed from
// scratch every tick and never stored between ticks.
type Params struct {
	L           float64 // master intensity, 0..MaxIntensity
	BaseGray    float64
	GlowGray    float64
	CoreRadius  float64
	OuterRadius float64
	RibbonBase  float64
	RibbonAmp   float64
	Speed       float64 // particle angular speed delta
	RadiusBoost float64
	Low         float64
	High        float64
}

// Intensity converts a smoothed level into the master intensity L.
func Intensity(level float64) float64 {
	return clamp(level*config.Gain, 0, config.MaxIntensity)
}

// MapParams derives render parameters from the current features and color phase.
func MapParams(level, phase, low, high float64) Params {
	L := Intensity(level)
	return Params{
		L:           L,
		BaseGray:    mapRange(math.Sin(phase), -1, 1, 160, 255),
		GlowGray:    mapRange(math.Sin(phase+math.Pi/2), -1, 1, 100, 255),
		CoreRadius:  150 + L*260,
		OuterRadius: 260 + L*120,
		RibbonBase:  280 + L*220,
		RibbonAmp:   60 + L*320,
		Speed:       0.002 + high*0.03 + L*0.015,
		RadiusBoost: low*100 + L*60,
		Low:         low,
		High:        high,
	}
}
