package config

const (
	WindowWidth  = 1024
	WindowHeight = 768

	// Audio input
	SampleRate   = 44100
	FFTSize      = 2048
	WaveformSize = 1024
	TapRingSize  = 8192
	// Analyser smoothing and decibel range for the byte spectrum
	SpectrumSmoothing = 0.9
	MinDecibels       = -100.0
	MaxDecibels       = -30.0
	SpectrumMax       = 255.0

	// Feature extraction
	LevelSmoothing = 0.4
	GateThreshold  = 0.022
	Gain           = 9.0
	MaxIntensity   = 2.5
	LowBandMin     = 60.0
	LowBandMax     = 250.0
	HighBandMin    = 3000.0
	HighBandMax    = 9000.0

	// Color breathing
	ColorSpeed = 0.002

	// Ribbon trail
	RibbonSteps = 360
	MaxHistory  = 28

	// Orbit particles
	ParticleCount = 140
	NoiseStep     = 0.01

	// Persistence-of-vision fade alpha
	TrailAlpha = 14

	// Button dimensions
	ButtonWidth  = 100
	ButtonHeight = 32
	ButtonX      = 12
	ButtonY      = 30
	ButtonGap    = 10

	SnapshotPrefix = "soft_error_card_"
)
