package config

const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Smiley Splash - Click the Smileys!"
	TPS          = 60

	// Spawning
	InitialSmileys = 8
	MaxSmileys     = 25
	SpawnInterval  = 180 // frames, ~3s at 60 TPS
	SpawnMargin    = 50

	// Smiley motion
	SmileyMinSize   = 25
	SmileyMaxSize   = 45
	SmileyMaxSpeed  = 2.0
	BounceDamping   = -0.8
	FloatStep       = 0.1
	FloatAmplitude  = 0.2
	ClickFrames     = 60
	PulseFrequency  = 0.3
	PulseAmplitude  = 5.0
	PulseGrowth     = 10.0
	RotationPerTick = 5.0

	// Particles
	BurstSize        = 8
	ParticleMaxSpeed = 4.0
	ParticleMinLife  = 30
	ParticleMaxLife  = 60
	ParticleMinSize  = 2
	ParticleMaxSize  = 6
	Gravity          = 0.1

	// Click sound
	SoundSampleRate = 22050
	SoundDuration   = 0.1 // seconds
	SoundFrequency  = 800.0
	SoundDecay      = 8.0
	SoundAmplitude  = 16000

	// UI
	TitleText  = "Click the Smileys!"
	TitleY     = 30
	TitleScale = 2.0
)
