package config

import (
	_ "embed"
)

//go:embed defaults/orbit.yaml
var defaultOrbitYAML []byte

// DefaultOrbitConfig returns the hardcoded Orbit configuration.
// It matches defaults/orbit.yaml and is used when the embedded file is unusable.
func DefaultOrbitConfig() OrbitConfig {
	return OrbitConfig{
		Bird: OrbitBird{
			Gravity:         -6, // -0.1 per frame at 60fps
			Lift:            50,
			AngularRate:     0.5,
			VelocityFloor:   -500,
			VelocityCeiling: 400,
			InitialRadius:   100,
			InitialAngle:    0,
			HitRadius:       15,
			ScaleHitRadius:  true,
		},
		Curve: OrbitCurve{
			Points:      2000,
			RadialStep:  5,
			AngularStep: 0.1,
		},
		Zoom: OrbitZoom{
			Floor:       0.1,
			Rate:        0.01,
			RecoverRate: 0.5,
		},
		Rules: OrbitRules{
			CollisionPolicy: "segments",
			OnCollision:     "flag",
			Lives:           3,
			MaxStep:         0.25,
		},
		Modes: map[string]OrbitMode{
			ModeClassic: {Title: "Orbit"},
			ModePulse:   {Title: "Orbit: Pulse", Pulse: ptr(true)},
			ModeRewind:  {Title: "Orbit: Rewind", OnCollision: ptr("reset")},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 60,
			},
			Scaling: ScalingConfig{
				PaceMultiplier: 1.0,
			},
		},
	}
}

// DefaultOrbitYAML returns the embedded default YAML.
func DefaultOrbitYAML() []byte {
	return defaultOrbitYAML
}

func ptr[T any](v T) *T {
	return &v
}
