package polar

// Spiral samples the Archimedean spiral r = θ·RadialStep/AngularStep.
// Point i sits at polar (i·RadialStep, i·AngularStep).
type Spiral struct {
	RadialStep  float64
	AngularStep float64
}

// NewSpiral builds the spiral described by the settings.
func NewSpiral(s Settings) Spiral {
	return Spiral{RadialStep: s.RadialStep, AngularStep: s.AngularStep}
}

// Point returns sample i scaled by zoom.
func (sp Spiral) Point(i int, zoom float64) Point {
	fi := float64(i)
	return PolarToCartesian(fi*sp.RadialStep, fi*sp.AngularStep).Scale(zoom)
}

// Generate returns the first n samples scaled by zoom.
// Identical arguments always produce identical curves.
func (sp Spiral) Generate(n int, zoom float64) []Point {
	return sp.AppendPoints(nil, n, zoom)
}

// AppendPoints appends the first n samples scaled by zoom to dst.
func (sp Spiral) AppendPoints(dst []Point, n int, zoom float64) []Point {
	if n <= 0 {
		return dst
	}
	if cap(dst)-len(dst) < n {
		grown := make([]Point, len(dst), len(dst)+n)
		copy(grown, dst)
		dst = grown
	}
	for i := 0; i < n; i++ {
		dst = append(dst, sp.Point(i, zoom))
	}
	return dst
}
