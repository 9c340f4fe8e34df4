package ml

// standardScaler applies the standardization the model was trained with:
// subtract the per-feature mean, divide by the per-feature deviation. A zero
// deviation (a constant training column) divides by one instead.
type standardScaler struct {
	mean  []float64
	scale []float64
}

func newStandardScaler(a *ScalerArtifact) *standardScaler {
	return &standardScaler{mean: a.Mean, scale: a.Scale}
}

func (s *standardScaler) transform(features []float64) []float64 {
	out := make([]float64, len(features))
	for i, v := range features {
		scale := s.scale[i]
		if scale == 0 {
			scale = 1
		}
		out[i] = (v - s.mean[i]) / scale
	}
	return out
}
