package entity

// FeatureSequence is a single-example batch of per-frame feature
// vectors, laid out row-major: Data[i*Width : (i+1)*Width] is the
// vector for step i. The implicit batch dimension is always 1.
type FeatureSequence struct {
	Steps int
	Width int
	Data  []float32
}

// Row returns the feature vector for step i without copying.
func (s *FeatureSequence) Row(i int) []float32 {
	return s.Data[i*s.Width : (i+1)*s.Width]
}
