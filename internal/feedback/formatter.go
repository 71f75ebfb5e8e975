package feedback

import (
	"math"

	"github.com/ShindeShwetaK/Pitch-Perfect/internal/domain/entity"
	"github.com/ShindeShwetaK/Pitch-Perfect/internal/pipeline"
)

// Resolve maps raw classifier output to a label and confidence.
//
// A 2-vector is treated as [P(not high), P(high)]: the label follows
// the larger value and the confidence is that value. A single scalar
// is a sigmoid P(high): label High at >= 0.5, confidence the scalar or
// its complement. Any other length is a shape error. The confidence is
// rounded to 3 decimals only after the label is determined.
func Resolve(probs []float32) (string, float64, error) {
	switch len(probs) {
	case 2:
		label := entity.LabelNotHigh
		confidence := float64(probs[0])
		if probs[1] > probs[0] {
			label = entity.LabelHigh
			confidence = float64(probs[1])
		}
		return label, round3(confidence), nil
	case 1:
		v := float64(probs[0])
		if v >= 0.5 {
			return entity.LabelHigh, round3(v), nil
		}
		return entity.LabelNotHigh, round3(1 - v), nil
	default:
		return "", 0, &pipeline.OutputShapeError{Got: len(probs)}
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
