package entity

// Classification labels produced by the shot classifier.
const (
	LabelHigh    = "High"
	LabelNotHigh = "Not High"
)

// ValidLabel reports whether s is one of the two classifier labels.
func ValidLabel(s string) bool {
	return s == LabelHigh || s == LabelNotHigh
}

// Prediction is the result of classifying one clip. It is computed per
// request and never persisted.
type Prediction struct {
	Label      string  `json:"prediction"`
	Confidence float64 `json:"confidence"`
	Message    string  `json:"message"`
}

// AudioFeedback is a coaching message together with its synthesized
// speech, base64-encoded for transport.
type AudioFeedback struct {
	Message     string `json:"message"`
	AudioBase64 string `json:"audio_base64"`
}
