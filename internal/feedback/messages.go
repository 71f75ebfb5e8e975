package feedback

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/ShindeShwetaK/Pitch-Perfect/internal/domain/entity"
)

// Coaching messages are grouped into confidence bands per label. All
// messages within a band are interchangeable; the picker draws one
// uniformly at random.
type band struct {
	above    float64
	messages []string
}

var highBands = []band{
	{0.85, []string{
		"Outstanding shot! That's world class technique! Keep this up and you'll master it in no time.",
		"Brilliant execution! Your form is exceptional. Maintain this consistency for better results.",
		"Excellent shot! That's top-tier technique. Focus on repeating this motion for muscle memory.",
		"Perfect execution! Your timing and balance are spot on. Try to replicate this shot every time.",
		"Fantastic shot! World class form right there. Remember to keep your head still and follow through consistently.",
	}},
	{0.7, []string{
		"Great shot! Very well executed. To improve further, focus on maintaining balance throughout the shot.",
		"Solid shot! Good technique there. Next time, try to keep your front foot steady and extend your arms more.",
		"Well done! That was a clean shot. Work on keeping your head position consistent for even better results.",
		"Nice shot! Your form is improving. Focus on transferring weight smoothly from back foot to front foot.",
		"Good execution! Keep it up. To enhance your shot, maintain a stable base and follow through completely.",
	}},
	{0.6, []string{
		"Good attempt! You're showing excellent form. Next time, work on timing your shot better and keep your eyes on the ball longer.",
		"Decent shot! Your technique is coming along. Try to keep your back straight and balance centered for more power.",
		"Not bad! There's potential here. Focus on keeping your front leg steady and transferring your weight forward smoothly.",
		"Good effort! You're getting the basics right. Improve by maintaining balance and following through with your swing.",
		"Nice try! Your form is developing. Next time, keep your head still and ensure a complete follow-through for better control.",
	}},
	{math.Inf(-1), []string{
		"Good attempt! You're on the right track. Focus on maintaining balance and keeping your front foot planted for better stability.",
		"Keep practicing! Your technique is improving. Try to keep your head still and extend your arms fully during the shot.",
		"Not bad! You're showing promise. Work on timing and ensure you're transferring your weight correctly from back to front.",
		"Good effort! With more practice, you'll improve. Focus on keeping your eyes on the ball and following through completely.",
		"You're getting there! Maintain a steady base and work on your follow-through to make this shot even better next time.",
	}},
}

var notHighBands = []band{
	{0.6, []string{
		"Almost there! Your timing needs work. Try to keep your front foot steady and transfer weight more smoothly next time.",
		"Close one! Focus on balance and timing. Keep your head still and maintain a stable base throughout the shot.",
		"Good effort, but timing is off! Next time, work on keeping your eyes on the ball and ensuring a complete follow-through.",
		"Almost got it! Improve by keeping your front leg stable and transferring weight from back foot to front foot more effectively.",
		"Not quite! Your balance needs improvement. Focus on maintaining a steady base and keeping your head position consistent.",
	}},
	{0.4, []string{
		"That was decent, but could be smoother. Focus on maintaining balance throughout the shot and keeping your front foot planted.",
		"Needs improvement. Work on your timing and ensure you're transferring weight correctly. Keep your head still and eyes on the ball.",
		"Room for improvement here. Try to maintain a stable base and follow through completely. Keep practicing your balance.",
		"Could be better! Focus on keeping your front leg steady and transferring weight smoothly. Work on your follow-through technique.",
		"Not quite there yet. Improve by maintaining balance, keeping your head position consistent, and ensuring a complete swing follow-through.",
	}},
	{math.Inf(-1), []string{
		"Needs improvement. Focus on balance and follow through. Keep your front foot steady and transfer weight smoothly from back to front.",
		"Work on your technique. Maintain a stable base, keep your head still, and ensure you're following through completely with your shot.",
		"Practice makes perfect! Focus on keeping your balance centered, maintaining a steady front leg, and completing your follow-through.",
		"Keep practicing! Improve by maintaining balance throughout the shot, keeping your eyes on the ball, and ensuring a smooth weight transfer.",
		"Needs work. Focus on balance first, then work on keeping your front foot planted and transferring weight from back to front smoothly.",
	}},
}

// TemplatesFor returns the message set for the resolved label and
// confidence band. The returned slice must not be modified.
func TemplatesFor(label string, confidence float64) []string {
	bands := notHighBands
	if label == entity.LabelHigh {
		bands = highBands
	}
	for _, b := range bands {
		if confidence > b.above {
			return b.messages
		}
	}
	return bands[len(bands)-1].messages
}

// Picker selects a coaching message uniformly at random from the band
// matching a prediction. The random source is seedable so tests can
// pin the choice; seed 0 seeds from the clock.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewPicker(seed int64) *Picker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Picker{rng: rand.New(rand.NewSource(seed))}
}

func (p *Picker) Message(label string, confidence float64) string {
	templates := TemplatesFor(label, confidence)
	p.mu.Lock()
	defer p.mu.Unlock()
	return templates[p.rng.Intn(len(templates))]
}
