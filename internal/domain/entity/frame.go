package entity

// Every decoded frame is normalized to this square resolution with
// three 8-bit channels in red-green-blue order before it enters the
// feature pipeline.
const (
	FrameSize     = 224
	FrameChannels = 3
)

// Frame is a fixed-resolution RGB image. Pixels are stored row-major,
// channels interleaved (R, G, B). A Frame is immutable once produced.
type Frame struct {
	Pix []uint8
}

// NewFrame wraps a pixel buffer of exactly FrameSize*FrameSize*FrameChannels
// bytes. It does not copy.
func NewFrame(pix []uint8) Frame {
	return Frame{Pix: pix}
}

// At returns the value of channel c (0=R, 1=G, 2=B) at pixel (x, y).
func (f Frame) At(x, y, c int) uint8 {
	return f.Pix[(y*FrameSize+x)*FrameChannels+c]
}
