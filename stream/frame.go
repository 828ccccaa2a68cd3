package stream

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/tween"
)

// ErrFrameTooLarge is returned when a frame has more pixels than the wire
// format can count.
var ErrFrameTooLarge = errors.New("stream: frame too large")

// Frame represents a frame of RGB pixels to display on an ledrx device.
type Frame struct {
	Pixels []colorful.Color
}

var blendPixels = tween.Slice(tween.ColorHcl)

// NewFrame creates a black Frame of numPixels pixels.
func NewFrame(numPixels int) *Frame {
	return &Frame{Pixels: make([]colorful.Color, numPixels)}
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c colorful.Color) {
	for i := range f.Pixels {
		f.Pixels[i] = c
	}
}

// Tween merges two frames of the same size by blending each pixel in Hcl.
func (f *Frame) Tween(to *Frame, ratio float64) *Frame {
	return &Frame{Pixels: blendPixels(f.Pixels, to.Pixels, ratio)}
}

// MarshalBinary converts a Frame into binary data: a little endian uint16
// pixel count followed by one RGB triplet per pixel.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	if len(f.Pixels) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d pixels, at most %d", ErrFrameTooLarge, len(f.Pixels), math.MaxUint16)
	}

	data = make([]byte, 2, (len(f.Pixels)*3)+2)
	binary.LittleEndian.PutUint16(data, uint16(len(f.Pixels)))
	for _, p := range f.Pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
