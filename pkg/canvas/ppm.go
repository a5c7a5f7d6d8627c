package canvas

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"strconv"
)

const (
	// MaxChannelValue is the maxval written to the P3 header
	MaxChannelValue = 255
	// MaxLineLength is the longest data line the encoder emits
	MaxLineLength = 70
)

// Channel converts a float channel to an integer in [0, 255].
// The input is clamped to [0, 1] before scaling and the result is clamped
// again after rounding.
func Channel(v float64) int {
	v = max(0, min(1, v))
	n := int(math.Round(v * MaxChannelValue))
	return max(0, min(MaxChannelValue, n))
}

// PPM returns the canvas encoded as a plain-text P3 image
func (c *Canvas) PPM() []byte {
	var buf bytes.Buffer
	buf.Grow(c.width * c.height * 12)
	// bytes.Buffer writes never fail
	_ = c.WritePPM(&buf)
	return buf.Bytes()
}

// WritePPM writes the canvas as a P3 image: a three line header followed by
// the pixels in row-major order. Every row starts on a new line and rows are
// wrapped at value boundaries so that no line exceeds MaxLineLength. The
// output ends with a newline.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("P3\n")
	bw.WriteString(strconv.Itoa(c.width))
	bw.WriteByte(' ')
	bw.WriteString(strconv.Itoa(c.height))
	bw.WriteByte('\n')
	bw.WriteString(strconv.Itoa(MaxChannelValue))
	bw.WriteByte('\n')

	line := make([]byte, 0, MaxLineLength)
	for y := 0; y < c.height; y++ {
		line = line[:0]
		for _, px := range c.pixels[y*c.width : (y+1)*c.width] {
			for _, v := range [3]float64{px.R, px.G, px.B} {
				line = appendValue(bw, line, Channel(v))
			}
		}
		bw.Write(line)
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// appendValue adds n to the current line, flushing the line to bw first if
// n would push it past MaxLineLength
func appendValue(bw *bufio.Writer, line []byte, n int) []byte {
	var digits [3]byte
	token := strconv.AppendInt(digits[:0], int64(n), 10)

	if len(line) > 0 && len(line)+1+len(token) > MaxLineLength {
		bw.Write(line)
		bw.WriteByte('\n')
		line = line[:0]
	}
	if len(line) > 0 {
		line = append(line, ' ')
	}
	return append(line, token...)
}
