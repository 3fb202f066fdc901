package canvas

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"strconv"
)

const (
	// MaxColourValue is the maximum channel value written to the PPM header
	MaxColourValue = 255
	// MaxLineLength bounds every line of PPM pixel data
	MaxLineLength = 70
)

// WritePPM writes the canvas as a plain-text (P3) PPM image
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	header := "P3\n" + strconv.Itoa(c.Width) + " " + strconv.Itoa(c.Height) + "\n" + strconv.Itoa(MaxColourValue) + "\n"
	if _, err := bw.WriteString(header); err != nil {
		return err
	}

	line := make([]byte, 0, MaxLineLength)
	var token []byte
	for y := 0; y < c.Height; y++ {
		line = line[:0]
		row := c.pixels[y*c.Width : (y+1)*c.Width]
		for _, px := range row {
			for _, channel := range [3]float64{px.Red, px.Green, px.Blue} {
				token = strconv.AppendInt(token[:0], int64(scaleChannel(channel)), 10)

				// Wrap before the number that would push the line past the limit
				if len(line) > 0 && len(line)+1+len(token) > MaxLineLength {
					if err := writeLine(bw, line); err != nil {
						return err
					}
					line = line[:0]
				}
				if len(line) > 0 {
					line = append(line, ' ')
				}
				line = append(line, token...)
			}
		}
		if err := writeLine(bw, line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// PPM returns the canvas encoded as a P3 image
func (c *Canvas) PPM() []byte {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail
	_ = c.WritePPM(&buf)
	return buf.Bytes()
}

func writeLine(w *bufio.Writer, line []byte) error {
	if _, err := w.Write(line); err != nil {
		return err
	}
	return w.WriteByte('\n')
}

// scaleChannel maps [0,1] to [0,255], rounding to nearest and clamping
func scaleChannel(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	scaled := math.Round(v * MaxColourValue)
	return int(max(0, min(MaxColourValue, scaled)))
}
