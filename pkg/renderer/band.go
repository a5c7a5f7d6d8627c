package renderer

// Band is a range of whole canvas rows [MinY, MaxY) owned by a single worker
type Band struct {
	ID   int // Unique band identifier, top to bottom
	MinY int // First row (inclusive)
	MaxY int // Last row (exclusive)
}

// Rows returns the number of rows in the band
func (b Band) Rows() int {
	return b.MaxY - b.MinY
}

// NewBandGrid splits height rows into disjoint bands of at most bandHeight rows.
// A non-positive bandHeight puts every row in a single band.
func NewBandGrid(height, bandHeight int) []Band {
	if height <= 0 {
		return nil
	}
	if bandHeight <= 0 {
		bandHeight = height
	}

	numBands := (height + bandHeight - 1) / bandHeight // Ceiling division
	bands := make([]Band, 0, numBands)
	for i := 0; i < numBands; i++ {
		y0 := i * bandHeight
		y1 := min(y0+bandHeight, height) // Don't exceed canvas bounds
		bands = append(bands, Band{ID: i, MinY: y0, MaxY: y1})
	}
	return bands
}
