package model

// defaultHistorySize keeps enough hashes to spot period 1 to 3 cycles
const defaultHistorySize = 5

// History remembers the hashes of recent generations so a run loop can tell
// when the board has settled into a still life or a short oscillator.
type History struct {
	size   int
	hashes []string
}

// NewHistory returns a History holding up to size hashes; size < 3 means the default
func NewHistory(size int) *History {
	if size < 3 {
		size = defaultHistorySize
	}
	return &History{size: size}
}

// Observe records g as the newest generation
func (h *History) Observe(g *Grid) {
	h.hashes = append(h.hashes, g.GetGridHash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether the newest generation repeats one of the three
// before it
func (h *History) IsStagnant() bool {
	n := len(h.hashes)
	if n < 2 {
		return false
	}
	return repeats(h.hashes[:n-1], h.hashes[n-1])
}

// repeats checks hash against the last three entries of hashes
func repeats(hashes []string, hash string) bool {
	for i := len(hashes) - 1; i >= 0 && i >= len(hashes)-3; i-- {
		if hashes[i] == hash {
			return true
		}
	}
	return false
}
