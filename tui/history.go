// Package tui provides a Bubble Tea terminal UI for the escape game engine.
package tui

// History is a fixed-capacity ring of past commands with cursor-based
// navigation. The cursor counts steps back from the newest entry; -1 means
// the player is typing fresh input.
type History struct {
	buf    []string
	head   int // index of the oldest entry
	count  int
	cursor int
}

// NewHistory creates a history ring with the given capacity.
func NewHistory(max int) *History {
	if max < 1 {
		max = 1
	}
	return &History{
		buf:    make([]string, max),
		cursor: -1,
	}
}

// Push records a command. Consecutive duplicates are skipped; once the ring
// is full the oldest entry is overwritten.
func (h *History) Push(cmd string) {
	if h.count > 0 && h.at(0) == cmd {
		return
	}
	if h.count < len(h.buf) {
		h.buf[(h.head+h.count)%len(h.buf)] = cmd
		h.count++
		return
	}
	h.buf[h.head] = cmd
	h.head = (h.head + 1) % len(h.buf)
}

// at returns the entry n steps back from the newest.
func (h *History) at(n int) string {
	return h.buf[(h.head+h.count-1-n)%len(h.buf)]
}

// Prev steps the cursor toward older entries and returns the entry there.
// Returns ("", false) when the history is empty; at the oldest entry the
// cursor stays put.
func (h *History) Prev() (string, bool) {
	if h.count == 0 {
		return "", false
	}
	if h.cursor < h.count-1 {
		h.cursor++
	}
	return h.at(h.cursor), true
}

// Next steps the cursor back toward the newest entry. Returns ("", false)
// once it moves past the newest, leaving the player on fresh input.
func (h *History) Next() (string, bool) {
	if h.cursor == -1 {
		return "", false
	}
	h.cursor--
	if h.cursor < 0 {
		h.cursor = -1
		return "", false
	}
	return h.at(h.cursor), true
}

// ResetCursor returns the cursor to the fresh-input state.
func (h *History) ResetCursor() {
	h.cursor = -1
}
