// Package clipboard holds the editor's in-process copy history.
package clipboard

// MaxEntries is the number of copies the ring remembers.
const MaxEntries = 10

// Ring stores a small history of copied or cut text. The newest entry is
// the one Paste uses until the ring is rotated. The zero value is empty and
// ready to use.
type Ring struct {
	// entries is ordered oldest first.
	entries []string
	// back counts how many steps Current is behind the newest entry.
	back int
}

// Push adds text as the newest entry and selects it. Empty text is
// ignored. Once MaxEntries are held the oldest entry is dropped.
func (r *Ring) Push(s string) {
	if s == "" {
		return
	}
	if len(r.entries) == MaxEntries {
		r.entries = append(r.entries[:0], r.entries[1:]...)
	}
	r.entries = append(r.entries, s)
	r.back = 0
}

// Rotate selects the next older entry, wrapping to the newest.
func (r *Ring) Rotate() bool { return r.step(1) }

// RotatePrev selects the next newer entry, wrapping to the oldest.
func (r *Ring) RotatePrev() bool { return r.step(-1) }

func (r *Ring) step(delta int) bool {
	n := len(r.entries)
	if n <= 1 {
		return false
	}
	r.back = ((r.back+delta)%n + n) % n
	return true
}

func (r *Ring) at(back int) string {
	n := len(r.entries)
	return r.entries[n-1-back%n]
}

// EntriesFromCurrent lists every entry in rotation order, starting with
// Current.
func (r *Ring) EntriesFromCurrent() []string {
	if len(r.entries) == 0 {
		return nil
	}
	out := make([]string, 0, len(r.entries))
	for i := range len(r.entries) {
		out = append(out, r.at(r.back+i))
	}
	return out
}

// Current returns the entry Paste would use, or "" when the ring is empty.
func (r *Ring) Current() string {
	if len(r.entries) == 0 {
		return ""
	}
	return r.at(r.back)
}

// Len returns the number of entries in the ring.
func (r *Ring) Len() int { return len(r.entries) }
