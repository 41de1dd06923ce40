package playlist

import (
	"errors"
	"math/rand/v2"
)

// Sentinel errors for indexed access and navigation.
var (
	ErrEmptyPlaylist   = errors.New("playlist is empty")
	ErrIndexOutOfRange = errors.New("position is out of range")
)

// Playlist holds an ordered collection of tracks plus the selection cursor.
//
// Tracks keep their insertion order. Navigation follows a separate play
// order, a permutation of track indices that stays the identity until
// Shuffle is called. The cursor points into the play order; -1 means
// nothing is selected.
type Playlist struct {
	tracks   []Track
	order    []int
	current  int // index into order, -1 if nothing selected
	repeat   RepeatMode
	shuffled bool
	rng      *rand.Rand
}

// New creates a playlist holding the given tracks.
func New(tracks ...Track) *Playlist {
	p := &Playlist{
		tracks:  make([]Track, 0),
		order:   make([]int, 0),
		current: -1,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	p.Add(tracks...)
	return p
}

// Seed makes subsequent shuffles deterministic.
func (p *Playlist) Seed(seed uint64) {
	p.rng = rand.New(rand.NewPCG(seed, seed))
}

// Add appends tracks to the playlist. Duplicates are allowed.
// Adding to an empty playlist selects the first added track.
// While shuffle is on, new tracks enter the play order at random positions
// without moving the selected track.
func (p *Playlist) Add(tracks ...Track) {
	for _, t := range tracks {
		id := len(p.tracks)
		p.tracks = append(p.tracks, t)

		if p.shuffled {
			at := p.rng.IntN(len(p.order) + 1)
			p.order = append(p.order, 0)
			copy(p.order[at+1:], p.order[at:])
			p.order[at] = id
			if p.current >= 0 && at <= p.current {
				p.current++
			}
		} else {
			p.order = append(p.order, id)
		}

		if len(p.tracks) == 1 {
			p.current = 0
		}
	}
}

// Remove deletes the track at the given position (insertion order, negative
// values count from the end) and returns it.
// The selected track stays selected; removing it selects the next track in
// play order, or the last one when it was already last.
func (p *Playlist) Remove(pos int) (Track, error) {
	id, err := p.normalize(pos)
	if err != nil {
		return Track{}, err
	}
	removed := p.tracks[id]

	currentID := -1
	if p.current >= 0 {
		currentID = p.order[p.current]
	}

	p.tracks = append(p.tracks[:id], p.tracks[id+1:]...)

	// Drop the removed id from the play order and shift higher ids down.
	next := p.order[:0]
	for _, t := range p.order {
		if t == id {
			continue
		}
		if t > id {
			t--
		}
		next = append(next, t)
	}
	p.order = next

	switch {
	case len(p.tracks) == 0:
		p.current = -1
	case currentID < 0:
		// nothing selected, nothing to follow
	case currentID == id:
		// The cursor keeps its play-order position, now occupied by the
		// following track. Clamp when the removed track was last.
		if p.current >= len(p.order) {
			p.current = len(p.order) - 1
		}
	default:
		if currentID > id {
			currentID--
		}
		p.current = p.indexInOrder(currentID)
	}

	return removed, nil
}

// Current returns the selected track, or nil if nothing is selected.
func (p *Playlist) Current() *Track {
	if p.current < 0 || p.current >= len(p.order) {
		return nil
	}
	return &p.tracks[p.order[p.current]]
}

// CurrentIndex returns the insertion-order index of the selected track,
// -1 if nothing is selected.
func (p *Playlist) CurrentIndex() int {
	if p.current < 0 || p.current >= len(p.order) {
		return -1
	}
	return p.order[p.current]
}

// Next advances the selection by one play-order step and returns the new
// track. Under RepeatOne the selection does not move. At the end of the
// play order, RepeatAll wraps to the first track while RepeatOff clears
// the selection and returns (nil, nil): playback has run out. A later
// call starts over from the first track.
func (p *Playlist) Next() (*Track, error) {
	if len(p.order) == 0 {
		return nil, ErrEmptyPlaylist
	}

	switch {
	case p.repeat == RepeatOne:
		if p.current < 0 {
			p.current = 0
		}
	case p.current < len(p.order)-1:
		p.current++
	case p.repeat == RepeatAll:
		p.current = 0
	default:
		p.current = -1
		return nil, nil
	}

	return p.Current(), nil
}

// Previous moves the selection back one play-order step and returns the
// new track. Under RepeatOne the selection does not move. At the first
// track, RepeatAll wraps to the last one while RepeatOff keeps the
// selection in place and returns (nil, nil).
func (p *Playlist) Previous() (*Track, error) {
	if len(p.order) == 0 {
		return nil, ErrEmptyPlaylist
	}

	switch {
	case p.repeat == RepeatOne:
		if p.current < 0 {
			p.current = 0
		}
	case p.current > 0:
		p.current--
	case p.repeat == RepeatAll:
		p.current = len(p.order) - 1
	default:
		return nil, nil
	}

	return p.Current(), nil
}

// HasNext reports whether Next would return a track.
func (p *Playlist) HasNext() bool {
	if len(p.order) == 0 {
		return false
	}
	if p.repeat != RepeatOff {
		return true
	}
	return p.current < len(p.order)-1
}

// JumpTo selects the track at the given position (insertion order,
// negative values count from the end) and returns it.
func (p *Playlist) JumpTo(pos int) (*Track, error) {
	id, err := p.normalize(pos)
	if err != nil {
		return nil, err
	}
	p.current = p.indexInOrder(id)
	return p.Current(), nil
}

// At returns the track at the given position in insertion order.
// Negative values count from the end.
func (p *Playlist) At(pos int) (Track, error) {
	id, err := p.normalize(pos)
	if err != nil {
		return Track{}, err
	}
	return p.tracks[id], nil
}

// Find returns the insertion-order index of the first track with the given
// path, -1 if absent.
func (p *Playlist) Find(path string) int {
	for i := range p.tracks {
		if p.tracks[i].Path == path {
			return i
		}
	}
	return -1
}

// Contains reports whether a track with the given path is in the playlist.
func (p *Playlist) Contains(path string) bool {
	return p.Find(path) >= 0
}

// Move moves the track at src to dst in insertion order. Negative values
// count from the end. The play order keeps the same track sequence and the
// selected track stays selected.
func (p *Playlist) Move(src, dst int) error {
	from, err := p.normalize(src)
	if err != nil {
		return err
	}
	to, err := p.normalize(dst)
	if err != nil {
		return err
	}
	if from == to {
		return nil
	}

	track := p.tracks[from]
	p.tracks = append(p.tracks[:from], p.tracks[from+1:]...)
	p.tracks = append(p.tracks[:to], append([]Track{track}, p.tracks[to:]...)...)

	// Remap ids so the play order keeps referring to the same tracks.
	for i, id := range p.order {
		switch {
		case id == from:
			p.order[i] = to
		case from < to && id > from && id <= to:
			p.order[i] = id - 1
		case to < from && id >= to && id < from:
			p.order[i] = id + 1
		}
	}

	return nil
}

// SetRepeat sets the repeat mode. The selection does not move.
func (p *Playlist) SetRepeat(mode RepeatMode) {
	p.repeat = mode
}

// Repeat returns the current repeat mode.
func (p *Playlist) Repeat() RepeatMode {
	return p.repeat
}

// CycleRepeat advances the repeat mode through off, all, one and returns
// the new mode.
func (p *Playlist) CycleRepeat() RepeatMode {
	p.repeat = p.repeat.Cycle()
	return p.repeat
}

// Shuffle permutes the play order. The selected track keeps its play-order
// position, so Current is unchanged. Insertion order is untouched.
func (p *Playlist) Shuffle() {
	p.shuffled = true
	if len(p.order) < 2 {
		return
	}

	currentID := -1
	if p.current >= 0 {
		currentID = p.order[p.current]
	}

	rest := make([]int, 0, len(p.order))
	for _, id := range p.order {
		if id != currentID {
			rest = append(rest, id)
		}
	}
	p.rng.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})

	if currentID >= 0 {
		rest = append(rest, 0)
		copy(rest[p.current+1:], rest[p.current:])
		rest[p.current] = currentID
	}
	p.order = rest
}

// Unshuffle restores the insertion order as the play order. The selected
// track stays selected.
func (p *Playlist) Unshuffle() {
	p.shuffled = false

	currentID := -1
	if p.current >= 0 {
		currentID = p.order[p.current]
	}

	p.order = p.order[:0]
	for id := range p.tracks {
		p.order = append(p.order, id)
	}

	if currentID >= 0 {
		p.current = currentID
	}
}

// ToggleShuffle flips between shuffled and linear play order and reports
// the new state.
func (p *Playlist) ToggleShuffle() bool {
	if p.shuffled {
		p.Unshuffle()
	} else {
		p.Shuffle()
	}
	return p.shuffled
}

// Shuffled reports whether shuffle is on.
func (p *Playlist) Shuffled() bool {
	return p.shuffled
}

// Clear removes all tracks and clears the selection.
// Repeat and shuffle are settings, not contents; they survive.
func (p *Playlist) Clear() {
	p.tracks = p.tracks[:0]
	p.order = p.order[:0]
	p.current = -1
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// IsEmpty returns true if the playlist has no tracks.
func (p *Playlist) IsEmpty() bool {
	return len(p.tracks) == 0
}

// Tracks returns a copy of all tracks in insertion order.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// OrderView returns a copy of all tracks in play order.
func (p *Playlist) OrderView() []Track {
	result := make([]Track, 0, len(p.order))
	for _, id := range p.order {
		result = append(result, p.tracks[id])
	}
	return result
}

// Order returns a copy of the play order as insertion-order indices.
func (p *Playlist) Order() []int {
	result := make([]int, len(p.order))
	copy(result, p.order)
	return result
}

// normalize resolves a possibly negative position to an insertion-order
// index, validating bounds.
func (p *Playlist) normalize(pos int) (int, error) {
	if len(p.tracks) == 0 {
		return 0, ErrEmptyPlaylist
	}
	if pos < 0 {
		pos += len(p.tracks)
	}
	if pos < 0 || pos >= len(p.tracks) {
		return 0, ErrIndexOutOfRange
	}
	return pos, nil
}

// indexInOrder returns the play-order position of an insertion-order index.
func (p *Playlist) indexInOrder(id int) int {
	for pos, t := range p.order {
		if t == id {
			return pos
		}
	}
	return -1
}
