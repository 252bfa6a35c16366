package device

// Player streams a fixed track through a Device output callback,
// optionally looping with a gap of silent samples between repetitions.
type Player struct {
	Track []int32
	Gap   int  // silent samples appended after the track
	Loop  bool // restart after the gap

	pos int // position within track+gap
}

// Update fills one output buffer. It returns false once a non-looping
// track has been fully played.
func (p *Player) Update(out []int32) bool {
	total := len(p.Track) + p.Gap
	for i := range out {
		if p.pos >= total {
			if !p.Loop {
				cleari32(out[i:])
				return false
			}
			p.pos = 0
		}
		if p.pos < len(p.Track) {
			out[i] = p.Track[p.pos]
		} else {
			out[i] = 0
		}
		p.pos++
	}
	return true
}

func (p *Player) Reset() {
	p.pos = 0
}

// Recorder accumulates every input buffer it is fed.
type Recorder struct {
	Track []int32
}

func (r *Recorder) Update(in []int32) {
	r.Track = append(r.Track, in...)
}
