package core

// FrameClock turns an absolute timestamp stream into per-frame deltas.
// Deltas are clamped to one second so a stall (breakpoint, window drag)
// does not launch physics and paths across the map on the next frame.
type FrameClock struct {
	lastFrame float64
	started   bool
}

// Tick advances the clock to now and returns the time since the previous
// Tick, clamped to 1.0. The first call returns zero.
func (c *FrameClock) Tick(now float64) float32 {
	if !c.started {
		c.started = true
		c.lastFrame = now
		return 0
	}

	delta := float32(now - c.lastFrame)
	c.lastFrame = now

	if delta > 1.0 {
		delta = 1.0
	}
	if delta < 0 {
		delta = 0
	}
	return delta
}

const fpsWindow = 128

// FPSSampler keeps a sliding window of the most recent frame rates for the
// debug overlay. Zero or negative deltas are skipped since they carry no
// rate information.
type FPSSampler struct {
	samples [fpsWindow]float32
	next    int
	count   int
}

func (s *FPSSampler) Sample(delta float32) {
	if delta <= 0 {
		return
	}
	s.samples[s.next] = 1.0 / delta
	s.next = (s.next + 1) % fpsWindow
	if s.count < fpsWindow {
		s.count++
	}
}

// Stats returns the minimum, maximum and mean frame rate over the current
// window. All three are zero before the first sample.
func (s *FPSSampler) Stats() (min, max, mean float32) {
	if s.count == 0 {
		return 0, 0, 0
	}

	min = s.samples[s.oldest()]
	max = min
	sum := float32(0)
	for i := 0; i < s.count; i++ {
		v := s.samples[(s.oldest()+i)%fpsWindow]
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	return min, max, sum / float32(s.count)
}

// Samples returns the window contents ordered oldest to newest.
func (s *FPSSampler) Samples() []float32 {
	out := make([]float32, s.count)
	for i := 0; i < s.count; i++ {
		out[i] = s.samples[(s.oldest()+i)%fpsWindow]
	}
	return out
}

func (s *FPSSampler) Count() int {
	return s.count
}

func (s *FPSSampler) oldest() int {
	if s.count < fpsWindow {
		return 0
	}
	return s.next
}
