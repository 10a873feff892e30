package controller

// GroundPhase is the retention state of the viable-ground cache.
type GroundPhase uint8

const (
	// GroundNone means no viable ground is known.
	GroundNone GroundPhase = iota
	// GroundLast means the cached ground is stale but kept for grace, so a
	// single missed cast over a crack or seam does not flicker consumers.
	GroundLast
	// GroundCurrent means the cached ground was confirmed this tick.
	GroundCurrent
)

// GroundCache retains the current raw cast alongside the last viable ground.
// The raw sample is replaced wholesale every tick; the viable sample only
// demotes to GroundLast on a missed cast and clears when the body has been
// airborne with no contact at all.
type GroundCache struct {
	current    GroundSample
	hasCurrent bool

	viable GroundSample
	phase  GroundPhase
}

// Update feeds the cache one tick's cast result.
func (c *GroundCache) Update(sample GroundSample, ok bool) {
	c.current, c.hasCurrent = sample, ok
	if ok {
		if sample.Viable {
			c.viable = sample
			c.phase = GroundCurrent
		}
		return
	}
	if c.phase == GroundCurrent {
		c.phase = GroundLast
	}
}

// Clear drops everything, including the archived ground.
func (c *GroundCache) Clear() {
	*c = GroundCache{}
}

// Current returns this tick's raw cast result, viable or not.
func (c *GroundCache) Current() (GroundSample, bool) {
	return c.current, c.hasCurrent
}

// Viable returns the viable ground confirmed this tick.
func (c *GroundCache) Viable() (GroundSample, bool) {
	if c.phase == GroundCurrent {
		return c.viable, true
	}
	return GroundSample{}, false
}

// Last returns the most recent viable ground, including the archived one.
func (c *GroundCache) Last() (GroundSample, bool) {
	if c.phase == GroundNone {
		return GroundSample{}, false
	}
	return c.viable, true
}

// Touching reports whether viable ground was confirmed this tick.
func (c *GroundCache) Touching() bool {
	return c.phase == GroundCurrent
}

// Phase returns the cache retention phase.
func (c *GroundCache) Phase() GroundPhase {
	return c.phase
}
