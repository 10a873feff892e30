package controller

// InBand reports whether a float offset lies within the grounded tolerance
// band, widened by vertical velocity. Rising faster than the top of the band
// raises it; falling faster than the bottom lowers it. This keeps the float
// spring's overshoot from ungrounding the controller at moderate speeds
// while a real fall or jump still registers. Pure function of its inputs.
func InBand(offset, upVelocity, minOffset, maxOffset float32) bool {
	max := maxOffset
	if upVelocity > maxOffset {
		max = maxOffset + upVelocity
	}
	min := minOffset
	if upVelocity < minOffset {
		min = minOffset + upVelocity
	}
	return offset >= min && offset <= max
}

// classifyGrounded derives this tick's grounded flag from the raw ground
// cast and the body's vertical velocity.
func classifyGrounded(s *State, body *BodyState) bool {
	sample, ok := s.Ground.Current()
	if !ok || !sample.Viable {
		return false
	}

	up := s.Config.Gravity.UpVector
	upVelocity := body.Velocity.Dot(up)
	gap := body.Position.Dot(up) - sample.Point.Dot(up)
	offset := s.Config.Float.Distance - gap

	return InBand(offset, upVelocity, s.Config.Float.MinOffset, s.Config.Float.MaxOffset)
}
