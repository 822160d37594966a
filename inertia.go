package scrollbox

// MaxSpeed is the per-event drag delta, in pixels, that yields the
// longest inertia. It also scales tick time into the decay budget.
const MaxSpeed = 1000

// inertiaEpsilon is the remaining budget below which inertia stops.
const inertiaEpsilon = 0.0001

// seedInertia converts the last drag delta into a decay budget.
//
// The normalized speed is mapped through the inverse quartic ease-out,
// so faster releases coast for longer. extraFirstEase is the ease value
// at the start of the decay; dividing by it makes the first inertia step
// equal the last drag delta.
func (b *ScrollBox) seedInertia() {
	speed := min(float64(absf(b.moveSpeedX))/MaxSpeed, 1)
	b.extraTime = ReverseEaseOutQuart(speed)
	b.extraFirstEase = EaseOutQuart(b.extraTime)
	if b.extraTime <= 0 {
		b.stopInertia()
		return
	}
	boxLogger.Debug("scrollbox: release",
		"speed", b.moveSpeedX,
		"extraTime", b.extraTime)
}

// stopInertia clears the velocity and the decay budget.
func (b *ScrollBox) stopInertia() {
	b.moveSpeedX = 0
	b.extraTime = 0
	b.extraFirstEase = 0
}

// Animation advances inertia by one frame. tickDelta is the host's frame
// delta in the same units on every call (1.0 per frame at the nominal
// rate is typical); negative deltas count as zero. It does nothing when
// no inertia is running.
func (b *ScrollBox) Animation(tickDelta float32) {
	if b.extraTime <= 0 {
		return
	}
	step := float64(b.moveSpeedX) * EaseOutQuart(b.extraTime) / b.extraFirstEase
	b.scrollBy(float32(step))
	b.extraTime -= float64(maxf(tickDelta, 0)) / MaxSpeed

	if b.extraTime <= inertiaEpsilon {
		b.stopInertia()
		boxLogger.Debug("scrollbox: inertia settled", "offset", b.Offset())
	}
}

// Velocity returns the last recorded drag delta.
func (b *ScrollBox) Velocity() float32 { return b.moveSpeedX }

// InertiaActive reports whether a post-release decay is running.
func (b *ScrollBox) InertiaActive() bool { return b.extraTime > 0 }

// InertiaRemaining returns the remaining decay budget in [0,1].
func (b *ScrollBox) InertiaRemaining() float64 { return b.extraTime }
