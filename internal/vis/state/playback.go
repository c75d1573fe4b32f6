package state

import "time"

// PlaybackState manages trace playback timing. Time is measured in step
// units: t=0 is the start pose, t=N means all N steps are committed.
type PlaybackState struct {
	CurrentTime float64 // Playback position in step units
	MaxTime     float64 // Step count of the trace
	Speed       float64 // Steps per second while playing
	Playing     bool
	lastUpdate  time.Time
}

// NewPlaybackState creates playback state for a trace of stepCount steps.
func NewPlaybackState(stepCount int) *PlaybackState {
	return &PlaybackState{
		MaxTime:    float64(stepCount),
		Speed:      2.0,
		lastUpdate: time.Now(),
	}
}

// TogglePlay toggles playback, restarting from the top when it already
// ran to the end.
func (p *PlaybackState) TogglePlay() {
	p.Playing = !p.Playing
	if p.Playing {
		p.lastUpdate = time.Now()
		if p.CurrentTime >= p.MaxTime {
			p.CurrentTime = 0
		}
	}
}

// Pause stops playback.
func (p *PlaybackState) Pause() {
	p.Playing = false
}

// Reset rewinds to the start pose.
func (p *PlaybackState) Reset() {
	p.CurrentTime = 0
	p.Playing = false
}

// Advance moves playback by the wall time elapsed since the last call.
func (p *PlaybackState) Advance() {
	if !p.Playing {
		return
	}

	now := time.Now()
	elapsed := now.Sub(p.lastUpdate).Seconds()
	p.lastUpdate = now

	p.CurrentTime += elapsed * p.Speed
	if p.CurrentTime >= p.MaxTime {
		p.CurrentTime = p.MaxTime
		p.Playing = false
	}
}

// SetTime clamps and sets the playback position.
func (p *PlaybackState) SetTime(t float64) {
	if t < 0 {
		t = 0
	}
	if t > p.MaxTime {
		t = p.MaxTime
	}
	p.CurrentTime = t
}

// StepForward pauses and snaps to the next whole step.
func (p *PlaybackState) StepForward() {
	p.Pause()
	next := float64(int(p.CurrentTime) + 1)
	p.SetTime(next)
}

// StepBack pauses and snaps to the previous whole step.
func (p *PlaybackState) StepBack() {
	p.Pause()
	cur := p.CurrentTime
	prev := float64(int(cur) - 1)
	if cur > float64(int(cur)) {
		// Mid-step: snap back to the step already committed.
		prev = float64(int(cur))
	}
	p.SetTime(prev)
}

// SetSpeed clamps and sets the playback speed in steps per second.
func (p *PlaybackState) SetSpeed(speed float64) {
	if speed < 0.25 {
		speed = 0.25
	}
	if speed > 16 {
		speed = 16
	}
	p.Speed = speed
}

// Progress returns playback progress in 0..1.
func (p *PlaybackState) Progress() float64 {
	if p.MaxTime <= 0 {
		return 0
	}
	return p.CurrentTime / p.MaxTime
}
