// Package clock formats the IST wall clock shown in the corner and schedules
// its glitch flicker.
package clock

import "time"

const (
	RefreshInterval = time.Second

	glitchChance    = 0.3
	glitchEveryMin  = 2 * time.Second
	glitchEverySpan = 3 * time.Second
	glitchForMin    = 200 * time.Millisecond
	glitchForSpan   = 300 * time.Millisecond
)

// Kolkata returns Asia/Kolkata, or a fixed +05:30 zone when tzdata is missing.
func Kolkata() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+1800)
	}
	return loc
}

// Format renders t as "YYYY-MM-DD HH:MM:SS IST" in loc.
func Format(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = Kolkata()
	}
	return t.In(loc).Format("2006-01-02 15:04:05") + " IST"
}

// Rand is the randomness the glitch scheduler draws from.
type Rand interface {
	Float64() float64
}

// Widget keeps the displayed clock text and glitch state. Tick is called
// once per frame with the frame delta.
type Widget struct {
	Now func() time.Time

	loc      *time.Location
	rng      Rand
	text     string
	refresh  time.Duration
	every    time.Duration
	sinceTry time.Duration
	glitch   time.Duration
}

func NewWidget(now func() time.Time, loc *time.Location, rng Rand) *Widget {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = Kolkata()
	}
	w := &Widget{Now: now, loc: loc, rng: rng}
	w.every = glitchEveryMin + scale(glitchEverySpan, w.roll())
	w.text = Format(now(), loc)
	return w
}

func (w *Widget) roll() float64 {
	if w.rng == nil {
		return 1
	}
	return w.rng.Float64()
}

func scale(d time.Duration, f float64) time.Duration {
	return time.Duration(float64(d) * f)
}

// Tick advances the refresh and glitch timers.
func (w *Widget) Tick(dt time.Duration) {
	if w == nil || dt <= 0 {
		return
	}
	w.refresh += dt
	if w.refresh >= RefreshInterval {
		w.refresh %= RefreshInterval
		w.text = Format(w.Now(), w.loc)
	}

	if w.glitch > 0 {
		w.glitch -= dt
		if w.glitch < 0 {
			w.glitch = 0
		}
	}
	w.sinceTry += dt
	for w.sinceTry >= w.every {
		w.sinceTry -= w.every
		if w.roll() < glitchChance {
			w.glitch = glitchForMin + scale(glitchForSpan, w.roll())
		}
	}
}

func (w *Widget) Text() string           { return w.text }
func (w *Widget) Glitching() bool        { return w.glitch > 0 }
func (w *Widget) Interval() time.Duration { return w.every }
