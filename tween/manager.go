package tween

import "time"

// Manager steps every live tween once per Update. Tweens added from inside a
// callback start on the next Update.
type Manager struct {
	active  []*Tween
	pending []*Tween
	running bool
}

func NewManager() *Manager {
	return &Manager{}
}

// Add schedules t and returns it for chaining.
func (m *Manager) Add(t *Tween) *Tween {
	if m == nil || t == nil {
		return t
	}
	if m.running {
		m.pending = append(m.pending, t)
		return t
	}
	m.active = append(m.active, t)
	return t
}

// Update advances every tween by dt and drops finished ones.
func (m *Manager) Update(dt time.Duration) {
	if m == nil {
		return
	}
	m.running = true
	kept := m.active[:0]
	for _, t := range m.active {
		if !t.Step(dt) {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(m.active); i++ {
		m.active[i] = nil
	}
	m.active = kept
	m.running = false

	if len(m.pending) > 0 {
		m.active = append(m.active, m.pending...)
		m.pending = m.pending[:0]
	}
}

// Len reports the number of scheduled tweens.
func (m *Manager) Len() int {
	if m == nil {
		return 0
	}
	return len(m.active) + len(m.pending)
}

// KillAll stops every tween without completion callbacks.
func (m *Manager) KillAll() {
	if m == nil {
		return
	}
	for _, t := range m.active {
		t.Kill()
	}
	for _, t := range m.pending {
		t.Kill()
	}
	m.active = nil
	m.pending = nil
}
