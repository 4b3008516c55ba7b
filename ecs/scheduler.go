package ecs

import "time"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// Scheduler runs the frame pipeline: systems run in registration order, so
// a system sees every change made by the ones before it in the same frame.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{systems: make([]System, 0, len(systems))}
	for _, system := range systems {
		if system != nil {
			s.systems = append(s.systems, system)
		}
	}
	return s
}

// Step advances the frame clock by dt and runs one frame.
func (s *Scheduler) Step(w *World, dt time.Duration) {
	w.Advance(dt)
	s.Update(w)
}

func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}

func (s *Scheduler) Len() int { return len(s.systems) }
