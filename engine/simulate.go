package engine

import "time"

// RunFor steps a virtual clock forward in increments of step until total has
// elapsed, draining the scheduler after every step the way the frame ticker
// does in a live session
// Returns the number of tasks executed
func RunFor(s *Scheduler, clock *VirtualClock, total, step time.Duration) int {
	if step <= 0 {
		step = total
	}
	executed := s.Run()
	for elapsed := time.Duration(0); elapsed < total; {
		d := step
		if elapsed+d > total {
			d = total - elapsed
		}
		clock.Advance(d)
		elapsed += d
		executed += s.Run()
	}
	return executed
}
