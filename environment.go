package thoughtforge

// Environment is the user-implemented simulation the session drives. On
// every step the session delivers the server's motor actions (keyed by the
// motor names declared in the specification) and expects back the resulting
// sensor readings (keyed by the declared sensor names).
//
// The first call of a run delivers all motors at 0.0. Returning an error
// ends the run and marks it failed.
type Environment interface {
	Update(motors map[string]float64) (map[string]float64, error)
}

// StartNotifier is implemented by environments that want a callback right
// after the server session is established and before the first Update.
// Typical use is lazy construction of the simulation world.
type StartNotifier interface {
	SimStarted()
}

// EndNotifier is implemented by environments that want a callback after the
// last Update of a run, regardless of how the run ended.
type EndNotifier interface {
	SimEnded()
}
