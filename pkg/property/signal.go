package property

// Signal is a named notification slot on a widget item. At most one handler
// is attached at a time; emitting with no handler is a no-op.
//
// Like Property, the zero value is ready to use so items can embed signals
// directly in their struct layout.
type Signal struct {
	handler func()
}

// SetHandler installs the handler, replacing any previous one.
// Passing nil detaches.
func (s *Signal) SetHandler(handler func()) {
	s.handler = handler
}

// Emit invokes the attached handler, if any.
func (s *Signal) Emit() {
	if s.handler != nil {
		s.handler()
	}
}
