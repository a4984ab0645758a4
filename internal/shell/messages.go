package shell

import "github.com/ziadkadry99/studydeck/internal/events"

// Message is a request passed between pages through the shell. Delivery is
// fire-and-forget: there is no acknowledgement and a message whose payload no
// longer resolves is ignored.
type Message interface {
	target() View
	deliver(s *Shell)
}

// OpenModule asks the modules page to open one module's viewer.
type OpenModule struct {
	ID int
}

func (OpenModule) target() View { return ViewModules }

func (m OpenModule) deliver(s *Shell) {
	if !s.openModule(m.ID) {
		return
	}
	if s.opts.Publisher != nil {
		id := m.ID
		s.opts.Publisher.PublishAfter(s.id, events.Event{Type: events.TypeOpenModule, ModuleID: &id}, s.opts.OpenDelay)
	}
}
