package viewer

// KeyEvent is a keydown reported by the page while the viewer is mounted.
// InputFocused is set when a text-input-like control had focus; shortcuts are
// suspended then so typing a page number does not also turn the page.
type KeyEvent struct {
	Key          string `json:"key"`
	InputFocused bool   `json:"input_focused"`
}

// Keyboard shortcuts. Values are DOM KeyboardEvent.key names.
var keyActions = map[string]func(*Coordinator){
	"ArrowLeft":  (*Coordinator).PreviousPage,
	"ArrowUp":    (*Coordinator).PreviousPage,
	"ArrowRight": (*Coordinator).NextPage,
	"ArrowDown":  (*Coordinator).NextPage,
	"+":          (*Coordinator).ZoomIn,
	"=":          (*Coordinator).ZoomIn,
	"-":          (*Coordinator).ZoomOut,
}

// HandleKey applies the shortcut bound to ev.Key. It returns true when the key
// was handled, in which case the client must suppress the browser's default
// action (scrolling) for it.
func (c *Coordinator) HandleKey(ev KeyEvent) bool {
	if ev.InputFocused || !c.mounted {
		return false
	}
	action, ok := keyActions[ev.Key]
	if !ok {
		return false
	}
	action(c)
	return true
}

// ShortcutKeys lists the keys HandleKey reacts to, for the client script.
func ShortcutKeys() []string {
	return []string{"ArrowLeft", "ArrowUp", "ArrowRight", "ArrowDown", "+", "=", "-"}
}
