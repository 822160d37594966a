package scrollbox

// EventKind identifies an input event delivered to a ScrollBox.
type EventKind int

const (
	EventNone EventKind = iota
	EventMouseDown
	EventTouchStart
	EventMouseMove
	EventTouchMove
	EventMouseUp
	EventTouchEnd
	EventMouseUpOutside  // Release away from the box after a press on it
	EventTouchEndOutside // Touch lifted away from the box after starting on it
	EventWheel
	eventKindCount
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventMouseDown:
		return "mousedown"
	case EventTouchStart:
		return "touchstart"
	case EventMouseMove:
		return "mousemove"
	case EventTouchMove:
		return "touchmove"
	case EventMouseUp:
		return "mouseup"
	case EventTouchEnd:
		return "touchend"
	case EventMouseUpOutside:
		return "mouseupoutside"
	case EventTouchEndOutside:
		return "touchendoutside"
	case EventWheel:
		return "wheel"
	default:
		return "none"
	}
}

// Event is a pointer or wheel event.
// Pointer events read ClientX; wheel events read DeltaX, where a positive
// delta scrolls the content toward the left.
type Event struct {
	Kind    EventKind
	ClientX float32
	DeltaX  float32
}

// inputHandler applies one event kind to a box.
type inputHandler func(b *ScrollBox, ev Event)

// inputHandlers maps each event kind to its handler. Mouse and touch
// variants share handlers.
var inputHandlers = [eventKindCount]inputHandler{
	EventMouseDown:       (*ScrollBox).onDown,
	EventTouchStart:      (*ScrollBox).onDown,
	EventMouseMove:       (*ScrollBox).onMove,
	EventTouchMove:       (*ScrollBox).onMove,
	EventMouseUp:         (*ScrollBox).onUp,
	EventTouchEnd:        (*ScrollBox).onUp,
	EventMouseUpOutside:  (*ScrollBox).onUp,
	EventTouchEndOutside: (*ScrollBox).onUp,
	EventWheel:           (*ScrollBox).onWheel,
}

// Dispatch applies ev to the box and reports whether the box consumes
// events of that kind. Hosts use the result to suppress their default
// scroll or selection behaviour.
func (b *ScrollBox) Dispatch(ev Event) bool {
	if ev.Kind <= EventNone || ev.Kind >= eventKindCount {
		return false
	}
	h := inputHandlers[ev.Kind]
	if h == nil {
		return false
	}
	h(b, ev)
	return true
}

// onDown engages dragging. A second press while engaged is ignored.
func (b *ScrollBox) onDown(ev Event) {
	if b.drag.active {
		return
	}
	b.drag.active = true
	b.drag.startX = ev.ClientX
	if b.cancelOnPress {
		b.stopInertia()
	}
}

// onMove scrolls by the delta since the previous pointer event and
// records it as the release velocity.
func (b *ScrollBox) onMove(ev Event) {
	if !b.drag.active {
		return
	}
	moveX := ev.ClientX - b.drag.startX
	b.scrollBy(moveX)
	b.moveSpeedX = moveX
	b.drag.startX = ev.ClientX
}

// onUp releases the drag and starts inertia from the last move delta.
func (b *ScrollBox) onUp(Event) {
	if !b.drag.active {
		return
	}
	b.drag.active = false
	b.seedInertia()
}

// onWheel scrolls by the wheel delta whatever the drag state.
// Wheel input never starts inertia.
func (b *ScrollBox) onWheel(ev Event) {
	b.scrollBy(-ev.DeltaX)
}

// Dragging reports whether a pointer is engaged.
func (b *ScrollBox) Dragging() bool { return b.drag.active }
