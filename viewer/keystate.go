package viewer

// keyEvent is one raw input event waiting in the inbox.
type keyEvent struct {
	id      string
	pressed bool
}

// KeyState tracks the held/released state of a fixed set of logical keys.
// Raw events from the input surface are queued in arrival order via SetKey;
// Apply drains the queue into the held map at the start of each tick, so
// the navigators read a state that is stable for the whole frame.
//
// State is level-triggered: no debouncing, no repeat logic. Edge-triggered
// bindings (toggles, selection) are handled directly in the input callback.
type KeyState struct {
	recognized map[string]struct{}
	held       map[string]bool
	inbox      []keyEvent
}

// NewKeyState creates a tracker that recognizes exactly the given
// logical key ids.
func NewKeyState(ids ...string) *KeyState {
	ks := &KeyState{
		recognized: make(map[string]struct{}, len(ids)),
		held:       make(map[string]bool, len(ids)),
	}
	for _, id := range ids {
		ks.recognized[id] = struct{}{}
	}
	return ks
}

// SetKey queues the last-known state of a logical key. Ids outside the
// recognized set are dropped: the keyboard emits plenty of codes the
// viewer has no binding for.
func (ks *KeyState) SetKey(id string, pressed bool) {
	if _, ok := ks.recognized[id]; !ok {
		return
	}
	ks.inbox = append(ks.inbox, keyEvent{id: id, pressed: pressed})
}

// Apply drains queued events into the held map in arrival order, so the
// last event for a key within a frame wins.
func (ks *KeyState) Apply() {
	for _, ev := range ks.inbox {
		ks.held[ev.id] = ev.pressed
	}
	ks.inbox = ks.inbox[:0]
}

// IsHeld reports the applied state of a key. Keys never set are not held.
func (ks *KeyState) IsHeld(id string) bool {
	return ks.held[id]
}
