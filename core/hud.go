package core

const (
	TextWon      = "YOU WON!"
	TextDied     = "YOU DIED!"
	TextGameOver = "GAME OVER!"
)

// Message is the content of the single message region.
type Message struct {
	Text       string
	Seq        uint64  // bumped on every write
	ExpiresAt  float64 // ignored when Persistent
	Persistent bool
}

// HUD owns the message region, the session clock and the event log.
// Expiry is evaluated against the clock when the message is read, so the most
// recent write always owns the region.
type HUD struct {
	clock  float64
	msg    Message
	events []Event
}

// NewHUD returns an empty message region with the clock at zero.
func NewHUD() *HUD {
	return &HUD{}
}

// Advance moves the session clock forward by dt seconds.
func (h *HUD) Advance(dt float64) {
	h.clock += dt
}

// Clock returns the elapsed session time in seconds.
func (h *HUD) Clock() float64 {
	return h.clock
}

// Show writes a message that expires ttl seconds from now.
func (h *HUD) Show(text string, ttl float64) {
	h.write(Message{Text: text, ExpiresAt: h.clock + ttl})
}

// ShowPersistent writes a message that never expires.
func (h *HUD) ShowPersistent(text string) {
	h.write(Message{Text: text, Persistent: true})
}

func (h *HUD) write(m Message) {
	m.Seq = h.msg.Seq + 1
	h.msg = m
	h.emit(Event{Kind: EventMessage, Text: m.Text})
}

// Active returns the current message, if it has not expired.
func (h *HUD) Active() (Message, bool) {
	if h.msg.Text == "" {
		return Message{}, false
	}
	if !h.msg.Persistent && h.clock >= h.msg.ExpiresAt {
		return Message{}, false
	}
	return h.msg, true
}

// Message returns the visible message text, or "" when the region is clear.
func (h *HUD) Message() string {
	m, _ := h.Active()
	return m.Text
}

func (h *HUD) emit(e Event) {
	e.At = h.clock
	h.events = append(h.events, e)
}

// Drain returns and clears the recorded events.
func (h *HUD) Drain() []Event {
	events := h.events
	h.events = nil
	return events
}
