package engine

import (
	"sync"

	"github.com/minaorangina/matatu/protocol"
)

// Recorder is a Notifier that keeps everything it is sent
type Recorder struct {
	mu       sync.Mutex
	messages []protocol.OutboundMessage
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Notify(msg protocol.OutboundMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

func (r *Recorder) Messages() []protocol.OutboundMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]protocol.OutboundMessage{}, r.messages...)
}

// Last returns the most recent message with the given command
func (r *Recorder) Last(cmd protocol.Cmd) (protocol.OutboundMessage, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.messages) - 1; i >= 0; i-- {
		if r.messages[i].Command == cmd {
			return r.messages[i], true
		}
	}
	return protocol.OutboundMessage{}, false
}

// Statuses lists every status text in the order it was sent
func (r *Recorder) Statuses() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	texts := []string{}
	for _, msg := range r.messages {
		if msg.Command == protocol.Status {
			texts = append(texts, msg.Message)
		}
	}
	return texts
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = nil
}

func sliceContainsString(haystack []string, needle string) bool {
	var found bool
	for _, h := range haystack {
		if needle == h {
			found = true
			break
		}
	}

	return found
}
