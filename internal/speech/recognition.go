package speech

type RecognitionState string

const (
	StateIdle      RecognitionState = "idle"
	StateListening RecognitionState = "listening"
	StateError     RecognitionState = "error"
	StateRetrying  RecognitionState = "retrying"
	StateFailed    RecognitionState = "failed"
	StateStopped   RecognitionState = "stopped"
)

// Directive tells the client what to do with its recognizer after an event.
type Directive string

const (
	DirectiveNone    Directive = "none"
	DirectiveRestart Directive = "restart"
	DirectiveFailed  Directive = "failed"
)

// Recognition tracks one recognizer between start and stop. An unexpected end is
// answered with a restart until MaxRetries consecutive restarts have been spent.
type Recognition struct {
	State      RecognitionState `json:"state"`
	Retries    int              `json:"retries"`
	MaxRetries int              `json:"maxRetries"`
	LastError  string           `json:"lastError,omitempty"`
}

func NewRecognition(maxRetries int) Recognition {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return Recognition{State: StateIdle, MaxRetries: maxRetries}
}

func (r *Recognition) Start() {
	r.State = StateListening
	r.Retries = 0
	r.LastError = ""
}

// Result marks the recognizer healthy again and resets the retry budget.
func (r *Recognition) Result() {
	if !r.Active() {
		return
	}
	r.State = StateListening
	r.Retries = 0
}

func (r *Recognition) Error(message string) {
	if !r.Active() {
		return
	}
	r.State = StateError
	r.LastError = message
}

// End handles the recognizer stopping on its own.
func (r *Recognition) End() Directive {
	switch r.State {
	case StateListening, StateError, StateRetrying:
	default:
		return DirectiveNone
	}
	if r.Retries >= r.MaxRetries {
		r.State = StateFailed
		return DirectiveFailed
	}
	r.Retries++
	r.State = StateRetrying
	return DirectiveRestart
}

// Restarted confirms that the client restarted its recognizer.
func (r *Recognition) Restarted() {
	if r.State == StateRetrying {
		r.State = StateListening
	}
}

// Cancel is the explicit user stop; later end events are ignored.
func (r *Recognition) Cancel() {
	r.State = StateStopped
}

func (r *Recognition) Active() bool {
	switch r.State {
	case StateListening, StateError, StateRetrying:
		return true
	}
	return false
}
