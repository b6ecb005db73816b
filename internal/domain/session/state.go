package session

type State int

const (
	StateLoggedOut State = iota
	StateLoggingIn
	StateLoggedIn
)

func (s State) String() string {
	switch s {
	case StateLoggedOut:
		return "logged_out"
	case StateLoggingIn:
		return "logging_in"
	case StateLoggedIn:
		return "logged_in"
	default:
		return "unknown"
	}
}

// Phase - подсостояние LoggedIn.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingComment
)

func (p Phase) String() string {
	if p == PhaseAwaitingComment {
		return "awaiting_comment"
	}
	return "idle"
}

// Session - явный дескриптор активной сессии. Передается во все операции
// контроллера; после выхода или входа под другим именем становится устаревшим.
type Session struct {
	UserID string `json:"userId"`
	epoch  uint64
}

func (s Session) Valid() bool {
	return s.UserID != "" && s.epoch != 0
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
