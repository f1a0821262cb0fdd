package model

// StatusKind identifies the lifecycle phase of a playground operation.
// Presentation layers switch on the kind instead of sniffing message
// text.
type StatusKind string

const (
	StatusIdle       StatusKind = "idle"
	StatusValidating StatusKind = "validating"
	StatusGenerating StatusKind = "generating"
	StatusSuccess    StatusKind = "success"
	StatusError      StatusKind = "error"
)

// Status is the current lifecycle phase plus a human-readable message
type Status struct {
	Kind    StatusKind `json:"kind"`
	Message string     `json:"message,omitempty"`
}

// InProgress reports whether the operation is still running
func (s Status) InProgress() bool {
	return s.Kind == StatusValidating || s.Kind == StatusGenerating
}

func Idle() Status { return Status{Kind: StatusIdle} }

func Validating(msg string) Status { return Status{Kind: StatusValidating, Message: msg} }

func Generating(msg string) Status { return Status{Kind: StatusGenerating, Message: msg} }

func Success(msg string) Status { return Status{Kind: StatusSuccess, Message: msg} }

func ErrorStatus(msg string) Status { return Status{Kind: StatusError, Message: msg} }
