package model

// Status distinguishes an effective mutation from one that left the model
// unchanged. Handlers use it to decide whether to mark the configuration
// dirty and, for conditional handlers, whether to emit a response at all.
type Status int

const (
	// StatusSuccess means the mutation changed the model.
	StatusSuccess Status = iota
	// StatusValueAlreadySet means the requested value already held; this
	// also covers saturation at a range endpoint on Increase/Decrease.
	StatusValueAlreadySet
)

// ErrorKind enumerates the protocol-level error categories of spec §7.
type ErrorKind string

const (
	ErrorBadCommand           ErrorKind = "BadCommand"
	ErrorOutOfRange           ErrorKind = "OutOfRange"
	ErrorValueAlreadySet      ErrorKind = "ValueAlreadySet"
	ErrorVolumeIsFixed        ErrorKind = "VolumeIsFixed"
	ErrorMissingConfiguration ErrorKind = "MissingConfiguration"
	ErrorInvalidConfiguration ErrorKind = "InvalidConfiguration"
	ErrorIO                   ErrorKind = "IOError"
	ErrorTimeout              ErrorKind = "Timeout"
	ErrorDisconnected         ErrorKind = "Disconnected"
	ErrorProtocol             ErrorKind = "ProtocolError"
)

// Error is a structured domain error carrying its protocol error kind.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Error constructors, one per ErrorKind a model mutator can produce.
func ErrBadCommand(msg string) *Error           { return newError(ErrorBadCommand, msg) }
func ErrOutOfRange(msg string) *Error           { return newError(ErrorOutOfRange, msg) }
func ErrVolumeIsFixed(msg string) *Error        { return newError(ErrorVolumeIsFixed, msg) }
func ErrMissingConfiguration(msg string) *Error { return newError(ErrorMissingConfiguration, msg) }
func ErrInvalidConfiguration(msg string) *Error { return newError(ErrorInvalidConfiguration, msg) }
func ErrIO(msg string) *Error                   { return newError(ErrorIO, msg) }
func ErrTimeout(msg string) *Error              { return newError(ErrorTimeout, msg) }
func ErrDisconnected(msg string) *Error         { return newError(ErrorDisconnected, msg) }
func ErrProtocol(msg string) *Error             { return newError(ErrorProtocol, msg) }
