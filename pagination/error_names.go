package pagination

const (
	ErrNotSet             ErrorCode = 0
	ErrInvalidArgument    ErrorCode = 40003
	ErrPreconditionFailed ErrorCode = 41200
	ErrRenderFailure      ErrorCode = 50200
)

var errCodeText = map[ErrorCode]string{
	ErrNotSet:             "no error",
	ErrInvalidArgument:    "invalid argument",
	ErrPreconditionFailed: "precondition failed",
	ErrRenderFailure:      "render failure",
}
