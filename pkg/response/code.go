package response

// Business status codes.
const (
	CodeSuccess = 0

	// user module 100xx
	ErrUserExists   = 10001
	ErrUserNotFound = 10002
	ErrAuthFailed   = 10003
	ErrTokenInvalid = 10004
	ErrNoPermission = 10005

	// post module 200xx
	ErrPostNotFound = 20001

	// comment module 300xx
	ErrCommentNotFound = 30001

	// reaction module 400xx
	ErrReactionNotFound = 40001

	// system 500xx
	ErrServerInternal  = 50001
	ErrInvalidParam    = 50002
	ErrTooManyRequests = 50003
	ErrNotFound        = 50004
)
