package domain

// UserType discriminates the kinds of authenticated users.
type UserType string

const (
	UserTypeTourist UserType = "tourist"
	UserTypeGuide   UserType = "guide"
	UserTypeAdmin   UserType = "admin"
)

// Principal is the authenticated caller resolved from a bearer token.
// The service never issues or refreshes tokens itself.
type Principal struct {
	ID   string
	Type UserType
}
