package login

import "context"

// AccountsService exchanges credentials for an access token.
type AccountsService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
