package domain

var (
	AUTH_REGISTER_SUCCESS = "Account created"
	AUTH_REGISTER_FAILED  = "Failed to create account"
	AUTH_LOGIN_SUCCESS    = "Logged in"
	AUTH_LOGIN_FAILED     = "Failed to log in"
)
