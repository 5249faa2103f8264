package model

// Identity is the response of the "who am I" endpoint.
type Identity struct {
	LoggedIn bool   `json:"loggedIn"`
	User     string `json:"user,omitempty"`
}

// Credentials are a username/password pair as typed by the user.
type Credentials struct {
	Username string
	Password string
}

// LoginResult is the response of the login endpoint.
type LoginResult struct {
	OK   bool   `json:"ok"`
	User string `json:"user,omitempty"`
}

// Ack is the generic {ok: bool} response of mutation endpoints.
type Ack struct {
	OK bool `json:"ok"`
}
