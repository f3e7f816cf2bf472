package domain

// Session is the console's record of one browser's authentication state.
// Authenticated is derived purely from token presence; there is no expiry
// transition and token validity is never re-checked against the backend.
type Session struct {
	ID            string
	Token         string
	Authenticated bool
}

// Anonymous is the zero session used for requests with no session cookie.
var Anonymous = Session{}
