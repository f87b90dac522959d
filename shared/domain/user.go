package domain

// User is the authenticated caller as taken from the access token, or a
// row of the users table.
type User struct {
	Id       UserId
	Username string
	PassHash string
	Fullname string
}
