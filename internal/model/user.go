package model

// User is the account record the backend returns on login/signup.
// The backend never exposes a password hash to the client.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FirstName returns the leading word of the user's name for greetings.
func (u *User) FirstName() string {
	for i, r := range u.Name {
		if r == ' ' {
			return u.Name[:i]
		}
	}
	return u.Name
}
