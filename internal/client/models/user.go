package models

// User is the identity tied to a valid credential.
type User struct {
	Email    string `json:"email"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

// Profile is the public view of a user. Following is relative to the caller
// and is always false for anonymous requests.
type Profile struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"`
}

// UserUpdate carries the editable account fields. An empty Password leaves
// the password unchanged and is omitted from the request.
type UserUpdate struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	Password string `json:"password,omitempty"`
}

// UpdateFrom returns an update prefilled with u's current values.
func UpdateFrom(u User) UserUpdate {
	return UserUpdate{Email: u.Email, Username: u.Username, Bio: u.Bio, Image: u.Image}
}
