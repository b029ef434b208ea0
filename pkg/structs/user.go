package structs

type UserSpec struct {
	// Email is the login identifier (not the username).
	Email string `json:"email"`

	// Optional
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Password is plaintext on the spec only; it is bcrypt hashed
	// before it goes anywhere near the database.
	Password string `json:"-"`

	IsSuperuser bool `json:"is_superuser"`
	IsStaff     bool `json:"is_staff"`
}

type User struct {
	UserSpec `json:",inline"`

	ID       string `json:"id"`
	IsActive bool   `json:"is_active"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}
