package types

// User is a directory entry used only for authentication. The directory
// is loaded once at startup and never mutated, so User carries no GORM
// mapping.
type User struct {
	Username     string
	PasswordHash string
	Permissions  []string
}
