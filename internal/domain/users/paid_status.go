package users

// IsRegistrationPaid is the single accessor for the paid-registration flag.
// Earlier frontends checked publicData, protectedData and metadata copies of
// this flag; the backend keeps exactly one column and everything goes through
// here.
func IsRegistrationPaid(u *User) bool {
	return u != nil && u.RegistrationPaid
}

// IsProfileUnlockPaid reports whether the user paid the one-time profile
// unlock fee that reveals carrier contact details.
func IsProfileUnlockPaid(u *User) bool {
	return u != nil && u.ProfileUnlockPaid
}
