package home

//go:generate mockgen -source=interfaces.go -destination=../mock/home_provider_mock.go -package=mock

// Provider returns the home directory of the current user.
type Provider interface {
	// HomeDir returns the home directory path. It never fails; a missing
	// environment yields an empty or partial path.
	HomeDir() string
}
