package valueobjects

import "fmt"

// AuthorKind classifies who wrote a conversation message.
type AuthorKind string

const (
	AuthorCustomer AuthorKind = "customer"
	AuthorStaff    AuthorKind = "staff"
	AuthorSystem   AuthorKind = "system"
)

var validAuthorKinds = map[AuthorKind]bool{
	AuthorCustomer: true,
	AuthorStaff:    true,
	AuthorSystem:   true,
}

func (a AuthorKind) String() string {
	return string(a)
}

func (a AuthorKind) IsValid() bool {
	return validAuthorKinds[a]
}

func (a AuthorKind) IsSystem() bool {
	return a == AuthorSystem
}

func NewAuthorKind(s string) (AuthorKind, error) {
	a := AuthorKind(s)
	if !a.IsValid() {
		return "", fmt.Errorf("invalid author kind: %s", s)
	}
	return a, nil
}
