// Package models defines the mail and calendar types shown on the flowstate timeline.
package models

import (
	"strings"
	"unicode"
)

// Person is a participant on a thread or event.
type Person struct {
	// ID is the stable identifier used for avatar colors.
	ID string `json:"id" yaml:"id"`

	// Name is the display name.
	Name string `json:"name" yaml:"name"`

	// Email is the address.
	Email string `json:"email" yaml:"email"`

	// Avatar is an optional image reference.
	Avatar string `json:"avatar,omitempty" yaml:"avatar,omitempty"`

	// Initials are rendered when no avatar is present.
	Initials string `json:"initials" yaml:"initials"`
}

// DisplayName returns the name, falling back to the address.
func (p Person) DisplayName() string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}
	return strings.TrimSpace(p.Email)
}

// InitialsOrDerived returns Initials, or up to two initials derived from the name.
func (p Person) InitialsOrDerived() string {
	if initials := strings.TrimSpace(p.Initials); initials != "" {
		return initials
	}
	return DeriveInitials(p.DisplayName())
}

// DeriveInitials builds up to two upper-case initials from a display name.
func DeriveInitials(name string) string {
	fields := strings.FieldsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || r == '.' || r == '_' || r == '-' || r == '@'
	})
	var out []rune
	for _, field := range fields {
		for _, r := range field {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				out = append(out, unicode.ToUpper(r))
				break
			}
		}
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}

// Validate checks the person record.
func (p *Person) Validate() error {
	validation := &ValidationErrors{}
	if strings.TrimSpace(p.ID) == "" {
		validation.Add("id", ErrMissingID)
	}
	if strings.TrimSpace(p.Name) == "" && strings.TrimSpace(p.Email) == "" {
		validation.AddMessage("name", "name or email is required")
	}
	return validation.Err()
}
