package library

import (
	"fmt"
	"strings"

	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/validation"
)

// BookInput carries the mutable fields of a book.
type BookInput struct {
	Title  string `validate:"required,booktitle"`
	Author string `validate:"required,authorname"`
	Amount int    `validate:"min=0"`
}

type memberInput struct {
	Name string `validate:"required"`
}

func (in BookInput) validate() error {
	if err := validation.Validator().Struct(in); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidBook, validation.Message(err))
	}
	return nil
}

func validateMemberName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if err := validation.Validator().Struct(memberInput{Name: name}); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidMember, validation.Message(err))
	}
	return name, nil
}
