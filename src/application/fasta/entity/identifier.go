package entity

import (
	"errors"
	"fasta-fetcher-workers/src/lib/cerr"
	"regexp"
)

const MaxIdentifierLength = 64

var ErrInvalidInput = errors.New("Invalid input")

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateIdentifier rejects anything that can't safely name a file inside the
// destination directory.
func ValidateIdentifier(identifier string) error {
	errctx := cerr.Field("identifier", identifier)

	if identifier == "" {
		return errctx.Wrap(ErrInvalidInput).Error("Identifier is empty")
	}

	if len(identifier) > MaxIdentifierLength {
		return errctx.Field("max_length", MaxIdentifierLength).
			Wrap(ErrInvalidInput).Error("Identifier is too long")
	}

	if !identifierPattern.MatchString(identifier) {
		return errctx.Wrap(ErrInvalidInput).Error("Identifier contains characters outside [A-Za-z0-9._-]")
	}

	return nil
}

func ValidateIdentifiers(identifiers []string) error {
	for i, identifier := range identifiers {
		if err := ValidateIdentifier(identifier); err != nil {
			return cerr.Field("index", i).Wrap(err).Error("Invalid identifier in batch")
		}
	}

	return nil
}

func FileName(identifier string) string {
	return identifier + ".fasta"
}
