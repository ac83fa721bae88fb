// Package keyring stores the optional notifier webhook token in the OS
// keyring so it never lands in the YAML config file.
package keyring

import (
	"errors"

	"github.com/zalando/go-keyring"

	"github.com/glitch-xp/loyola-academic-calender/internal/constants"
)

// SetToken stores the webhook bearer token.
func SetToken(token string) error {
	if token == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(constants.KeyringService, constants.KeyringUser, token)
}

// GetToken returns the stored token, or "" without error when none is set.
func GetToken() (string, error) {
	token, err := keyring.Get(constants.KeyringService, constants.KeyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return token, nil
}

// DeleteToken removes the stored token. Deleting a token that was never set
// is not an error.
func DeleteToken() error {
	err := keyring.Delete(constants.KeyringService, constants.KeyringUser)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
