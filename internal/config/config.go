// Package config resolves the translation backend credential.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// EnvAuthKey is the environment variable consulted first for the backend
// auth key.
const EnvAuthKey = "DEEPL_AUTH_KEY"

// DefaultKeyFile is the key-value file scanned when the environment variable
// is unset.
const DefaultKeyFile = ".env"

// ErrMissingKey reports that neither the environment variable nor the key
// file supplied a credential.
var ErrMissingKey = errors.New("auth key not found")

// ResolveAuthKey returns the backend auth key. The environment variable takes
// precedence; otherwise keyFile is scanned for a matching KEY=value line.
//
// lookupEnv is injectable so callers can resolve against a fixed environment
// in tests; pass os.LookupEnv for the real one.
func ResolveAuthKey(lookupEnv func(string) (string, bool), keyFile string) (string, error) {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	if key, ok := lookupEnv(EnvAuthKey); ok && key != "" {
		return key, nil
	}

	if keyFile == "" {
		keyFile = DefaultKeyFile
	}
	vars, err := godotenv.Read(keyFile)
	if err != nil {
		return "", fmt.Errorf("%w: %s unset and cannot read %s", ErrMissingKey, EnvAuthKey, keyFile)
	}
	if key := vars[EnvAuthKey]; key != "" {
		return key, nil
	}

	return "", fmt.Errorf("%w: %s unset and no entry in %s", ErrMissingKey, EnvAuthKey, keyFile)
}
