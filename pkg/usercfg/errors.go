package usercfg

import (
	"errors"
	"fmt"
	"os"
)

// Sentinel errors used for simple equality-style checks.
var (
	ErrInvalid    = os.ErrInvalid    // invalid argument
	ErrNotExist   = os.ErrNotExist   // file does not exist
	ErrPermission = os.ErrPermission // permission denied
	ErrParse      = errors.New("unable to parse")
)

// MalformedDirectoryNameError reports an assembly directory name that violates
// the on-disk naming convention when a strict parse was requested.
type MalformedDirectoryNameError struct {
	Dir string
	Msg string
}

func (e *MalformedDirectoryNameError) Error() string {
	return fmt.Sprintf("malformed assembly directory name %q: %s", e.Dir, e.Msg)
}

func (e *MalformedDirectoryNameError) Unwrap() error { return ErrParse }

// NewMalformedDirectoryNameError constructs a typed MalformedDirectoryNameError.
func NewMalformedDirectoryNameError(dir, msg string) error {
	return &MalformedDirectoryNameError{Dir: dir, Msg: msg}
}

// InvalidIdentityError reports an identity whose derived bare name is empty or
// whose fields violate the identity invariants.
type InvalidIdentityError struct {
	Msg string
}

func (e *InvalidIdentityError) Error() string {
	if e.Msg == "" {
		return "invalid identity"
	}
	return fmt.Sprintf("invalid identity: %s", e.Msg)
}

func (e *InvalidIdentityError) Unwrap() error { return ErrInvalid }

// NewInvalidIdentityError creates an InvalidIdentityError with a human message.
func NewInvalidIdentityError(msg string) error {
	return &InvalidIdentityError{Msg: msg}
}

// SettingsFileNotFoundError reports a settings file that was expected to exist
// at transfer time but is missing.
type SettingsFileNotFoundError struct {
	Path string
}

func (e *SettingsFileNotFoundError) Error() string {
	return fmt.Sprintf("settings file not found: %s", e.Path)
}

func (e *SettingsFileNotFoundError) Unwrap() error { return ErrNotExist }

// NewSettingsFileNotFoundError constructs a typed SettingsFileNotFoundError.
func NewSettingsFileNotFoundError(path string) error {
	return &SettingsFileNotFoundError{Path: path}
}

// MalformedDocumentError reports a settings file that exists but cannot be
// parsed as the expected markup.
type MalformedDocumentError struct {
	Path  string
	Cause error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed settings document %s: %v", e.Path, e.Cause)
}

func (e *MalformedDocumentError) Unwrap() error { return e.Cause }

func (e *MalformedDocumentError) Is(target error) bool { return target == ErrParse }

// NewMalformedDocumentError constructs a typed MalformedDocumentError.
func NewMalformedDocumentError(path string, cause error) error {
	return &MalformedDocumentError{Path: path, Cause: cause}
}

// Convenience predicates

// IsMalformedDirectoryName reports whether err is (or wraps) a
// MalformedDirectoryNameError.
func IsMalformedDirectoryName(err error) bool {
	if err == nil {
		return false
	}
	var me *MalformedDirectoryNameError
	return errors.As(err, &me)
}

// IsInvalidIdentity reports whether err is (or wraps) an InvalidIdentityError.
func IsInvalidIdentity(err error) bool {
	if err == nil {
		return false
	}
	var ie *InvalidIdentityError
	return errors.As(err, &ie)
}

// IsSettingsFileNotFound reports whether err indicates a missing settings file.
func IsSettingsFileNotFound(err error) bool {
	return errors.Is(err, ErrNotExist)
}

// IsMalformedDocument reports whether err is (or wraps) a MalformedDocumentError.
func IsMalformedDocument(err error) bool {
	if err == nil {
		return false
	}
	var de *MalformedDocumentError
	return errors.As(err, &de)
}
