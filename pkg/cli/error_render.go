package cli

import (
	"errors"

	"github.com/jlrickert/usercfg/pkg/usercfg"
)

// renderUserError maps typed library errors onto short user-facing messages.
func renderUserError(err error) string {
	if err == nil {
		return ""
	}

	var dirErr *usercfg.MalformedDirectoryNameError
	if errors.As(err, &dirErr) {
		return "assembly directory " + dirErr.Dir + " does not follow the settings naming convention"
	}

	var fileErr *usercfg.SettingsFileNotFoundError
	if errors.As(err, &fileErr) {
		return "settings file disappeared before it could be read: " + fileErr.Path
	}

	var docErr *usercfg.MalformedDocumentError
	if errors.As(err, &docErr) {
		return "settings file is not a valid settings document: " + docErr.Path
	}

	return err.Error()
}
