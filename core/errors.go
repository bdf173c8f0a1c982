package core

import "github.com/pkg/errors"

// Kinds of failure returned by the manifest store. Returned errors wrap one of these, so test with errors.Is.
var (
	// ErrManifestNotFound is returned when an edit is attempted without an existing manifest
	ErrManifestNotFound = errors.New("manifest not found, run 'cursepack new' to create one")
	// ErrMalformedManifest is returned when the manifest isn't valid JSON or doesn't match the manifest schema
	ErrMalformedManifest = errors.New("malformed manifest")
	// ErrInvalidArgument is returned when a command argument can't be parsed
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrWriteManifest is returned when the manifest can't be saved
	ErrWriteManifest = errors.New("failed to write manifest")
)
