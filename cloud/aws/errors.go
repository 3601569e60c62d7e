package aws

import "errors"

// ErrFileNotReadable means the credentials file could not be opened or read.
var ErrFileNotReadable = errors.New("credentials file not readable")

// ErrFileNotWritable means the credentials file could not be created or written.
var ErrFileNotWritable = errors.New("credentials file not writable")

// ErrParseFailed means the credentials file text could not be decoded into profiles.
var ErrParseFailed = errors.New("failed to parse credentials file")

// ErrNoHomeDir means the user's home directory could not be resolved.
var ErrNoHomeDir = errors.New("home directory not found")
