package hyprconf

import "errors"

// Load failure taxonomy. Wrapped errors carry the path and a remediation
// hint; match with errors.Is.
var (
	ErrNotFound   = errors.New("config file not found")
	ErrNotAFile   = errors.New("config path is not a regular file")
	ErrPermission = errors.New("no permission to read config file")
	ErrEncoding   = errors.New("config file is not valid UTF-8")
)
