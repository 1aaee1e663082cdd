package boundcache

import "errors"

// ErrUnknownPolicy indicates an eviction policy name was not recognized.
var ErrUnknownPolicy = errors.New("unknown eviction policy")

// PolicyError reports an unrecognized policy name.
type PolicyError struct {
	Name string
}

func (e *PolicyError) Error() string {
	return ErrUnknownPolicy.Error() + " '" + e.Name + "'"
}

// Unwrap returns ErrUnknownPolicy.
func (e *PolicyError) Unwrap() error {
	return ErrUnknownPolicy
}
