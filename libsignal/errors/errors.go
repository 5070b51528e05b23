// Package errors contains common error types for the libsignal packages.
package errors

// InvalidKeyError indicates that key material could not be decoded or that
// two keys were combined in an unsupported way.
type InvalidKeyError string

func (ik InvalidKeyError) Error() string {
	return "libsignal: invalid key: " + string(ik)
}

// InvalidArgumentError indicates that the caller is in error and passed an
// incorrect value.
type InvalidArgumentError string

func (ia InvalidArgumentError) Error() string {
	return "libsignal: invalid argument: " + string(ia)
}
