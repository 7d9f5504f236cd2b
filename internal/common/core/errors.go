package core

import "fmt"

// ClientError is a type for errors that occur in the client package.
// It is a string that can be formatted with arguments. It avoids to
// repeat the error message formatted in the client code.
type ClientError string

const (
	ErrFailedToUnmarshalResponse ClientError = "failed to unmarshal response: %w"
	ErrFailedToMarshalParams     ClientError = "failed to marshal params: %w"

	ErrFailedToMakeRequest      ClientError = "failed to make request: %w"
	ErrFailedToParseURL         ClientError = "failed to parse URL %s: %w"
	ErrFailedToDoRequest        ClientError = "failed to do request: %w"
	ErrFailedToReadResponseBody ClientError = "failed to read response body: %w"

	ErrFailedToDialDeployer  ClientError = "failed to dial deployer at %s: %w"
	ErrDeployerNotConfigured ClientError = "deployer URL is not configured"

	ErrFailedToResolveReference ClientError = "failed to resolve %s reference %s: %w"
	ErrFailedToValidateTag      ClientError = "failed to validate tag %s: %w"
)

// WithArgs returns a new error with the given arguments.
func (e ClientError) WithArgs(args ...any) error {
	return fmt.Errorf(string(e), args...)
}
