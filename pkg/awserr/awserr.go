// Package awserr maps AWS SDK errors onto semantic error kinds.
package awserr

import (
	"launcher/pkg/serrors"

	"github.com/aws/smithy-go"
	"github.com/go-faster/errors"
)

// Codes maps service specific API error codes to kinds. It is consulted
// before the generic throttling and access rules.
type Codes map[string]serrors.Kind

var throttlingCodes = map[string]struct{}{ //nolint: gochecknoglobals
	"Throttling":               {},
	"ThrottlingException":      {},
	"ThrottledException":       {},
	"RequestLimitExceeded":     {},
	"TooManyRequestsException": {},
	"PriorRequestNotComplete":  {},
	"RequestThrottled":         {},
}

var accessCodes = map[string]struct{}{ //nolint: gochecknoglobals
	"AccessDenied":          {},
	"AccessDeniedException": {},
	"UnauthorizedOperation": {},
}

// Code returns the API error code carried by err, or an empty string.
func Code(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}

	return ""
}

// Classify wraps err with the kind that matches its API error code. Errors
// that match no rule are ErrTransient. A nil err stays nil.
func Classify(err error, codes Codes, msgFmt string, args ...any) error {
	if err == nil {
		return nil
	}

	var kind serrors.Kind = serrors.ErrTransient
	code := Code(err)
	if k, ok := codes[code]; ok {
		kind = k
	} else if _, ok := throttlingCodes[code]; ok {
		kind = serrors.ErrRateLimited
	} else if _, ok := accessCodes[code]; ok {
		kind = serrors.ErrForbidden
	}

	return serrors.Wrap(kind, err, msgFmt, args...)
}
