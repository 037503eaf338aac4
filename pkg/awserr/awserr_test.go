package awserr_test

import (
	"errors"
	"fmt"
	"launcher/pkg/awserr"
	"launcher/pkg/serrors"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/require"
)

func apiErr(code string) error {
	return &smithy.GenericAPIError{Code: code, Message: code + " happened"}
}

func TestClassify(t *testing.T) {
	codes := awserr.Codes{"NoSuchDistribution": serrors.ErrNotFound}

	tests := []struct {
		name string
		err  error
		want serrors.Kind
	}{
		{name: "service specific", err: apiErr("NoSuchDistribution"), want: serrors.ErrNotFound},
		{name: "throttled", err: apiErr("Throttling"), want: serrors.ErrRateLimited},
		{name: "prior request", err: apiErr("PriorRequestNotComplete"), want: serrors.ErrRateLimited},
		{name: "access denied", err: apiErr("AccessDenied"), want: serrors.ErrForbidden},
		{name: "unknown code", err: apiErr("InternalFailure"), want: serrors.ErrTransient},
		{name: "not an api error", err: errors.New("connection reset"), want: serrors.ErrTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := awserr.Classify(fmt.Errorf("op: %w", tt.err), codes, "get distribution %s", "E1")
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, tt.err, "cause is preserved")
			require.Contains(t, err.Error(), "get distribution E1")
		})
	}
}

func TestClassify_Nil(t *testing.T) {
	require.NoError(t, awserr.Classify(nil, nil, "noop"))
}

func TestCode(t *testing.T) {
	require.Equal(t, "InvalidChangeBatch", awserr.Code(fmt.Errorf("wrapped: %w", apiErr("InvalidChangeBatch"))))
	require.Empty(t, awserr.Code(errors.New("plain")))
}
