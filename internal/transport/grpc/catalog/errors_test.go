package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/smartcup-service/internal/app/catalog/domain"
)

func TestMapDomainErrorToGRPC(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"item not found", fmt.Errorf("%w: a||b", domain.ErrItemNotFound), codes.NotFound},
		{"session not found", fmt.Errorf("%w: s-1", domain.ErrSessionNotFound), codes.NotFound},
		{"invalid item id", domain.ErrInvalidItemID, codes.InvalidArgument},
		{"unknown sort key", fmt.Errorf("%w: %q", domain.ErrUnknownSortKey, "x"), codes.InvalidArgument},
		{"canceled", fmt.Errorf("load: %w", context.Canceled), codes.Canceled},
		{"anything else", errors.New("disk on fire"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, status.Code(mapDomainErrorToGRPC(tt.err)))
		})
	}

	assert.NoError(t, mapDomainErrorToGRPC(nil))
}

func TestMapDomainErrorToGRPC_HidesInternalDetail(t *testing.T) {
	err := mapDomainErrorToGRPC(errors.New("spanner: session pool exhausted"))
	assert.Equal(t, "internal server error", status.Convert(err).Message())
}
