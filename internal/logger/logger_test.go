package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_FromContext_RoundTrip(t *testing.T) {
	log := New()
	ctx := AddToContext(context.Background(), log)
	require.Same(t, log, FromContext(ctx))
}

func Test_FromContext_FallsBackToNewLogger(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}
