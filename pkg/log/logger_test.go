package log

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	l, err := New("debug")
	require.NoError(t, err)
	require.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = NewDevelopment("warn")
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(zapcore.InfoLevel))

	_, err = New("loud")
	require.Error(t, err)
}

func TestOrNop(t *testing.T) {
	require.NotNil(t, OrNop(nil))
	l, err := New("info")
	require.NoError(t, err)
	require.Same(t, l, OrNop(l))
}
