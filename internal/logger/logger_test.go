package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func keepLog(t *testing.T) {
	original := Log
	t.Cleanup(func() { Log = original })
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{level: "debug"},
		{level: "info"},
		{level: "warn"},
		{level: "error"},
		{level: "verbose", wantErr: true},
		{level: "", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			keepLog(t)

			err := Initialize(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotPanics(t, func() { Log.Debugw("probe", "level", tt.level) })
		})
	}
}

func TestSet_TagsServiceName(t *testing.T) {
	keepLog(t)

	core, logs := observer.New(zapcore.InfoLevel)
	Set(zap.New(core))

	Log.Infow("user signed up", "user_id", "42")
	Log.Debugw("dropped below level")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "dev-connect", fields["service"])
	assert.Equal(t, "42", fields["user_id"])
}

func TestLog_DiscardsBeforeInitialize(t *testing.T) {
	keepLog(t)
	Log = zap.NewNop().Sugar()

	assert.NotPanics(t, func() { Log.Errorw("nobody listens") })
	assert.NotPanics(t, Sync)
}
