package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"goarmazem/internal/pkg/logger"
)

func TestZapLogger_WritesFieldsAndErrors(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := logger.NewFromZap(zap.New(core))

	log.Debug("descartado", nil)
	log.Info("item armazenado", map[string]interface{}{"item_id": 7})
	log.Warn("journal indisponível", map[string]interface{}{"tentativa": 2})
	log.Error("falha ao remover", errors.New("boom"))

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	assert.Equal(t, "item armazenado", entries[0].Message)
	assert.Equal(t, int64(7), entries[0].ContextMap()["item_id"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[2].ContextMap()["error"])
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	log, err := logger.NewLogger("verbose")
	require.NoError(t, err)
	assert.NotNil(t, log)

	nop := logger.NewNop()
	nop.Info("nada", nil)
	assert.NoError(t, nop.Sync())
}
