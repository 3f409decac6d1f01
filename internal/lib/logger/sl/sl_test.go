package sl_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Houeta/dsm44-seeder/internal/lib/logger/sl"
	"github.com/stretchr/testify/assert"
)

func TestErr(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer // buffer for log capturing
	// Create slog.Logger, which writes in logBuf
	testLogger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{}))

	errAttr := sl.Err(assert.AnError)
	testLogger.Warn("expected result:", errAttr)

	loggedOutput := logBuf.String()

	assert.Contains(t, loggedOutput, assert.AnError.Error())
}

func TestErr_Nil(t *testing.T) {
	t.Parallel()

	attr := sl.Err(nil)

	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "<nil>", attr.Value.String())
}

func TestBody(t *testing.T) {
	t.Parallel()

	short := sl.Body([]byte(`{"message":"bad request"}`))
	assert.Equal(t, "body", short.Key)
	assert.Equal(t, `{"message":"bad request"}`, short.Value.String())

	long := sl.Body([]byte(strings.Repeat("x", 2000)))
	assert.True(t, strings.HasSuffix(long.Value.String(), "...(truncated)"))
	assert.Len(t, long.Value.String(), 512+len("...(truncated)"))
}

func TestBody_KeepsRunesWhole(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("x", 511) + "ñandú"
	attr := sl.Body([]byte(body))

	value := attr.Value.String()
	assert.True(t, utf8.ValidString(value))
	assert.Equal(t, strings.Repeat("x", 511)+"...(truncated)", value)
}
