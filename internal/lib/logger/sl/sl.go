package sl

import (
	"log/slog"
	"unicode/utf8"
)

const maxBodyLen = 512

// Err creates a slog.Attr with the given error.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{Key: "error", Value: slog.StringValue("<nil>")}
	}

	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Body creates a slog.Attr with a response body, cut to a readable length.
func Body(body []byte) slog.Attr {
	text := string(body)
	if len(text) > maxBodyLen {
		cut := maxBodyLen
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut] + "...(truncated)"
	}

	return slog.String("body", text)
}
