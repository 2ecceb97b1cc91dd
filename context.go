package negotiation

import (
	"context"
	"net/http"
)

type formatKey struct{}

// FormatKey is the context key under which the negotiated format is stored.
// It is distinct from the raw request parameter namespace, so a stored value
// can not be confused with the '_format' query parameter.
var FormatKey = formatKey{}

// CtxWithFormat stores the negotiated 'format' in the 'ctx' context.
func CtxWithFormat(ctx context.Context, format string) context.Context {
	return context.WithValue(ctx, FormatKey, format)
}

// CtxFormat returns the negotiated format stored in the 'ctx' context.
func CtxFormat(ctx context.Context) (string, bool) {
	format, ok := ctx.Value(FormatKey).(string)
	return format, ok
}

// Format returns the format chosen for 'req'. When negotiation was never run
// for the request it falls back to the raw '_format' query parameter.
func Format(req *http.Request) string {
	if format, ok := CtxFormat(req.Context()); ok {
		return format
	}
	return req.URL.Query().Get(QueryParamFormat)
}
