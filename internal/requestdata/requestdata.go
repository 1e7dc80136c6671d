package requestdata

import "context"

type ctxKey struct{}

var requestDataKey ctxKey

type RequestData struct {
	ActorID string
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if rd, ok := ctx.Value(requestDataKey).(*RequestData); ok {
		return rd
	}
	return nil
}

// Actor returns the acting identity for the request, falling back to the
// given default when no middleware populated it.
func Actor(ctx context.Context, fallback string) string {
	rd := GetRequestData(ctx)
	if rd == nil || rd.ActorID == "" {
		return fallback
	}
	return rd.ActorID
}
