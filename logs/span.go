package logs

type spanKey struct{}

var SpanKey spanKey

type Span string
