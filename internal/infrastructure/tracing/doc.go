/*
Package tracing attaches request and span IDs to every HTTP request.

# Overview

Each request gets a trace ID (a ULID with the "req" prefix, or the caller's
X-Request-ID when one is supplied) and a span ID. Both are echoed in response
headers and carried in the request context, where the logging package picks
the request ID up for command log lines. Finished spans are handed to a
buffered collector that logs them.

# Usage

	tracer := tracing.New("termweb", logger)
	defer tracer.Close()

	router.Use(tracing.HTTPMiddleware(tracer))

	span, ctx := tracer.StartSpan(ctx, "seed")
	defer func() {
		span.Finish()
		tracer.Submit(span)
	}()

# Headers

- X-Request-ID: identifier for the whole request flow
- X-Span-ID: identifier for the current operation
*/
package tracing
