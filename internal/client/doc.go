// Package client is the HTTP client and read-eval-print loop behind termctl.
//
// The client posts command lines to /api/command through resty, with sonic
// handling JSON. Dial failures and 429 replies are retried with backoff by
// go-retryablehttp; anything that may have reached the session is not, since
// commands such as mkdir are not idempotent.
//
// Example Usage:
//
//	c := client.New(client.DefaultConfig())
//	resp, err := c.Run(ctx, "ls /")
package client
