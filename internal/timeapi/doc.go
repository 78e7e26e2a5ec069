// Package timeapi is a minimal client for a remote time authority.
//
// The client performs one GET against a worldtimeapi-compatible endpoint and
// returns the instant from the JSON "datetime" field (ISO-8601 with offset),
// falling back to "utc_datetime". It is used once per sync interval to measure
// how far the local clock has drifted.
//
// # Error Handling
//
// Every failure is returned to the caller wrapped with its stage:
//
//   - "create request": the endpoint could not be turned into a request
//   - "execute request": network error or timeout (5 seconds)
//   - "time api <host> returned status N": HTTP status >= 400
//   - "decode response": body is not valid JSON
//   - ErrMalformedTime: JSON decoded but the datetime is missing or unparseable
//
// The client never retries. Callers decide how to degrade; the sync loop falls
// back to unadjusted local time.
//
// # Usage Example
//
//	client, err := timeapi.NewClient("")
//	if err != nil {
//		return err
//	}
//	remote, err := client.FetchTime(ctx)
package timeapi
