// Package adapter implements the outbound transport to the remote
// ThoughtForge API.
//
// The HTTP implementation follows the server's wire conventions: every call
// is a POST carrying its parameters in the query string,
// motor/sensor structures and per-step sensor readings are serialised as JSON
// strings inside those parameters, and the credential travels in the
// X-thoughtforge-key header. Remote error bodies are passed through
// unmodified, wrapped in typed sentinel errors; transient transport failures
// are retried with a bounded backoff.
package adapter
