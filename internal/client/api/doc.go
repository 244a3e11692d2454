// Package api implements the client for the sharing service's REST API.
//
// A Session owns the validated account credentials, the bearer-token state,
// the current user snapshot and an in-memory cache of Share objects keyed by
// sharename. Every account-scoped operation logs in implicitly when no token
// is held yet; a token that is merely stale is never refreshed proactively.
//
// Failures follow the service's own split: transport-level refusals are
// *RemoteError, well-formed responses that break the contract are
// *ProtocolError, bad local input is *ValidationError, and the destroy
// operations report failure through their boolean result instead of an
// error.
package api
