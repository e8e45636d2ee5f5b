// Package auth gates catalog mutations behind HTTP Basic credentials.
//
// There are no sessions and no tokens, every request carries its own
// credentials and pays one bcrypt verification. The realm resolves the
// user by email, verifies the secret against the stored salted hash and
// attaches the principal, hash stripped, to the request context.
//
// All three failure modes (no credentials, unknown user, bad secret)
// produce byte-identical 401 responses. Telling them apart would let an
// adversary probe which emails are registered, so the reason only goes
// to the log.
//
// Ownership is a separate concern from identity: Owns decides whether
// an already authenticated principal may mutate a resource, and its
// failures map to 403, never 401.
package auth
