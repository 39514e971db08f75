// Package session owns the admin session lifecycle.
//
// A Manager is the single owner of the session token. It moves through the
// states unvalidated → validating → authenticated/unauthenticated, and back
// to unauthenticated on logout or whenever the backend reports the token
// unauthorized.
//
// The token exists in two places with explicit synchronization rules:
//
//   - volatile: always held in the Manager for the lifetime of the process;
//   - persisted: mirrored into the token store only when the admin opted
//     into "remember"; actively cleared otherwise, and always cleared
//     together with the volatile copy on teardown.
//
// The Manager's Token accessor is wired into the API client, so every
// outbound request picks up the current token without the two packages
// referencing each other's internals.
package session
