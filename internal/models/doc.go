// Package models defines domain entities for the shelfmate reading tracker.
//
// The package contains three categories of types:
//
// 1. Book records: per-user reading entries persisted in the books document
//   - [Book] : Title, progress, status, deadline, favorite flag, owner tag
//   - [Status] : The three-state reading lifecycle (To Read / Reading / Completed)
//
// 2. Account records: the users document maps usernames to encoded passwords;
// there is no richer user entity, matching the on-disk shape.
//
// 3. Session state: [SessionConfig] is the persisted remember-me subset of the
// in-memory session (username, remember flag, language).
//
// All persisted shapes keep the short legacy wire field names (page, total,
// user, lang) so existing documents load unchanged.
package models
