// Package repositories implements flat-file persistence for all record sets.
//
// Each repository owns one JSON document and rewrites it in full on every
// mutation:
//   - [CredentialRepository] : users document, username → encoded password
//   - [BookRepository] : books document, per-user reading entries
//   - [ConfigRepository] : session config document for remember-me state
//
// Book rewrites are last-writer-wins per user: the owner's old records are
// dropped and the current in-memory set appended. Other users' records pass
// through untouched.
//
// [MigrateUsersFile] is the one-time reshape of the legacy list-form users
// document into the map form.
package repositories
