// Package models defines the records exchanged with the task-management
// backend. They are transient snapshots: the backend owns every entity and
// the client never mutates them locally.
//
// Enumerations are typed strings. Decoding accepts any value so a newer
// backend cannot break list endpoints; encoding rejects values outside the
// known set so the client never sends one.
package models
