// Package repository holds the in-memory record store.
//
// Nothing here survives a restart: records live in maps guarded by
// read/write locks and are dropped when the process exits.
package repository
