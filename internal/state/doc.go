// Package state holds the in-memory todo state container: the todo and
// category collections, the filters, and the pagination window.
//
// Every transition goes through Store.Dispatch, which serializes it, re-runs
// the derived view and feeds the filtered count back into pagination before
// subscribers are told to re-read the snapshot. Network calls never happen
// here; see package app for the synchronization protocol.
package state
