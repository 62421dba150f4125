// Package mocks provides hand-rolled test doubles for the store and auth
// interfaces. Each mock exposes per-method function fields for custom
// behavior and simple default fields for the common cases.
package mocks
