// Package api contains the HTTP handlers, request/response models and
// error mapping for the blog service. Handlers depend on the store
// interfaces and the auth service, never on concrete infrastructure.
package api
