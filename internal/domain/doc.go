// Package domain contains the core entities of the blog service and
// their validation rules, independent of transport and storage concerns.
package domain
