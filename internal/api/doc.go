// Package api handles incoming HTTP requests, request validation, and
// response formatting. It adapts HTTP concerns to the application
// services: account registration, argument analysis, progress reporting,
// and lesson delivery.
package api
