// Package service implements the application's business operations over
// the persistence interfaces: user registration and lookup (the point
// ledger surface), argument analysis with transactional session
// recording, and progress aggregation.
package service
