// Package domain contains the core business entities of the platform:
// user accounts, debate sessions, and the feedback structures produced
// by argument analysis. It is independent of any specific infrastructure
// or delivery mechanism.
package domain
