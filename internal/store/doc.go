// Package store defines the persistence interfaces of the application
// along with shared helpers: the DBTX abstraction over connections and
// transactions, the RunInTransaction helper, and the store error
// taxonomy distinguishing not-found from duplicate conditions.
//
// Concrete implementations live in internal/platform/postgres.
package store
