// Package fault defines the classified error model shared across the
// framework.
//
// Every failure is a Record: a message plus an optional cause, stamped with a
// correlation identifier supplied by the calling context and an instance
// identifier generated per occurrence. The Kind attached to a Record fixes
// machine-facing metadata (stable type discriminator, whether a retry is
// meaningful, a documentation link) so callers can classify failures without
// depending on Go type identity.
//
// Records interoperate with the standard errors package: they wrap their
// cause for errors.Is/errors.As and can be classified through arbitrarily
// deep wrapping via KindOf and Is.
package fault
