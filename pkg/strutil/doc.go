// Package strutil holds small string helpers shared by the rest of strkit:
// composite identifiers, URL extraction from free text, e-mail domains and
// blank checks.
//
// All functions are pure and safe for concurrent use.
package strutil
