// Package strtemplate fills positional {placeholders} in a string.
//
// Placeholders are matched by position only; the text between the braces is
// ignored. Each placeholder consumes the next non-nil value, so nil values
// are skipped rather than rendered:
//
//	strtemplate.Build("{id} of {total}", 3, nil, 10) // "3 of 10"
//
// Placeholders left without a value keep their original text, and an opening
// brace without a closing one is copied verbatim.
package strtemplate
