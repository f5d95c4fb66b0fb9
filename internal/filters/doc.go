// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters selects rows of a result set with --filter expressions.
//
// A filter is a key, an operator and a target. Several filters are joined
// with a delimiter (default ",", override with FATOOL_FILTER_DELIM) and a row
// is kept only when it passes all of them. Any operator may be negated with a
// leading '!'.
//
//   - = : equal
//   - ~ : equal, ignoring case
//   - ^ : prefix
//   - @ : contains
//   - / : regular expression match
//   - < : less than
//   - > : greater than
//
// Numeric fields compare numerically with =, < and >. Everything else
// compares as a string.
//
// Examples:
//
//   - "text^http" : printable runs starting with "http"
//   - "length>32" : runs longer than 32 characters
//   - "entropy>7.5" : high entropy blocks, often compressed or encrypted data
//   - "text!/^[0-9]+$" : runs that are not all digits
//
// Keys the row does not have are logged and ignored.
package filters
