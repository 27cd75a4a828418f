// Package token defines the zomlang lexical token kinds, the keyword table,
// and trivia (comment/whitespace) representation.
//
// Invariants:
//   - Token carries its own Text, captured once at scan time, alongside the
//     Span that locates it for diagnostics.
//   - Keywords are matched case-sensitively against the exact byte sequence
//     of an identifier-shaped token.
//   - Directives are always represented as leading Trivia. Comments, doc
//     comments included, are dropped, kept as leading Trivia, or returned
//     as Comment tokens in the main stream, per the lexer's comment
//     retention policy.
package token
