// Package token provides tokenization support for Schemer schema text.
//
// [Tokenize] turns bytes into a flat slice of [Token]s. Keywords and
// punctuation are recognized by a longest-match [Trie] shared by every
// [Lexer]; numbers, identifiers and quoted strings are scanned directly
// from a [Scanner].
//
// Lexing either succeeds for the whole input or fails with a single
// [*TokenizeErr] carrying the offending position.
package token
