// Package token defines lexical token kinds, trivia and the editor placeholder
// payload format.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End); trivia is outside the span.
//   - Trailing trivia never contains a newline. Leading trivia starts at the
//     newline that precedes the token (or at the start of the file).
//   - Editor placeholders (<#...#>) are a single Placeholder token. They are
//     accepted wherever an identifier is.
package token
