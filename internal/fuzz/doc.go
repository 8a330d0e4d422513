// Package fuzztests houses Go fuzz harnesses for the source -> lexer ->
// parser -> expansion pipeline. They guard against panics, hangs and broken
// round trips on arbitrary input.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
