// Package format renders syntax trees as text under a newline/whitespace
// policy.
//
// Назначение: базовый форматтер поверх дерева sprig/internal/syntax и политика
// компактных замыканий (ClosureLiteral).
// Не делает: полного pretty-print (существующие переводы строк и отступы
// сохраняются как есть), семантических проверок.
// Зависимости: internal/syntax, internal/parser, internal/token.
package format
