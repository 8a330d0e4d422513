package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedPlaceholder  Code = 1005
	LexUnterminatedBacktick     Code = 1006
	LexNonNormalIdent           Code = 1007

	// Синтаксические
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynExpectExpression  Code = 2002
	SynExpectType        Code = 2003
	SynExpectIdentifier  Code = 2004
	SynUnclosedParen     Code = 2005
	SynUnclosedBrace     Code = 2006
	SynUnclosedBracket   Code = 2007
	SynExpectArrow       Code = 2008
	SynExpectColon       Code = 2009
	SynExpectAssign      Code = 2010
	SynTrailingTokens    Code = 2011
	SynTooManyErrors     Code = 2012
	SynExpectCodeBlockIn Code = 2013

	// Ввод-вывод
	IOInfo          Code = 3000
	IOLoadFileError Code = 3001
	IOWriteError    Code = 3002

	// Рефакторинг и форматирование
	RefInfo              Code = 4000
	RefNoPlaceholder     Code = 4001
	RefEditConflict      Code = 4002
	RefFormatUnstable    Code = 4003
	RefFormatChangedTree Code = 4004
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                 "Unknown error",
		LexInfo:                     "Lexical information",
		LexUnknownChar:              "Unknown character",
		LexUnterminatedString:       "Unterminated string literal",
		LexUnterminatedBlockComment: "Unterminated block comment",
		LexBadNumber:                "Bad number literal",
		LexUnterminatedPlaceholder:  "Unterminated editor placeholder",
		LexUnterminatedBacktick:     "Unterminated backtick identifier",
		LexNonNormalIdent:           "Identifier is not in Unicode normal form C",
		SynInfo:                     "Syntax information",
		SynUnexpectedToken:          "Unexpected token",
		SynExpectExpression:         "Expected expression",
		SynExpectType:               "Expected type",
		SynExpectIdentifier:         "Expected identifier",
		SynUnclosedParen:            "Unclosed parenthesis",
		SynUnclosedBrace:            "Unclosed brace",
		SynUnclosedBracket:          "Unclosed bracket",
		SynExpectArrow:              "Expected '->'",
		SynExpectColon:              "Expected ':'",
		SynExpectAssign:             "Expected '='",
		SynTrailingTokens:           "Unexpected text after expression",
		SynTooManyErrors:            "Too many syntax errors",
		SynExpectCodeBlockIn:        "Expected 'in' after closure parameters",
		IOInfo:                      "I/O information",
		IOLoadFileError:             "Failed to load file",
		IOWriteError:                "Failed to write file",
		RefInfo:                     "Refactoring information",
		RefNoPlaceholder:            "No editor placeholder at position",
		RefEditConflict:             "Overlapping edits",
		RefFormatUnstable:           "Formatting is not stable",
		RefFormatChangedTree:        "Formatting changed the syntax tree",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("REF%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
