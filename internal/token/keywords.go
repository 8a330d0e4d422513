package token

var keywords = map[string]Kind{
	"in":       KwIn,
	"return":   KwReturn,
	"let":      KwLet,
	"var":      KwVar,
	"func":     KwFunc,
	"true":     KwTrue,
	"false":    KwFalse,
	"nil":      KwNil,
	"throws":   KwThrows,
	"rethrows": KwRethrows,
	"async":    KwAsync,
	"some":     KwSome,
	"any":      KwAny,
	"inout":    KwInout,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые: только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
