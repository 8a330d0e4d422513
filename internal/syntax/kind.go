package syntax

// Kind identifies the syntactic category of a node.
type Kind uint8

const (
	KindToken Kind = iota
	KindUnexpected

	KindSourceFile
	KindCodeBlockItemList
	KindCodeBlockItem

	// выражения
	KindDeclReferenceExpr
	KindIntegerLiteralExpr
	KindFloatLiteralExpr
	KindStringLiteralExpr
	KindBooleanLiteralExpr
	KindNilLiteralExpr
	KindMemberAccessExpr
	KindFunctionCallExpr
	KindSubscriptCallExpr
	KindLabeledExprList
	KindLabeledExpr
	KindClosureExpr
	KindClosureSignature
	KindClosureShorthandParameterList
	KindClosureShorthandParameter
	KindClosureParameterClause
	KindClosureParameterList
	KindClosureParameter
	KindTupleExpr
	KindArrayExpr
	KindInfixOperatorExpr
	KindPrefixOperatorExpr
	KindPostfixOperatorExpr

	// операторы и объявления
	KindReturnStmt
	KindVariableDecl

	// типы
	KindIdentifierType
	KindMemberType
	KindGenericArgumentClause
	KindGenericArgumentList
	KindGenericArgument
	KindOptionalType
	KindArrayType
	KindDictionaryType
	KindTupleType
	KindTupleTypeElementList
	KindTupleTypeElement
	KindFunctionType
	KindReturnClause
	KindAttributedType
	KindAttributeList
	KindAttribute
	KindSomeOrAnyType

	kindCount
)

// Slot layouts. Each constant is the index of a child in its parent's slots.
const (
	SlotSourceFileItems = 0
	SlotSourceFileEOF   = 1

	SlotCodeBlockItemItem      = 0
	SlotCodeBlockItemSemicolon = 1

	SlotDeclReferenceBaseName = 0

	SlotLiteralToken = 0

	SlotMemberAccessBase = 0
	SlotMemberAccessDot  = 1
	SlotMemberAccessName = 2

	SlotCallCallee          = 0
	SlotCallLeftParen       = 1
	SlotCallArguments       = 2
	SlotCallRightParen      = 3
	SlotCallTrailingClosure = 4

	SlotSubscriptCallee          = 0
	SlotSubscriptLeftBracket     = 1
	SlotSubscriptArguments       = 2
	SlotSubscriptRightBracket    = 3
	SlotSubscriptTrailingClosure = 4

	SlotLabeledExprLabel      = 0
	SlotLabeledExprColon      = 1
	SlotLabeledExprExpression = 2
	SlotLabeledExprComma      = 3

	SlotClosureLeftBrace  = 0
	SlotClosureSignature  = 1
	SlotClosureStatements = 2
	SlotClosureRightBrace = 3

	SlotClosureSignatureParameters   = 0
	SlotClosureSignatureReturnClause = 1
	SlotClosureSignatureIn           = 2

	SlotShorthandParameterName  = 0
	SlotShorthandParameterComma = 1

	SlotClosureParameterClauseLeftParen  = 0
	SlotClosureParameterClauseParameters = 1
	SlotClosureParameterClauseRightParen = 2

	SlotClosureParameterFirstName  = 0
	SlotClosureParameterSecondName = 1
	SlotClosureParameterColon      = 2
	SlotClosureParameterType       = 3
	SlotClosureParameterComma      = 4

	SlotTupleExprLeftParen  = 0
	SlotTupleExprElements   = 1
	SlotTupleExprRightParen = 2

	SlotArrayExprLeftBracket  = 0
	SlotArrayExprElements     = 1
	SlotArrayExprRightBracket = 2

	SlotInfixLeft     = 0
	SlotInfixOperator = 1
	SlotInfixRight    = 2

	SlotPrefixOperator = 0
	SlotPrefixOperand  = 1

	SlotPostfixOperand  = 0
	SlotPostfixOperator = 1

	SlotReturnKeyword    = 0
	SlotReturnExpression = 1

	SlotVariableKeyword     = 0
	SlotVariableName        = 1
	SlotVariableColon       = 2
	SlotVariableType        = 3
	SlotVariableAssign      = 4
	SlotVariableInitializer = 5

	SlotIdentifierTypeName             = 0
	SlotIdentifierTypeGenericArguments = 1

	SlotMemberTypeBase             = 0
	SlotMemberTypeDot              = 1
	SlotMemberTypeName             = 2
	SlotMemberTypeGenericArguments = 3

	SlotGenericClauseLeftAngle  = 0
	SlotGenericClauseArguments  = 1
	SlotGenericClauseRightAngle = 2

	SlotGenericArgumentType  = 0
	SlotGenericArgumentComma = 1

	SlotOptionalWrapped = 0
	SlotOptionalMark    = 1

	SlotArrayTypeLeftBracket  = 0
	SlotArrayTypeElement      = 1
	SlotArrayTypeRightBracket = 2

	SlotDictionaryLeftBracket  = 0
	SlotDictionaryKey          = 1
	SlotDictionaryColon        = 2
	SlotDictionaryValue        = 3
	SlotDictionaryRightBracket = 4

	SlotTupleTypeLeftParen  = 0
	SlotTupleTypeElements   = 1
	SlotTupleTypeRightParen = 2

	SlotTupleTypeElementFirstName  = 0
	SlotTupleTypeElementSecondName = 1
	SlotTupleTypeElementColon      = 2
	SlotTupleTypeElementType       = 3
	SlotTupleTypeElementEllipsis   = 4
	SlotTupleTypeElementComma      = 5

	SlotFunctionTypeLeftParen    = 0
	SlotFunctionTypeParameters   = 1
	SlotFunctionTypeRightParen   = 2
	SlotFunctionTypeAsync        = 3
	SlotFunctionTypeThrows       = 4
	SlotFunctionTypeReturnClause = 5

	SlotReturnClauseArrow = 0
	SlotReturnClauseType  = 1

	SlotAttributedTypeAttributes = 0
	SlotAttributedTypeSpecifier  = 1
	SlotAttributedTypeBase       = 2

	SlotAttributeAt   = 0
	SlotAttributeName = 1

	SlotSomeOrAnyKeyword    = 0
	SlotSomeOrAnyConstraint = 1
)

type kindInfo struct {
	name  string
	slots int // -1 for list kinds
}

var kinds = [kindCount]kindInfo{
	KindToken:                         {"Token", 0},
	KindUnexpected:                    {"Unexpected", -1},
	KindSourceFile:                    {"SourceFile", 2},
	KindCodeBlockItemList:             {"CodeBlockItemList", -1},
	KindCodeBlockItem:                 {"CodeBlockItem", 2},
	KindDeclReferenceExpr:             {"DeclReferenceExpr", 1},
	KindIntegerLiteralExpr:            {"IntegerLiteralExpr", 1},
	KindFloatLiteralExpr:              {"FloatLiteralExpr", 1},
	KindStringLiteralExpr:             {"StringLiteralExpr", 1},
	KindBooleanLiteralExpr:            {"BooleanLiteralExpr", 1},
	KindNilLiteralExpr:                {"NilLiteralExpr", 1},
	KindMemberAccessExpr:              {"MemberAccessExpr", 3},
	KindFunctionCallExpr:              {"FunctionCallExpr", 5},
	KindSubscriptCallExpr:             {"SubscriptCallExpr", 5},
	KindLabeledExprList:               {"LabeledExprList", -1},
	KindLabeledExpr:                   {"LabeledExpr", 4},
	KindClosureExpr:                   {"ClosureExpr", 4},
	KindClosureSignature:              {"ClosureSignature", 3},
	KindClosureShorthandParameterList: {"ClosureShorthandParameterList", -1},
	KindClosureShorthandParameter:     {"ClosureShorthandParameter", 2},
	KindClosureParameterClause:        {"ClosureParameterClause", 3},
	KindClosureParameterList:          {"ClosureParameterList", -1},
	KindClosureParameter:              {"ClosureParameter", 5},
	KindTupleExpr:                     {"TupleExpr", 3},
	KindArrayExpr:                     {"ArrayExpr", 3},
	KindInfixOperatorExpr:             {"InfixOperatorExpr", 3},
	KindPrefixOperatorExpr:            {"PrefixOperatorExpr", 2},
	KindPostfixOperatorExpr:           {"PostfixOperatorExpr", 2},
	KindReturnStmt:                    {"ReturnStmt", 2},
	KindVariableDecl:                  {"VariableDecl", 6},
	KindIdentifierType:                {"IdentifierType", 2},
	KindMemberType:                    {"MemberType", 4},
	KindGenericArgumentClause:         {"GenericArgumentClause", 3},
	KindGenericArgumentList:           {"GenericArgumentList", -1},
	KindGenericArgument:               {"GenericArgument", 2},
	KindOptionalType:                  {"OptionalType", 2},
	KindArrayType:                     {"ArrayType", 3},
	KindDictionaryType:                {"DictionaryType", 5},
	KindTupleType:                     {"TupleType", 3},
	KindTupleTypeElementList:          {"TupleTypeElementList", -1},
	KindTupleTypeElement:              {"TupleTypeElement", 6},
	KindFunctionType:                  {"FunctionType", 6},
	KindReturnClause:                  {"ReturnClause", 2},
	KindAttributedType:                {"AttributedType", 3},
	KindAttributeList:                 {"AttributeList", -1},
	KindAttribute:                     {"Attribute", 2},
	KindSomeOrAnyType:                 {"SomeOrAnyType", 2},
}

func (k Kind) String() string {
	if k < kindCount {
		return kinds[k].name
	}
	return "Kind(?)"
}

// IsList reports whether nodes of kind k have a variable number of children.
func (k Kind) IsList() bool {
	return k < kindCount && kinds[k].slots < 0
}

// SlotCount returns the fixed slot count of k, or -1 for list kinds.
func (k Kind) SlotCount() int {
	if k >= kindCount {
		return 0
	}
	return kinds[k].slots
}

// IsExpr reports whether k is an expression kind.
func (k Kind) IsExpr() bool {
	switch k {
	case KindDeclReferenceExpr, KindIntegerLiteralExpr, KindFloatLiteralExpr, KindStringLiteralExpr,
		KindBooleanLiteralExpr, KindNilLiteralExpr, KindMemberAccessExpr, KindFunctionCallExpr,
		KindSubscriptCallExpr, KindClosureExpr, KindTupleExpr, KindArrayExpr,
		KindInfixOperatorExpr, KindPrefixOperatorExpr, KindPostfixOperatorExpr:
		return true
	}
	return false
}

// IsType reports whether k is a type kind.
func (k Kind) IsType() bool {
	switch k {
	case KindIdentifierType, KindMemberType, KindOptionalType, KindArrayType, KindDictionaryType,
		KindTupleType, KindFunctionType, KindAttributedType, KindSomeOrAnyType:
		return true
	}
	return false
}
