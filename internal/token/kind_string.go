package token

import "strconv"

// kindNames mirrors the Kind const block one to one; a Kind missing here
// renders as "Kind(N)".
var kindNames = map[Kind]string{
	Invalid:                "Invalid",
	EOF:                    "EOF",
	Unknown:                "Unknown",
	Comment:                "Comment",
	Ident:                  "Ident",
	KwAbstract:             "KwAbstract",
	KwAccessor:             "KwAccessor",
	KwAny:                  "KwAny",
	KwAs:                   "KwAs",
	KwAsserts:              "KwAsserts",
	KwAssert:               "KwAssert",
	KwAsync:                "KwAsync",
	KwAwait:                "KwAwait",
	KwBigint:               "KwBigint",
	KwBoolean:              "KwBoolean",
	KwBreak:                "KwBreak",
	KwCase:                 "KwCase",
	KwCatch:                "KwCatch",
	KwClass:                "KwClass",
	KwContinue:             "KwContinue",
	KwConst:                "KwConst",
	KwConstructor:          "KwConstructor",
	KwDebugger:             "KwDebugger",
	KwDeclare:              "KwDeclare",
	KwDefault:              "KwDefault",
	KwDelete:               "KwDelete",
	KwDo:                   "KwDo",
	KwElse:                 "KwElse",
	KwEnum:                 "KwEnum",
	KwExtends:              "KwExtends",
	KwExport:               "KwExport",
	KwFalse:                "KwFalse",
	KwFinally:              "KwFinally",
	KwFor:                  "KwFor",
	KwFrom:                 "KwFrom",
	KwFun:                  "KwFun",
	KwGet:                  "KwGet",
	KwGlobal:               "KwGlobal",
	KwIf:                   "KwIf",
	KwImmediate:            "KwImmediate",
	KwImplements:           "KwImplements",
	KwImport:               "KwImport",
	KwIn:                   "KwIn",
	KwInfer:                "KwInfer",
	KwInstanceof:           "KwInstanceof",
	KwInterface:            "KwInterface",
	KwIntrinsic:            "KwIntrinsic",
	KwIs:                   "KwIs",
	KwKeyof:                "KwKeyof",
	KwLet:                  "KwLet",
	KwMatch:                "KwMatch",
	KwModule:               "KwModule",
	KwMutable:              "KwMutable",
	KwNamespace:            "KwNamespace",
	KwNever:                "KwNever",
	KwNew:                  "KwNew",
	KwNumber:               "KwNumber",
	KwNull:                 "KwNull",
	KwObject:               "KwObject",
	KwOf:                   "KwOf",
	KwOptional:             "KwOptional",
	KwOut:                  "KwOut",
	KwOverride:             "KwOverride",
	KwPackage:              "KwPackage",
	KwPrivate:              "KwPrivate",
	KwProtected:            "KwProtected",
	KwPublic:               "KwPublic",
	KwRaises:               "KwRaises",
	KwReadonly:             "KwReadonly",
	KwRequire:              "KwRequire",
	KwReturn:               "KwReturn",
	KwSatisfies:            "KwSatisfies",
	KwSet:                  "KwSet",
	KwStatic:               "KwStatic",
	KwStruct:               "KwStruct",
	KwSuper:                "KwSuper",
	KwSwitch:               "KwSwitch",
	KwSymbol:               "KwSymbol",
	KwThis:                 "KwThis",
	KwThrow:                "KwThrow",
	KwTrue:                 "KwTrue",
	KwTry:                  "KwTry",
	KwTypeof:               "KwTypeof",
	KwUndefined:            "KwUndefined",
	KwUnique:               "KwUnique",
	KwUsing:                "KwUsing",
	KwVar:                  "KwVar",
	KwVoid:                 "KwVoid",
	KwWhen:                 "KwWhen",
	KwWhile:                "KwWhile",
	KwWith:                 "KwWith",
	KwYield:                "KwYield",
	IntegerLiteral:         "IntegerLiteral",
	FloatLiteral:           "FloatLiteral",
	StringLiteral:          "StringLiteral",
	TemplateHead:           "TemplateHead",
	TemplateMiddle:         "TemplateMiddle",
	TemplateTail:           "TemplateTail",
	NoSubstitutionTemplate: "NoSubstitutionTemplate",
	RegexLiteral:           "RegexLiteral",
	LParen:                 "LParen",
	RParen:                 "RParen",
	LBrace:                 "LBrace",
	RBrace:                 "RBrace",
	LBracket:               "LBracket",
	RBracket:               "RBracket",
	Comma:                  "Comma",
	Semicolon:              "Semicolon",
	Colon:                  "Colon",
	Dot:                    "Dot",
	DotDotDot:              "DotDotDot",
	Question:               "Question",
	QuestionQuestion:       "QuestionQuestion",
	QuestionDot:            "QuestionDot",
	At:                     "At",
	Hash:                   "Hash",
	Backtick:               "Backtick",
	LessSlash:              "LessSlash",
	Plus:                   "Plus",
	Minus:                  "Minus",
	Star:                   "Star",
	Slash:                  "Slash",
	Percent:                "Percent",
	StarStar:               "StarStar",
	Lt:                     "Lt",
	Gt:                     "Gt",
	LtEq:                   "LtEq",
	GtEq:                   "GtEq",
	EqEqEq:                 "EqEqEq",
	BangEqEq:               "BangEqEq",
	EqEq:                   "EqEq",
	BangEq:                 "BangEq",
	AmpAmp:                 "AmpAmp",
	PipePipe:               "PipePipe",
	Bang:                   "Bang",
	Amp:                    "Amp",
	Pipe:                   "Pipe",
	Caret:                  "Caret",
	Tilde:                  "Tilde",
	Shl:                    "Shl",
	Shr:                    "Shr",
	UShr:                   "UShr",
	Assign:                 "Assign",
	PlusAssign:             "PlusAssign",
	MinusAssign:            "MinusAssign",
	StarAssign:             "StarAssign",
	SlashAssign:            "SlashAssign",
	PercentAssign:          "PercentAssign",
	StarStarAssign:         "StarStarAssign",
	ShlAssign:              "ShlAssign",
	ShrAssign:              "ShrAssign",
	UShrAssign:             "UShrAssign",
	AmpAssign:              "AmpAssign",
	PipeAssign:             "PipeAssign",
	CaretAssign:            "CaretAssign",
	AmpAmpAssign:           "AmpAmpAssign",
	PipePipeAssign:         "PipePipeAssign",
	QuestionQuestionAssign: "QuestionQuestionAssign",
	PlusPlus:               "PlusPlus",
	MinusMinus:             "MinusMinus",
	Arrow:                  "Arrow",
	FatArrow:               "FatArrow",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}
