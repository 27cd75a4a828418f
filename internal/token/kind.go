package token

// Kind is the category of a source token, covering zomlang's full surface
// grammar: classes, interfaces, structs, enums, raises clauses, and
// template literals.
type Kind uint16

const (
	// Invalid marks an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the buffer; exactly one is produced per lex.
	EOF
	// Unknown is a single unrecognized character (one whole UTF-8 rune), the
	// lexer's error-recovery path.
	Unknown
	// Comment is only produced when the retention policy is ReturnAsTokens.
	Comment

	// Ident is a plain identifier.
	Ident

	// --- Keywords (case-sensitive) ---
	KwAbstract
	KwAccessor
	KwAny
	KwAs
	KwAsserts
	KwAssert
	KwAsync
	KwAwait
	KwBigint
	KwBoolean
	KwBreak
	KwCase
	KwCatch
	KwClass
	KwContinue
	KwConst
	KwConstructor
	KwDebugger
	KwDeclare
	KwDefault
	KwDelete
	KwDo
	KwElse
	KwEnum
	KwExtends
	KwExport
	KwFalse
	KwFinally
	KwFor
	KwFrom
	KwFun
	KwGet
	KwGlobal
	KwIf
	KwImmediate
	KwImplements
	KwImport
	KwIn
	KwInfer
	KwInstanceof
	KwInterface
	KwIntrinsic
	KwIs
	KwKeyof
	KwLet
	KwMatch
	KwModule
	KwMutable
	KwNamespace
	KwNever
	KwNew
	KwNumber
	KwNull
	KwObject
	KwOf
	KwOptional
	KwOut
	KwOverride
	KwPackage
	KwPrivate
	KwProtected
	KwPublic
	KwRaises
	KwReadonly
	KwRequire
	KwReturn
	KwSatisfies
	KwSet
	KwStatic
	KwStruct
	KwSuper
	KwSwitch
	KwSymbol
	KwThis
	KwThrow
	KwTrue
	KwTry
	KwTypeof
	KwUndefined
	KwUnique
	KwUsing
	KwVar
	KwVoid
	KwWhen
	KwWhile
	KwWith
	KwYield

	// --- Literals ---
	IntegerLiteral
	FloatLiteral
	StringLiteral
	// TemplateHead/Middle/Tail/NoSubstitution form the interpolated-string
	// family; Middle and Tail are produced while the lexer is in
	// StringInterpolation mode, Head and NoSubstitution at a '`' in normal
	// mode.
	TemplateHead
	TemplateMiddle
	TemplateTail
	NoSubstitutionTemplate
	RegexLiteral

	// --- Punctuators and operators ---
	LParen   // (
	RParen   // )
	LBrace   // {
	RBrace   // }
	LBracket // [
	RBracket // ]
	Comma    // ,
	Semicolon
	Colon
	Dot       // .
	DotDotDot // ...
	Question  // ?
	QuestionQuestion
	QuestionDot // ?.
	At          // @
	Hash        // #
	Backtick    // `
	LessSlash   // </

	Plus
	Minus
	Star
	Slash
	Percent
	StarStar // **

	Lt
	Gt
	LtEq
	GtEq
	EqEqEq   // ===
	BangEqEq // !==
	EqEq
	BangEq

	AmpAmp // &&
	PipePipe
	Bang

	Amp
	Pipe
	Caret
	Tilde
	Shl  // <<
	Shr  // >>
	UShr // >>>

	Assign
	PlusAssign
	MinusAssign
	StarAssign
	SlashAssign
	PercentAssign
	StarStarAssign
	ShlAssign
	ShrAssign
	UShrAssign
	AmpAssign
	PipeAssign
	CaretAssign
	AmpAmpAssign           // &&=
	PipePipeAssign         // ||=
	QuestionQuestionAssign // ??=

	PlusPlus   // ++
	MinusMinus // --

	Arrow    // ->
	FatArrow // =>
)
