package token

// keywords maps the exact byte sequence of a reserved identifier to its
// Kind. Matching is case-sensitive: zomlang distinguishes e.g. "this" from
// "This".
var keywords = map[string]Kind{
	"abstract":    KwAbstract,
	"accessor":    KwAccessor,
	"any":         KwAny,
	"as":          KwAs,
	"asserts":     KwAsserts,
	"assert":      KwAssert,
	"async":       KwAsync,
	"await":       KwAwait,
	"bigint":      KwBigint,
	"boolean":     KwBoolean,
	"break":       KwBreak,
	"case":        KwCase,
	"catch":       KwCatch,
	"class":       KwClass,
	"continue":    KwContinue,
	"const":       KwConst,
	"constructor": KwConstructor,
	"debugger":    KwDebugger,
	"declare":     KwDeclare,
	"default":     KwDefault,
	"delete":      KwDelete,
	"do":          KwDo,
	// else is not present in the original zomlang keyword table; it is
	// added here because the if/else statement grammar requires it.
	"else": KwElse,
	"enum": KwEnum,
	// error is deliberately absent: error declarations are recognized by
	// a contextual identifier check at statement-start, not a reserved word.
	"extends":    KwExtends,
	"export":     KwExport,
	"false":      KwFalse,
	"finally":    KwFinally,
	"for":        KwFor,
	"from":       KwFrom,
	"fun":        KwFun,
	"get":        KwGet,
	"global":     KwGlobal,
	"if":         KwIf,
	"immediate":  KwImmediate,
	"implements": KwImplements,
	"import":     KwImport,
	"in":         KwIn,
	"infer":      KwInfer,
	"instanceof": KwInstanceof,
	"interface":  KwInterface,
	"intrinsic":  KwIntrinsic,
	"is":         KwIs,
	"keyof":      KwKeyof,
	"let":        KwLet,
	"match":      KwMatch,
	"module":     KwModule,
	"mutable":    KwMutable,
	"namespace":  KwNamespace,
	"never":      KwNever,
	"new":        KwNew,
	"number":     KwNumber,
	"null":       KwNull,
	"object":     KwObject,
	"of":         KwOf,
	"optional":   KwOptional,
	"out":        KwOut,
	"override":   KwOverride,
	"package":    KwPackage,
	"private":    KwPrivate,
	"protected":  KwProtected,
	"public":     KwPublic,
	"raises":     KwRaises,
	"readonly":   KwReadonly,
	"require":    KwRequire,
	"return":     KwReturn,
	"satisfies":  KwSatisfies,
	"set":        KwSet,
	"static":     KwStatic,
	"struct":     KwStruct,
	"super":      KwSuper,
	"switch":     KwSwitch,
	"symbol":     KwSymbol,
	"this":       KwThis,
	"throw":      KwThrow,
	"true":       KwTrue,
	"try":        KwTry,
	"typeof":     KwTypeof,
	"undefined":  KwUndefined,
	"unique":     KwUnique,
	"using":      KwUsing,
	"var":        KwVar,
	"void":       KwVoid,
	"when":       KwWhen,
	"while":      KwWhile,
	"with":       KwWith,
	"yield":      KwYield,
}

// LookupKeyword reports whether text is a reserved word and, if so, its Kind.
func LookupKeyword(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}
