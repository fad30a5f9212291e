package ir

// BuiltinTag names a built-in operation whose signature is supplied
// externally (see the builtins package) rather than inferred from source.
type BuiltinTag string

const (
	Add    BuiltinTag = "+"
	Sub    BuiltinTag = "-"
	Mul    BuiltinTag = "*"
	Div    BuiltinTag = "/"
	Mod    BuiltinTag = "mod"
	Negate BuiltinTag = "negate"
	BitAnd BuiltinTag = "band"
	BitOr  BuiltinTag = "bor"
	BitXor BuiltinTag = "bxor"
	Abs    BuiltinTag = "abs"

	DecimalNeg BuiltinTag = "dec.negate"
	DecimalAdd BuiltinTag = "dec.+"
	DecimalSub BuiltinTag = "dec.-"
	DecimalMul BuiltinTag = "dec.*"
	DecimalDiv BuiltinTag = "dec./"
	DecimalRound BuiltinTag = "dec.round"

	Lt BuiltinTag = "<"
	Le BuiltinTag = "<="
	Gt BuiltinTag = ">"
	Ge BuiltinTag = ">="
	Eq BuiltinTag = "=="
	Ne BuiltinTag = "!="

	Not BuiltinTag = "not"
	And BuiltinTag = "and"
	Or  BuiltinTag = "or"

	Map      BuiltinTag = "map"
	Fold     BuiltinTag = "fold"
	Filter   BuiltinTag = "filter"
	If       BuiltinTag = "if"
	Take     BuiltinTag = "take"
	Drop     BuiltinTag = "drop"
	Length   BuiltinTag = "length"
	Distinct BuiltinTag = "distinct"
	Enforce  BuiltinTag = "enforce"

	IntToStr       BuiltinTag = "int->str"
	StrToInt       BuiltinTag = "str->int"
	Concat         BuiltinTag = "concat"
	Enumerate      BuiltinTag = "enumerate"
	EnumerateStep  BuiltinTag = "enumerate/step"
)
