package ir

import (
	"strings"

	"github.com/rowpoly/rowpoly/types"
)

// String renders t in a small surface-like syntax, for diagnostics and
// tests. It is not a parser round-trip format.
func String(t Term) string {
	var sb strings.Builder
	termString(&sb, false, t)
	return sb.String()
}

func termString(sb *strings.Builder, simple bool, t Term) {
	switch t := t.(type) {
	case *Var:
		sb.WriteString(t.Name)

	case *Constant:
		sb.WriteString(t.Value.Syntax)

	case *Builtin:
		sb.WriteString(string(t.Tag))

	case *Error:
		sb.WriteString("error(")
		sb.WriteString(t.Msg)
		sb.WriteByte(')')

	case *Lam:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("fun ")
		for i, p := range t.Params {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(p.Name)
		}
		sb.WriteString(" -> ")
		termString(sb, false, t.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *App:
		termString(sb, true, t.Func)
		sb.WriteByte('(')
		for i, arg := range t.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			termString(sb, false, arg)
		}
		sb.WriteByte(')')

	case *Let:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("let ")
		sb.WriteString(t.Name)
		sb.WriteString(" = ")
		termString(sb, false, t.Rhs)
		sb.WriteString(" in ")
		termString(sb, false, t.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *Block:
		sb.WriteString("{ ")
		for i, sub := range t.Terms {
			if i > 0 {
				sb.WriteString("; ")
			}
			termString(sb, false, sub)
		}
		sb.WriteString(" }")

	case *DynAccess:
		termString(sb, true, t.Target)
		sb.WriteByte('[')
		termString(sb, false, t.Key)
		sb.WriteByte(']')

	case *ObjectLit:
		sb.WriteByte('{')
		for i, field := range t.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(field.Label)
			sb.WriteString(": ")
			termString(sb, false, field.Value)
		}
		sb.WriteByte('}')

	case *ListLit:
		sb.WriteByte('[')
		for i, item := range t.Items {
			if i > 0 {
				sb.WriteString(", ")
			}
			termString(sb, false, item)
		}
		sb.WriteByte(']')

	case *TyApp:
		termString(sb, true, t.Term)
		sb.WriteByte('[')
		for i, ta := range t.TypeArgs {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(types.TypeString(ta))
		}
		sb.WriteByte(']')

	case *TyAbs:
		sb.WriteString("Λ")
		for _, v := range t.Vars {
			sb.WriteByte(' ')
			if ndb, ok := v.(types.NamedDeBruijn); ok {
				sb.WriteString(ndb.DisplayName)
			}
		}
		sb.WriteString(". ")
		termString(sb, false, t.Body)
	}
}
