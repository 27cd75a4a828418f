package diagfmt

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"

	"zomlang/internal/ast"
	"zomlang/internal/source"
)

// astField is one semantically significant scalar field of a node (an
// identifier, a literal value, an operator symbol) surfaced alongside its
// children in every dump format.
type astField struct {
	Key   string
	Value string
}

// describeNode returns the scalar fields a dump should show for n, beyond
// its Kind, Span and Children. A node type with no entry in the switch is
// still dumped, with its Kind, Span and Children but no fields.
func describeNode(n ast.Node) []astField {
	switch v := n.(type) {
	case *ast.SourceFile:
		return []astField{{"fileName", v.FileName}}
	case *ast.ModulePath:
		return []astField{{"path", joinDotted(v.Parts)}}
	case *ast.ImportDeclaration:
		return []astField{{"namespaceAs", v.NamespaceAs}}
	case *ast.VariableDeclaration:
		return []astField{{"varKind", varKindName(v.Kind_)}, {"exported", strconv.FormatBool(v.Exported)}}
	case *ast.FunctionDeclaration:
		return []astField{{"name", v.Name}, {"async", strconv.FormatBool(v.Async)}, {"exported", strconv.FormatBool(v.Exported)}}
	case *ast.ClassDeclaration:
		return []astField{{"name", v.Name}, {"exported", strconv.FormatBool(v.Exported)}}
	case *ast.InterfaceDeclaration:
		return []astField{{"name", v.Name}, {"exported", strconv.FormatBool(v.Exported)}}
	case *ast.StructDeclaration:
		return []astField{{"name", v.Name}, {"exported", strconv.FormatBool(v.Exported)}}
	case *ast.EnumDeclaration:
		return []astField{{"name", v.Name}, {"exported", strconv.FormatBool(v.Exported)}}
	case *ast.AliasDeclaration:
		return []astField{{"name", v.Name}, {"exported", strconv.FormatBool(v.Exported)}}
	case *ast.ErrorDeclaration:
		return []astField{{"name", v.Name}, {"exported", strconv.FormatBool(v.Exported)}}
	case *ast.BreakStatement:
		return []astField{{"label", v.Label}}
	case *ast.ContinueStatement:
		return []astField{{"label", v.Label}}
	case *ast.StringLiteral:
		return []astField{{"value", v.Value}}
	case *ast.IntLiteral:
		return []astField{{"value", strconv.FormatInt(v.Value, 10)}}
	case *ast.FloatLiteral:
		return []astField{{"value", strconv.FormatFloat(v.Value, 'g', -1, 64)}}
	case *ast.BoolLiteral:
		return []astField{{"value", strconv.FormatBool(v.Value)}}
	case *ast.TemplateExpression:
		return []astField{{"head", v.HeadChunk}}
	case *ast.RegexLiteral:
		return []astField{{"pattern", v.Pattern}, {"flags", v.Flags}}
	case *ast.Identifier:
		return []astField{{"name", v.Name}}
	case *ast.PropertyAccessExpression:
		return []astField{{"name", v.Name}, {"optional", strconv.FormatBool(v.Optional)}}
	case *ast.ElementAccessExpression:
		return []astField{{"optional", strconv.FormatBool(v.Optional)}}
	case *ast.CallExpression:
		return []astField{{"optional", strconv.FormatBool(v.Optional)}}
	case *ast.PrefixUnaryExpression:
		return []astField{{"operator", v.Operator.Symbol}}
	case *ast.PostfixUnaryExpression:
		return []astField{{"operator", v.Operator.Symbol}}
	case *ast.BinaryExpression:
		return []astField{{"operator", v.Operator.Symbol}}
	case *ast.AssignmentExpression:
		return []astField{{"operator", v.Operator.Symbol}}
	case *ast.FunctionExpression:
		return []astField{{"name", v.Name}, {"async", strconv.FormatBool(v.Async)}}
	case *ast.TypeReference:
		return []astField{{"name", v.Name}}
	case *ast.PredefinedType:
		return []astField{{"keyword", predefinedName(v.Keyword)}}
	case *ast.OptionalType:
		return nil
	case *ast.ReturnType:
		return []astField{{"hasErrorType", strconv.FormatBool(v.HasErrorType())}}
	default:
		return nil
	}
}

// formatSpan renders a span as "line:col-line:col" when fs can resolve it,
// or as raw byte offsets otherwise (e.g. a tree dumped without a FileSet).
func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs == nil {
		return fmt.Sprintf("span(%d-%d)", span.Start, span.End)
	}
	start, end := fs.Resolve(span)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

func joinDotted(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "."
		}
		out += p
	}
	return out
}

func varKindName(k ast.VarKind) string {
	switch k {
	case ast.VarConst:
		return "const"
	case ast.VarVar:
		return "var"
	default:
		return "let"
	}
}

func predefinedName(k ast.PredefinedTypeKeyword) string {
	names := map[ast.PredefinedTypeKeyword]string{
		ast.PredefinedNumber:  "number",
		ast.PredefinedString:  "string",
		ast.PredefinedBoolean: "boolean",
		ast.PredefinedVoid:    "void",
		ast.PredefinedAny:     "any",
		ast.PredefinedUnknown: "unknown",
		ast.PredefinedNever:   "never",
		ast.PredefinedObject:  "object",
	}
	if name, ok := names[k]; ok {
		return name
	}
	return "unknown"
}

// FormatASTText writes a two-space-indented, deterministic text rendering of
// node's subtree, labeling every node with its kind, span and scalar fields.
func FormatASTText(w io.Writer, node ast.Node, fs *source.FileSet) error {
	return dumpText(w, node, fs, 0)
}

func dumpText(w io.Writer, node ast.Node, fs *source.FileSet, depth int) error {
	if node == nil {
		return nil
	}
	indent := ""
	for range depth {
		indent += "  "
	}
	fields := describeNode(node)
	line := fmt.Sprintf("%s%s @ %s", indent, node.Kind().String(), formatSpan(node.Span(), fs))
	for _, f := range fields {
		line += fmt.Sprintf(" %s=%q", f.Key, f.Value)
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	for _, child := range node.Children() {
		if err := dumpText(w, child, fs, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// astJSONNode is the `{ "kind": …, "range": …, "fields": { … }, "children": [ … ] }`
// shape of JSON output; "fields" and "children" are omitted when empty.
type astJSONNode struct {
	Kind     string            `json:"kind"`
	Range    source.Span       `json:"range"`
	Fields   map[string]string `json:"fields,omitempty"`
	Children []astJSONNode     `json:"children,omitempty"`
}

func buildJSONNode(node ast.Node) astJSONNode {
	out := astJSONNode{Kind: node.Kind().String(), Range: node.Span()}
	if fields := describeNode(node); len(fields) > 0 {
		out.Fields = make(map[string]string, len(fields))
		for _, f := range fields {
			out.Fields[f.Key] = f.Value
		}
	}
	for _, child := range node.Children() {
		out.Children = append(out.Children, buildJSONNode(child))
	}
	return out
}

// FormatASTJSON writes node's subtree as JSON, each node wrapped as
// { "kind", "range", "fields", "children" } with empty fields and children
// left out.
func FormatASTJSON(w io.Writer, node ast.Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildJSONNode(node))
}

type xmlAttr struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type xmlNode struct {
	XMLName  xml.Name
	Start    uint32    `xml:"start,attr"`
	End      uint32    `xml:"end,attr"`
	Fields   []xmlAttr `xml:"field"`
	Children []xmlNode
}

func buildXMLNode(node ast.Node) xmlNode {
	span := node.Span()
	out := xmlNode{
		XMLName: xml.Name{Local: node.Kind().String()},
		Start:   span.Start,
		End:     span.End,
	}
	fields := describeNode(node)
	sort.Slice(fields, func(i, j int) bool { return fields[i].Key < fields[j].Key })
	for _, f := range fields {
		out.Fields = append(out.Fields, xmlAttr{Name: f.Key, Value: f.Value})
	}
	for _, child := range node.Children() {
		out.Children = append(out.Children, buildXMLNode(child))
	}
	return out
}

// FormatASTXML writes node's subtree as XML, using element names equal to
// each node's kind.
func FormatASTXML(w io.Writer, node ast.Node) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(buildXMLNode(node)); err != nil {
		return err
	}
	_, err := w.Write([]byte("\n"))
	return err
}
