package ast

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/viant/splfield/parser"
	"github.com/viant/splfield/token"
)

// LiftPipeline lowers a CST produced by package parser into a typed
// Pipeline (spec.md §4.3, component C4).
func LiftPipeline(cst *parser.Node) *Pipeline {
	p := &Pipeline{}
	if cst == nil {
		return p
	}
	if it := cst.First("initialSearch"); it != nil && it.Node != nil {
		p.InitialSearch = liftSearchExpression(it.Node)
	}
	for _, it := range cst.All("command") {
		if it.Node == nil {
			continue
		}
		p.Stages = append(p.Stages, liftCommand(it.Node))
	}
	return p
}

func span(n *parser.Node) token.Span {
	if n == nil {
		return token.Span{}
	}
	return n.Span
}

func fieldRefFromNode(n *parser.Node) FieldRef {
	if n == nil {
		return FieldRef{}
	}
	name := ""
	if n.Token != nil {
		name = n.Token.Text
	}
	return FieldRef{Name: name, IsWildcard: strings.Contains(name, "*"), Location: n.Span}
}

func fieldRefFromItem(it *parser.Item) FieldRef {
	if it == nil {
		return FieldRef{}
	}
	if it.Node != nil {
		return fieldRefFromNode(it.Node)
	}
	if it.Token != nil {
		return FieldRef{Name: it.Token.Text, IsWildcard: strings.Contains(it.Token.Text, "*"), Location: it.Token.Span()}
	}
	return FieldRef{}
}

func fieldRefList(items []parser.Item) []FieldRef {
	out := make([]FieldRef, 0, len(items))
	for i := range items {
		out = append(out, fieldRefFromItem(&items[i]))
	}
	return out
}

func optionMap(n *parser.Node) map[string]Expr {
	names := n.All("optionName")
	values := n.All("optionValue")
	if len(names) == 0 {
		return nil
	}
	out := make(map[string]Expr, len(names))
	for i, name := range names {
		var val Expr
		if i < len(values) && values[i].Node != nil {
			val = liftExprNode(values[i].Node)
		}
		key := ""
		if name.Token != nil {
			key = strings.ToLower(name.Token.Text)
		}
		out[key] = val
	}
	return out
}

func optionText(opts map[string]Expr, name string) (string, bool) {
	e, ok := opts[name]
	if !ok {
		return "", false
	}
	if lit, ok := e.(*Literal); ok {
		return strings.Trim(lit.Text, `"'`), true
	}
	if f, ok := e.(*FieldExpr); ok {
		return f.Ref.Name, true
	}
	return "", false
}

func optionBool(opts map[string]Expr, name string) bool {
	s, ok := optionText(opts, name)
	if !ok {
		return false
	}
	return strings.EqualFold(s, "true") || strings.EqualFold(s, "t") || s == "1"
}

// liftExprNode converts a CST expression node (as produced by
// parser.parseExpression/parsePrimary) into an Expr.
func liftExprNode(n *parser.Node) Expr {
	if n == nil {
		return nil
	}
	base := Base{Loc: n.Span}
	switch n.Tag {
	case "literal":
		text := ""
		dt := "unknown"
		if n.Token != nil {
			text = n.Token.Text
			dt = literalDataType(n.Token.Kind)
		}
		return &Literal{Base: base, Text: text, DataType: dt}
	case "field":
		return &FieldExpr{Base: base, Ref: fieldRefFromNode(n)}
	case "macroCall":
		text := ""
		if n.Token != nil {
			text = n.Token.Text
		}
		return &MacroExpr{Base: base, Text: text}
	case "paren":
		inner := liftExprNode(itemNode(n.First("inner")))
		return &ParenExpr{Base: base, Inner: inner}
	case "call":
		name := ""
		if n.Token != nil {
			name = n.Token.Text
		}
		var args []Expr
		for _, a := range n.All("arg") {
			if a.Node != nil {
				args = append(args, liftExprNode(a.Node))
			}
		}
		return &CallExpr{Base: base, Name: name, Args: args}
	case "subsearch":
		inner := itemNode(n.First("pipeline"))
		return &SubsearchExpr{Base: base, Pipeline: LiftPipeline(inner)}
	case "not", "neg":
		operand := liftExprNode(itemNode(n.First("operand")))
		op := "not"
		if n.Tag == "neg" {
			op = "neg"
		}
		return &UnaryExpr{Base: base, Op: op, Operand: operand}
	case "or", "and", "eq", "ne", "lt", "le", "gt", "ge", "add", "sub", "mul", "div", "mod", "concat":
		lhs := liftExprNode(itemNode(n.First("lhs")))
		rhs := liftExprNode(itemNode(n.First("rhs")))
		return &BinaryExpr{Base: base, Op: n.Tag, Lhs: lhs, Rhs: rhs}
	case "valueList", "list":
		// A parenthesized OR-list (search comparison) or option value list
		// (`field=(a, b, c)`); represented as a left-folded `or` chain of
		// its items so ReferencedFields/Render still work uniformly.
		items := n.All("item")
		var acc Expr
		for _, it := range items {
			v := liftExprNode(it.Node)
			if acc == nil {
				acc = v
				continue
			}
			acc = &BinaryExpr{Base: base, Op: "or", Lhs: acc, Rhs: v}
		}
		return acc
	}
	return &Literal{Base: base, Text: "", DataType: "unknown"}
}

func itemNode(it *parser.Item) *parser.Node {
	if it == nil {
		return nil
	}
	return it.Node
}

func literalDataType(k token.Kind) string {
	switch k {
	case token.NumberLiteral:
		return "number"
	case token.StringLiteral:
		return "string"
	case token.True, token.False:
		return "boolean"
	case token.TimeModifier:
		return "time"
	}
	return "unknown"
}

// liftSearchExpression flattens field comparisons out of a searchExpression
// CST node (spec.md §4.3).
func liftSearchExpression(n *parser.Node) *SearchExpression {
	se := &SearchExpression{Base: Base{Loc: n.Span}}
	seen := map[string]bool{}
	for _, t := range n.All("term") {
		if t.Node == nil {
			continue
		}
		fieldNode := itemNode(t.Node.First("field"))
		field := fieldRefFromNode(fieldNode)
		opNode := t.Node.First("operator")
		op := ""
		if opNode != nil && opNode.Token != nil {
			op = operatorTag(opNode.Token.Kind)
		}
		value := liftExprNode(itemNode(t.Node.First("value")))
		se.Terms = append(se.Terms, SearchComparison{
			Field:    field,
			Operator: op,
			Value:    value,
			Location: t.Node.Span,
		})
		if !field.IsWildcard && field.Name != "" && !seen[field.Name] {
			seen[field.Name] = true
			se.ReferencedFields = append(se.ReferencedFields, field.Name)
		}
	}
	return se
}

func operatorTag(k token.Kind) string {
	switch k {
	case token.Equals:
		return "eq"
	case token.NotEquals:
		return "ne"
	case token.LessThan:
		return "lt"
	case token.LessThanOrEqual:
		return "le"
	case token.GreaterThan:
		return "gt"
	case token.GreaterThanOrEqual:
		return "ge"
	}
	return "eq"
}

// liftCommand dispatches a single command CST node by its rule tag to the
// matching Stage constructor (spec.md §4.3).
func liftCommand(n *parser.Node) Stage {
	switch n.Tag {
	case "searchExpression":
		return liftSearchExpression(n)
	case "evalCommand":
		return liftEval(n)
	case "whereCommand":
		return liftWhere(n)
	case "statsCommand":
		return liftStats(n)
	case "rexCommand":
		return liftRex(n)
	case "renameCommand":
		return liftRename(n)
	case "lookupCommand":
		return liftLookup(n)
	case "inputlookupCommand":
		return liftInputlookup(n)
	case "tableCommand":
		return &TableCommand{Base: Base{span(n)}, Fields: fieldRefList(n.All("field"))}
	case "fieldsCommand":
		sign := "+"
		if s := n.First("sign"); s != nil && s.Token != nil {
			sign = s.Token.Text
		}
		return &FieldsCommand{Base: Base{span(n)}, Sign: sign, Fields: fieldRefList(n.All("field"))}
	case "binCommand":
		return liftBin(n)
	case "dedupCommand":
		return liftDedup(n)
	case "topCommand":
		return &TopCommand{Base: Base{span(n)}, TopRareFields: liftTopRareFields(n)}
	case "rareCommand":
		return &RareCommand{Base: Base{span(n)}, TopRareFields: liftTopRareFields(n)}
	case "strcatCommand":
		return liftStrcat(n)
	case "replaceCommand":
		return liftReplace(n)
	case "convertCommand":
		return liftConvert(n)
	case "transactionCommand":
		return &TransactionCommand{Base: Base{span(n)}, Fields: fieldRefList(n.All("field")), Options: optionMap(n)}
	case "iplocationCommand":
		return liftIplocation(n)
	case "subsearchCommand":
		return liftSubsearch(n)
	case "returnCommand":
		return liftReturn(n)
	case "tstatsCommand":
		return liftTstats(n)
	case "makeresultsCommand":
		return liftMakeresults(n)
	case "contingencyCommand":
		return &ContingencyCommand{Base: Base{span(n)}, Fields: fieldRefList(n.All("field"))}
	case "xyseriesCommand":
		return &XyseriesCommand{Base: Base{span(n)}, Fields: fieldRefList(n.All("field"))}
	case "makemvCommand":
		return &MakemvCommand{Base: Base{span(n)}, Field: firstField(n), Options: optionMap(n)}
	case "nomvCommand":
		return &NomvCommand{Base: Base{span(n)}, Field: firstField(n), Options: optionMap(n)}
	case "makecontinuousCommand":
		return &MakecontinuousCommand{Base: Base{span(n)}, Field: firstField(n), Options: optionMap(n)}
	case "setfieldsCommand":
		return liftSetfields(n)
	case "tagsCommand":
		return &TagsCommand{Base: Base{span(n)}, Fields: fieldRefList(n.All("field")), Options: optionMap(n)}
	case "genericCommand":
		return liftGeneric(n)
	default:
		return liftTemplated(n)
	}
}

func firstField(n *parser.Node) FieldRef {
	items := n.All("field")
	if len(items) == 0 {
		return FieldRef{}
	}
	return fieldRefFromItem(&items[0])
}

func liftEval(n *parser.Node) *EvalCommand {
	c := &EvalCommand{Base: Base{span(n)}}
	for _, a := range n.All("assignment") {
		if a.Node == nil {
			continue
		}
		target := fieldRefFromNode(itemNode(a.Node.First("target")))
		expr := liftExprNode(itemNode(a.Node.First("expr")))
		c.Assignments = append(c.Assignments, Assignment{
			Target:           target,
			Expr:             expr,
			ReferencedFields: ReferencedFields(expr),
			DataType:         InferDataType(expr),
		})
	}
	return c
}

func liftWhere(n *parser.Node) *WhereCommand {
	expr := liftExprNode(itemNode(n.First("expr")))
	return &WhereCommand{Base: Base{span(n)}, Expr: expr, ReferencedFields: ReferencedFields(expr)}
}

func liftAggregation(n *parser.Node) Aggregation {
	agg := Aggregation{Location: n.Span}
	if f := n.First("function"); f != nil && f.Token != nil {
		agg.Function = f.Token.Text
	}
	if f := itemNode(n.First("field")); f != nil {
		ref := fieldRefFromNode(f)
		agg.Field = &ref
	}
	if a := itemNode(n.First("alias")); a != nil {
		ref := fieldRefFromNode(a)
		agg.Alias = &ref
	}
	return agg
}

func liftStats(n *parser.Node) *StatsCommand {
	c := &StatsCommand{Base: Base{span(n)}, Options: optionMap(n)}
	if v := n.First("variant"); v != nil && v.Token != nil {
		c.Variant = strings.ToLower(v.Token.Text)
	}
	for _, a := range n.All("aggregation") {
		if a.Node != nil {
			c.Aggregations = append(c.Aggregations, liftAggregation(a.Node))
		}
	}
	c.ByFields = fieldRefList(n.All("byField"))
	return c
}

func liftTstats(n *parser.Node) *TstatsCommand {
	c := &TstatsCommand{Base: Base{span(n)}, Options: optionMap(n)}
	for _, a := range n.All("aggregation") {
		if a.Node != nil {
			c.Aggregations = append(c.Aggregations, liftAggregation(a.Node))
		}
	}
	c.ByFields = fieldRefList(n.All("byField"))
	return c
}

// namedCaptureGroup matches SPL/PCRE-style named capture groups
// `(?<name>...)`, used by the Rex lifter (spec.md §4.3 "Rex").
var namedCaptureGroup = regexp.MustCompile(`\(\?<([A-Za-z_][A-Za-z0-9_]*)>`)

func liftRex(n *parser.Node) *RexCommand {
	c := &RexCommand{Base: Base{span(n)}, Options: optionMap(n), SourceField: FieldRef{Name: "_raw"}}
	if s, ok := optionText(c.Options, "field"); ok {
		c.SourceField = FieldRef{Name: s}
	}
	if mode, ok := optionText(c.Options, "mode"); ok {
		c.Mode = mode
	}
	if p := n.First("pattern"); p != nil && p.Token != nil {
		c.Pattern = p.Token.Text
		for _, m := range namedCaptureGroup.FindAllStringSubmatch(c.Pattern, -1) {
			c.ExtractedFields = append(c.ExtractedFields, m[1])
		}
	}
	return c
}

func liftRename(n *parser.Node) *RenameCommand {
	c := &RenameCommand{Base: Base{span(n)}}
	for _, r := range n.All("renaming") {
		if r.Node == nil {
			continue
		}
		c.Renamings = append(c.Renamings, Renaming{
			Old: fieldRefFromNode(itemNode(r.Node.First("old"))),
			New: fieldRefFromNode(itemNode(r.Node.First("new"))),
		})
	}
	return c
}

func liftLookupMapping(n *parser.Node) LookupMapping {
	m := LookupMapping{Location: n.Span}
	m.LookupField = fieldRefFromNode(itemNode(n.First("field")))
	if as := itemNode(n.First("as")); as != nil {
		ref := fieldRefFromNode(as)
		m.EventField = &ref
	}
	return m
}

func liftLookup(n *parser.Node) *LookupCommand {
	c := &LookupCommand{Base: Base{span(n)}}
	if t := itemNode(n.First("table")); t != nil {
		c.Table = t.Token.Text
	}
	for _, in := range n.All("input") {
		if in.Node != nil {
			c.InputMappings = append(c.InputMappings, liftLookupMapping(in.Node))
		}
	}
	for _, out := range n.All("output") {
		if out.Node != nil {
			c.OutputMappings = append(c.OutputMappings, liftLookupMapping(out.Node))
		}
	}
	return c
}

func liftInputlookup(n *parser.Node) *InputlookupCommand {
	c := &InputlookupCommand{Base: Base{span(n)}, Options: optionMap(n)}
	if nm := n.First("name"); nm != nil && nm.Node != nil && nm.Node.Token != nil {
		c.Name = nm.Node.Token.Text
	}
	return c
}

func liftBin(n *parser.Node) *BinCommand {
	c := &BinCommand{Base: Base{span(n)}, Options: optionMap(n), Field: firstField(n)}
	if a := itemNode(n.First("alias")); a != nil {
		ref := fieldRefFromNode(a)
		c.Alias = &ref
	}
	return c
}

func liftCount(n *parser.Node) *int {
	if c := n.First("count"); c != nil && c.Token != nil {
		if v, err := strconv.Atoi(c.Token.Text); err == nil {
			return &v
		}
	}
	return nil
}

func liftDedup(n *parser.Node) *DedupCommand {
	return &DedupCommand{
		Base:    Base{span(n)},
		Count:   liftCount(n),
		Fields:  fieldRefList(n.All("field")),
		Options: optionMap(n),
	}
}

func liftTopRareFields(n *parser.Node) TopRareFields {
	return TopRareFields{
		Count:    liftCount(n),
		Fields:   fieldRefList(n.All("field")),
		ByFields: fieldRefList(n.All("byField")),
		Options:  optionMap(n),
	}
}

func liftStrcat(n *parser.Node) *StrcatCommand {
	c := &StrcatCommand{Base: Base{span(n)}, Options: optionMap(n)}
	c.SourceFields = fieldRefList(n.All("sourceField"))
	if items := n.All("destField"); len(items) > 0 {
		c.DestField = fieldRefFromItem(&items[0])
	}
	return c
}

func liftReplace(n *parser.Node) *ReplaceCommand {
	c := &ReplaceCommand{Base: Base{span(n)}, Fields: fieldRefList(n.All("field"))}
	for _, s := range n.All("substitution") {
		if s.Node == nil {
			continue
		}
		c.Substitutions = append(c.Substitutions, Substitution{
			Old: liftExprNode(itemNode(s.Node.First("old"))),
			New: liftExprNode(itemNode(s.Node.First("new"))),
		})
	}
	return c
}

func liftConvert(n *parser.Node) *ConvertCommand {
	c := &ConvertCommand{Base: Base{span(n)}, Options: optionMap(n)}
	for _, a := range n.All("conversion") {
		if a.Node != nil {
			c.Conversions = append(c.Conversions, liftAggregation(a.Node))
		}
	}
	return c
}

func liftIplocation(n *parser.Node) *IplocationCommand {
	c := &IplocationCommand{Base: Base{span(n)}, Options: optionMap(n), Field: firstField(n)}
	if p, ok := optionText(c.Options, "prefix"); ok {
		c.Prefix = p
	}
	return c
}

func liftSubsearch(n *parser.Node) Stage {
	variant := ""
	if v := n.First("variant"); v != nil && v.Token != nil {
		variant = strings.ToLower(v.Token.Text)
	}
	fields := SubsearchFields{
		JoinFields: fieldRefList(n.All("joinField")),
		Options:    optionMap(n),
	}
	if s := itemNode(n.First("subsearch")); s != nil {
		inner := itemNode(s.First("pipeline"))
		fields.Subsearch = LiftPipeline(inner)
	}
	switch variant {
	case "join":
		return &JoinCommand{Base: Base{span(n)}, SubsearchFields: fields}
	case "union":
		return &UnionCommand{Base: Base{span(n)}, SubsearchFields: fields}
	case "appendcols":
		return &AppendCommand{Base: Base{span(n)}, SubsearchFields: fields, Cols: true}
	default:
		return &AppendCommand{Base: Base{span(n)}, SubsearchFields: fields}
	}
}

func liftReturn(n *parser.Node) *ReturnCommand {
	c := &ReturnCommand{Base: Base{span(n)}, Count: liftCount(n), Fields: fieldRefList(n.All("field"))}
	for _, a := range n.All("assignment") {
		if a.Node == nil {
			continue
		}
		target := FieldRef{}
		if t := a.Node.First("target"); t != nil && t.Token != nil {
			target = FieldRef{Name: t.Token.Text, Location: t.Token.Span()}
		}
		expr := liftExprNode(itemNode(a.Node.First("expr")))
		c.Assignments = append(c.Assignments, Assignment{
			Target:           target,
			Expr:             expr,
			ReferencedFields: ReferencedFields(expr),
			DataType:         InferDataType(expr),
		})
	}
	return c
}

// annotateFields is emitted by makeresults when annotate=true (spec.md
// §4.3 "Makeresults").
var annotateFields = []string{"_raw", "_time", "host", "source", "sourcetype", "splunk_server", "splunk_server_group"}

func liftMakeresults(n *parser.Node) *MakeresultsCommand {
	opts := optionMap(n)
	c := &MakeresultsCommand{Base: Base{span(n)}, Options: opts}
	c.Annotate = optionBool(opts, "annotate")
	if c.Annotate {
		c.CreatedFields = append([]string(nil), annotateFields...)
	} else {
		c.CreatedFields = []string{"_time"}
	}
	return c
}

// liftSetfields reads setfields' `field=value` pairs, which the templated
// parser (spec.md §4.2) surfaces as optionName/optionValue children since
// they pass the same `LA(2)=Equals` gate as any other option.
func liftSetfields(n *parser.Node) *SetfieldsCommand {
	c := &SetfieldsCommand{Base: Base{span(n)}}
	names := n.All("optionName")
	values := n.All("optionValue")
	for i, nm := range names {
		if nm.Token == nil {
			continue
		}
		target := FieldRef{Name: nm.Token.Text, Location: nm.Token.Span()}
		var expr Expr
		if i < len(values) && values[i].Node != nil {
			expr = liftExprNode(values[i].Node)
		}
		c.Assignments = append(c.Assignments, Assignment{Target: target, Expr: expr})
	}
	return c
}

func liftGeneric(n *parser.Node) *GenericCommand {
	c := &GenericCommand{Base: Base{span(n)}, Options: optionMap(n)}
	if nm := n.First("commandName"); nm != nil && nm.Token != nil {
		c.CommandName = nm.Token.Text
	}
	for _, a := range n.All("arg") {
		if a.Node != nil {
			c.Args = append(c.Args, liftExprNode(a.Node))
		}
	}
	return c
}

func liftGenericFieldCommand(n *parser.Node) GenericFieldCommand {
	g := GenericFieldCommand{
		Fields:  fieldRefList(n.All("field")),
		Options: optionMap(n),
	}
	for _, r := range n.All("renaming") {
		if r.Node == nil {
			continue
		}
		g.Renamings = append(g.Renamings, Renaming{
			Old: fieldRefFromNode(itemNode(r.Node.First("old"))),
			New: fieldRefFromNode(itemNode(r.Node.First("new"))),
		})
	}
	for _, l := range n.All("literal") {
		if l.Token != nil {
			g.Literals = append(g.Literals, l.Token.Text)
		}
	}
	return g
}

// liftTemplated handles the ~20 commands whose shape is fully described by
// GenericFieldCommand (spec.md §4.2 templated grammar). The CST tag names
// the exact command so dispatch here is a straight 1:1 mapping.
func liftTemplated(n *parser.Node) Stage {
	b := Base{span(n)}
	g := liftGenericFieldCommand(n)
	switch n.Tag {
	case "spathCommand":
		return &SpathCommand{Base: b, GenericFieldCommand: g}
	case "timewrapCommand":
		return &TimewrapCommand{Base: b, GenericFieldCommand: g}
	case "xpathCommand":
		return &XpathCommand{Base: b, GenericFieldCommand: g}
	case "xmlkvCommand":
		return &XmlkvCommand{Base: b, GenericFieldCommand: g}
	case "xmlunescapeCommand":
		return &XmlunescapeCommand{Base: b, GenericFieldCommand: g}
	case "multikvCommand":
		return &MultikvCommand{Base: b, GenericFieldCommand: g}
	case "erexCommand":
		return &ErexCommand{Base: b, GenericFieldCommand: g}
	case "kvCommand":
		return &KvCommand{Base: b, GenericFieldCommand: g}
	case "addtotalsCommand":
		return &AddtotalsCommand{Base: b, GenericFieldCommand: g}
	case "deltaCommand":
		return &DeltaCommand{Base: b, GenericFieldCommand: g}
	case "accumCommand":
		return &AccumCommand{Base: b, GenericFieldCommand: g}
	case "autoregressCommand":
		return &AutoregressCommand{Base: b, GenericFieldCommand: g}
	case "inputcsvCommand":
		return &InputcsvCommand{Base: b, GenericFieldCommand: g}
	case "fieldsummaryCommand":
		return &FieldsummaryCommand{Base: b, GenericFieldCommand: g}
	case "addcoltotalsCommand":
		return &AddcoltotalsCommand{Base: b, GenericFieldCommand: g}
	case "bucketdirCommand":
		return &BucketdirCommand{Base: b, GenericFieldCommand: g}
	case "geomCommand":
		return &GeomCommand{Base: b, GenericFieldCommand: g}
	case "concurrencyCommand":
		return &ConcurrencyCommand{Base: b, GenericFieldCommand: g}
	case "typerCommand":
		return &TyperCommand{Base: b, GenericFieldCommand: g}
	case "reltimeCommand":
		return &ReltimeCommand{Base: b, GenericFieldCommand: g}
	default:
		// Unknown templated tag: preserve it as a generic command so the
		// analyzer still sees a stage rather than a nil (defensive only —
		// every tag the parser emits is listed above).
		return &GenericCommand{Base: b, CommandName: n.Tag, Options: g.Options}
	}
}
