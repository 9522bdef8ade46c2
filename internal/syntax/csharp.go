// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package syntax

import "slices"

// TypeDeclKinds are the node kinds declaring named types.
var TypeDeclKinds = []string{
	"class_declaration", "struct_declaration", "interface_declaration",
	"record_declaration", "record_struct_declaration", "enum_declaration",
}

// NameKinds are the node kinds naming a type or namespace.
var NameKinds = []string{
	"identifier", "generic_name", "qualified_name", "alias_qualified_name", "predefined_type",
	"array_type", "nullable_type", "implicit_type", "tuple_type", "pointer_type",
}

var declPrefix = []string{"attribute_list", "modifier", "parameter_modifier"}

// DeclName returns the identifier naming a declaration.
func DeclName(decl *Node) *Node {
	if name := decl.ChildByField("name"); name != nil && name.Kind == "identifier" {
		return name
	}

	// The name is the last identifier before the parameter or type parameter list.
	var name *Node
	for _, c := range decl.Children {
		switch c.Kind {
		case "identifier":
			name = c
		case "parameter_list", "type_parameter_list", "base_list", "declaration_list",
			"accessor_list", "block", "arrow_expression_clause", "equals_value_clause", "=", "=>":
			return name
		}
	}

	return name
}

// TypeParameters returns the names of the declared type parameters.
func TypeParameters(decl *Node) []string {
	list := decl.ChildByField("type_parameters")
	if list == nil {
		list = decl.FirstChild("type_parameter_list")
	}

	var names []string
	for p := range list.ChildrenOf("type_parameter") {
		if id := DeclName(p); id != nil {
			names = append(names, id.Text())
		}
	}

	return names
}

// BaseList returns the base list of a type declaration.
func BaseList(decl *Node) *Node {
	return decl.FirstChild("base_list")
}

// BaseTypes returns the entries of a base list.
func BaseTypes(list *Node) []*Node {
	var entries []*Node
	for _, c := range list.NamedChildren() {
		if c.Kind == "argument_list" {
			continue
		}

		entries = append(entries, c)
	}

	return entries
}

// BaseTypeName returns the type name of a base list entry.
func BaseTypeName(entry *Node) *Node {
	if entry.Kind == "primary_constructor_base_type" {
		if t := entry.ChildByField("type"); t != nil {
			return t
		}

		return entry.FirstChild(NameKinds...)
	}

	return entry
}

// Members returns the member declarations of a type declaration.
func Members(decl *Node) []*Node {
	body := decl.FirstChild("declaration_list", "enum_member_declaration_list")
	if body == nil {
		return nil
	}

	return body.NamedChildren()
}

// Modifiers returns the modifier keywords of a declaration.
func Modifiers(decl *Node) []string {
	var mods []string
	for _, c := range decl.Children {
		switch {
		case c.Kind == "modifier" || c.Kind == "parameter_modifier":
			mods = append(mods, c.Text())
		case !c.Named && isModifierKeyword(c.Kind):
			mods = append(mods, c.Kind)
		}
	}

	return mods
}

func isModifierKeyword(s string) bool {
	switch s {
	case "public", "private", "protected", "internal", "static", "abstract", "virtual", "override",
		"sealed", "extern", "async", "partial", "readonly", "new", "unsafe",
		"this", "ref", "out", "in", "params":
		return true
	}

	return false
}

// Attributes returns the attributes applied directly to a declaration, in source order.
func Attributes(decl *Node) []*Node {
	var attrs []*Node
	for list := range decl.ChildrenOf("attribute_list") {
		if target := list.FirstChild("attribute_target_specifier"); target != nil && !slices.Contains([]string{"method:", "type:"}, compact(target.Text())) {
			continue
		}

		attrs = slices.AppendSeq(attrs, list.ChildrenOf("attribute"))
	}

	return attrs
}

// AttributeName returns the name of an attribute.
func AttributeName(attr *Node) *Node {
	if name := attr.ChildByField("name"); name != nil {
		return name
	}

	return attr.FirstChild(NameKinds...)
}

func compact(s string) string {
	b := make([]byte, 0, len(s))
	for i := range len(s) {
		switch s[i] {
		case ' ', '\t', '\r', '\n':
		default:
			b = append(b, s[i])
		}
	}

	return string(b)
}

// ReturnType returns the declared return type of a method.
func ReturnType(method *Node) *Node {
	for _, field := range []string{"returns", "type"} {
		if t := method.ChildByField(field); t != nil {
			return t
		}
	}

	name := DeclName(method)
	var typ *Node
	for _, c := range method.Children {
		if c == name {
			break
		}

		if c.Named && !slices.Contains(declPrefix, c.Kind) && c.Kind != "explicit_interface_specifier" {
			typ = c
		}
	}

	return typ
}

// ParameterList returns the parameter list of a method, constructor, local function or lambda.
func ParameterList(decl *Node) *Node {
	if p := decl.ChildByField("parameters"); p != nil && p.Kind == "parameter_list" {
		return p
	}

	return decl.FirstChild("parameter_list")
}

// ImplicitParameter returns the single parameter of a lambda written without parentheses, or nil.
func ImplicitParameter(lambda *Node) *Node {
	if lambda == nil || lambda.Kind != "lambda_expression" {
		return nil
	}

	for i, c := range lambda.Children {
		switch c.Kind {
		case "implicit_parameter":
			return c

		case "identifier":
			if i+1 < len(lambda.Children) && lambda.Children[i+1].Kind == "=>" {
				return c
			}

		case "=>", "parameter_list":
			return nil
		}
	}

	return nil
}

// Parameters returns the parameter declarations of a declaration.
func Parameters(decl *Node) []*Node {
	var params []*Node
	for p := range ParameterList(decl).ChildrenOf("parameter", "parameter_array") {
		params = append(params, p)
	}

	return params
}

// ParameterType returns the declared type of a parameter, or nil for implicitly typed lambda parameters.
func ParameterType(param *Node) *Node {
	if t := param.ChildByField("type"); t != nil {
		return t
	}

	name := DeclName(param)
	var typ *Node
	for _, c := range param.Children {
		if c == name {
			break
		}

		if c.Named && !slices.Contains(declPrefix, c.Kind) {
			typ = c
		}
	}

	return typ
}

// HasDefault reports whether a parameter declares a default value.
func HasDefault(param *Node) bool {
	return param.FirstChild("equals_value_clause") != nil || param.HasToken("=")
}

// Body returns the block or expression body of a method or local function, or nil.
func Body(decl *Node) *Node {
	if b := decl.ChildByField("body"); b != nil && b.Is("block", "arrow_expression_clause") {
		return b
	}

	return decl.FirstChild("block", "arrow_expression_clause")
}

// VariableType returns the declared type of a variable declaration.
func VariableType(decl *Node) *Node {
	if t := decl.ChildByField("type"); t != nil {
		return t
	}

	for _, c := range decl.Children {
		if c.Kind == "variable_declarator" {
			return nil
		}

		if c.Named {
			return c
		}
	}

	return nil
}

// Declarators returns the variable declarators of a variable declaration.
func Declarators(decl *Node) []*Node {
	return slices.Collect(decl.ChildrenOf("variable_declarator"))
}

// Initializer returns the initializing expression of a variable declarator, or nil.
func Initializer(declarator *Node) *Node {
	if eq := declarator.FirstChild("equals_value_clause"); eq != nil {
		return LastNamed(eq)
	}

	after := false
	for _, c := range declarator.Children {
		if !c.Named && c.Kind == "=" {
			after = true

			continue
		}

		if after && c.Named {
			return c
		}
	}

	return nil
}

// FirstNamed returns the first named child.
func FirstNamed(n *Node) *Node {
	if n == nil {
		return nil
	}

	for _, c := range n.Children {
		if c.Named {
			return c
		}
	}

	return nil
}

// LastNamed returns the last named child.
func LastNamed(n *Node) *Node {
	if n == nil {
		return nil
	}

	for i := len(n.Children) - 1; i >= 0; i-- {
		if c := n.Children[i]; c.Named {
			return c
		}
	}

	return nil
}

// Unparen strips enclosing parentheses from an expression.
func Unparen(expr *Node) *Node {
	for expr != nil && expr.Kind == "parenthesized_expression" {
		expr = FirstNamed(expr)
	}

	return expr
}

// Assignment returns the parts of an assignment expression.
func Assignment(n *Node) (left *Node, op string, right *Node) {
	left, right = n.ChildByField("left"), n.ChildByField("right")
	if left == nil {
		left = FirstNamed(n)
	}

	if right == nil {
		right = LastNamed(n)
	}

	if o := n.ChildByField("operator"); o != nil {
		return left, o.Text(), right
	}

	if o := n.FirstChild("assignment_operator"); o != nil {
		return left, o.Text(), right
	}

	for _, c := range n.Children {
		if !c.Named && c != left && c != right {
			return left, c.Kind, right
		}
	}

	return left, "", right
}

// MemberAccess returns the receiver expression and member name of a member access expression.
func MemberAccess(n *Node) (expr, name *Node) {
	expr, name = n.ChildByField("expression"), n.ChildByField("name")
	if expr == nil {
		expr = FirstNamed(n)
	}

	if name == nil || name == expr {
		name = LastNamed(n)
	}

	return expr, name
}

// Qualified returns the qualifier and the right-most name of a qualified name.
func Qualified(n *Node) (qualifier, name *Node) {
	qualifier, name = n.ChildByField("qualifier"), n.ChildByField("name")
	if qualifier == nil {
		qualifier = FirstNamed(n)
	}

	if name == nil || name == qualifier {
		name = LastNamed(n)
	}

	return qualifier, name
}

// Invocation returns the invoked expression and the arguments of an invocation expression.
func Invocation(n *Node) (function *Node, args []*Node) {
	function = n.ChildByField("function")
	if function == nil {
		function = FirstNamed(n)
	}

	list := n.ChildByField("arguments")
	if list == nil || list.Kind != "argument_list" {
		list = n.FirstChild("argument_list")
	}

	return function, Arguments(list)
}

// Arguments returns the argument nodes of an argument list.
func Arguments(list *Node) []*Node {
	return slices.Collect(list.ChildrenOf("argument"))
}

// ArgumentExpression returns the expression of an argument.
func ArgumentExpression(arg *Node) *Node {
	if e := arg.ChildByField("expression"); e != nil {
		return e
	}

	return LastNamed(arg)
}

// ArgumentModifier returns "out", "ref" or "in" for passed-by-reference arguments.
func ArgumentModifier(arg *Node) string {
	for _, c := range arg.Children {
		switch c.Kind {
		case "out", "ref", "in":
			return c.Kind
		}
	}

	return ""
}

// SimpleName returns the identifier and type arguments of an identifier or generic name.
func SimpleName(n *Node) (name string, typeArgs []*Node) {
	switch n.Kind {
	case "identifier":
		return n.Text(), nil

	case "generic_name":
		id := n.FirstChild("identifier")
		if id == nil {
			return "", nil
		}

		return id.Text(), n.FirstChild("type_argument_list").NamedChildren()
	}

	return "", nil
}

// IsNameof reports whether n lies inside the argument list of a nameof expression.
func IsNameof(n *Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Kind != "invocation_expression" {
			continue
		}

		if fn, _ := Invocation(p); fn != nil && fn.Kind == "identifier" && fn.Text() == "nameof" && !fn.Contains(n) {
			return true
		}
	}

	return false
}
