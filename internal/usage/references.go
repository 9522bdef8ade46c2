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

package usage

import (
	"fillmore-labs.com/xunitguard/internal/syntax"
)

// isReference reports whether a simple name denotes a value, as opposed to a member name,
// a declared name, a type or the operand of nameof.
func isReference(id *syntax.Node) bool {
	if id.Field == "name" || id.Field == "type" {
		return false
	}

	p := id.Parent
	if p == nil {
		return false
	}

	switch p.Kind {
	case "member_access_expression":
		if expr, _ := syntax.MemberAccess(p); expr != id {
			return false
		}

	case "qualified_name":
		if q, _ := syntax.Qualified(p); q != id {
			return false
		}

	case "member_binding_expression", "name_colon", "name_equals", "alias_qualified_name", "generic_name",
		"type_argument_list", "array_type", "nullable_type", "pointer_type", "attribute", "type_parameter",
		"typeof_expression", "default_expression", "sizeof_expression", "base_list",
		"declaration_expression", "catch_declaration", "explicit_interface_specifier", "goto_statement",
		"labeled_statement", "implicit_parameter":
		return false

	case "foreach_statement":
		if isLoopVariable(p, id) {
			return false
		}

	case "variable_declarator", "parameter", "parameter_array", "local_function_statement", "variable_declaration", "object_creation_expression", "array_creation_expression":
		if syntax.DeclName(p) == id || syntax.VariableType(p) == id || syntax.ParameterType(p) == id {
			return false
		}

	case "cast_expression", "as_expression", "is_expression":
		if isTypeOperand(p, id) {
			return false
		}

	case "assignment_expression":
		if left, _, _ := syntax.Assignment(p); left == id && isObjectInitializer(p.Parent) {
			return false
		}
	}

	return !syntax.IsNameof(id)
}

func isLoopVariable(loop, id *syntax.Node) bool {
	if left := loop.ChildByField("left"); left != nil {
		return left == id || loop.ChildByField("type") == id
	}

	for i, c := range loop.Children {
		if !c.Named && c.Kind == "in" {
			return i > 0 && (loop.Children[i-1] == id || i > 1 && loop.Children[i-2] == id)
		}
	}

	return false
}

func isTypeOperand(p, id *syntax.Node) bool {
	switch p.Kind {
	case "cast_expression":
		if t := p.ChildByField("type"); t != nil {
			return t == id
		}

		return syntax.FirstNamed(p) == id && syntax.LastNamed(p) != id

	default:
		if t := p.ChildByField("right"); t != nil {
			return t == id
		}

		return syntax.LastNamed(p) == id && syntax.FirstNamed(p) != id
	}
}

func isObjectInitializer(n *syntax.Node) bool {
	return n != nil && n.Kind == "initializer_expression" && n.Parent != nil &&
		n.Parent.Is("object_creation_expression", "implicit_object_creation_expression", "with_expression", "anonymous_object_creation_expression")
}

// isWrite reports whether a reference is the sole target of a plain assignment or an out argument.
func isWrite(id *syntax.Node) bool {
	e := id
	for e.Parent != nil && e.Parent.Kind == "parenthesized_expression" {
		e = e.Parent
	}

	p := e.Parent
	if p == nil {
		return false
	}

	switch p.Kind {
	case "assignment_expression":
		left, op, _ := syntax.Assignment(p)

		return left == e && op == "="

	case "argument":
		if syntax.ArgumentModifier(p) == "out" {
			return true
		}

		return isDeconstructed(p)
	}

	return false
}

// isDeconstructed reports whether an argument is an element of a tuple assigned to with a plain assignment.
func isDeconstructed(arg *syntax.Node) bool {
	tuple := arg.Parent
	if tuple == nil || tuple.Kind != "tuple_expression" {
		return false
	}

	for tuple.Parent != nil && tuple.Parent.Kind == "argument" &&
		tuple.Parent.Parent != nil && tuple.Parent.Parent.Kind == "tuple_expression" {
		tuple = tuple.Parent.Parent
	}

	p := tuple.Parent
	if p == nil || p.Kind != "assignment_expression" {
		return false
	}

	left, op, _ := syntax.Assignment(p)

	return left == tuple && op == "="
}
