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

// Package analyzer inspects C# xUnit test sources.
//
// # Overview
//
// The inspector parses a set of C# source files into one compilation, resolves
// the types they declare against an embedded model of the System and xUnit
// libraries, and reports misuse of the xUnit test attributes and assertions.
//
// # Rules
//
//   - xUnit1001: Fact methods cannot have parameters
//   - xUnit1002: Test methods cannot have multiple Fact or Theory attributes
//   - xUnit1005: Fact methods should not have test data
//   - xUnit1006: Theory methods should have parameters
//   - xUnit1008: Test data attribute should only be used on a Theory
//   - xUnit1013: Public method should be marked as test
//   - xUnit1026: Theory methods should use all of their parameters
//   - xUnit2017: Do not use Contains() to check if a value exists in a collection
//   - xUnit3000: Test case classes must derive from Xunit.LongLivedMarshalByRefObject
//
// # Example
//
// Before:
//
//	public class MyTestCase : ITestCase { }
//
// After applying the suggested fix of xUnit3000:
//
//	public class MyTestCase : LongLivedMarshalByRefObject, ITestCase { }
//
// # Suppression
//
// Diagnostics are suppressed by a `// nolint:xunitguard` comment on the
// reported line, or inside a `#pragma warning disable <id>` region.
package analyzer
