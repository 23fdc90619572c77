/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package schema extracts parameter definitions from free-form
// docstrings carrying an embedded YAML fragment.
//
// A docstring may contain the YAML either inside a markdown fenced
// code block or as raw text. Parse locates the fragment, decodes it
// and validates its structure, producing an ordered ParameterSpace
// of named distributions ready to be sampled.
package schema
