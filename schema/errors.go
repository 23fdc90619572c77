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

package schema

import (
	"errors"
)

// Sentinel errors returned by this package. Errors are wrapped with
// contextual messages before being returned, so callers classify a
// failure with errors.Is and read the details from the message.
var ErrExtraction = errors.New("no usable YAML content")
var ErrSyntax = errors.New("YAML syntax error")
var ErrSchema = errors.New("invalid parameter schema")
var ErrDistribution = errors.New("invalid distribution")
var ErrNotFound = errors.New("parameter not found")
