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
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// fencedBlock matches the first markdown code block, optionally
// tagged yaml or yml. The body match is non-greedy so stray
// backticks later in the docstring do not extend the block.
var fencedBlock = regexp.MustCompile("(?s)```(?:ya?ml)?\\s*\n(.*?)```")

// ExtractYAML locates the YAML fragment embedded in a docstring.
// A markdown fenced code block takes priority; without one the text
// is scanned for a raw block starting at the first line containing
// "parameters:". The scan stops at the first non-blank line that is
// neither indented nor a list item, so trailing prose after the
// fragment is not swallowed.
func ExtractYAML(docstring string) (string, error) {
	if docstring == "" {
		return "", errors.Wrap(ErrExtraction, "docstring is empty")
	}

	if m := fencedBlock.FindStringSubmatch(docstring); m != nil {
		return strings.TrimSpace(m[1]), nil
	}

	if strings.Contains(docstring, "parameters:") {
		var yamlLines []string
		inYAML := false

	scan:
		for _, line := range strings.Split(docstring, "\n") {
			switch {
			case !inYAML:
				if strings.Contains(line, "parameters:") {
					inYAML = true
					yamlLines = append(yamlLines, line)
				}
			default:
				indented := strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
				if strings.TrimSpace(line) != "" && !indented {
					if len(yamlLines) > 0 && !strings.HasPrefix(line, "-") {
						break scan
					}
				}
				yamlLines = append(yamlLines, line)
			}
		}

		if len(yamlLines) > 0 {
			return strings.TrimSpace(strings.Join(yamlLines, "\n")), nil
		}
	}

	return "", errors.Wrap(ErrExtraction, "no YAML content found")
}
