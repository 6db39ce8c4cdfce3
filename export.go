// Copyright 2025 Naren Yellavula
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

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/cockroachdb/errors"

	"github.com/cybrota/treetrace/sequence"
	"github.com/cybrota/treetrace/tree"
)

const (
	formatTree     = "json"
	formatSequence = "sequence"
	formatDOT      = "dot"
)

var exportFormats = []string{formatTree, formatSequence, formatDOT}

// renderExport encodes the engine's current tree or its operation history.
func renderExport(e tree.Engine[int], format string, now time.Time) (string, error) {
	switch strings.ToLower(format) {
	case formatTree:
		data, err := sequence.ExportTree[int](e, e.Variant(), now).Marshal()
		return string(data), errors.Wrap(err, "encoding tree export")
	case formatSequence:
		data, err := sequence.MarshalOperations(sequence.FromSteps(e.Steps()))
		return string(data), errors.Wrap(err, "encoding sequence export")
	case formatDOT:
		return tree.DOT[int](e), nil
	}
	return "", errors.Newf("unknown export format %q (want one of %s)", format, strings.Join(exportFormats, ", "))
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(err, "copying to clipboard")
	}
	fmt.Fprintf(os.Stderr, "📋 Copied %s%d bytes%s to clipboard.\n", Green, len(text), Reset)
	return nil
}
