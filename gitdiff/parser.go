// Package gitdiff converts unified diff content into edit scripts using
// bluekeyes/go-gitdiff, so impact analysis can run on an existing patch
// without fetching both snapshot versions.
package gitdiff

import (
	"io"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"

	"github.com/wikilens/wikilens"
)

// FilePatch is one file's worth of changes parsed from a unified diff.
type FilePatch struct {
	OldLabel string
	NewLabel string
	Script   wikilens.EditScript

	// OldLineCount and NewLineCount are lower bounds derived from the last
	// hunk's positions. A patch does not carry full file contents, so
	// metrics computed from a patch use these estimates as denominators.
	OldLineCount int
	NewLineCount int
}

// Snapshots reconstructs approximate snapshots from the patch. Hunk
// lines land at their recorded positions; lines outside hunks are
// unknown and stay empty on both sides, so a recomputed diff reproduces
// the patch and metrics use the line-count estimates as denominators.
func (p FilePatch) Snapshots() (old, new wikilens.Snapshot) {
	oldLines := make([]string, p.OldLineCount)
	newLines := make([]string, p.NewLineCount)
	for _, op := range p.Script {
		switch op.Kind {
		case wikilens.OpContext:
			oldLines[op.OldLine-1] = op.Text
			newLines[op.NewLine-1] = op.Text
		case wikilens.OpRemove:
			oldLines[op.OldLine-1] = op.Text
		case wikilens.OpAdd:
			newLines[op.NewLine-1] = op.Text
		}
	}
	return wikilens.Snapshot{Label: p.OldLabel, Lines: oldLines},
		wikilens.Snapshot{Label: p.NewLabel, Lines: newLines}
}

// Parser parses unified diff content using go-gitdiff.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads unified diff content and returns one FilePatch per changed
// file. Binary files are skipped.
func (p *Parser) Parse(r io.Reader) ([]FilePatch, error) {
	files, _, err := gitdiff.Parse(r)
	if err != nil {
		return nil, err
	}

	patches := make([]FilePatch, 0, len(files))
	for _, f := range files {
		if f.IsBinary {
			continue
		}
		patches = append(patches, convertFile(f))
	}
	return patches, nil
}

func convertFile(f *gitdiff.File) FilePatch {
	patch := FilePatch{
		OldLabel: f.OldName,
		NewLabel: f.NewName,
	}

	for _, frag := range f.TextFragments {
		oldLine := int(frag.OldPosition)
		newLine := int(frag.NewPosition)

		for _, l := range frag.Lines {
			op := wikilens.EditOp{Text: strings.TrimSuffix(l.Line, "\n")}
			switch l.Op {
			case gitdiff.OpContext:
				op.Kind = wikilens.OpContext
				op.OldLine = oldLine
				op.NewLine = newLine
				oldLine++
				newLine++
			case gitdiff.OpAdd:
				op.Kind = wikilens.OpAdd
				op.NewLine = newLine
				newLine++
			case gitdiff.OpDelete:
				op.Kind = wikilens.OpRemove
				op.OldLine = oldLine
				oldLine++
			}
			patch.Script = append(patch.Script, op)
		}

		if end := int(frag.OldPosition + frag.OldLines - 1); end > patch.OldLineCount {
			patch.OldLineCount = end
		}
		if end := int(frag.NewPosition + frag.NewLines - 1); end > patch.NewLineCount {
			patch.NewLineCount = end
		}
	}

	return patch
}
