package cgrammar

import (
	"fmt"
	"sort"
)

// FileID identifies a registered source buffer within a SourceMap.
type FileID int32

// Span is a (file, byte range) triple attached to every token and AST
// node. It never carries line/column directly -- those are derived
// lazily from a SourceMap so that constructing a span is O(1).
type Span struct {
	File  FileID
	Start int
	End   int
}

// NewSpan builds a Span over [start, end) within file.
func NewSpan(file FileID, start, end int) Span {
	return Span{File: file, Start: start, End: end}
}

// Merge returns the smallest span enclosing both s and other. Both
// spans must belong to the same file; Merge panics otherwise, since
// merging spans across files is a caller programming error.
func (s Span) Merge(other Span) Span {
	if s.File != other.File {
		panic(fmt.Sprintf("cgrammar: cannot merge spans from different files (%d, %d)", s.File, other.File))
	}
	start, end := s.Start, s.End
	if other.Start < start {
		start = other.Start
	}
	if other.End > end {
		end = other.End
	}
	return Span{File: s.File, Start: start, End: end}
}

// Contains reports whether s fully encloses other, per the Span
// monotonicity invariant (every node's span contains every child's).
func (s Span) Contains(other Span) bool {
	return s.File == other.File && other.Start >= s.Start && other.End <= s.End
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d..%d", s.File, s.Start, s.End)
}

// Location is a decoded (line, column) position, 1-indexed, plus the
// byte cursor it was computed from.
type Location struct {
	Line   int32
	Column int32
	Cursor int
}

// SourceMap owns the byte buffers of every file registered with the
// parser and builds a line index for each lazily, on first query --
// most tokens and nodes are never rendered as file:line:col, so eager
// indexing would be wasted work on the common path.
type SourceMap struct {
	names   []string
	buffers [][]byte
	indexes []*lineIndex
}

// NewSourceMap creates an empty source map.
func NewSourceMap() *SourceMap {
	return &SourceMap{}
}

// AddFile registers a named byte buffer and returns its FileID.
func (sm *SourceMap) AddFile(name string, data []byte) FileID {
	id := FileID(len(sm.buffers))
	sm.names = append(sm.names, name)
	sm.buffers = append(sm.buffers, data)
	sm.indexes = append(sm.indexes, nil)
	return id
}

// Name returns the registered filename for id.
func (sm *SourceMap) Name(id FileID) string {
	return sm.names[id]
}

// Bytes returns the registered buffer for id.
func (sm *SourceMap) Bytes(id FileID) []byte {
	return sm.buffers[id]
}

// Text returns the substring of file id between byte offsets start
// and end.
func (sm *SourceMap) Text(id FileID, start, end int) string {
	return string(sm.buffers[id][start:end])
}

// SpanText returns the source text covered by span.
func (sm *SourceMap) SpanText(span Span) string {
	return sm.Text(span.File, span.Start, span.End)
}

func (sm *SourceMap) index(id FileID) *lineIndex {
	if sm.indexes[id] == nil {
		sm.indexes[id] = newLineIndex(sm.buffers[id])
	}
	return sm.indexes[id]
}

// Location decodes a byte cursor within file id into line/column.
func (sm *SourceMap) Location(id FileID, cursor int) Location {
	return sm.index(id).locationAt(cursor)
}

// Render formats a span as "file:line:col" (or "file:line:col..line:col"
// when it spans more than one position), the canonical pretty form
// consumers use in diagnostics.
func (sm *SourceMap) Render(span Span) string {
	start := sm.Location(span.File, span.Start)
	end := sm.Location(span.File, span.End)
	name := sm.Name(span.File)
	if start.Line == end.Line && start.Column == end.Column {
		return fmt.Sprintf("%s:%d:%d", name, start.Line, start.Column)
	}
	return fmt.Sprintf("%s:%d:%d..%d:%d", name, start.Line, start.Column, end.Line, end.Column)
}

// lineIndex allows fast conversion from byte cursor offsets to
// line/column. It stores the start byte offset of each line (0-based)
// and binary searches line starts to find the owning line -- O(log
// lines) per query after an O(n) construction over the input.
type lineIndex struct {
	input     []byte
	lineStart []int
}

func newLineIndex(input []byte) *lineIndex {
	lineStart := make([]int, 1, 64)
	lineStart[0] = 0
	for i, b := range input {
		if b == '\n' {
			lineStart = append(lineStart, i+1)
		}
	}
	return &lineIndex{input: input, lineStart: lineStart}
}

func (li *lineIndex) locationAt(cursor int) Location {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(li.input) {
		cursor = len(li.input)
	}

	lineIdx := sort.Search(len(li.lineStart), func(i int) bool {
		return li.lineStart[i] > cursor
	}) - 1
	if lineIdx < 0 {
		lineIdx = 0
	}

	lineStart := li.lineStart[lineIdx]
	col := int32(cursor-lineStart) + 1

	return Location{
		Line:   int32(lineIdx + 1),
		Column: col,
		Cursor: cursor,
	}
}
