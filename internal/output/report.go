// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"

	"github.com/tfctl/fatool/internal/differ"
	"github.com/tfctl/fatool/internal/entropy"
	"github.com/tfctl/fatool/internal/extract"
	"github.com/tfctl/fatool/internal/hexdump"
)

// absent is shown in place of a value that lies past the end of its input.
const absent = "<absent>"

// Summary writes the closing verdict of a positional comparison.
func Summary[T comparable](w io.Writer, res differ.Result[T], unit string, st Styles) {
	if res.LengthMismatch {
		fmt.Fprintln(w, st.Heading(fmt.Sprintf("Files have different lengths (%s vs %s %ss).",
			humanize.Comma(int64(res.LeftLen)), humanize.Comma(int64(res.RightLen)), unit)))
	}

	switch n := len(res.Records); {
	case res.Identical:
		fmt.Fprintln(w, st.Heading("Files are identical."))
	case n == 1:
		fmt.Fprintln(w, st.Heading(fmt.Sprintf("Comparison completed with 1 differing %s.", unit)))
	default:
		fmt.Fprintln(w, st.Heading(fmt.Sprintf("Comparison completed with %s differing %ss.",
			humanize.Comma(int64(n)), unit)))
	}
}

// ByteReport lists each differing byte offset with both values in hex and as
// printable characters, followed by the verdict.
func ByteReport(w io.Writer, res differ.Result[byte], opts Options, st Styles) {
	cell := func(b byte, missing bool) (string, string) {
		if missing {
			return "--", " "
		}
		return fmt.Sprintf("%02X", b), string(hexdump.Printable(b))
	}

	rows := make([][]string, 0, len(res.Records))
	for _, rec := range res.Records {
		lh, la := cell(rec.Left, rec.LeftAbsent)
		rh, ra := cell(rec.Right, rec.RightAbsent)
		rows = append(rows, []string{
			fmt.Sprintf("%08X", rec.Index),
			st.Highlight(lh), st.Highlight(rh),
			la, ra,
		})
	}

	Table(w, []string{"offset", "left", "right", "lchar", "rchar"}, rows, opts, st)
	Summary(w, res, "byte", st)
}

// CharReport writes the left text with every differing position replaced by
// Marker, followed by the verdict. Positions past the end of the left text
// are rendered only when they differ.
func CharReport(w io.Writer, left string, res differ.Result[rune], st Styles) {
	runes := []rune(left)
	n := max(res.LeftLen, res.RightLen)

	var b strings.Builder
	next := 0
	for i := 0; i < n; i++ {
		if next < len(res.Records) && res.Records[next].Index == i {
			b.WriteString(st.Highlight(Marker))
			next++
			continue
		}
		if i < len(runes) {
			b.WriteRune(runes[i])
		}
	}

	text := b.String()
	fmt.Fprint(w, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(w)
	}
	Summary(w, res, "character", st)
}

func sideText(s string, missing bool, st Styles) string {
	if missing {
		return st.Faint(absent)
	}
	return s
}

// LineReport writes every line of the comparison. Matching lines are printed
// once; differing lines print both sides under a numbered heading. Line
// numbers are 1-based.
func LineReport(w io.Writer, left []string, res differ.Result[string], st Styles) {
	n := max(res.LeftLen, res.RightLen)

	next := 0
	for i := 0; i < n; i++ {
		if next < len(res.Records) && res.Records[next].Index == i {
			rec := res.Records[next]
			next++
			fmt.Fprintln(w, st.Heading(fmt.Sprintf("Difference at line %d:", i+1)))
			fmt.Fprintf(w, "File1: %s\n", st.Highlight(sideText(rec.Left, rec.LeftAbsent, st)))
			fmt.Fprintf(w, "File2: %s\n", st.Highlight(sideText(rec.Right, rec.RightAbsent, st)))
			continue
		}
		if i < len(left) {
			fmt.Fprintln(w, left[i])
		}
	}
	Summary(w, res, "line", st)
}

// ContextReport writes one block per window. The center line is marked with
// ">" and both sides are shown for every line in the window.
func ContextReport(w io.Writer, res differ.ContextResult, st Styles) {
	width := len(fmt.Sprint(max(res.LeftLen, res.RightLen)))

	for i, win := range res.Windows {
		if i > 0 {
			fmt.Fprintln(w, st.Faint("--"))
		}
		fmt.Fprintln(w, st.Heading(fmt.Sprintf("Difference at line %d:", win.Center+1)))

		for _, line := range win.Lines {
			mark := " "
			l := sideText(line.Left, line.LeftAbsent, st)
			r := sideText(line.Right, line.RightAbsent, st)
			if line.Center {
				mark = ">"
				l = st.Highlight(l)
				r = st.Highlight(r)
			}

			num := fmt.Sprintf("%s %*d", mark, width, line.Index+1)
			pad := strings.Repeat(" ", len(num))
			if line.Center {
				num = st.Emphasize(num)
			}
			fmt.Fprintf(w, "%s  File1: %s\n", num, l)
			fmt.Fprintf(w, "%s  File2: %s\n", pad, r)
		}
	}
	Summary(w, res.Result, "line", st)
}

// HexDump writes both sides of every row in the classic offset, hex, ASCII
// layout. Differing cells are highlighted; without color a marker line with
// "^^" under each differing hex cell and "^" under each differing character
// follows the right side. When onlyDiff is set, rows without mismatches are
// skipped. It returns the number of differing bytes.
func HexDump(w io.Writer, rows iter.Seq[hexdump.Row], onlyDiff bool, st Styles) int {
	total := 0
	for row := range rows {
		n := row.Mismatches()
		total += n
		if onlyDiff && n == 0 {
			continue
		}

		fmt.Fprintln(w, st.Heading("Offset "+row.OffsetLabel()+":"))
		fmt.Fprintln(w, hexLine("File1: ", row, hexdump.Left, st))
		fmt.Fprintln(w, hexLine("File2: ", row, hexdump.Right, st))
		if n > 0 && !st.Enabled() {
			fmt.Fprintln(w, markerLine(row))
		}
		fmt.Fprintln(w)
	}

	switch total {
	case 0:
		fmt.Fprintln(w, st.Heading("Files are identical."))
	case 1:
		fmt.Fprintln(w, st.Heading("Comparison completed with 1 differing byte."))
	default:
		fmt.Fprintln(w, st.Heading(fmt.Sprintf("Comparison completed with %s differing bytes.",
			humanize.Comma(int64(total)))))
	}
	return total
}

func hexPrefix(label string, row hexdump.Row) string {
	return label + row.OffsetLabel() + "  "
}

func hexLine(label string, row hexdump.Row, side hexdump.Side, st Styles) string {
	var b strings.Builder
	b.WriteString(hexPrefix(label, row))

	for i, c := range row.HexCells(side) {
		if row.Differs(i) {
			c = st.Highlight(c)
		}
		b.WriteString(c)
		b.WriteByte(' ')
	}
	b.WriteString(strings.Repeat("   ", hexdump.Stride-row.Len()))

	b.WriteString(" |")
	for i, c := range row.ASCII(side) {
		s := string(c)
		if row.Differs(i) {
			s = st.Highlight(s)
		}
		b.WriteString(s)
	}
	b.WriteByte('|')
	return b.String()
}

func markerLine(row hexdump.Row) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", len(hexPrefix("File2: ", row))))

	for i := 0; i < row.Len(); i++ {
		if row.Differs(i) {
			b.WriteString("^^ ")
		} else {
			b.WriteString("   ")
		}
	}
	b.WriteString(strings.Repeat("   ", hexdump.Stride-row.Len()))

	b.WriteString("  ")
	for i := 0; i < row.Len(); i++ {
		if row.Differs(i) {
			b.WriteByte('^')
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace)
}

// EntropyReport writes the whole-buffer entropy line.
func EntropyReport(w io.Writer, e float64, st Styles) {
	fmt.Fprintf(w, "Entropy of the file: %s bits per byte\n", st.Heading(entropy.Format(e)))
}

// BlockReport writes per-block entropy as a table.
func BlockReport(w io.Writer, blocks []entropy.Block, opts Options, st Styles) {
	rows := make([][]string, 0, len(blocks))
	for _, b := range blocks {
		rows = append(rows, []string{
			fmt.Sprintf("%08X", b.Offset),
			fmt.Sprint(b.Length),
			entropy.Format(b.Entropy),
		})
	}
	Table(w, []string{"offset", "length", "entropy"}, rows, opts, st)
}

// HistogramReport writes the byte values that occur in h with their counts
// and share of the total, most frequent first.
func HistogramReport(w io.Writer, h entropy.Histogram, opts Options, st Styles) {
	total := h.Total()
	if total == 0 {
		return
	}

	rows := make([][]string, 0, h.Distinct())
	for v, count := range h {
		if count == 0 {
			continue
		}
		rows = append(rows, []string{
			fmt.Sprintf("%02X", v),
			string(hexdump.Printable(byte(v))),
			fmt.Sprint(count),
			fmt.Sprintf("%.2f", 100*float64(count)/float64(total)),
		})
	}
	if opts.Sort == "" {
		opts.Sort = "-count"
	}
	Table(w, []string{"byte", "char", "count", "percent"}, rows, opts, st)
}

// StringsReport writes extracted runs, one per line. With titles, or when a
// sort is requested, runs are shown as an offset/length/text table.
func StringsReport(w io.Writer, runs []extract.Run, opts Options, st Styles) {
	if !opts.Titles && opts.Sort == "" {
		for _, r := range runs {
			fmt.Fprintln(w, r.Text)
		}
		return
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{fmt.Sprintf("%08X", r.Offset), fmt.Sprint(len(r.Text)), r.Text})
	}
	Table(w, []string{"offset", "length", "text"}, rows, opts, st)
}

// MatchReport writes search hits with 1-based line numbers. An empty matches
// slice reports that the needle was not found.
func MatchReport(w io.Writer, needle string, matches []extract.Match, st Styles) {
	if len(matches) == 0 {
		fmt.Fprintf(w, "'%s' was not found.\n", needle)
		return
	}

	for _, m := range matches {
		fmt.Fprintln(w, st.Heading(fmt.Sprintf("'%s' found on line %d:", needle, m.Line+1)))
		fmt.Fprintln(w, strings.ReplaceAll(m.Text, needle, st.Highlight(needle)))
	}
	if len(matches) > 1 {
		fmt.Fprintf(w, "'%s' was found %d times.\n", needle, len(matches))
	}
}
