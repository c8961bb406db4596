package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"assistant-bot/internal/model"
)

const (
	noteColumnWidth = 67
	tagsColumnWidth = 26
)

// writeNotesTable выводит заметки таблицей, offset задает номер первой строки
func writeNotesTable(w io.Writer, notes []*model.RecordNote, offset int) {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.Debug)
	fmt.Fprintln(tw, "№\t Name\t Note\t Tags\t Status\t")
	for i, note := range notes {
		tags := make([]string, 0, len(note.Tags))
		for _, tag := range note.Tags {
			tags = append(tags, tag.String())
		}
		fmt.Fprintf(tw, "%d\t %s\t %s\t %s\t %s\t\n",
			offset+i+1,
			note.Name,
			ellipsis(note.Note.String(), noteColumnWidth),
			ellipsis(strings.Join(tags, ", "), tagsColumnWidth),
			note.Status,
		)
	}
	_ = tw.Flush()
}

// ellipsis обрезает строку до width рун, заменяя хвост многоточием
func ellipsis(s string, width int) string {
	if utf8.RuneCountInString(s) < width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-4]) + "..."
}
