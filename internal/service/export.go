package service

import (
	"bufio"
	"io"
	"strings"

	"hackmonitor-backend/internal/models"
)

// ExportFileName is the download name of the class assignment export
const ExportFileName = "teams_with_class.csv"

var exportHeader = []string{"Team Name", "Repository URL", "Class"}

// WriteTeamsCSV writes the class assignment export. Every cell is double
// quoted with embedded quotes doubled; rows are separated by "\n" and a
// missing class is written as "Unassigned".
func WriteTeamsCSV(w io.Writer, teams []models.TeamRecord) error {
	bw := bufio.NewWriter(w)
	if err := writeQuotedRow(bw, exportHeader); err != nil {
		return err
	}
	for _, team := range teams {
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
		if err := writeQuotedRow(bw, []string{team.Name, team.RepositoryURL, team.ClassLabel()}); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeQuotedRow(w *bufio.Writer, cells []string) error {
	for i, cell := range cells {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(`"` + strings.ReplaceAll(cell, `"`, `""`) + `"`); err != nil {
			return err
		}
	}
	return nil
}
