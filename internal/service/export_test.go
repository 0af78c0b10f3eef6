package service

import (
	"bytes"
	"testing"

	"hackmonitor-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTeamsCSV(t *testing.T) {
	teams := []models.TeamRecord{
		{Name: "Alpha", RepositoryURL: "https://github.com/a/b", Class: models.StringPtr("E-101")},
		{Name: `Say "hi"`, RepositoryURL: "https://github.com/c/d"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTeamsCSV(&buf, teams))

	expected := `"Team Name","Repository URL","Class"` + "\n" +
		`"Alpha","https://github.com/a/b","E-101"` + "\n" +
		`"Say ""hi""","https://github.com/c/d","Unassigned"`
	assert.Equal(t, expected, buf.String())
}

func TestWriteTeamsCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTeamsCSV(&buf, nil))
	assert.Equal(t, `"Team Name","Repository URL","Class"`, buf.String())
}
