package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mvaled/inferdtd/cmd/inferdtd/cmd"
)

func writeTempXML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInferCommandPrintsDTD(t *testing.T) {
	path := writeTempXML(t, `<book><title/><title/></book>`)

	root := cmd.NewRootCmd()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{"infer", path})

	require.NoError(t, root.Execute())
	require.Contains(t, stdout.String(), "<!ELEMENT title EMPTY>")
	require.Contains(t, stdout.String(), "<!ELEMENT book (title+)>")
}

func TestInferCommandRequiresAtLeastOneFile(t *testing.T) {
	root := cmd.NewRootCmd()
	root.SetArgs([]string{"infer"})
	require.Error(t, root.Execute())
}
