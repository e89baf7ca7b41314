package xmlseq_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mvaled/inferdtd/reterm"
	"github.com/mvaled/inferdtd/xmlseq"
)

const sampleDoc = `<?xml version="1.0"?>
<example>
	<book tip="1">
		<title>An example</title>
		<ids>
			<uri>http://www.example.com/1</uri>
		</ids>
	</book>
	<book>
		<title>An example</title>
	</book>
</example>`

func TestParseBuildsTree(t *testing.T) {
	root, err := xmlseq.Parse(strings.NewReader(sampleDoc))
	require.NoError(t, err)
	require.Equal(t, reterm.Symbol("example"), root.Name)
	require.Len(t, root.Children, 2)
	require.Equal(t, reterm.Symbol("book"), root.Children[0].Name)
	require.Equal(t, []reterm.Symbol{"tip"}, root.Children[0].Attributes)
}

func TestParseEmptyStreamErrors(t *testing.T) {
	_, err := xmlseq.Parse(strings.NewReader(""))
	require.ErrorIs(t, err, xmlseq.ErrNoRootElement)
}

func TestMergeCombinesSamples(t *testing.T) {
	a := xmlseq.Corpus{"book": [][]reterm.Symbol{{"title"}}}
	b := xmlseq.Corpus{"book": [][]reterm.Symbol{{"title", "ids"}}, "pep": [][]reterm.Symbol{{}}}

	merged := xmlseq.Merge(a, b)

	require.Len(t, merged["book"], 2)
	require.Len(t, merged["pep"], 1)
	require.Len(t, a["book"], 1, "Merge must not mutate its inputs")
}

func TestExtractSequencesPerTagSamples(t *testing.T) {
	root, err := xmlseq.Parse(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	corpus := xmlseq.ExtractSequences(root)

	require.Len(t, corpus["example"], 1)
	require.Equal(t, []reterm.Symbol{"book", "book"}, corpus["example"][0])

	require.Len(t, corpus["book"], 2)
	require.Equal(t, []reterm.Symbol{"title", "ids"}, corpus["book"][0])
	require.Equal(t, []reterm.Symbol{"title"}, corpus["book"][1])

	require.Len(t, corpus["title"], 2)
	require.Equal(t, []reterm.Symbol{}, corpus["title"][0])

	require.Len(t, corpus["uri"], 1)
	require.Empty(t, corpus["uri"][0])
}
