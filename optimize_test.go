package utilcss

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptimize_Passthrough(t *testing.T) {
	out, err := Optimize(".a{color:red}", OptimizeOptions{})
	require.NoError(t, err)
	require.Equal(t, ".a{color:red;}", out)
}

func TestOptimize_RemoveDuplicateDeclarations(t *testing.T) {
	out, err := Optimize(".a{color:red;color:blue}", OptimizeOptions{RemoveDuplicates: true})
	require.NoError(t, err)
	require.Equal(t, ".a{color:blue;}", out)
}

func TestOptimize_RemoveDuplicateRules(t *testing.T) {
	// the last copy survives so cascade outcomes are preserved
	out, err := Optimize(".a{color:red}.b{margin:0}.a{color:red}", OptimizeOptions{RemoveDuplicates: true})
	require.NoError(t, err)
	require.Equal(t, ".b{margin:0;}.a{color:red;}", out)
}

func TestOptimize_MergeSameSelector(t *testing.T) {
	out, err := Optimize(".a{color:red}.a{margin:0}", OptimizeOptions{MergeRules: true})
	require.NoError(t, err)
	require.Equal(t, ".a{color:red;margin:0;}", out)
}

func TestOptimize_MergeSameBody(t *testing.T) {
	out, err := Optimize(".a{color:red}.b{color:red}", OptimizeOptions{MergeRules: true})
	require.NoError(t, err)
	require.Equal(t, ".a,.b{color:red;}", out)
}

func TestOptimize_MergeIsAdjacentOnly(t *testing.T) {
	out, err := Optimize(".a{color:red}.x{margin:0}.a{color:blue}", OptimizeOptions{MergeRules: true})
	require.NoError(t, err)
	require.Equal(t, ".a{color:red;}.x{margin:0;}.a{color:blue;}", out)
}

func TestOptimize_SortProperties(t *testing.T) {
	out, err := Optimize(".a{color:red;width:10px;display:flex}", OptimizeOptions{SortProperties: true})
	require.NoError(t, err)
	// group order: layout, box, visual
	require.Equal(t, ".a{display:flex;width:10px;color:red;}", out)
}

func TestOptimize_SortPropertiesAlphabeticalWithinGroup(t *testing.T) {
	out, err := Optimize(".a{position:relative;display:flex}", OptimizeOptions{SortProperties: true})
	require.NoError(t, err)
	require.Equal(t, ".a{display:flex;position:relative;}", out)
}

func TestOptimize_ImportantSurvives(t *testing.T) {
	out, err := Optimize(".a{color:red !important}", OptimizeOptions{})
	require.NoError(t, err)
	require.Equal(t, ".a{color:red !important;}", out)
}

func TestOptimize_MediaBlocks(t *testing.T) {
	out, err := Optimize("@media (min-width: 768px){.a{color:red}}", OptimizeOptions{})
	require.NoError(t, err)
	require.Contains(t, out, "@media")
	require.Contains(t, out, "min-width: 768px")
	require.Contains(t, out, ".a{color:red;}")
}

func TestOptimize_MergeInsideMediaBlock(t *testing.T) {
	out, err := Optimize("@media print{.a{color:red}.a{margin:0}}", OptimizeOptions{MergeRules: true})
	require.NoError(t, err)
	require.Contains(t, out, ".a{color:red;margin:0;}")
}

func TestOptimize_Minify(t *testing.T) {
	out, err := Optimize(".a{color:red;}", OptimizeOptions{Minify: true})
	require.NoError(t, err)
	require.Equal(t, ".a{color:red}", out)
}

func TestOptimize_MinifyLevelOutOfRange(t *testing.T) {
	_, err := Optimize(".a{color:red}", OptimizeOptions{Minify: true, CompressionLevel: 11})
	require.Error(t, err)
}

func TestOptimize_Empty(t *testing.T) {
	out, err := Optimize("", OptimizeOptions{RemoveDuplicates: true, MergeRules: true})
	require.NoError(t, err)
	require.Equal(t, "", out)
}

func TestGroupOf(t *testing.T) {
	require.Equal(t, groupLayout, groupOf("display"))
	require.Equal(t, groupBox, groupOf("padding-left")) // prefix fallback
	require.Equal(t, groupBox, groupOf("margin"))
	require.Equal(t, groupTypography, groupOf("font-size"))
	require.Equal(t, groupVisual, groupOf("background-color"))
	require.Equal(t, groupEffects, groupOf("transform"))
	require.Equal(t, groupOther, groupOf("content"))
}
