package customcss

import (
	"testing"

	"github.com/npillmayer/pagebuilder/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.style")
	defer teardown()
	//
	d := Parse("color: red; border-bottom: 1px dotted #ccc !important")
	assert.Equal(t, style.Property("red"), d["color"])
	assert.Equal(t, style.Property("1px dotted #ccc !important"), d["borderBottom"])
	assert.True(t, d["borderBottom"].IsImportant())
}

func TestParseSanitizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.style")
	defer teardown()
	//
	d := Parse("background-image: url(javascript:alert(1)); color: blue")
	assert.Equal(t, style.Declarations{"color": "blue"}, d)
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("   "))
}

func TestApplyOverrides(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.style")
	defer teardown()
	//
	computed := style.Declarations{"color": "black", "fontSize": "16px"}
	d := Apply(computed, "color: white")
	assert.Equal(t, style.Declarations{"color": "white", "fontSize": "16px"}, d)
	assert.Equal(t, style.Declarations{"color": "white"}, Apply(nil, "color: white"))
}

func TestParseUnterminatedDeclaration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.style")
	defer teardown()
	//
	assert.Equal(t, style.Declarations{"letterSpacing": "2px"}, Parse("letter-spacing: 2px"))
	assert.Equal(t, style.Declarations{"letterSpacing": "2px"}, Parse("letter-spacing: 2px;"))
	assert.Equal(t, style.Declarations{"color": "white", "marginTop": "4px"},
		Parse("  color: white;\n  margin-top: 4px  "))
}
