package markup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delegate-rewriter/internal/mapping"
	"delegate-rewriter/internal/rewrite"
)

// TestRewrite_ExamplePage runs the full conversion over the shipped
// example admin-page fragment and checks that every inline handler is
// gone from the output.
func TestRewrite_ExamplePage(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "examples", "deliveries.html"))
	require.NoError(t, err)

	out, diags, err := Rewrite(data, newBuiltinRewriter(t))
	require.NoError(t, err)
	require.True(t, diags.IsValid(), "unexpected errors: %v", diags.Errors)
	assert.Empty(t, diags.Warnings, "example page should convert fully")

	got := string(out)
	assert.NotContains(t, got, "onclick=")
	assert.NotContains(t, got, "onchange=")

	for _, want := range []string{
		`data-action="view-delivery"`,
		`data-delivery-id="1024"`,
		`data-action="update-delivery-status"`,
		`data-current-status="pending"`,
		`data-pagination=""`,
		`data-section="deliveries"`,
		`data-page="3"`,
		`data-client-tab="history"`,
		`data-modal-close=""`,
		`data-action="close-modal"`,
		`data-modal-id="driver-modal"`,
	} {
		assert.Contains(t, got, want)
	}
}

// TestRewrite_ExampleMappings checks that the shipped extra mapping
// file loads, validates, and extends the builtin table.
func TestRewrite_ExampleMappings(t *testing.T) {
	f := mapping.Builtin()

	extra, err := mapping.LoadFile(filepath.Join("..", "..", "examples", "mappings.yaml"))
	require.NoError(t, err)

	f.Mappings = append(f.Mappings, extra.Mappings...)

	table, err := mapping.BuildTable(f)
	require.NoError(t, err)

	rw := rewrite.New(table)

	out, diags, err := Rewrite([]byte(`<button onclick="assignDriver(1024, 12)">Assign</button>`), rw)
	require.NoError(t, err)
	require.True(t, diags.IsValid())

	got := string(out)
	assert.True(t, strings.Contains(got, `data-action="assign-driver"`), "got: %s", got)
	assert.Contains(t, got, `data-delivery-id="1024"`)
	assert.Contains(t, got, `data-driver-id="12"`)
}
