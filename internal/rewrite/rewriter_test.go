package rewrite

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delegate-rewriter/internal/invoke"
	"delegate-rewriter/internal/mapping"
)

// newBuiltinRewriter builds a rewriter over the builtin seed table.
func newBuiltinRewriter(t *testing.T) *Rewriter {
	t.Helper()

	table, err := mapping.BuildTable(mapping.Builtin())
	require.NoError(t, err)

	return New(table)
}

func TestRewrite_ActionForm(t *testing.T) {
	rw := newBuiltinRewriter(t)

	res, err := rw.Rewrite(invoke.Invocation{Func: "viewDelivery", Args: []string{"123"}})
	require.NoError(t, err)

	attrs := res.Attrs()
	assert.Equal(t, Attrs{
		{Name: "data-action", Value: "view-delivery"},
		{Name: "data-delivery-id", Value: "123"},
	}, attrs)

	assert.Equal(t, `data-action="view-delivery" data-delivery-id="123"`, attrs.Format())
}

func TestRewrite_TwoParamsKeepArgumentOrder(t *testing.T) {
	rw := newBuiltinRewriter(t)

	res, err := rw.Rewrite(invoke.Invocation{
		Func: "updateDeliveryStatus",
		Args: []string{"123", "pending"},
	})
	require.NoError(t, err)

	attrs := res.Attrs()

	action, ok := attrs.Get("data-action")
	require.True(t, ok)
	assert.Equal(t, "update-delivery-status", action)

	id, ok := attrs.Get("data-delivery-id")
	require.True(t, ok)
	assert.Equal(t, "123", id)

	status, ok := attrs.Get("data-current-status")
	require.True(t, ok)
	assert.Equal(t, "pending", status)

	assert.Equal(t,
		`data-action="update-delivery-status" data-delivery-id="123" data-current-status="pending"`,
		attrs.Format())
}

func TestRewrite_UnknownFunction(t *testing.T) {
	rw := newBuiltinRewriter(t)

	_, err := rw.Rewrite(invoke.Invocation{Func: "unknownFn", Args: []string{"1"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFunction)
}

func TestRewrite_ArityMismatch(t *testing.T) {
	rw := newBuiltinRewriter(t)

	// viewDelivery declares one parameter.
	_, err := rw.Rewrite(invoke.Invocation{Func: "viewDelivery", Args: []string{"1", "2"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrArityMismatch)

	_, err = rw.Rewrite(invoke.Invocation{Func: "viewDelivery", Args: nil})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrArityMismatch)
}

func TestRewrite_PaginationForm(t *testing.T) {
	rw := newBuiltinRewriter(t)

	res, err := rw.Rewrite(invoke.Invocation{Func: "loadDeliveries", Args: []string{"3"}})
	require.NoError(t, err)

	assert.Equal(t, mapping.KindPagination, res.Kind())
	assert.Equal(t, `data-pagination data-section="deliveries" data-page="3"`, res.Attrs().Format())
}

func TestRewrite_TabForm(t *testing.T) {
	rw := newBuiltinRewriter(t)

	res, err := rw.Rewrite(invoke.Invocation{Func: "switchClientTab", Args: []string{"history"}})
	require.NoError(t, err)

	assert.Equal(t, mapping.KindTab, res.Kind())

	attrs := res.Attrs()
	require.Len(t, attrs, 1)
	assert.Equal(t, `data-client-tab="history"`, attrs.Format())
	assert.False(t, attrs.Has("data-action"))
}

func TestRewrite_ModalCloseWithID(t *testing.T) {
	rw := newBuiltinRewriter(t)

	res, err := rw.Rewrite(invoke.Invocation{Func: "closeModal", Args: []string{"driver-modal"}})
	require.NoError(t, err)

	assert.Equal(t, `data-action="close-modal" data-modal-id="driver-modal"`, res.Attrs().Format())
}

func TestRewrite_ModalCloseZeroArgs(t *testing.T) {
	rw := newBuiltinRewriter(t)

	res, err := rw.RewriteString("closeModal(this.closest('.fixed'))")
	require.NoError(t, err)

	assert.Equal(t, mapping.KindModalClose, res.Kind())
	assert.Equal(t, "data-modal-close", res.Attrs().Format())
}

func TestRewriteString_MalformedPropagates(t *testing.T) {
	rw := newBuiltinRewriter(t)

	_, err := rw.RewriteString("viewDelivery(123")
	require.Error(t, err)
	assert.ErrorIs(t, err, invoke.ErrMalformedInvocation)
}

func TestFormat_EscapesAttributeValues(t *testing.T) {
	attrs := Attrs{
		{Name: "data-action", Value: "view-delivery"},
		{Name: "data-delivery-id", Value: `a"b & <c>`},
	}

	assert.Equal(t,
		`data-action="view-delivery" data-delivery-id="a&quot;b &amp; &lt;c&gt;"`,
		attrs.Format())
}

// TestRoundTrip checks that rendering a legacy call from a mapping,
// parsing it back, and rewriting it reproduces the attributes built
// directly from the same arguments.
func TestRoundTrip(t *testing.T) {
	rw := newBuiltinRewriter(t)

	for _, m := range rw.Table().All() {
		t.Run(m.Legacy, func(t *testing.T) {
			args := make([]string, m.Arity())
			for i := range args {
				args[i] = fmt.Sprintf("value-%d", i+1)
			}

			direct, err := rw.Rewrite(invoke.Invocation{Func: m.Legacy, Args: args})
			require.NoError(t, err)

			roundTripped, err := rw.RewriteString(renderLegacy(m.Legacy, args))
			require.NoError(t, err)

			if diff := cmp.Diff(direct.Attrs(), roundTripped.Attrs()); diff != "" {
				t.Errorf("attrs mismatch (-direct +roundtrip):\n%s", diff)
			}
		})
	}
}

// renderLegacy renders a legacy inline-handler call with every argument
// single-quoted, the way the old markup wrote it.
func renderLegacy(fn string, args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = "'" + a + "'"
	}

	return fn + "(" + strings.Join(quoted, ", ") + ")"
}
