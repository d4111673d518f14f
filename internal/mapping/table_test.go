package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable_LookupAndOrder(t *testing.T) {
	table, err := NewTable(
		ActionMapping{Legacy: "viewDelivery", Kind: KindAction, Action: "view-delivery", Params: ParamList{"delivery-id"}},
		ActionMapping{Legacy: "viewRoute", Kind: KindAction, Action: "view-route", Params: ParamList{"route-id"}},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"viewDelivery", "viewRoute"}, table.Names())

	m, ok := table.Lookup("viewRoute")
	require.True(t, ok)
	assert.Equal(t, "view-route", m.Action)

	_, ok = table.Lookup("editDriver")
	assert.False(t, ok)
}

func TestRegister_DuplicateFails(t *testing.T) {
	table, err := NewTable(
		ActionMapping{Legacy: "viewDelivery", Kind: KindAction, Action: "view-delivery", Params: ParamList{"delivery-id"}},
	)
	require.NoError(t, err)

	err = table.Register(ActionMapping{Legacy: "viewDelivery", Kind: KindAction, Action: "other"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateMapping)

	// The original registration is untouched.
	m, ok := table.Lookup("viewDelivery")
	require.True(t, ok)
	assert.Equal(t, "view-delivery", m.Action)
}

func TestNewTable_DuplicateFails(t *testing.T) {
	_, err := NewTable(
		ActionMapping{Legacy: "closeModal", Kind: KindModalClose, Action: "close-modal", Params: ParamList{"modal-id"}},
		ActionMapping{Legacy: "closeModal", Kind: KindModalClose, Action: "close-modal", Params: ParamList{"modal-id"}},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateMapping)
}

func TestBuiltin_BuildsValidTable(t *testing.T) {
	f := Builtin()

	diags := Validate(f)
	assert.True(t, diags.IsValid(), "builtin table has errors: %v", diags.Errors)

	table, err := BuildTable(f)
	require.NoError(t, err)

	for _, legacy := range []string{
		"viewDelivery", "viewRoute", "editDriver", "editVehicle",
		"updateDeliveryStatus", "loadDeliveries", "closeModal", "switchClientTab",
	} {
		assert.True(t, table.Has(legacy), "missing builtin mapping %q", legacy)
	}

	pagination, ok := table.Lookup("loadDeliveries")
	require.True(t, ok)
	assert.Equal(t, KindPagination, pagination.Kind)
	assert.Equal(t, "deliveries", pagination.Section)
}
