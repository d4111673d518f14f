package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ScalarAndSequenceParams(t *testing.T) {
	yaml := `
mappings:
  - legacy: viewDelivery
    action: view-delivery
    params: delivery-id
  - legacy: updateDeliveryStatus
    action: update-delivery-status
    params: [delivery-id, current-status]
`
	f, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.Len(t, f.Mappings, 2)

	assert.Equal(t, ParamList{"delivery-id"}, f.Mappings[0].Params)
	assert.Equal(t, ParamList{"delivery-id", "current-status"}, f.Mappings[1].Params)
}

func TestParse_DefaultsKindAndVersion(t *testing.T) {
	yaml := `
mappings:
  - legacy: viewRoute
    action: view-route
    params: route-id
`
	f, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, KindAction, f.Mappings[0].Kind)
}

func TestParse_ExplicitKinds(t *testing.T) {
	yaml := `
mappings:
  - legacy: loadDeliveries
    kind: pagination
    section: deliveries
    params: page
  - legacy: switchClientTab
    kind: tab
    params: client-tab
  - legacy: closeModal
    kind: modal-close
    action: close-modal
    params: modal-id
`
	f, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.Len(t, f.Mappings, 3)

	assert.Equal(t, KindPagination, f.Mappings[0].Kind)
	assert.Equal(t, KindTab, f.Mappings[1].Kind)
	assert.Equal(t, KindModalClose, f.Mappings[2].Kind)
}

func TestParse_UnknownKindFails(t *testing.T) {
	yaml := `
mappings:
  - legacy: viewDelivery
    kind: bogus
    action: view-delivery
`
	_, err := Parse([]byte(yaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mapping kind")
}

func TestMarshal_RoundTrip(t *testing.T) {
	f := Builtin()

	data, err := Marshal(f)
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, f.Mappings, parsed.Mappings)
}

func TestMarshal_SingleParamAsScalar(t *testing.T) {
	f := &File{
		Version: "1",
		Mappings: []ActionMapping{
			{Legacy: "viewDelivery", Kind: KindAction, Action: "view-delivery", Params: ParamList{"delivery-id"}},
		},
	}

	data, err := Marshal(f)
	require.NoError(t, err)

	assert.Contains(t, string(data), "params: delivery-id")
	assert.NotContains(t, string(data), "- delivery-id")
}
