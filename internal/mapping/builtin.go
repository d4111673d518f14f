package mapping

// Builtin returns the seed conversion configuration for the documented
// delivery-admin handlers. Callers may append reviewed mappings from a
// YAML file before building a table; duplicate legacy names fail at
// registration, they do not override the seed.
func Builtin() *File {
	return &File{
		Version: "1",
		Mappings: []ActionMapping{
			{
				Legacy: "viewDelivery",
				Kind:   KindAction,
				Action: "view-delivery",
				Params: ParamList{"delivery-id"},
			},
			{
				Legacy: "viewRoute",
				Kind:   KindAction,
				Action: "view-route",
				Params: ParamList{"route-id"},
			},
			{
				Legacy: "editDriver",
				Kind:   KindAction,
				Action: "edit-driver",
				Params: ParamList{"driver-id"},
			},
			{
				Legacy: "editVehicle",
				Kind:   KindAction,
				Action: "edit-vehicle",
				Params: ParamList{"vehicle-id"},
			},
			{
				Legacy: "updateDeliveryStatus",
				Kind:   KindAction,
				Action: "update-delivery-status",
				Params: ParamList{"delivery-id", "current-status"},
			},
			{
				Legacy:  "loadDeliveries",
				Kind:    KindPagination,
				Section: "deliveries",
				Params:  ParamList{"page"},
			},
			{
				Legacy: "closeModal",
				Kind:   KindModalClose,
				Action: "close-modal",
				Params: ParamList{"modal-id"},
			},
			{
				Legacy: "switchClientTab",
				Kind:   KindTab,
				Params: ParamList{"client-tab"},
			},
		},
	}
}
