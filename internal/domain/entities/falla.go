package entities

// FallaPrincipalFiltro is one entry of the two-level fault taxonomy
// (system level). Static reference data, fetched from the backend.
type FallaPrincipalFiltro struct {
	IDFallaPrincipal      int    `json:"id_falla_principal"`
	DetalleFallaPrincipal string `json:"detalle_falla_principal"`
}

// FallaSecundariaFiltro is one sub-system entry, always attached to a
// principal fault.
type FallaSecundariaFiltro struct {
	IDFallaSecundaria      int    `json:"id_falla_secundaria"`
	IDFallaPrincipal       int    `json:"id_falla_principal"`
	DetalleFallaSecundaria string `json:"detalle_falla_secundaria"`
}

// UpdateFallaInput is the upsert payload for one fault row.
//
// Domain notes:
//   - IDRelacionFalla nil means "create"; non-nil means "update". A row is
//     never sent to the backend before the user explicitly saves it.
type UpdateFallaInput struct {
	IDOrden              int  `json:"idOrden"`
	IDRelacionFalla      *int `json:"idRelacionFalla"`
	IDFallaPrincipal     int  `json:"idFallaPrincipal"`
	IDFallaSecundaria    *int `json:"idFallaSecundaria"`
	IDPersonalPrincipal  *int `json:"idPersonalPrincipal"`
	IDPersonalSecundaria *int `json:"idPersonalSecundaria"`
	IDPerfilPrincipal    *int `json:"idPerfilPrincipal"`
	IDPerfilSecundaria   *int `json:"idPerfilSecundaria"`
}

// UpdateFallaResponse is the backend result of an upsert. Success false in a
// 200 response is a business-rule rejection and is treated as failure.
type UpdateFallaResponse struct {
	Success         bool   `json:"success"`
	Action          string `json:"action"`
	AffectedRows    int    `json:"affected_rows"`
	Message         string `json:"message"`
	IDRelacionFalla *int   `json:"idRelacionFalla,omitempty"`
}

// DeleteFallaResponse doubles as the deletion result and, via the preview
// endpoint, as the cascade-impact summary shown before confirming.
type DeleteFallaResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	SuppliesDeleted int    `json:"supplies_deleted"`
	StaffDeleted    int    `json:"staff_deleted"`
	FailuresDeleted int    `json:"failures_deleted"`
}
