package request

// The edit-flow payloads are deliberately small: each one carries a single
// user gesture on one row of the systems table.

type SeleccionPrincipalRequest struct {
	TempID           int64 `json:"temp_id" binding:"required"`
	IDFallaPrincipal int   `json:"id_falla_principal" binding:"required"`
}

type SeleccionSecundariaRequest struct {
	TempID            int64 `json:"temp_id" binding:"required"`
	IDFallaSecundaria *int  `json:"id_falla_secundaria"`
}

type FilaRequest struct {
	TempID int64 `json:"temp_id" binding:"required"`
}

type EliminarFallaRequest struct {
	IDRelacionFalla int `json:"id_relacion_falla" binding:"required"`
}
