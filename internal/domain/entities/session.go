package entities

import "time"

// CookieUser is the identity handed over by the corporate auth cookie
// exchange. Authentication itself happens upstream; this service only
// registers the already-authenticated user.
type CookieUser struct {
	IDUsuario int    `json:"idUsuario"`
	Usuario   string `json:"usuario"`
	Rol       string `json:"rol"`
	Token     string `json:"token"`
}

// LegacyUser carries the legacy HR identifiers the maintenance backend
// expects on mutations (personnel and profile ids).
type LegacyUser struct {
	CodigoUsuario            int    `json:"codigoUsuario"`
	IDUsuario                int    `json:"idUsuario"`
	PrimerNombre             string `json:"primernombre"`
	Apellido                 string `json:"apellido"`
	Rut                      string `json:"rut"`
	IDPerfilUsuario          int    `json:"idperfilusuario"`
	IDPersonalControlGestion int    `json:"idpersonalcontrolgestion"`
	NombrePerfil             string `json:"nombrePerfil"`
	CodigoTaller             *int   `json:"codigoTaller,omitempty"`
	CorreoUsuario            string `json:"correoUsuario"`
}

// Permission names one granted access inside one module. Navigation items
// and row actions are gated on these.
type Permission struct {
	NombreModulo string `json:"nombreModulo"`
	NombreAcceso string `json:"nombreAcceso"`
}

// Session is one authenticated UI session, identified by a server-generated
// token.
type Session struct {
	Token       string       `json:"token"`
	CookieUser  CookieUser   `json:"cookieUser"`
	LegacyUser  LegacyUser   `json:"legacyUser"`
	Permissions []Permission `json:"permissions"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// HasPermission reports whether the session grants the given module/access
// pair.
func (s Session) HasPermission(p Permission) bool {
	for _, granted := range s.Permissions {
		if granted.NombreModulo == p.NombreModulo && granted.NombreAcceso == p.NombreAcceso {
			return true
		}
	}
	return false
}

// PermisoOrdenesTrabajo gates access to the work-order views.
var PermisoOrdenesTrabajo = Permission{
	NombreModulo: "Ordenes de Trabajo - OT",
	NombreAcceso: "Acceso",
}
