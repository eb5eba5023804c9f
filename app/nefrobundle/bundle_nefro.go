package nefrobundle

import (
	"net/http"

	"github.com/jinzhu/gorm"

	"nefroped_backend/app/core"
)

// NefroBundle handle patient, observation and report resources
type NefroBundle struct {
	routes []core.Route
}

// NewNefroBundle instance
func NewNefroBundle(ormDB *gorm.DB) core.Bundle {
	hc := NewNefroController(ormDB)

	r := []core.Route{
		core.Route{Method: http.MethodPost, Path: "/patients", Handler: hc.SavePatientHandler},
		core.Route{Method: http.MethodGet, Path: "/patients", Handler: hc.GetPatientsHandler},
		core.Route{Method: http.MethodGet, Path: "/patients/search", Handler: hc.FindPatientsHandler},
		core.Route{Method: http.MethodGet, Path: "/patients/{patientId:[0-9]+}", Handler: hc.GetPatientHandler},

		core.Route{Method: http.MethodPost, Path: "/patients/{patientId:[0-9]+}/observations", Handler: hc.SaveObservationHandler},
		core.Route{Method: http.MethodGet, Path: "/patients/{patientId:[0-9]+}/observations", Handler: hc.GetObservationsHandler},
		core.Route{Method: http.MethodGet, Path: "/patients/{patientId:[0-9]+}/observations/export", Handler: hc.ExportObservationsXlsxHandler},

		core.Route{Method: http.MethodGet, Path: "/patients/{patientId:[0-9]+}/report", Handler: hc.ExportPatientReportHandler},
		core.Route{Method: http.MethodPost, Path: "/patients/{patientId:[0-9]+}/report/send", Handler: hc.SendMailPatientReportHandler},

		core.Route{Method: http.MethodGet, Path: "/reference/doses", Handler: hc.GetReferenceDosesHandler},

		core.Route{Method: http.MethodOptions, Path: "/{rest:.*}", Handler: hc.OptionsHandler},
	}

	return &NefroBundle{
		routes: r,
	}
}

// GetRoutes implement interface core.Bundle
func (b *NefroBundle) GetRoutes() []core.Route {
	return b.routes
}
