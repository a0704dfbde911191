package http

import (
	"net/http"

	"health-admin-backoffice/internal/delivery/http/handler"
	"health-admin-backoffice/internal/delivery/http/middleware"
	"health-admin-backoffice/internal/observability/metrics"

	"github.com/gorilla/mux"
)

type Router struct {
	router                 *mux.Router
	healthAuthorityHandler *handler.HealthAuthorityHandler
	referenceListHandler   *handler.ReferenceListHandler
	listItemHandler        *handler.ListItemHandler
	prescriptionHandler    *handler.PrescriptionHandler
	payerHandler           *handler.PayerHandler
	auditLogHandler        *handler.AuditLogHandler
	authMiddleware         *middleware.AuthMiddleware
	corsMiddleware         *middleware.CORSMiddleware
	metrics                *metrics.Metrics
}

func NewRouter(
	healthAuthorityHandler *handler.HealthAuthorityHandler,
	referenceListHandler *handler.ReferenceListHandler,
	listItemHandler *handler.ListItemHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	payerHandler *handler.PayerHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	m *metrics.Metrics,
) *Router {
	return &Router{
		router:                 mux.NewRouter(),
		healthAuthorityHandler: healthAuthorityHandler,
		referenceListHandler:   referenceListHandler,
		listItemHandler:        listItemHandler,
		prescriptionHandler:    prescriptionHandler,
		payerHandler:           payerHandler,
		auditLogHandler:        auditLogHandler,
		authMiddleware:         authMiddleware,
		corsMiddleware:         corsMiddleware,
		metrics:                m,
	}
}

func (r *Router) Setup() *mux.Router {
	// Public endpoints
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// Everything else requires a bearer token.
	protected := r.router.PathPrefix("/").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Health authorities
	protected.HandleFunc("/api/health-authorities", r.healthAuthorityHandler.CreateHealthAuthorities).Methods(http.MethodPost)
	protected.HandleFunc("/api/health-authorities", r.healthAuthorityHandler.GetHealthAuthorities).Methods(http.MethodGet)
	protected.HandleFunc("/api/health-authorities/{id}", r.healthAuthorityHandler.GetHealthAuthority).Methods(http.MethodGet)
	protected.HandleFunc("/api/health-authorities/{id}/deactivate", r.healthAuthorityHandler.DeactivateHealthAuthority).Methods(http.MethodPut)
	protected.HandleFunc("/api/health-authorities/{id}/settings", r.healthAuthorityHandler.UpdateSettings).Methods(http.MethodPut)

	// Reference lists. Creation keeps the dashboard's singular POST paths;
	// reads and mutations live under /api.
	protected.HandleFunc("/diagnosis-list", r.referenceListHandler.CreateDiagnosisLists).Methods(http.MethodPost)
	protected.HandleFunc("/api/diagnosis-lists", r.referenceListHandler.GetDiagnosisLists).Methods(http.MethodGet)
	protected.HandleFunc("/api/diagnosis-lists/{id}", r.referenceListHandler.GetDiagnosisList).Methods(http.MethodGet)
	protected.HandleFunc("/api/diagnosis-lists/{id}", r.referenceListHandler.UpdateDiagnosisList).Methods(http.MethodPut)
	protected.HandleFunc("/api/diagnosis-lists/{id}", r.referenceListHandler.DeleteDiagnosisList).Methods(http.MethodDelete)

	protected.HandleFunc("/drug-list", r.referenceListHandler.CreateDrugLists).Methods(http.MethodPost)
	protected.HandleFunc("/api/drug-lists", r.referenceListHandler.GetDrugLists).Methods(http.MethodGet)
	protected.HandleFunc("/api/drug-lists/{id}", r.referenceListHandler.GetDrugList).Methods(http.MethodGet)
	protected.HandleFunc("/api/drug-lists/{id}", r.referenceListHandler.UpdateDrugList).Methods(http.MethodPut)
	protected.HandleFunc("/api/drug-lists/{id}", r.referenceListHandler.DeleteDrugList).Methods(http.MethodDelete)

	protected.HandleFunc("/clinician-list", r.referenceListHandler.CreateClinicianLists).Methods(http.MethodPost)
	protected.HandleFunc("/api/clinician-lists", r.referenceListHandler.GetClinicianLists).Methods(http.MethodGet)
	protected.HandleFunc("/api/clinician-lists/{id}", r.referenceListHandler.GetClinicianList).Methods(http.MethodGet)
	protected.HandleFunc("/api/clinician-lists/{id}", r.referenceListHandler.UpdateClinicianList).Methods(http.MethodPut)
	protected.HandleFunc("/api/clinician-lists/{id}", r.referenceListHandler.DeleteClinicianList).Methods(http.MethodDelete)

	// List items
	protected.HandleFunc("/diagnoses", r.listItemHandler.AddDiagnosis).Methods(http.MethodPost)
	protected.HandleFunc("/diagnoses", r.listItemHandler.GetDiagnoses).Methods(http.MethodGet)
	protected.HandleFunc("/diagnosis/{id}", r.listItemHandler.DeleteDiagnosis).Methods(http.MethodDelete)

	protected.HandleFunc("/drugs", r.listItemHandler.AddDrug).Methods(http.MethodPost)
	protected.HandleFunc("/drugs", r.listItemHandler.GetDrugs).Methods(http.MethodGet)
	protected.HandleFunc("/drugs/{id}", r.listItemHandler.DeleteDrug).Methods(http.MethodDelete)

	protected.HandleFunc("/clinicians", r.listItemHandler.AddClinician).Methods(http.MethodPost)
	protected.HandleFunc("/clinicians", r.listItemHandler.GetClinicians).Methods(http.MethodGet)
	protected.HandleFunc("/clinicians/{id}", r.listItemHandler.DeleteClinician).Methods(http.MethodDelete)
	protected.HandleFunc("/clinicians/import", r.listItemHandler.ImportClinicians).Methods(http.MethodPost)
	protected.HandleFunc("/clinicians/import/template", r.listItemHandler.ImportTemplate).Methods(http.MethodGet)

	// Prescriptions (POST-style, ids in the body)
	protected.HandleFunc("/prescription-detail/add", r.prescriptionHandler.AddPrescription).Methods(http.MethodPost)
	protected.HandleFunc("/prescription-detail/update", r.prescriptionHandler.UpdatePrescription).Methods(http.MethodPost)
	protected.HandleFunc("/prescription-detail/delete", r.prescriptionHandler.DeletePrescription).Methods(http.MethodPost)
	protected.HandleFunc("/prescriptions/fetch", r.prescriptionHandler.FetchPrescription).Methods(http.MethodPost)
	protected.HandleFunc("/prescription-drugs/add", r.prescriptionHandler.AddDrugLine).Methods(http.MethodPost)
	protected.HandleFunc("/prescription-drugs/delete", r.prescriptionHandler.DeleteDrugLine).Methods(http.MethodPost)
	protected.HandleFunc("/prescription-diagnosis/add", r.prescriptionHandler.AddDiagnosisLine).Methods(http.MethodPost)
	protected.HandleFunc("/prescription-diagnosis/delete", r.prescriptionHandler.DeleteDiagnosisLine).Methods(http.MethodPost)

	// Payers
	protected.HandleFunc("/payer", r.payerHandler.GetPayers).Methods(http.MethodGet)
	protected.HandleFunc("/payer/register", r.payerHandler.RegisterPayer).Methods(http.MethodPost)
	protected.HandleFunc("/payer/{id}", r.payerHandler.GetPayer).Methods(http.MethodGet)
	protected.HandleFunc("/payer/{id}", r.payerHandler.UpdatePayer).Methods(http.MethodPut)
	protected.HandleFunc("/payer/{id}/ha-credential", r.payerHandler.GetCredential).Methods(http.MethodGet)
	protected.HandleFunc("/payer/{id}/ha-credential", r.payerHandler.RegisterCredential).Methods(http.MethodPost)

	// Audit trail
	protected.HandleFunc("/api/audit-logs", r.auditLogHandler.GetAuditLogs).Methods(http.MethodGet)
	protected.HandleFunc("/api/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)
	if r.metrics != nil {
		r.router.Use(r.metrics.Middleware)
	}

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
