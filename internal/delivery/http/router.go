package http

import (
	"net/http"
	"path/filepath"
	"strings"

	"healthhub/config"
	"healthhub/internal/delivery/http/handler"
	"healthhub/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	uploadCfg           config.UploadConfig
	authHandler         *handler.AuthHandler
	profileHandler      *handler.ProfileHandler
	approvalHandler     *handler.ApprovalHandler
	managementHandler   *handler.ManagementHandler
	appointmentHandler  *handler.AppointmentHandler
	prescriptionHandler *handler.PrescriptionHandler
	billingHandler      *handler.BillingHandler
	documentHandler     *handler.DocumentHandler
	staffTaskHandler    *handler.StaffTaskHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	uploadCfg config.UploadConfig,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	approvalHandler *handler.ApprovalHandler,
	managementHandler *handler.ManagementHandler,
	appointmentHandler *handler.AppointmentHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	billingHandler *handler.BillingHandler,
	documentHandler *handler.DocumentHandler,
	staffTaskHandler *handler.StaffTaskHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		uploadCfg:           uploadCfg,
		authHandler:         authHandler,
		profileHandler:      profileHandler,
		approvalHandler:     approvalHandler,
		managementHandler:   managementHandler,
		appointmentHandler:  appointmentHandler,
		prescriptionHandler: prescriptionHandler,
		billingHandler:      billingHandler,
		documentHandler:     documentHandler,
		staffTaskHandler:    staffTaskHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/signup", r.authHandler.Signup).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Profile submissions (public: the request itself carries email+password
	// re-authentication, and pending accounts cannot log in yet)
	profiles := api.PathPrefix("/profiles").Subrouter()
	profiles.HandleFunc("/doctor", r.profileHandler.SubmitDoctorProfile).Methods(http.MethodPost)
	profiles.HandleFunc("/staff", r.profileHandler.SubmitStaffProfile).Methods(http.MethodPost)
	profiles.HandleFunc("/admin", r.profileHandler.SubmitAdminProfile).Methods(http.MethodPost)
	profiles.HandleFunc("/patient", r.profileHandler.RegisterPatient).Methods(http.MethodPost)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Approval queue
	admin.HandleFunc("/requests/{role:admin|doctor|staff}", r.approvalHandler.PendingProfiles).Methods(http.MethodGet)
	admin.HandleFunc("/requests/{role:admin|doctor|staff}/{id}/approve", r.approvalHandler.Approve).Methods(http.MethodPost)
	admin.HandleFunc("/requests/{role:admin|doctor|staff}/{id}/reject", r.approvalHandler.Reject).Methods(http.MethodPost)

	// Member management
	admin.HandleFunc("/members/admin", r.managementHandler.AddAdmin).Methods(http.MethodPost)
	admin.HandleFunc("/members/patient", r.managementHandler.AddPatient).Methods(http.MethodPost)
	admin.HandleFunc("/members/{role:admin|doctor|staff|patient}", r.managementHandler.Members).Methods(http.MethodGet)
	admin.HandleFunc("/members/{role:admin|doctor|staff|patient}/{code}", r.managementHandler.DeleteMember).Methods(http.MethodDelete)

	// Staff tasks
	admin.HandleFunc("/staff", r.staffTaskHandler.StaffList).Methods(http.MethodGet)
	admin.HandleFunc("/tasks", r.staffTaskHandler.Assign).Methods(http.MethodPost)
	admin.HandleFunc("/tasks", r.staffTaskHandler.All).Methods(http.MethodGet)
	admin.HandleFunc("/tasks/{id}", r.staffTaskHandler.Delete).Methods(http.MethodDelete)

	// Patient history (admin view)
	admin.HandleFunc("/history/{code}", r.appointmentHandler.PatientHistory).Methods(http.MethodGet)

	// Audit trail
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)

	// Doctor directory (any authenticated account)
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.Use(r.authMiddleware.Authenticate)
	doctors.HandleFunc("", r.appointmentHandler.ListDoctors).Methods(http.MethodGet)

	// Patient routes (protected - patient only)
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/profile", r.profileHandler.MyPatientProfile).Methods(http.MethodGet)
	patient.HandleFunc("/appointments", r.appointmentHandler.Book).Methods(http.MethodPost)
	patient.HandleFunc("/appointments", r.appointmentHandler.MyAppointments).Methods(http.MethodGet)
	patient.HandleFunc("/appointments/{id}", r.appointmentHandler.Cancel).Methods(http.MethodDelete)
	patient.HandleFunc("/history", r.appointmentHandler.History).Methods(http.MethodGet)
	patient.HandleFunc("/prescriptions", r.prescriptionHandler.MyPrescriptions).Methods(http.MethodGet)
	patient.HandleFunc("/prescriptions/{id}/acknowledge", r.prescriptionHandler.Acknowledge).Methods(http.MethodPatch)
	patient.HandleFunc("/billing", r.billingHandler.MyBills).Methods(http.MethodGet)
	patient.HandleFunc("/billing/{appointmentId}/pay", r.billingHandler.Pay).Methods(http.MethodPost)
	patient.HandleFunc("/documents", r.documentHandler.Upload).Methods(http.MethodPost)
	patient.HandleFunc("/documents", r.documentHandler.MyDocuments).Methods(http.MethodGet)
	patient.HandleFunc("/documents/{id}", r.documentHandler.Delete).Methods(http.MethodDelete)

	// Doctor routes (protected - doctor only)
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/appointments", r.appointmentHandler.DoctorAppointments).Methods(http.MethodGet)
	doctor.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.Complete).Methods(http.MethodPost)
	doctor.HandleFunc("/prescriptions", r.prescriptionHandler.Create).Methods(http.MethodPost)
	doctor.HandleFunc("/prescriptions/{code}/{appointmentId}", r.prescriptionHandler.Check).Methods(http.MethodGet)
	doctor.HandleFunc("/documents/{code}", r.documentHandler.PatientDocuments).Methods(http.MethodGet)
	doctor.HandleFunc("/history/{code}", r.appointmentHandler.PatientHistory).Methods(http.MethodGet)

	// Staff routes (protected - staff only)
	staff := api.PathPrefix("/staff").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)
	staff.HandleFunc("/tasks", r.staffTaskHandler.MyTasks).Methods(http.MethodGet)

	// Uploaded files are served statically under the same path stored in
	// document rows: "/<upload dir>/<stored name>".
	uploadPrefix := "/" + strings.Trim(filepath.ToSlash(r.uploadCfg.Dir), "/") + "/"
	r.router.PathPrefix(uploadPrefix).Handler(
		http.StripPrefix(uploadPrefix, http.FileServer(http.Dir(r.uploadCfg.Dir))),
	)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
