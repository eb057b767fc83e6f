package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"healthhub/config"
	"healthhub/internal/delivery/http/handler"
	"healthhub/internal/delivery/http/middleware"
	"healthhub/pkg/jwt"
	"healthhub/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes into dir for the duration of the test. It stands in for
// t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(old))
	})
}

func newTestRouter(t *testing.T, uploadDir string) *mux.Router {
	t.Helper()

	v := validator.NewValidator()
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", SessionExpiry: time.Hour})
	uploadCfg := config.UploadConfig{Dir: uploadDir, MaxSizeBytes: 1 << 20}

	r := NewRouter(
		uploadCfg,
		handler.NewAuthHandler(nil, v),
		handler.NewProfileHandler(nil, v),
		handler.NewApprovalHandler(nil),
		handler.NewManagementHandler(nil, v),
		handler.NewAppointmentHandler(nil, v),
		handler.NewPrescriptionHandler(nil, v),
		handler.NewBillingHandler(nil),
		handler.NewDocumentHandler(nil, uploadCfg),
		handler.NewStaffTaskHandler(nil, v),
		handler.NewAuditLogHandler(nil),
		middleware.NewAuthMiddleware(jwtService, redis.NewClient(&redis.Options{})),
		middleware.NewCORSMiddleware(),
	)
	return r.Setup()
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t, "uploads/patient-docs")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

// Stored document paths are "/<upload dir>/<name>", so the static route has to
// follow whatever directory is configured, not just the default one.
func TestStaticUploadServing(t *testing.T) {
	for _, dir := range []string{"uploads/patient-docs", "files"} {
		t.Run(dir, func(t *testing.T) {
			chdir(t, t.TempDir())
			require.NoError(t, os.MkdirAll(dir, 0o755))
			require.NoError(t, os.WriteFile(filepath.Join(dir, "report.txt"), []byte("lab result"), 0o644))

			router := newTestRouter(t, dir)

			req := httptest.NewRequest(http.MethodGet, "/"+dir+"/report.txt", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "lab result", rec.Body.String())
		})
	}
}

func TestStaticUploadUnknownFile(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.MkdirAll("uploads/patient-docs", 0o755))

	router := newTestRouter(t, "uploads/patient-docs")

	req := httptest.NewRequest(http.MethodGet, "/uploads/patient-docs/missing.txt", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
