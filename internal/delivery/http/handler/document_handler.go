package handler

import (
	"net/http"

	"healthhub/config"
	"healthhub/internal/delivery/http/middleware"
	"healthhub/internal/usecase"
	"healthhub/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DocumentHandler struct {
	documentUsecase usecase.DocumentUsecase
	uploadCfg       config.UploadConfig
}

func NewDocumentHandler(documentUsecase usecase.DocumentUsecase, uploadCfg config.UploadConfig) *DocumentHandler {
	return &DocumentHandler{
		documentUsecase: documentUsecase,
		uploadCfg:       uploadCfg,
	}
}

// Upload stores a medical document for the patient's current doctor
// @Summary Upload document
// @Tags Documents
// @Security BearerAuth
// @Accept multipart/form-data
// @Param file formData file true "Document file"
// @Param description formData string false "Description"
// @Success 201 {object} response.Response
// @Router /patient/documents [post]
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.uploadCfg.MaxSizeBytes)
	if err := r.ParseMultipartForm(h.uploadCfg.MaxSizeBytes); err != nil {
		response.BadRequest(w, "File too large or invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "File is required")
		return
	}
	defer file.Close()

	fileType := header.Header.Get("Content-Type")
	description := r.FormValue("description")

	document, err := h.documentUsecase.Upload(r.Context(), email, file, header.Filename, fileType, description)
	if err != nil {
		switch err {
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		case usecase.ErrNoActiveAppointment:
			response.BadRequest(w, "Book an appointment before uploading documents")
		default:
			response.InternalServerError(w, "Failed to upload document")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Document uploaded successfully", document)
}

// MyDocuments lists the patient's uploaded documents
// @Summary List own documents
// @Tags Documents
// @Security BearerAuth
// @Router /patient/documents [get]
func (h *DocumentHandler) MyDocuments(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	documents, err := h.documentUsecase.MyDocuments(r.Context(), email)
	if err != nil {
		switch err {
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		default:
			response.InternalServerError(w, "Failed to list documents")
		}
		return
	}

	response.Success(w, http.StatusOK, "Documents retrieved successfully", documents)
}

// Delete removes one of the patient's own documents
// @Summary Delete document
// @Tags Documents
// @Security BearerAuth
// @Router /patient/documents/{id} [delete]
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	documentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid document ID")
		return
	}

	if err := h.documentUsecase.Delete(r.Context(), email, documentID); err != nil {
		switch err {
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		case usecase.ErrDocumentNotFound:
			response.NotFound(w, "Document not found")
		default:
			response.InternalServerError(w, "Failed to delete document")
		}
		return
	}

	response.Success(w, http.StatusOK, "Document deleted successfully", nil)
}

// PatientDocuments lets a doctor view documents addressed to them
// @Summary List a patient's documents
// @Tags Documents
// @Security BearerAuth
// @Param code path string true "Patient Code"
// @Router /doctor/documents/{code} [get]
func (h *DocumentHandler) PatientDocuments(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	documents, err := h.documentUsecase.PatientDocuments(r.Context(), email, mux.Vars(r)["code"])
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor profile not found")
		default:
			response.InternalServerError(w, "Failed to list documents")
		}
		return
	}

	response.Success(w, http.StatusOK, "Documents retrieved successfully", documents)
}
