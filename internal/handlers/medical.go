package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/firehall/personnel-agent/api/v1"
	"github.com/firehall/personnel-agent/internal/services"
)

// maxUploadSize caps medical document payloads at 20 MiB.
const maxUploadSize = 20 << 20

// ListMedicalRecords returns record metadata joined with personnel
// details
// (GET /medical-records)
func (h *Handler) ListMedicalRecords(c *gin.Context) {
	views, err := h.medicalSrv.GetMedicalRecordsWithPersonnel(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]v1.MedicalRecord, 0, len(views))
	for _, v := range views {
		out = append(out, v1.NewMedicalRecordWithPersonnel(v))
	}
	c.JSON(http.StatusOK, out)
}

// UploadMedicalRecord stores a medical document from a multipart form.
// Expected fields: personnel_id, document_name, record_type (optional)
// and the "file" part.
// (POST /medical-records)
func (h *Handler) UploadMedicalRecord(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "file part is required"})
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, v1.Error{Error: "file exceeds upload limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "unable to read uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "unable to read uploaded file"})
		return
	}

	name := c.PostForm("document_name")
	if name == "" {
		name = fileHeader.Filename
	}

	rec, err := h.medicalSrv.Upload(c.Request.Context(), services.UploadParams{
		PersonnelID:  c.PostForm("personnel_id"),
		DocumentName: name,
		RecordType:   c.PostForm("record_type"),
		FileType:     fileHeader.Header.Get("Content-Type"),
		Data:         data,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, v1.NewMedicalRecord(*rec))
}

// DownloadMedicalRecord streams the stored document payload
// (GET /medical-records/:id/download)
func (h *Handler) DownloadMedicalRecord(c *gin.Context) {
	rec, err := h.medicalSrv.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	contentType := rec.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rec.DocumentName))
	c.Data(http.StatusOK, contentType, rec.FileData)
}

// DeleteMedicalRecord removes the record and its mirrored personnel
// document entry
// (DELETE /medical-records/:id)
func (h *Handler) DeleteMedicalRecord(c *gin.Context) {
	if err := h.medicalSrv.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
