package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/firehall/personnel-agent/api/v1"
	"github.com/firehall/personnel-agent/internal/services"
	srvErrors "github.com/firehall/personnel-agent/pkg/errors"
)

type Handler struct {
	authSrv        *services.AuthService
	personnelSrv   *services.PersonnelService
	leaveSrv       *services.LeaveService
	clearanceSrv   *services.ClearanceService
	inventorySrv   *services.InventoryService
	trainingSrv    *services.TrainingService
	inspectionSrv  *services.InspectionService
	medicalSrv     *services.MedicalRecordService
	recruitmentSrv *services.RecruitmentService
	reportSrv      *services.ReportService
	reconciler     *services.Reconciler
}

func New(
	authSrv *services.AuthService,
	personnelSrv *services.PersonnelService,
	leaveSrv *services.LeaveService,
	clearanceSrv *services.ClearanceService,
	inventorySrv *services.InventoryService,
	trainingSrv *services.TrainingService,
	inspectionSrv *services.InspectionService,
	medicalSrv *services.MedicalRecordService,
	recruitmentSrv *services.RecruitmentService,
	reportSrv *services.ReportService,
	reconciler *services.Reconciler,
) *Handler {
	return &Handler{
		authSrv:        authSrv,
		personnelSrv:   personnelSrv,
		leaveSrv:       leaveSrv,
		clearanceSrv:   clearanceSrv,
		inventorySrv:   inventorySrv,
		trainingSrv:    trainingSrv,
		inspectionSrv:  inspectionSrv,
		medicalSrv:     medicalSrv,
		recruitmentSrv: recruitmentSrv,
		reportSrv:      reportSrv,
		reconciler:     reconciler,
	}
}

// writeError maps service errors to HTTP status codes with the uniform
// error envelope.
func writeError(c *gin.Context, err error) {
	switch {
	case srvErrors.IsResourceNotFoundError(err):
		c.JSON(http.StatusNotFound, v1.Error{Error: err.Error()})
	case srvErrors.IsMissingKeyError(err),
		srvErrors.IsInvalidKeyError(err),
		srvErrors.IsValidationError(err):
		c.JSON(http.StatusBadRequest, v1.Error{Error: err.Error()})
	case srvErrors.IsUnauthorizedError(err):
		c.JSON(http.StatusUnauthorized, v1.Error{Error: err.Error()})
	case srvErrors.IsStorageUnavailableError(err):
		c.JSON(http.StatusServiceUnavailable, v1.Error{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, v1.Error{Error: err.Error()})
	}
}
