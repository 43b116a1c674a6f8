package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/firehall/personnel-agent/internal/services"
)

// RegisterRoutes mounts all API routes on the given group. Everything
// except login requires a valid session token; administrative actions
// also require the admin role.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authSrv *services.AuthService) {
	router.POST("/auth/login", h.Login)

	authorized := router.Group("")
	authorized.Use(AuthRequired(authSrv))
	{
		authorized.POST("/auth/logout", h.Logout)
		authorized.GET("/auth/me", h.GetCurrentUser)

		personnel := authorized.Group("/personnel")
		{
			personnel.GET("", h.ListPersonnel)
			personnel.POST("", RoleRequired("admin"), h.RegisterPersonnel)
			personnel.GET("/:id", h.GetPersonnel)
			personnel.PUT("/:id", RoleRequired("admin"), h.UpdatePersonnel)
			personnel.DELETE("/:id", RoleRequired("admin"), h.DeletePersonnel)
			personnel.POST("/:id/promote", RoleRequired("admin"), h.PromotePersonnel)
			personnel.GET("/:id/trainings", h.GetPersonnelTrainings)
			personnel.GET("/:id/leave", h.GetPersonnelLeave)
			personnel.GET("/:id/medical-records", h.GetPersonnelMedicalRecords)
		}

		leave := authorized.Group("/leave")
		{
			leave.GET("", h.ListLeaveRequests)
			leave.POST("", h.SubmitLeaveRequest)
			leave.PUT("/:id", h.UpdateLeaveRequest)
			leave.DELETE("/:id", h.DeleteLeaveRequest)
			leave.POST("/:id/approve", RoleRequired("admin"), h.ApproveLeaveRequest)
			leave.POST("/:id/reject", RoleRequired("admin"), h.RejectLeaveRequest)
		}

		clearance := authorized.Group("/clearance")
		{
			clearance.GET("", h.ListClearanceRequests)
			clearance.POST("", h.CreateClearanceRequest)
			clearance.POST("/:id/complete", RoleRequired("admin"), h.CompleteClearanceRequest)
			clearance.POST("/:id/reject", RoleRequired("admin"), h.RejectClearanceRequest)
		}

		inventory := authorized.Group("/inventory")
		{
			inventory.GET("", h.ListInventory)
			inventory.POST("", RoleRequired("admin"), h.AddInventoryItem)
			inventory.GET("/:id", h.GetInventoryItem)
			inventory.PUT("/:id", RoleRequired("admin"), h.UpdateInventoryItem)
			inventory.DELETE("/:id", RoleRequired("admin"), h.DeleteInventoryItem)
			inventory.POST("/:id/assign", RoleRequired("admin"), h.AssignInventoryItem)
		}

		trainings := authorized.Group("/trainings")
		{
			trainings.GET("", h.ListTrainings)
			trainings.POST("", h.AddTraining)
			trainings.PUT("/:id", h.UpdateTraining)
			trainings.DELETE("/:id", RoleRequired("admin"), h.DeleteTraining)
		}

		inspections := authorized.Group("/inspections")
		{
			inspections.GET("", h.ListInspections)
			inspections.POST("", h.AddInspection)
			inspections.GET("/recent", h.GetRecentInspections)
			inspections.GET("/equipment/:id", h.GetInspectionsByEquipment)
			inspections.GET("/inspector/:id", h.GetInspectionsByInspector)
			inspections.DELETE("/:id", RoleRequired("admin"), h.DeleteInspection)
		}

		medical := authorized.Group("/medical-records")
		{
			medical.GET("", h.ListMedicalRecords)
			medical.POST("", h.UploadMedicalRecord)
			medical.GET("/:id/download", h.DownloadMedicalRecord)
			medical.DELETE("/:id", RoleRequired("admin"), h.DeleteMedicalRecord)
		}

		recruitment := authorized.Group("/recruitment")
		{
			recruitment.GET("", h.ListCandidates)
			recruitment.POST("", h.ApplyCandidate)
			recruitment.POST("/:id/shortlist", RoleRequired("admin"), h.ShortlistCandidate)
			recruitment.POST("/:id/reject", RoleRequired("admin"), h.RejectCandidate)
			recruitment.POST("/:id/accept", RoleRequired("admin"), h.AcceptCandidate)
		}

		admin := authorized.Group("/admin", RoleRequired("admin"))
		{
			admin.POST("/sync", h.TriggerSync)
			admin.POST("/migrate", h.TriggerMigration)
			admin.GET("/exports/personnel", h.ExportPersonnelRoster)
			admin.GET("/exports/inventory", h.ExportInventory)
		}
	}
}
