package routes

import (
	"oficina_mecanica/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWorkOrders = "/work-orders"
	PathCustomers  = "/customers"
	PathMechanics  = "/mechanics"
	PathServices   = "/services"
	PathParts      = "/parts"
)

func addWorkOrderRoutes(rg *gin.RouterGroup, h *handlers.WorkOrderHandler) {
	workOrders := rg.Group(PathWorkOrders)
	{
		workOrders.POST("", h.CreateWorkOrder)
		workOrders.GET("", h.ListWorkOrders)
		workOrders.GET("/:id", h.GetWorkOrder)
		workOrders.PUT("/:id", h.UpdateWorkOrder)
		workOrders.DELETE("/:id", h.DeleteWorkOrder)
		workOrders.PATCH("/:id/conclude", h.ConcludeWorkOrder)

		workOrders.POST("/:id/services", h.AddService)
		workOrders.DELETE("/:id/services/:service_id", h.RemoveService)
		workOrders.POST("/:id/parts", h.AddPart)
		workOrders.DELETE("/:id/parts/:part_id", h.RemovePart)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, h Handlers) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", h.Customers.CreateCustomer)
		customers.GET("", h.Customers.ListCustomers)
		customers.GET("/:id", h.Customers.GetCustomer)
		customers.PUT("/:id", h.Customers.UpdateCustomer)
		customers.DELETE("/:id", h.Customers.DeleteCustomer)
	}

	mechanics := rg.Group(PathMechanics)
	{
		mechanics.POST("", h.Mechanics.CreateMechanic)
		mechanics.GET("", h.Mechanics.ListMechanics)
		mechanics.GET("/:id", h.Mechanics.GetMechanic)
		mechanics.PUT("/:id", h.Mechanics.UpdateMechanic)
		mechanics.DELETE("/:id", h.Mechanics.DeleteMechanic)
	}

	services := rg.Group(PathServices)
	{
		services.POST("", h.Services.CreateService)
		services.GET("", h.Services.ListServices)
		services.GET("/count", h.Services.CountServices)
		services.GET("/:id", h.Services.GetService)
		services.PUT("/:id", h.Services.UpdateService)
		services.DELETE("/:id", h.Services.DeleteService)
	}

	parts := rg.Group(PathParts)
	{
		parts.POST("", h.Parts.CreatePart)
		parts.GET("", h.Parts.ListParts)
		parts.GET("/count", h.Parts.CountParts)
		parts.GET("/:id", h.Parts.GetPart)
		parts.PUT("/:id", h.Parts.UpdatePart)
		parts.DELETE("/:id", h.Parts.DeletePart)
	}
}
