package api

import (
	"net/http"

	reqdto "spa-pos/internal/handler/dto/request"
	resdto "spa-pos/internal/handler/dto/response"
	"spa-pos/internal/handler/httperr"
	"spa-pos/internal/handler/middleware"
	"spa-pos/internal/pkg/errs"
	"spa-pos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the backend-owned reference data a terminal needs.
type CatalogHandler struct {
	catalog   queries.CatalogQueries
	staff     queries.StaffQueries
	customers queries.CustomerQueries
}

func NewCatalogHandler(catalog queries.CatalogQueries, staff queries.StaffQueries, customers queries.CustomerQueries) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, staff: staff, customers: customers}
}

// @Summary List services
// @Description Paged service catalog for the operator's branch
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param per_page query int false "Items per page (default 12)"
// @Param search query string false "Name filter"
// @Success 200 {object} resdto.ServicePageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /catalog/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no session in context"), "Unauthorized", nil)
		return
	}
	var q reqdto.ListServicesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	page, err := h.catalog.ListServices(c.Request.Context(), sess, q.ToParams())
	if err != nil {
		httperr.Abort(c, err, "Could not load services")
		return
	}
	c.JSON(http.StatusOK, resdto.FromServicePage(page))
}

// @Summary List therapists
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.StaffResponse
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /staff [get]
func (h *CatalogHandler) ListStaff(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no session in context"), "Unauthorized", nil)
		return
	}
	staff, err := h.staff.ListStaff(c.Request.Context(), sess)
	if err != nil {
		httperr.Abort(c, err, "Could not load staff")
		return
	}
	c.JSON(http.StatusOK, resdto.FromStaffViews(staff))
}

// @Summary List all staff
// @Description Every staff member who may bill a sale; managers and admins only
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.StaffResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /staff/all [get]
func (h *CatalogHandler) ListAllStaff(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no session in context"), "Unauthorized", nil)
		return
	}
	staff, err := h.staff.ListAllStaff(c.Request.Context(), sess)
	if err != nil {
		httperr.Abort(c, err, "Could not load staff")
		return
	}
	c.JSON(http.StatusOK, resdto.FromStaffViews(staff))
}

// @Summary Look up a customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param phone path string true "Customer phone"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /customers/{phone} [get]
func (h *CatalogHandler) FindCustomer(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no session in context"), "Unauthorized", nil)
		return
	}
	customer, err := h.customers.FindByPhone(c.Request.Context(), sess, c.Param("phone"))
	if err != nil {
		httperr.Abort(c, err, "Could not look up customer")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerView(customer))
}
