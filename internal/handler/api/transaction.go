package api

import (
	"net/http"

	"spa-pos/internal/domain/session"
	reqdto "spa-pos/internal/handler/dto/request"
	resdto "spa-pos/internal/handler/dto/response"
	"spa-pos/internal/handler/httperr"
	"spa-pos/internal/handler/middleware"
	"spa-pos/internal/pkg/errs"
	"spa-pos/internal/usecase/commands"
	"spa-pos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TransactionHandler struct {
	cmds commands.TransactionCommands
	q    queries.TransactionQueries
}

func NewTransactionHandler(cmds commands.TransactionCommands, q queries.TransactionQueries) *TransactionHandler {
	return &TransactionHandler{cmds: cmds, q: q}
}

// target reads the session and the :id path param, aborting on either failure.
func target(c *gin.Context) (*session.Session, uuid.UUID, bool) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no session in context"), "Unauthorized", nil)
		return nil, uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return nil, uuid.Nil, false
	}
	return sess, id, true
}

func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return false
	}
	return true
}

func respond(c *gin.Context, view *queries.TransactionView, err error, fallback string) {
	if err != nil {
		httperr.Abort(c, err, fallback)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransactionView(view))
}

// @Summary Open transaction
// @Description Start an empty transaction for the logged-in operator
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.TransactionResponse
// @Failure 401 {object} httperr.Response
// @Router /transactions [post]
func (h *TransactionHandler) Open(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no session in context"), "Unauthorized", nil)
		return
	}
	view, err := h.cmds.Open(c.Request.Context(), sess)
	if err != nil {
		httperr.Abort(c, err, "Could not open transaction")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTransactionView(view))
}

// @Summary List open transactions
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TransactionListResponse
// @Failure 401 {object} httperr.Response
// @Router /transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no session in context"), "Unauthorized", nil)
		return
	}
	items, err := h.q.ListOpen(c.Request.Context(), sess)
	if err != nil {
		httperr.Abort(c, err, "Could not list transactions")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransactionList(items))
}

// @Summary Get transaction
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	sess, id, ok := target(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), sess, id)
	respond(c, view, err, "Transaction not found")
}

// @Summary Discard transaction
// @Tags transactions
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) Discard(c *gin.Context) {
	sess, id, ok := target(c)
	if !ok {
		return
	}
	if err := h.cmds.Discard(c.Request.Context(), sess, id); err != nil {
		httperr.Abort(c, err, "Discard failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reset transaction
// @Description Clear the cart, discount, tax and details
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 404 {object} httperr.Response
// @Router /transactions/{id}/reset [post]
func (h *TransactionHandler) Reset(c *gin.Context) {
	sess, id, ok := target(c)
	if !ok {
		return
	}
	view, err := h.cmds.Reset(c.Request.Context(), sess, id)
	respond(c, view, err, "Reset failed")
}

// @Summary Add a service
// @Description Add one unit of a listed service; repeats bump the quantity
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body reqdto.AddLineRequest true "Service"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /transactions/{id}/lines [post]
func (h *TransactionHandler) AddLine(c *gin.Context) {
	sess, id, ok := target(c)
	if !ok {
		return
	}
	var req reqdto.AddLineRequest
	if !bind(c, &req) {
		return
	}
	view, err := h.cmds.AddLine(c.Request.Context(), sess, id, req.ServiceID)
	respond(c, view, err, "Could not add service")
}

// @Summary Set line quantity
// @Description Zero or less removes the line
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param serviceId path string true "Service ID"
// @Param request body reqdto.SetQuantityRequest true "Quantity"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /transactions/{id}/lines/{serviceId}/quantity [put]
func (h *TransactionHandler) SetQuantity(c *gin.Context) {
	sess, id, ok := target(c)
	if !ok {
		return
	}
	var req reqdto.SetQuantityRequest
	if !bind(c, &req) {
		return
	}
	view, err := h.cmds.SetQuantity(c.Request.Context(), sess, id, c.Param("serviceId"), *req.Quantity)
	respond(c, view, err, "Could not change quantity")
}

// @Summary Set line discount
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param serviceId path string true "Service ID"
// @Param request body reqdto.LineDiscountRequest true "Discount"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /transactions/{id}/lines/{serviceId}/discount [put]
func (h *TransactionHandler) SetLineDiscount(c *gin.Context) {
	sess, id, ok := target(c)
	if !ok {
		return
	}
	var req reqdto.LineDiscountRequest
	if !bind(c, &req) {
		return
	}
	view, err := h.cmds.SetLineDiscount(c.Request.Context(), sess, id, c.Param("serviceId"), req.Discount)
	respond(c, view, err, "Could not set line discount")
}

// @Summary Apply voucher
// @Description Validate a voucher with the backend; a valid voucher covers the whole bill
// @Tags discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body reqdto.ApplyVoucherRequest true "Voucher"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /transactions/{id}/voucher [post]
func (h *TransactionHandler) ApplyVoucher(c *gin.Context) {
	sess, id, ok := target(c)
	if !ok {
		return
	}
	var req reqdto.ApplyVoucherRequest
	if !bind(c, &req) {
		return
	}
	view, err := h.cmds.ApplyVoucher(c.Request.Context(), sess, id, req.VoucherCode)
	respond(c, view, err, "Error validating voucher")
}

// @Summary Remove voucher
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.TransactionResponse
// @Router /transactions/{id}/voucher [delete]
func (h *TransactionHandler) ResetVoucher(c *gin.Context) {
	sess, id, ok := target(c)
	if !ok {
		return
	}
	view, err := h.cmds.ResetVoucher(c.Request.Context(), sess, id)
	respond(c, view, err, "Could not remove voucher")
}

// @Summary Search memberships
// @Description Load the customer's active memberships as candidates
// @Tags discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body reqdto.MembershipSearchRequest true "Phone"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 422 {object} httperr.Response
// @Router /transactions/{id}/membership/search [post]
func (h *TransactionHandler) SearchMembership(c *gin.Context) {
	sess, id, ok := target(c)
	if !ok {
		return
	}
	var req reqdto.MembershipSearchRequest
	if !bind(c, &req) {
		return
	}
	view, err := h.cmds.SearchMembership(c.Request.Context(), sess, id, req.Phone)
	respond(c, view, err, "Error checking membership.")
}

// @Summary Choose membership
// @Tags discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body reqdto.ChooseMembershipRequest true "Membership"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 422 {object} httperr.Response
// @Router /transactions/{id}/membership [put]
func (h *TransactionHandler) ChooseMembership(c *gin.Context) {
	sess, id, ok := target(c)
	if !ok {
		return
	}
	var req reqdto.ChooseMembershipRequest
	if !bind(c, &req) {
		return
	}
	view, err := h.cmds.ChooseMembership(c.Request.Context(), sess, id, req.MembershipID)
	respond(c, view, err, "Could not apply membership")
}

// @Summary Remove membership
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.TransactionResponse
// @Router /transactions/{id}/membership [delete]
func (h *TransactionHandler) ResetMembership(c *gin.Context) {
	sess, id, ok := target(c)
	if !ok {
		return
	}
	view, err := h.cmds.ResetMembership(c.Request.Context(), sess, id)
	respond(c, view, err, "Could not remove membership")
}

// @Summary Set manual discount
// @Tags discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body reqdto.ManualDiscountRequest true "Flat amount"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 422 {object} httperr.Response
// @Router /transactions/{id}/manual-discount [put]
func (h *TransactionHandler) SetManualDiscount(c *gin.Context) {
	sess, id, ok := target(c)
	if !ok {
		return
	}
	var req reqdto.ManualDiscountRequest
	if !bind(c, &req) {
		return
	}
	view, err := h.cmds.SetManualDiscount(c.Request.Context(), sess, id, req.Amount)
	respond(c, view, err, "Could not set discount")
}

// @Summary Remove manual discount
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.TransactionResponse
// @Router /transactions/{id}/manual-discount [delete]
func (h *TransactionHandler) ClearManualDiscount(c *gin.Context) {
	sess, id, ok := target(c)
	if !ok {
		return
	}
	view, err := h.cmds.ClearManualDiscount(c.Request.Context(), sess, id)
	respond(c, view, err, "Could not remove discount")
}

// @Summary Set GST percent
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body reqdto.GSTRequest true "GST percent"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 422 {object} httperr.Response
// @Router /transactions/{id}/gst [put]
func (h *TransactionHandler) SetGST(c *gin.Context) {
	sess, id, ok := target(c)
	if !ok {
		return
	}
	var req reqdto.GSTRequest
	if !bind(c, &req) {
		return
	}
	view, err := h.cmds.SetGST(c.Request.Context(), sess, id, req.Percent)
	respond(c, view, err, "Could not set GST")
}

// @Summary Set customer
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body reqdto.CustomerRequest true "Customer"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 422 {object} httperr.Response
// @Router /transactions/{id}/customer [put]
func (h *TransactionHandler) SetCustomer(c *gin.Context) {
	sess, id, ok := target(c)
	if !ok {
		return
	}
	var req reqdto.CustomerRequest
	if !bind(c, &req) {
		return
	}
	view, err := h.cmds.SetCustomer(c.Request.Context(), sess, id, commands.CustomerInput{
		Name:   req.Name,
		Phone:  req.Phone,
		Source: req.Source,
	})
	respond(c, view, err, "Could not set customer")
}

// @Summary Set staff
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body reqdto.StaffRequest true "Therapist and biller"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 422 {object} httperr.Response
// @Router /transactions/{id}/staff [put]
func (h *TransactionHandler) SetStaff(c *gin.Context) {
	sess, id, ok := target(c)
	if !ok {
		return
	}
	var req reqdto.StaffRequest
	if !bind(c, &req) {
		return
	}
	view, err := h.cmds.SetStaff(c.Request.Context(), sess, id, req.StaffID, req.BilledByID)
	respond(c, view, err, "Could not set staff")
}

// @Summary Set payment
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body reqdto.PaymentRequest true "Payment"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 422 {object} httperr.Response
// @Router /transactions/{id}/payment [put]
func (h *TransactionHandler) SetPayment(c *gin.Context) {
	sess, id, ok := target(c)
	if !ok {
		return
	}
	var req reqdto.PaymentRequest
	if !bind(c, &req) {
		return
	}
	view, err := h.cmds.SetPayment(c.Request.Context(), sess, id, commands.PaymentInput{
		Method:            req.Method,
		CashReceived:      req.CashReceived,
		TransactionNumber: req.TransactionNumber,
	})
	respond(c, view, err, "Could not set payment")
}

// @Summary Set service time
// @Description Half-hour slot between 09:00 and 22:00
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body reqdto.ScheduleRequest true "Service time"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 422 {object} httperr.Response
// @Router /transactions/{id}/service-time [put]
func (h *TransactionHandler) SetServiceTime(c *gin.Context) {
	sess, id, ok := target(c)
	if !ok {
		return
	}
	var req reqdto.ScheduleRequest
	if !bind(c, &req) {
		return
	}
	view, err := h.cmds.SetServiceTime(c.Request.Context(), sess, id, req.At)
	respond(c, view, err, "Could not set service time")
}

// @Summary Book as future appointment
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body reqdto.ScheduleRequest true "Appointment time"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 422 {object} httperr.Response
// @Router /transactions/{id}/appointment [put]
func (h *TransactionHandler) ScheduleAppointment(c *gin.Context) {
	sess, id, ok := target(c)
	if !ok {
		return
	}
	var req reqdto.ScheduleRequest
	if !bind(c, &req) {
		return
	}
	view, err := h.cmds.ScheduleAppointment(c.Request.Context(), sess, id, req.At)
	respond(c, view, err, "Could not book appointment")
}

// @Summary Cancel future appointment
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.TransactionResponse
// @Router /transactions/{id}/appointment [delete]
func (h *TransactionHandler) ClearAppointment(c *gin.Context) {
	sess, id, ok := target(c)
	if !ok {
		return
	}
	view, err := h.cmds.ClearAppointment(c.Request.Context(), sess, id)
	respond(c, view, err, "Could not cancel appointment")
}

// @Summary Submit billing
// @Description Send the transaction to the backend; it is discarded on success
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.SubmitResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /transactions/{id}/submit [post]
func (h *TransactionHandler) Submit(c *gin.Context) {
	sess, id, ok := target(c)
	if !ok {
		return
	}
	result, err := h.cmds.Submit(c.Request.Context(), sess, id)
	if err != nil {
		httperr.Abort(c, err, "Billing failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubmitResult(result))
}
