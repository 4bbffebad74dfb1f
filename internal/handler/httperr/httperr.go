package httperr

import (
	"errors"
	"net/http"

	"spa-pos/internal/domain/transaction"
	"spa-pos/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a usecase error onto its HTTP status and terminal message.
func Abort(c *gin.Context, err error, fallback string) {
	status := StatusFor(err)
	msg := errs.UserMessage(err, fallback)
	if status == http.StatusInternalServerError {
		// uncategorised errors may carry hints meant for logs only
		msg = "Internal server error"
	}
	AbortWithError(c, status, err, msg, detailFor(err))
}

func StatusFor(err error) int {
	switch {
	case errs.Is(err, errs.ErrSessionExpired):
		return http.StatusUnauthorized
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errs.Is(err, errs.ErrValidation):
		return http.StatusUnprocessableEntity
	case errs.Is(err, errs.ErrRemoteRejection):
		return http.StatusUnprocessableEntity
	case errs.Is(err, errs.ErrSubmissionFailure), errs.Is(err, errs.ErrTransportFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// detailFor lists each failed submit rule so the terminal can show them together.
func detailFor(err error) any {
	var problems transaction.SubmitErrors
	if !errors.As(err, &problems) {
		return nil
	}
	msgs := make([]string, 0, len(problems))
	for _, p := range problems {
		msgs = append(msgs, p.Error())
	}
	return gin.H{"problems": msgs}
}
