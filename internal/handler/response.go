package handler

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"pay-dashboard-api/internal/constant"
	"pay-dashboard-api/internal/dto"
	"pay-dashboard-api/internal/gateway"
	"pay-dashboard-api/internal/middleware"
	"pay-dashboard-api/internal/utils"
)

// statusClientClosed is written when the caller went away before the answer was ready.
const statusClientClosed = 499

func reply(c *gin.Context, status int, resp utils.Response) {
	c.JSON(status, resp.WithTrace(middleware.TraceID(c)))
}

func ok(c *gin.Context, data interface{}) {
	reply(c, http.StatusOK, utils.Success(data))
}

// render sends data unless r failed while building it.
func render(c *gin.Context, r *dto.Renderer, data interface{}) {
	if err := r.Err(); err != nil {
		fail(c, err)
		return
	}
	ok(c, data)
}

func badRequest(c *gin.Context, err error) {
	e := constant.NewError(constant.CodeInvalidParams)
	if fields := utils.FieldErrors(err); fields != nil {
		e = e.WithData(fields)
	}
	_ = c.Error(err)
	reply(c, http.StatusBadRequest, utils.ErrorWithData(e.Code(), e.Data()))
}

// fail maps a service error onto an HTTP status and a response code.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	status, code := classify(err)
	reply(c, status, utils.Error(code))
}

func classify(err error) (int, int) {
	var fe *gateway.FetchError
	switch {
	case errors.Is(err, context.Canceled):
		return statusClientClosed, constant.CodeTimeout
	case errors.As(err, &fe) && fe.Kind == gateway.NotFoundError:
		return http.StatusNotFound, constant.CodeMerchantNotFound
	case errors.As(err, &fe) && fe.Kind == gateway.DecodeError:
		return http.StatusBadGateway, constant.CodeUpstreamDecodeError
	case errors.As(err, &fe) && isTimeout(fe):
		return http.StatusBadGateway, constant.CodeUpstreamTimeout
	case errors.As(err, &fe):
		return http.StatusBadGateway, constant.CodeUpstreamError
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, constant.CodeTimeout
	default:
		return http.StatusInternalServerError, constant.CodeSystemError
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
