package utils

import (
	"encoding/xml"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	XMLName xml.Name            `json:"-" xml:"response"`
	Status  string              `json:"status" xml:"status"`
	Code    int                 `json:"code" xml:"code"`
	Message string              `json:"message,omitempty" xml:"message,omitempty"`
	TraceID string              `json:"trace_id,omitempty" xml:"traceId,omitempty"`
	Data    interface{}         `json:"data,omitempty" xml:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty" xml:"-"`
}

var negotiated = []string{gin.MIMEJSON, gin.MIMEXML, gin.MIMEXML2}

const loggerKey = "logger"

// SetLogger stores a request-scoped logger for HandleServiceError.
func SetLogger(c *gin.Context, logger *slog.Logger) {
	c.Set(loggerKey, logger)
}

// LoggerFrom returns the logger stored by SetLogger, or slog.Default.
func LoggerFrom(c *gin.Context) *slog.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return slog.Default()
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, location string, data interface{}, message string) {
	c.Header("Location", location)
	respond(c, http.StatusCreated, data, message)
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func RespondNotFound(c *gin.Context) {
	c.AbortWithStatus(http.StatusNotFound)
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func RespondValidationError(c *gin.Context, verr *ValidationError) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: "One or more validation errors occurred.",
		TraceID: c.GetString("trace_id"),
		Errors:  verr.Fields,
	})
}

func HandleServiceError(c *gin.Context, err error) {
	var verr *ValidationError
	logger := LoggerFrom(c)

	switch {
	case errors.As(err, &verr):
		RespondValidationError(c, verr)
	case errors.Is(err, ErrCityNotFound), errors.Is(err, ErrPointOfInterestNotFound):
		RespondNotFound(c)
	case errors.Is(err, ErrMissingBody):
		RespondError(c, http.StatusBadRequest, "A non-empty request body is required.")
	case errors.Is(err, ErrSaveFailed):
		logger.WarnContext(c.Request.Context(), "Save affected no rows",
			slog.String("path", c.FullPath()), slog.String("trace_id", c.GetString("trace_id")))
		RespondError(c, http.StatusInternalServerError, ProblemMessage)
	default:
		logger.ErrorContext(c.Request.Context(), "Request failed",
			slog.String("path", c.FullPath()), slog.String("trace_id", c.GetString("trace_id")), slog.Any("error", err))
		RespondError(c, http.StatusInternalServerError, ProblemMessage)
	}
}

// respond writes XML when the client asks for it and JSON otherwise, including
// for Accept values that match neither.
func respond(c *gin.Context, code int, data interface{}, message string) {
	body := APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	}

	switch c.NegotiateFormat(negotiated...) {
	case gin.MIMEXML, gin.MIMEXML2:
		c.XML(code, body)
	default:
		c.JSON(code, body)
	}
}
