// Package respond holds the success half of the shared response envelope.
// The failure half lives in errcodes' error handler.
package respond

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Data writes a success envelope wrapping the given payload.
func Data(c echo.Context, code int, data interface{}) error {
	return errors.WithStack(c.JSON(code, Envelope{Success: true, Data: data}))
}

// DataMessage writes a success envelope with both a message and a payload.
func DataMessage(c echo.Context, code int, msg string, data interface{}) error {
	return errors.WithStack(c.JSON(code, Envelope{Success: true, Message: msg, Data: data}))
}

// Message writes a success envelope with only a message.
func Message(c echo.Context, code int, msg string) error {
	return errors.WithStack(c.JSON(code, Envelope{Success: true, Message: msg}))
}
