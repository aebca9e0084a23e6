package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "inventory-master/pkg/errors"
)

// OK sends 200 with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{Success: true, Data: data})
}

// Created sends 201 with the created record and a message.
func Created(c *gin.Context, data any, message string) {
	c.JSON(http.StatusCreated, Resp{Success: true, Data: data, Message: message})
}

// Updated sends 200 with the written record and a message.
func Updated(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, Resp{Success: true, Data: data, Message: message})
}

// List sends 200 with a page of rows plus pagination metadata. Total is the
// pre-pagination match count.
func List(c *gin.Context, data any, total, page, limit int) {
	c.JSON(http.StatusOK, Resp{
		Success: true,
		Data:    data,
		Total:   &total,
		Page:    &page,
		Limit:   &limit,
	})
}

// Error sends the failure envelope. HTTPError values choose their own
// status; anything else is an internal fault reported as 500 with the
// underlying message in the error field.
func Error(c *gin.Context, err error) {
	if he, ok := err.(pkgErrors.HTTPError); ok {
		c.JSON(he.Status, Resp{Success: false, Message: he.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, Resp{
		Success: false,
		Message: "Internal server error",
		Error:   err.Error(),
	})
}

// BadRequest sends 400 for malformed or incomplete input.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Resp{Success: false, Message: message})
}
