package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"assistente-gestao/internal/model"
)

var errMissingID = errors.New("id is required")

func (h *handler) scope(c *gin.Context) model.Scope {
	return model.Scope{
		UserID: c.ClientIP(),
		Source: model.SourceHTTP,
	}
}

// processCreateReq binds the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds the list tasks query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the update task request body and URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}

func (h *handler) processCommandReq(c *gin.Context) (commandReq, error) {
	var req commandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processExportReq(c *gin.Context) (exportReq, error) {
	var req exportReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
