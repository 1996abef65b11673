package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"assistente-gestao/internal/task"
	"assistente-gestao/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a deadline. autoEntreEmpresa and codigoContrato default to "Não aplicável", processo to "pendente".
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200  {object} taskItemResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, taskItemResp{Task: newTaskResp(output.Task)})
}

// List godoc
// @Summary     List tasks
// @Description Returns tasks ordered by due date. entidade, obra and q match substrings ignoring case and accents.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       processo query string false "pendente or concluido"
// @Param       tipo     query string false "Auto, Contrato, Aditamento, Desenvolvimento or Outro"
// @Param       empresa  query string false "Exact company"
// @Param       entidade query string false "Entity substring"
// @Param       obra     query string false "Work substring"
// @Param       q        query string false "Free-text search"
// @Param       limit    query int    false "Page size (default: 20)"
// @Param       offset   query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskItemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, h.scope(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, taskItemResp{Task: newTaskResp(output.Task)})
}

// Update godoc
// @Summary     Update a task
// @Description Partial update; omitted fields keep their stored value.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, taskItemResp{Task: newTaskResp(output.Task)})
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, h.scope(c), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Stats godoc
// @Summary     Task counters
// @Description Totals by status; pendentes includes the overdue tasks.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} task.StatsOutput
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx, h.scope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, output)
}

// Export godoc
// @Summary     Export tasks
// @Description Downloads the tasks as json, backup, csv, markdown or yaml.
// @Tags        Tasks
// @Produce     json
// @Produce     text/csv
// @Param       format query string false "json (default), backup, csv, markdown, yaml"
// @Param       filter query string false "all (default), pending, completed, overdue"
// @Success     200 {file} file
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Export(ctx, h.scope(c), task.ExportInput{Format: req.Format, Filter: req.Filter})
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	c.Data(http.StatusOK, output.ContentType, output.Data)
}

// ExecuteCommand godoc
// @Summary     Execute a command
// @Description Interprets a Portuguese command and applies it, e.g. "Marcar VIC_0725 como concluído".
// @Tags        Commands
// @Accept      json
// @Produce     json
// @Param       body body commandReq true "Command text"
// @Success     200 {object} commandResp
// @Failure     404 {object} response.Resp "Task not found"
// @Failure     422 {object} response.Resp "Command rejected"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/commands [POST]
func (h *handler) ExecuteCommand(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCommandReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ExecuteCommand(ctx, h.scope(c), task.CommandInput{Text: req.Text})
	if err != nil {
		h.l.Warnf(ctx, "uc.ExecuteCommand: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCommandResp(output))
}

// ParseCommand godoc
// @Summary     Parse a command
// @Description Dry run: returns the recognised action or the rejection reason without touching storage.
// @Tags        Commands
// @Accept      json
// @Produce     json
// @Param       body body commandReq true "Command text"
// @Success     200 {object} command.Result
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/commands/parse [POST]
func (h *handler) ParseCommand(c *gin.Context) {
	req, err := h.processCommandReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.uc.ParseCommand(c.Request.Context(), req.Text))
}

// Examples godoc
// @Summary     Example commands
// @Tags        Commands
// @Produce     json
// @Success     200 {object} suggestionsResp
// @Router      /api/v1/commands/examples [GET]
func (h *handler) Examples(c *gin.Context) {
	response.OK(c, suggestionsResp{Suggestions: h.uc.Examples()})
}

// Suggestions godoc
// @Summary     Command suggestions
// @Description Templates related to a partial command; all examples when nothing matches.
// @Tags        Commands
// @Produce     json
// @Param       q query string false "Partial command"
// @Success     200 {object} suggestionsResp
// @Router      /api/v1/commands/suggestions [GET]
func (h *handler) Suggestions(c *gin.Context) {
	response.OK(c, suggestionsResp{Suggestions: h.uc.Suggestions(c.Query("q"))})
}
